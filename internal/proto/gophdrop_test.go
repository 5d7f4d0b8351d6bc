package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func TestDescriptor_ServiceMethods(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("gophdrop.v1.DropService")
	require.NoError(t, err)

	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, len(DropService_ServiceDesc.Methods), sd.Methods().Len())

	for _, m := range DropService_ServiceDesc.Methods {
		assert.NotNil(t, sd.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
	assert.Equal(t, "gophdrop.v1.ListFilesResponse", string(sd.Methods().ByName("ListSharedFiles").Output().FullName()))
}

func TestFileMetadata_UploadedAtPresence(t *testing.T) {
	pending := &FileMetadata{FileName: "a.txt", Requester: "alice", RequestedAt: 10}
	b, err := protobuf.Marshal(pending)
	require.NoError(t, err)

	var got FileMetadata
	require.NoError(t, protobuf.Unmarshal(b, &got))
	assert.Nil(t, got.UploadedAt)
	assert.Equal(t, uint64(0), got.GetUploadedAt())

	at := uint64(0)
	uploaded := &FileMetadata{FileName: "a.txt", UploadedAt: &at}
	b, err = protobuf.Marshal(uploaded)
	require.NoError(t, err)

	got.Reset()
	require.NoError(t, protobuf.Unmarshal(b, &got))
	require.NotNil(t, got.UploadedAt)
	assert.Equal(t, uint64(0), *got.UploadedAt)
}

