// Package proto holds the DropService wire contract generated from
// gophdrop.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative gophdrop.proto
