package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	pb "github.com/dmitrijs2005/gophdrop/internal/proto"
	"github.com/dmitrijs2005/gophdrop/internal/server/auth"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const principalKey ctxKey = "principal"

// publicMethods can be called without an access token. Uploaders hold only
// an alias or a file id, never an account.
var publicMethods = map[string]struct{}{
	pb.DropService_Ping_FullMethodName:         {},
	pb.DropService_ResolveAlias_FullMethodName: {},
	pb.DropService_UploadFile_FullMethodName:   {},
}

func principalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(models.Principal)
	return p, ok && p != ""
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := firstMetadata(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, requestID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l := s.logger.With("request_id", requestID, "method", info.FullMethod)
	code := status.Code(err)
	if code == codes.Internal || code == codes.Unknown {
		l.Error(ctx, "request failed", "code", code.String(), "duration", time.Since(start), "error", err)
	} else {
		l.Info(ctx, "request served", "code", code.String(), "duration", time.Since(start))
	}
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if _, public := publicMethods[info.FullMethod]; public {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	principal, err := auth.GetPrincipalFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, principalKey, principal)
	return handler(ctx, req)
}
