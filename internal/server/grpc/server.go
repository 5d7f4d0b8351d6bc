// Package grpc exposes the file service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophdrop/internal/logging"
	pb "github.com/dmitrijs2005/gophdrop/internal/proto"
	"github.com/dmitrijs2005/gophdrop/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedDropServiceServer
	address   string
	files     *services.FileService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, fs *services.FileService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		files:     fs,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterDropServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
