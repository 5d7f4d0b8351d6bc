// Package client talks to the GophDrop server.
//
// The Client interface is the transport-agnostic contract used by the CLI;
// GRPCClient implements it over gRPC, attaching the access token to every
// call through a unary interceptor and mapping status codes back to the
// sentinel errors of internal/common and this package, so callers can match
// them with errors.Is.
//
// The client moves opaque bytes. Encrypting contents and wrapping keys is the
// caller's business.
package client
