// Package common contains shared constants and sentinel errors used across
// GophDrop components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// RequestIDHeaderName is the gRPC metadata key a client may use to pass
// its own request id; the server generates one when it is absent.
const RequestIDHeaderName = "x-request-id"
