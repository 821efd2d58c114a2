// Package client is the client-side transport for the zkpauth server.
//
// The Client interface exposes the three protocol steps (Register,
// CreateChallenge, VerifyAnswer) in terms of zkp values. GRPCClient
// implements it over gRPC: it encodes big integers with zkp.Encode, tags
// every call with an x-request-id header, applies a per-call timeout and
// maps gRPC status codes to the sentinel errors below so callers can use
// errors.Is.
package client
