package common

// RequestIDHeaderName is the gRPC metadata key carrying a caller-supplied
// request id. The server generates one when it is absent.
const RequestIDHeaderName = "x-request-id"
