// Package proto defines the zkp_auth.Auth gRPC service: its request and
// response messages, their protobuf wire encoding, and the client and
// server bindings.
//
// Messages are encoded with protowire and are wire-compatible with:
//
//	service Auth {
//	  rpc Register(RegisterRequest) returns (RegisterResponse);
//	  rpc CreateAuthenticationChallenge(AuthenticationChallengeRequest) returns (AuthenticationChallengeResponse);
//	  rpc VerifyAuthentication(AuthenticationAnswerRequest) returns (AuthenticationAnswerResponse);
//	}
//
// Big integers travel as minimal big-endian bytes (see zkp.Encode).
package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every request and response type of the service.
type Message interface {
	appendWire(b []byte) []byte
	setField(num protowire.Number, v []byte)
	reset()
}

type RegisterRequest struct {
	User string
	Y1   []byte
	Y2   []byte
}

func (m *RegisterRequest) GetUser() string { return m.User }
func (m *RegisterRequest) GetY1() []byte   { return m.Y1 }
func (m *RegisterRequest) GetY2() []byte   { return m.Y2 }

func (m *RegisterRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.User)
	b = appendBytes(b, 2, m.Y1)
	return appendBytes(b, 3, m.Y2)
}

func (m *RegisterRequest) setField(num protowire.Number, v []byte) {
	switch num {
	case 1:
		m.User = string(v)
	case 2:
		m.Y1 = clone(v)
	case 3:
		m.Y2 = clone(v)
	}
}

func (m *RegisterRequest) reset() { *m = RegisterRequest{} }

type RegisterResponse struct{}

func (m *RegisterResponse) appendWire(b []byte) []byte             { return b }
func (m *RegisterResponse) setField(num protowire.Number, v []byte) {}
func (m *RegisterResponse) reset()                                  {}

type AuthenticationChallengeRequest struct {
	User string
	R1   []byte
	R2   []byte
}

func (m *AuthenticationChallengeRequest) GetUser() string { return m.User }
func (m *AuthenticationChallengeRequest) GetR1() []byte   { return m.R1 }
func (m *AuthenticationChallengeRequest) GetR2() []byte   { return m.R2 }

func (m *AuthenticationChallengeRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.User)
	b = appendBytes(b, 2, m.R1)
	return appendBytes(b, 3, m.R2)
}

func (m *AuthenticationChallengeRequest) setField(num protowire.Number, v []byte) {
	switch num {
	case 1:
		m.User = string(v)
	case 2:
		m.R1 = clone(v)
	case 3:
		m.R2 = clone(v)
	}
}

func (m *AuthenticationChallengeRequest) reset() { *m = AuthenticationChallengeRequest{} }

type AuthenticationChallengeResponse struct {
	AuthId string
	C      []byte
}

func (m *AuthenticationChallengeResponse) GetAuthId() string { return m.AuthId }
func (m *AuthenticationChallengeResponse) GetC() []byte      { return m.C }

func (m *AuthenticationChallengeResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.AuthId)
	return appendBytes(b, 2, m.C)
}

func (m *AuthenticationChallengeResponse) setField(num protowire.Number, v []byte) {
	switch num {
	case 1:
		m.AuthId = string(v)
	case 2:
		m.C = clone(v)
	}
}

func (m *AuthenticationChallengeResponse) reset() { *m = AuthenticationChallengeResponse{} }

type AuthenticationAnswerRequest struct {
	AuthId string
	S      []byte
}

func (m *AuthenticationAnswerRequest) GetAuthId() string { return m.AuthId }
func (m *AuthenticationAnswerRequest) GetS() []byte      { return m.S }

func (m *AuthenticationAnswerRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.AuthId)
	return appendBytes(b, 2, m.S)
}

func (m *AuthenticationAnswerRequest) setField(num protowire.Number, v []byte) {
	switch num {
	case 1:
		m.AuthId = string(v)
	case 2:
		m.S = clone(v)
	}
}

func (m *AuthenticationAnswerRequest) reset() { *m = AuthenticationAnswerRequest{} }

type AuthenticationAnswerResponse struct {
	SessionId string
}

func (m *AuthenticationAnswerResponse) GetSessionId() string { return m.SessionId }

func (m *AuthenticationAnswerResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, m.SessionId)
}

func (m *AuthenticationAnswerResponse) setField(num protowire.Number, v []byte) {
	if num == 1 {
		m.SessionId = string(v)
	}
}

func (m *AuthenticationAnswerResponse) reset() { *m = AuthenticationAnswerResponse{} }

// Proto3 semantics: empty scalars are not emitted.
func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func clone(v []byte) []byte {
	return append([]byte(nil), v...)
}
