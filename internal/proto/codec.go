package proto

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Codec is the gRPC codec for this package's messages. It registers under
// the name "proto" so peers see the standard application/grpc+proto content
// type.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("proto codec: unsupported type %T", v)
	}
	return m.appendWire(nil), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("proto codec: unsupported type %T", v)
	}
	m.reset()
	return unmarshal(data, m)
}

// unmarshal decodes every length-delimited field into m and skips the rest,
// as proto3 parsers do with unknown fields.
func unmarshal(b []byte, m Message) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		m.setField(num, v)
		b = b[n:]
	}
	return nil
}
