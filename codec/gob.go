package codec

import (
	"bytes"
	"encoding/gob"
)

// GobCodec encodes values with encoding/gob. It is the default codec:
// gob honors GobEncoder/GobDecoder, so values with custom state
// round-trip without the codec knowing their layout.
type GobCodec struct{}

func NewGobCodec() *GobCodec {
	return &GobCodec{}
}

func (*GobCodec) Name() string {
	return "gob"
}

func (*GobCodec) Extensions() []string {
	return []string{".gob", ".bin"}
}

func (*GobCodec) Marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (*GobCodec) Unmarshal(data []byte, out any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(out)
}
