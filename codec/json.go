package codec

import "github.com/goccy/go-json"

// JSONCodec encodes values as indented JSON for payloads that should stay
// readable on disk. Custom state is supported through the standard
// json.Marshaler/json.Unmarshaler interfaces.
type JSONCodec struct{}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (*JSONCodec) Name() string {
	return "json"
}

func (*JSONCodec) Extensions() []string {
	return []string{".json"}
}

func (*JSONCodec) Marshal(value any) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}

func (*JSONCodec) Unmarshal(data []byte, out any) error {
	return json.Unmarshal(data, out)
}
