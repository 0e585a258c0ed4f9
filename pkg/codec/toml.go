package codec

import (
	"github.com/pelletier/go-toml/v2"
)

// tomlCodec serializes documents as TOML
type tomlCodec struct{}

// TOML returns the TOML codec, interchangeable with YAML at the store
// boundary
func TOML() Codec {
	return tomlCodec{}
}

func (tomlCodec) Ext() string {
	return "toml"
}

func (tomlCodec) Marshal(doc map[string]interface{}) ([]byte, error) {
	return toml.Marshal(doc)
}

func (tomlCodec) Unmarshal(data []byte, doc *map[string]interface{}) error {
	return toml.Unmarshal(data, doc)
}
