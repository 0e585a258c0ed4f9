package codec

import (
	"gopkg.in/yaml.v3"
)

// yamlCodec serializes documents as YAML
type yamlCodec struct{}

// YAML returns the YAML codec, the default backend for config documents
func YAML() Codec {
	return yamlCodec{}
}

func (yamlCodec) Ext() string {
	return "yml"
}

func (yamlCodec) Marshal(doc map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(doc)
}

func (yamlCodec) Unmarshal(data []byte, doc *map[string]interface{}) error {
	return yaml.Unmarshal(data, doc)
}
