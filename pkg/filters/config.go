package filters

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// ConfigSource is the opaque configuration handed to a filter factory.
// The concrete type tells the factory which path delivered it: a YAML
// subtree from the proxy's config file (StaticConfig) or a protobuf
// struct pushed by the management plane (DynamicConfig).
type ConfigSource interface {
	// Decode unmarshals the configuration into out.
	Decode(out any) error
}

// StaticConfig is filter configuration parsed out of the textual proxy
// configuration: an opaque YAML subtree under the chain entry's config
// key.
type StaticConfig struct {
	Node *yaml.Node
}

// Decode unmarshals the YAML subtree into out.
func (s StaticConfig) Decode(out any) error {
	if s.Node == nil {
		return ErrMissingConfig
	}
	return s.Node.Decode(out)
}

// DynamicConfig is filter configuration delivered over the wire as a
// google.protobuf.Struct.
type DynamicConfig struct {
	Message *structpb.Struct
}

// Decode bridges the struct through its canonical JSON form into out.
func (d DynamicConfig) Decode(out any) error {
	if d.Message == nil {
		return ErrMissingConfig
	}
	data, err := d.Message.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// FilterConfig is one entry of the proxy's filter chain configuration:
// the registry key of a filter plus its opaque configuration block.
type FilterConfig struct {
	Name   string     `yaml:"name"`
	Config *yaml.Node `yaml:"config"`
}

// Source returns the entry's configuration as a ConfigSource, or nil
// when the entry carries no config block. An explicit null block counts
// as absent.
func (f FilterConfig) Source() ConfigSource {
	if f.Config == nil || f.Config.IsZero() || f.Config.Tag == "!!null" {
		return nil
	}
	return StaticConfig{Node: f.Config}
}
