package compress

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"helios-gg/relay/pkg/filters"
)

// Action selects what the filter does to packets in one direction.
type Action int

const (
	// ActionDoNothing leaves the packet untouched. This is the default.
	ActionDoNothing Action = iota

	// ActionCompress replaces the packet contents with their
	// compressed form.
	ActionCompress

	// ActionDecompress replaces the packet contents with their
	// decompressed form.
	ActionDecompress
)

// actionTokens maps textual configuration tokens to actions.
var actionTokens = map[string]Action{
	"DO_NOTHING": ActionDoNothing,
	"COMPRESS":   ActionCompress,
	"DECOMPRESS": ActionDecompress,
}

// String returns the textual configuration token for the action.
func (a Action) String() string {
	switch a {
	case ActionCompress:
		return "COMPRESS"
	case ActionDecompress:
		return "DECOMPRESS"
	default:
		return "DO_NOTHING"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the uppercase
// tokens used in the textual configuration.
func (a *Action) UnmarshalYAML(node *yaml.Node) error {
	var token string
	if err := node.Decode(&token); err != nil {
		return err
	}
	action, ok := actionTokens[token]
	if !ok {
		return fmt.Errorf("invalid action %q, must be one of COMPRESS, DECOMPRESS, DO_NOTHING: %w",
			token, filters.ErrInvalidConfigValue)
	}
	*a = action
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Action) MarshalYAML() (any, error) {
	return a.String(), nil
}

// Mode selects the compression codec.
type Mode int

const (
	// ModeSnappy is the Snappy framing format: high speed, reasonable
	// compression. The default and currently the only codec.
	ModeSnappy Mode = iota
)

// String returns the textual configuration token for the mode.
func (m Mode) String() string {
	return "SNAPPY"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var token string
	if err := node.Decode(&token); err != nil {
		return err
	}
	if token != "SNAPPY" {
		return fmt.Errorf("invalid mode %q, must be SNAPPY: %w", token, filters.ErrInvalidConfigValue)
	}
	*m = ModeSnappy
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// compressor returns the codec implementing the mode.
func (m Mode) compressor() Compressor {
	return Snappy{}
}

// Config configures the Compress filter. The zero value is the
// documented default: Snappy mode with both directions doing nothing.
type Config struct {
	// Mode is the compression codec. Defaults to SNAPPY.
	Mode Mode `yaml:"mode"`

	// OnRead is the action applied to packets heading upstream.
	// Defaults to DO_NOTHING.
	OnRead Action `yaml:"on_read"`

	// OnWrite is the action applied to packets heading downstream.
	// Defaults to DO_NOTHING.
	OnWrite Action `yaml:"on_write"`
}

// ProtoConfig mirrors the wire-format configuration message. Enum
// fields use optional wrapper values so absence selects the documented
// default.
type ProtoConfig struct {
	Mode    *ModeValue   `json:"mode,omitempty"`
	OnRead  *ActionValue `json:"on_read,omitempty"`
	OnWrite *ActionValue `json:"on_write,omitempty"`
}

// ModeValue wraps a wire-format Mode discriminant.
type ModeValue struct {
	Value int32 `json:"value"`
}

// ActionValue wraps a wire-format Action discriminant.
type ActionValue struct {
	Value int32 `json:"value"`
}

// Wire-format enum discriminants.
const (
	protoActionDoNothing  int32 = 0
	protoActionCompress   int32 = 1
	protoActionDecompress int32 = 2

	protoModeSnappy int32 = 0
)

func actionFromProto(value int32, field string) (Action, error) {
	switch value {
	case protoActionDoNothing:
		return ActionDoNothing, nil
	case protoActionCompress:
		return ActionCompress, nil
	case protoActionDecompress:
		return ActionDecompress, nil
	default:
		return 0, &filters.ConvertProtoConfigError{Field: field, Value: value}
	}
}

func modeFromProto(value int32, field string) (Mode, error) {
	switch value {
	case protoModeSnappy:
		return ModeSnappy, nil
	default:
		return 0, &filters.ConvertProtoConfigError{Field: field, Value: value}
	}
}

// NewConfigFromProto converts a wire-format message into a Config,
// validating enum discriminants and applying defaults for absent
// fields.
func NewConfigFromProto(proto *ProtoConfig) (*Config, error) {
	var cfg Config
	if proto.Mode != nil {
		mode, err := modeFromProto(proto.Mode.Value, "mode")
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if proto.OnRead != nil {
		action, err := actionFromProto(proto.OnRead.Value, "on_read")
		if err != nil {
			return nil, err
		}
		cfg.OnRead = action
	}
	if proto.OnWrite != nil {
		action, err := actionFromProto(proto.OnWrite.Value, "on_write")
		if err != nil {
			return nil, err
		}
		cfg.OnWrite = action
	}
	return &cfg, nil
}

// NewConfig converts an opaque configuration source into a typed
// Config. Dynamic sources are decoded through the wire-format message;
// anything else is treated as the textual form.
func NewConfig(source filters.ConfigSource) (*Config, error) {
	if source == nil {
		return nil, filters.ErrMissingConfig
	}
	switch source := source.(type) {
	case filters.DynamicConfig:
		var proto ProtoConfig
		if err := source.Decode(&proto); err != nil {
			return nil, err
		}
		return NewConfigFromProto(&proto)
	default:
		var cfg Config
		if err := source.Decode(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
}
