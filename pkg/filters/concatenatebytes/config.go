package concatenatebytes

import (
	"encoding/base64"
	"fmt"

	"gopkg.in/yaml.v3"

	"helios-gg/relay/pkg/filters"
)

// Strategy selects how the payload is attached to packets in one
// direction.
type Strategy int

const (
	// StrategyDoNothing leaves the packet untouched. This is the
	// default.
	StrategyDoNothing Strategy = iota

	// StrategyAppend adds the payload after the packet contents.
	StrategyAppend

	// StrategyPrepend adds the payload before the packet contents.
	StrategyPrepend
)

// strategyTokens maps textual configuration tokens to strategies.
var strategyTokens = map[string]Strategy{
	"DO_NOTHING": StrategyDoNothing,
	"APPEND":     StrategyAppend,
	"PREPEND":    StrategyPrepend,
}

// String returns the textual configuration token for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAppend:
		return "APPEND"
	case StrategyPrepend:
		return "PREPEND"
	default:
		return "DO_NOTHING"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the uppercase
// tokens used in the textual configuration.
func (s *Strategy) UnmarshalYAML(node *yaml.Node) error {
	var token string
	if err := node.Decode(&token); err != nil {
		return err
	}
	strategy, ok := strategyTokens[token]
	if !ok {
		return fmt.Errorf("invalid strategy %q, must be one of APPEND, PREPEND, DO_NOTHING: %w",
			token, filters.ErrInvalidConfigValue)
	}
	*s = strategy
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Strategy) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Base64Bytes is a byte payload carried as standard base64 in textual
// configuration.
type Base64Bytes []byte

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Base64Bytes) UnmarshalYAML(node *yaml.Node) error {
	var encoded string
	if err := node.Decode(&encoded); err != nil {
		return err
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("invalid base64 bytes: %w", err)
	}
	*b = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b Base64Bytes) MarshalYAML() (any, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}

// Config configures the ConcatenateBytes filter. The zero strategy is
// the documented default: both directions doing nothing.
type Config struct {
	// OnRead is the strategy applied to packets heading upstream.
	// Defaults to DO_NOTHING.
	OnRead Strategy `yaml:"on_read"`

	// OnWrite is the strategy applied to packets heading downstream.
	// Defaults to DO_NOTHING.
	OnWrite Strategy `yaml:"on_write"`

	// Bytes is the payload to attach, base64-encoded in textual
	// configuration.
	Bytes Base64Bytes `yaml:"bytes"`
}

// ProtoConfig mirrors the wire-format configuration message. Strategy
// fields use optional wrapper values so absence selects the documented
// default.
type ProtoConfig struct {
	OnRead  *StrategyValue `json:"on_read,omitempty"`
	OnWrite *StrategyValue `json:"on_write,omitempty"`
	Bytes   []byte         `json:"bytes,omitempty"`
}

// StrategyValue wraps a wire-format Strategy discriminant.
type StrategyValue struct {
	Value int32 `json:"value"`
}

// Wire-format enum discriminants.
const (
	protoStrategyDoNothing int32 = 0
	protoStrategyAppend    int32 = 1
	protoStrategyPrepend   int32 = 2
)

func strategyFromProto(value int32, field string) (Strategy, error) {
	switch value {
	case protoStrategyDoNothing:
		return StrategyDoNothing, nil
	case protoStrategyAppend:
		return StrategyAppend, nil
	case protoStrategyPrepend:
		return StrategyPrepend, nil
	default:
		return 0, &filters.ConvertProtoConfigError{Field: field, Value: value}
	}
}

// NewConfigFromProto converts a wire-format message into a Config,
// validating enum discriminants and applying defaults for absent
// fields.
func NewConfigFromProto(proto *ProtoConfig) (*Config, error) {
	var cfg Config
	if proto.OnRead != nil {
		strategy, err := strategyFromProto(proto.OnRead.Value, "on_read")
		if err != nil {
			return nil, err
		}
		cfg.OnRead = strategy
	}
	if proto.OnWrite != nil {
		strategy, err := strategyFromProto(proto.OnWrite.Value, "on_write")
		if err != nil {
			return nil, err
		}
		cfg.OnWrite = strategy
	}
	cfg.Bytes = proto.Bytes
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
