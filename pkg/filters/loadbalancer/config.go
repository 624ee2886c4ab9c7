package loadbalancer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"helios-gg/relay/pkg/filters"
)

// Policy selects how an endpoint is picked from the packet's view.
type Policy int

const (
	// PolicyRoundRobin cycles through the endpoints in view. This is
	// the default.
	PolicyRoundRobin Policy = iota

	// PolicyRandom picks an endpoint in view at random.
	PolicyRandom
)

// policyTokens maps textual configuration tokens to policies.
var policyTokens = map[string]Policy{
	"ROUND_ROBIN": PolicyRoundRobin,
	"RANDOM":      PolicyRandom,
}

// String returns the textual configuration token for the policy.
func (p Policy) String() string {
	switch p {
	case PolicyRandom:
		return "RANDOM"
	default:
		return "ROUND_ROBIN"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting the uppercase
// tokens used in the textual configuration.
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	var token string
	if err := node.Decode(&token); err != nil {
		return err
	}
	policy, ok := policyTokens[token]
	if !ok {
		return fmt.Errorf("invalid policy %q, must be one of ROUND_ROBIN, RANDOM: %w",
			token, filters.ErrInvalidConfigValue)
	}
	*p = policy
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Policy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Config configures the LoadBalancer filter. The zero value is the
// documented default: round-robin.
type Config struct {
	// Policy is the endpoint selection policy. Defaults to
	// ROUND_ROBIN.
	Policy Policy `yaml:"policy"`
}

// ProtoConfig mirrors the wire-format configuration message.
type ProtoConfig struct {
	Policy *PolicyValue `json:"policy,omitempty"`
}

// PolicyValue wraps a wire-format Policy discriminant.
type PolicyValue struct {
	Value int32 `json:"value"`
}

// Wire-format enum discriminants.
const (
	protoPolicyRoundRobin int32 = 0
	protoPolicyRandom     int32 = 1
)

func policyFromProto(value int32, field string) (Policy, error) {
	switch value {
	case protoPolicyRoundRobin:
		return PolicyRoundRobin, nil
	case protoPolicyRandom:
		return PolicyRandom, nil
	default:
		return 0, &filters.ConvertProtoConfigError{Field: field, Value: value}
	}
}

// NewConfigFromProto converts a wire-format message into a Config,
// validating the policy discriminant and applying the default for an
// absent field.
func NewConfigFromProto(proto *ProtoConfig) (*Config, error) {
	var cfg Config
	if proto.Policy != nil {
		policy, err := policyFromProto(proto.Policy.Value, "policy")
		if err != nil {
			return nil, err
		}
		cfg.Policy = policy
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
