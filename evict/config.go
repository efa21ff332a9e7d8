package evict

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/singleton_go/pure"
)

// Policy names an eviction policy in configuration.
type Policy string

const (
	PolicyNone         Policy = "none"
	PolicyLRU          Policy = "lru"
	PolicyTTL          Policy = "ttl"
	PolicyGenerational Policy = "generational"
)

var (
	ErrUnknownPolicy = errors.New("unknown eviction policy")
	ErrInvalidConfig = errors.New("invalid eviction config")
)

// Config selects and sizes an eviction policy.
//
//	policy: ttl
//	ttl: 1d12h
type Config struct {
	Policy Policy   `yaml:"policy"`
	Size   int      `yaml:"size,omitempty"`
	TTL    Duration `yaml:"ttl,omitempty"`
}

// Duration accepts Go durations plus day and week units ("1d", "2w3d").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return errors.Wrap(err, "duration must be a string")
	}
	parsed, err := ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return str2duration.String(time.Duration(d)), nil
}

func ParseDuration(raw string) (time.Duration, error) {
	parsed, err := str2duration.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "parse duration %q", raw)
	}
	return parsed, nil
}

// ParseConfig decodes a YAML eviction config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode eviction config")
	}
	return cfg, nil
}

// Build returns the configured evictor, or nil for PolicyNone and an empty policy.
func (c Config) Build() (pure.Evictor, error) {
	switch Policy(strings.ToLower(string(c.Policy))) {
	case "", PolicyNone:
		return nil, nil
	case PolicyLRU:
		if c.Size <= 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "lru size %d", c.Size)
		}
		ev, err := LRU(c.Size)
		if err != nil {
			return nil, err
		}
		return ev, nil
	case PolicyTTL:
		if c.TTL <= 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "ttl %s", time.Duration(c.TTL))
		}
		return TTL(time.Duration(c.TTL)), nil
	case PolicyGenerational:
		if c.Size <= 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "generation size %d", c.Size)
		}
		return Generational(uint32(c.Size)), nil
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "%q", c.Policy)
	}
}
