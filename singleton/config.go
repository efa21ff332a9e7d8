package singleton

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/singleton_go/evict"
	"github.com/on-the-ground/singleton_go/shared/logging"
)

// Config is the file form of the wrapper options.
//
//	name: connections
//	log_level: debug
//	serialized_misses: true
//	eviction:
//	  policy: lru
//	  size: 128
type Config struct {
	Name             string           `yaml:"name"`
	LogLevel         logging.LogLevel `yaml:"log_level"`
	SerializedMisses bool             `yaml:"serialized_misses"`
	Eviction         evict.Config     `yaml:"eviction"`
}

// LoadConfig decodes a YAML wrapper config.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode singleton config")
	}
	return cfg, nil
}

// Options turns the config into wrapper options.
// An empty log level keeps the default no-op logger.
func (c Config) Options() ([]Option, error) {
	opts := []Option{WithName(c.Name)}

	if c.LogLevel != "" {
		logger, err := logging.New(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLogger(logger))
	}

	if c.SerializedMisses {
		opts = append(opts, WithSerializedMisses())
	}

	evictor, err := c.Eviction.Build()
	if err != nil {
		return nil, err
	}
	if evictor != nil {
		opts = append(opts, WithEvictor(evictor))
	}
	return opts, nil
}
