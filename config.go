package scale

import (
	"github.com/stewi1014/scale/encode"
	"go.uber.org/zap"
)

// Config defines configuration for Marshal, Unmarshal, Encoders and Decoders.
// A nil *Config is valid, and uses the defaults.
type Config struct {
	// Source creates the Encodables for encoded types.
	// If nil, a cached DefaultSource is used, and union types must be registered with RegisterEnum().
	// A Source wrapping an encode.CachingSource only sees the top-level types;
	// the cache builds element Encodables itself.
	Source encode.Source

	// AllowNonCanonical accepts compact integers not encoded in their smallest form.
	// By default they fail to decode with encio.ErrNonCanonical.
	AllowNonCanonical bool

	// Logger receives debug logs of failed decodes.
	// If nil, the package logger is used; see SetLogger.
	Logger *zap.Logger
}

func (c *Config) copyAndFill() *Config {
	config := new(Config)
	if c != nil {
		*config = *c
	}

	if config.Source == nil {
		config.Source = defaultCache
	}

	if config.Logger == nil {
		config.Logger = Logger()
	}

	return config
}
