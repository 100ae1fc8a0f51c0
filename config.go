package jsconsole

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
)

// Config is the loose-map configuration surface for embedders that
// carry map-shaped settings. Decoding is weakly typed, so string
// booleans ("true") and numeric strings are accepted.
type Config struct {
	ProxyWrapper   bool     `mapstructure:"proxy_wrapper"`
	Flush          bool     `mapstructure:"flush"`
	Stdout         bool     `mapstructure:"stdout"`
	Stderr         bool     `mapstructure:"stderr"`
	Methods        []string `mapstructure:"methods"`
	ScriptCallback string   `mapstructure:"script_callback"`
}

// ConfigFromMap decodes a loose map into a Config.
func ConfigFromMap(src map[string]any) (Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryInternal, "failed to build config decoder").
			WithTextCode("CONSOLE_CONFIG_DECODER")
	}

	if err := decoder.Decode(src); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryBadInput, "failed to decode console config").
			WithTextCode("CONSOLE_CONFIG_DECODE").
			WithMetadata(map[string]any{
				"operation": "decode_config",
				"keys":      len(src),
			})
	}

	return cfg, nil
}

// Flags folds the boolean fields into a flag word.
func (c Config) Flags() Flags {
	var flags Flags
	if c.ProxyWrapper {
		flags |= FlagProxyWrapper
	}
	if c.Flush {
		flags |= FlagFlush
	}
	if c.Stdout {
		flags |= FlagToStdout
	}
	if c.Stderr {
		flags |= FlagToStderr
	}
	return flags
}

// Options returns the bridge options implied by the non-flag fields.
func (c Config) Options() []Option {
	var opts []Option
	if len(c.Methods) > 0 {
		opts = append(opts, WithMethods(c.Methods...))
	}
	if c.ScriptCallback != "" {
		opts = append(opts, WithScriptCallback(c.ScriptCallback))
	}
	return opts
}

// NewFromConfig builds a bridge from a decoded config. Extra options
// are applied after the config-derived ones and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) *Bridge {
	return New(cfg.Flags(), append(cfg.Options(), opts...)...)
}
