package main

import (
	goflag "flag"

	"github.com/clarete/zerocopy"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// runModes are the modes the command line accepts.  Besides the two
// library modes, `probe` runs a check before paying for an emit.
var runModes = map[string]struct{}{"check": {}, "emit": {}, "probe": {}}

// loadConfig copies what viper collected from defaults, the config
// file, environment variables and flags into a library Config
func loadConfig(conf *viper.Viper) (*zerocopy.Config, error) {
	conf.SetDefault("mode", zerocopy.Emit.String())
	conf.SetDefault("detailed-errors", true)

	mode := conf.GetString("mode")
	if _, ok := runModes[mode]; !ok {
		return nil, errors.Errorf("unknown mode `%s`", mode)
	}

	cfg := zerocopy.NewConfig()
	cfg.SetString("parse.mode", mode)
	cfg.SetBool("parse.require_end", conf.GetBool("require-end"))
	cfg.SetBool("errors.detailed", conf.GetBool("detailed-errors"))
	cfg.SetBool("trace.enabled", conf.GetBool("trace"))

	if cfg.GetBool("trace.enabled") {
		// tracing logs at verbosity 2, make sure it shows up
		if err := goflag.Set("v", "2"); err != nil {
			return nil, errors.Wrapf(err, "enabling trace")
		}
		if err := goflag.Set("logtostderr", "true"); err != nil {
			return nil, errors.Wrapf(err, "enabling trace")
		}
	}
	return cfg, nil
}
