package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	conf := viper.New()
	conf.SetEnvPrefix("ZEROCOPY")
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	root := &cobra.Command{
		Use:           "zerocopy",
		Short:         "Run ordered choices of primitive parsers over text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// flags of the command being executed, including the
			// ones inherited from here
			if err := conf.BindPFlags(cmd.Flags()); err != nil {
				return errors.Wrapf(err, "binding flags")
			}
			path := conf.GetString("config")
			if path == "" {
				return nil
			}
			conf.SetConfigFile(path)
			return errors.Wrapf(conf.ReadInConfig(), "reading config %s", path)
		},
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(newMatchCmd(conf))
	root.AddCommand(newConfigCmd(conf))
	return root
}

// addSettingsFlags declares the flags that map into the library's
// configuration
func addSettingsFlags(fs *flag.FlagSet) {
	fs.String("mode", "emit", "Execution mode: check, emit or probe")
	fs.Bool("require-end", false, "Fail unless the whole input is consumed")
	fs.Bool("detailed-errors", true, "Report position and expectations on failures")
	fs.Bool("trace", false, "Log every run of the parser (same as -v=2)")
}

func newConfigCmd(conf *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(conf)
			if err != nil {
				return err
			}
			cfg.Debug(cmd.OutOrStdout())
			return nil
		},
	}
	addSettingsFlags(cmd.Flags())
	return cmd
}
