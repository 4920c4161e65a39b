package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/clarete/zerocopy"
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMatchCmd(conf *viper.Viper) *cobra.Command {
	var (
		inputPath string
		text      string
	)

	cmd := &cobra.Command{
		Use:   "match [flags] ALTERNATIVE...",
		Short: "Match an ordered choice of primitives against the start of the input",
		Long: `Builds an ordered choice out of the alternatives, in the order they are
given, and runs it against the beginning of the input.

Alternatives:
  just:TEXT    the exact text
  one:CHARS    one character among CHARS
  none:CHARS   one character not among CHARS
  any          any character
  end          the end of the input
  empty        nothing, always matches`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(conf)
			if err != nil {
				return err
			}
			p, err := buildChoice(args)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, inputPath, text)
			if err != nil {
				return err
			}

			mode := cfg.GetString("parse.mode")
			glog.V(1).Infof("matching %d alternatives against %s in %s mode",
				p.Len(), humanize.Bytes(uint64(len(data))), mode)

			in := zerocopy.NewStringInput(data)
			var (
				out    string
				offset int
			)
			switch mode {
			case "probe":
				out, offset, err = zerocopy.Probe[rune, string](p, in, cfg)
			case "check":
				offset, err = zerocopy.Validate[rune, string](p, in, cfg)
			default:
				out, offset, err = zerocopy.Parse[rune, string](p, in, cfg)
			}
			if err != nil {
				return errors.Wrapf(err, "no match")
			}
			fmt.Fprintln(cmd.OutOrStdout(), report(mode, out, offset, in.Len()))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the input file, `-` reads from stdin")
	cmd.Flags().StringVar(&text, "text", "", "Use the given text as input")
	addSettingsFlags(cmd.Flags())
	return cmd
}

// readInput picks the input out of the --text and --input flags
func readInput(cmd *cobra.Command, path, text string) (string, error) {
	switch {
	case path != "" && text != "":
		return "", errors.New("--input and --text can't be used together")
	case text != "":
		return text, nil
	case path == "":
		return "", errors.New("no input informed, use --input or --text")
	case path == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), errors.Wrapf(err, "reading stdin")
	default:
		data, err := os.ReadFile(path)
		return string(data), errors.Wrapf(err, "reading %s", path)
	}
}

// report describes a successful match.  Under check nothing was
// built, so there's no output to show.
func report(mode, out string, offset, size int) string {
	consumed := fmt.Sprintf("%s of %s", humanize.Bytes(uint64(offset)), humanize.Bytes(uint64(size)))
	if mode == "check" {
		return fmt.Sprintf("matched (%s)", consumed)
	}
	return fmt.Sprintf("matched %s (%s)", strconv.Quote(out), consumed)
}
