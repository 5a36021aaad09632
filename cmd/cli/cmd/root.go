// Package cmd provides the CLI commands for bwcalc.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"bwcalc/core/ui"
	"bwcalc/internal/config"
	"bwcalc/internal/errors"
	"bwcalc/internal/logging"
)

const appName = "bwcalc"

// Calculator modes, matched case-insensitively.
const (
	modeTime  = "time"
	modeSpeed = "speed"
	modeAbout = "about"
)

type options struct {
	cfgFile string
	verbose bool
	format  string

	helpRequested bool
	jsonOutput    bool
}

// NewRootCmd builds the bwcalc command reading answers from in and writing
// prompts and results to out.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd, _ := newRootCmd(in, out, errOut)
	return rootCmd
}

func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, *options) {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   appName + " <time|speed|about>",
		Short: "Calculate file transfer times and required bandwidth",
		Long: `bwcalc is an interactive bandwidth calculator.

In time mode it asks for a file size and a connection speed and prints how
long the transfer takes. In speed mode it asks for a file size and a
duration and prints the bandwidth needed to finish in that time.

File sizes use binary units (KiB, MiB, ...); speeds use decimal units
(Kbps, Mbps, ...).`,
		Args:              checkArguments,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, args[0])
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Usage(err.Error())
	})
	// Help is not a mode: the description goes to errOut and ExecuteWith
	// turns the request into a usage error.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		opts.helpRequested = true
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\nFlags:\n%s\n", cmd.Long, cmd.Flags().FlagUsages())
	})

	bindFlags(rootCmd.PersistentFlags(), opts)
	return rootCmd, opts
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.cfgFile, "config", "", "config file (.hcl, .json, .yaml or .yml)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVarP(&opts.format, "format", "f", "", "result format (text, json)")
}

// Execute runs the CLI on the process's standard streams
func Execute() error {
	return ExecuteWith(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
}

// ExecuteWith runs the CLI with explicit streams and arguments. Failures are
// reported on out before being returned.
func ExecuteWith(in io.Reader, out, errOut io.Writer, args []string) error {
	rootCmd, opts := newRootCmd(in, out, errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil && opts.helpRequested {
		err = errors.Usage("")
	}
	if err != nil {
		// stdout stays a single JSON document; usage text always goes there.
		diag := out
		if opts.jsonOutput && !errors.IsType(err, errors.TypeUsage) {
			diag = errOut
		}
		report(diag, err)
	}
	logging.Sync()
	return err
}

func checkArguments(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.Usage("")
	case len(args) != 1:
		return errors.Usage("Incorrect number of arguments.")
	}
	if _, ok := lookupMode(args[0]); !ok {
		return errors.Newf(errors.TypeUsage, "Invalid argument '%s'.", args[0])
	}
	return nil
}

func lookupMode(arg string) (string, bool) {
	switch m := strings.ToLower(arg); m {
	case modeTime, modeSpeed, modeAbout:
		return m, true
	default:
		return "", false
	}
}

func (o *options) initConfig() error {
	cfg := config.Default()
	if o.cfgFile != "" {
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)
	o.jsonOutput = cfg.Output.Format == config.FormatJSON

	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Config("cannot initialize logging", err)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Bandwidth Calculator usage:\n")
	fmt.Fprintf(w, "Calculate Time:  %s time\n", appName)
	fmt.Fprintf(w, "Calculate Speed: %s speed\n", appName)
	fmt.Fprintf(w, "Show Info:       %s about\n", appName)
}

func report(out io.Writer, err error) {
	e, ok := errors.As(err)
	if !ok {
		ui.NewWriter(out, false).Error("%v", err)
		return
	}

	logging.Debug("run failed", zap.String("type", string(e.Type)), zap.Error(err))

	switch e.Type {
	case errors.TypeUsage:
		if e.Message != "" {
			fmt.Fprintf(out, "Error: %s\n\n", e.Message)
		}
		printUsage(out)
	case errors.TypeDomain:
		// Already explained by the prompt that detected it.
	case errors.TypeConfig:
		if e.Cause != nil {
			ui.NewWriter(out, false).Error("%s: %v", e.Message, e.Cause)
			return
		}
		ui.NewWriter(out, false).Error("%s", e.Message)
	default:
		ui.NewWriter(out, false).Error("%s", e.Message)
	}
}
