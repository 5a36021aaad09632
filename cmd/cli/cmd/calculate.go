// Package cmd - time and speed modes
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bwcalc/core/output"
	"bwcalc/core/prompt"
	"bwcalc/core/transfer"
	"bwcalc/core/ui"
	"bwcalc/core/units"
	"bwcalc/internal/config"
	"bwcalc/internal/logging"
)

func runMode(cmd *cobra.Command, arg string) error {
	mode, _ := lookupMode(arg)
	out := cmd.OutOrStdout()

	if mode == modeAbout {
		printAbout(out)
		return nil
	}

	cfg := config.Get()
	formatter, err := output.New(output.Format(cfg.Output.Format))
	if err != nil {
		return err
	}

	// Keep stdout a clean JSON document when JSON output is requested.
	promptOut := out
	if formatter.Format() == output.FormatJSON {
		promptOut = cmd.ErrOrStderr()
	}
	w := ui.NewWriter(promptOut, cfg.Output.Color)
	w.Println("Calculator mode: %s", arg)
	w.Blank()

	p := prompt.New(cmd.InOrStdin(), w)
	logging.Debug("calculator started", zap.String("mode", mode), zap.String("format", string(formatter.Format())))

	if mode == modeTime {
		return runTime(p, formatter, out)
	}
	return runSpeed(p, formatter, out)
}

func readSize(p *prompt.Prompter) (units.Size, float64, error) {
	size, err := p.Size()
	if err != nil {
		return units.Size{}, 0, err
	}
	bits, err := units.SizeBits(size)
	if err != nil {
		return units.Size{}, 0, err
	}
	logging.Debug("size normalized",
		zap.Float64("magnitude", size.Magnitude),
		zap.String("unit", size.Unit.Label()),
		zap.Float64("bits", bits))
	return size, bits, nil
}

func runTime(p *prompt.Prompter, formatter output.Formatter, out io.Writer) error {
	size, bits, err := readSize(p)
	if err != nil {
		return err
	}

	speed, err := p.Speed()
	if err != nil {
		return err
	}
	bps, err := units.SpeedBps(speed)
	if err != nil {
		return err
	}
	logging.Debug("speed normalized",
		zap.Float64("magnitude", speed.Magnitude),
		zap.String("unit", speed.Unit.Label()),
		zap.Float64("bps", bps))

	seconds := transfer.Seconds(bits, bps)
	logging.Debug("transfer time calculated", zap.Float64("seconds", seconds))

	return formatter.RenderTime(out, output.TimeResult{
		Size:    size,
		Speed:   speed,
		Seconds: seconds,
	})
}

func runSpeed(p *prompt.Prompter, formatter output.Formatter, out io.Writer) error {
	size, bits, err := readSize(p)
	if err != nil {
		return err
	}

	entered, err := p.Duration()
	if err != nil {
		return err
	}
	seconds := entered.TotalSeconds()

	bps := transfer.BitsPerSecond(bits, seconds)
	logging.Debug("bandwidth calculated", zap.Float64("seconds", seconds), zap.Float64("bps", bps))

	return formatter.RenderSpeed(out, output.SpeedResult{
		Size:          size,
		Duration:      entered,
		BitsPerSecond: bps,
	})
}
