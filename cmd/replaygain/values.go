//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/replaygain"
	"github.com/farcloser/replaygain/internal/output"
)

var (
	errMissingValues = errors.New("expected at least one value")
	errInvalidValues = errors.New("invalid values")
)

func gainCommand() *cli.Command {
	return &cli.Command{
		Name:  "gain",
		Usage: "Parse ReplayGain gain values such as \"-6.5 dB\" and print their normalized form",
		// Negative gains look like flags, hence the separator.
		ArgsUsage: "[--] <gain>...",
		Flags:     valueFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runValues(cmd, func(text string) map[string]any {
				return output.GainToMap(replaygain.ParseGain2Ratio(text))
			})
		},
	}
}

func peakCommand() *cli.Command {
	return &cli.Command{
		Name:      "peak",
		Usage:     "Parse ReplayGain peak values such as \"0.988553\" and print their normalized form",
		ArgsUsage: "<peak>...",
		Flags:     valueFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runValues(cmd, func(text string) map[string]any {
				return output.PeakToMap(replaygain.ParsePeak(text))
			})
		},
	}
}

func valueFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: console, json, markdown",
			Value:   "console",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail when any value is invalid",
		},
	}
}

func runValues(cmd *cli.Command, convert func(string) map[string]any) error {
	if cmd.NArg() == 0 {
		return errMissingValues
	}

	data := make([]*format.Data, 0, cmd.NArg())
	invalid := 0

	for _, text := range cmd.Args().Slice() {
		meta := convert(text)
		if valid, _ := meta["valid"].(bool); !valid {
			invalid++
		}

		data = append(data, &format.Data{
			Object: text,
			Meta:   meta,
		})
	}

	if err := printAll(data, cmd.String("format")); err != nil {
		return err
	}

	if cmd.Bool("strict") && invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidValues, invalid, len(data))
	}

	return nil
}
