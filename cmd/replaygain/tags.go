//nolint:wrapcheck
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/farcloser/primordium/fault"
	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/farcloser/replaygain"
	"github.com/farcloser/replaygain/internal/output"
)

// Lyrics and embedded pictures can make single tag lines far longer than the scanner default.
const (
	initialLineBuffer = 64 << 10
	maxLineSize       = 16 << 20
)

var (
	errTagsArgs     = errors.New("expected exactly one argument: file path or \"-\" for stdin")
	errRejectedTags = errors.New("rejected tags")
)

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "Normalize the ReplayGain entries of a KEY=VALUE tag listing (e.g. metaflac --export-tags-to=-)",
		ArgsUsage: "<file | ->",
		Flags:     valueFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errTagsArgs, cmd.NArg())
			}

			source := cmd.Args().First()

			raw, err := readTagSource(source)
			if err != nil {
				return err
			}

			tags, rejected := replaygain.ParseTags(raw)

			data := &format.Data{
				Object: source,
				Meta:   output.TagsToMap(tags, rejected),
			}

			if err = printAll([]*format.Data{data}, cmd.String("format")); err != nil {
				return err
			}

			if cmd.Bool("strict") && len(rejected) > 0 {
				return fmt.Errorf("%w: %s", errRejectedTags, strings.Join(rejected, ", "))
			}

			return nil
		},
	}
}

func readTagSource(source string) (map[string]string, error) {
	if source == "-" {
		return readTagLines(os.Stdin)
	}

	file, err := os.Open(source) //nolint:gosec // CLI tool opens user-specified tag listings
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", source, err)
	}
	defer file.Close()

	return readTagLines(file)
}

// readTagLines reads KEY=VALUE lines. Blank lines, comments and lines without '=' are skipped.
// When a key repeats, the last value wins.
func readTagLines(r io.Reader) (map[string]string, error) {
	raw := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		raw[strings.TrimSpace(key)] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	return raw, nil
}
