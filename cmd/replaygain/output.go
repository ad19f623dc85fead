//nolint:wrapcheck
package main

import (
	"os"

	"github.com/farcloser/primordium/format"
)

func printAll(data []*format.Data, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	return formatter.PrintAll(data, os.Stdout)
}
