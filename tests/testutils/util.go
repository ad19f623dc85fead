// Package testutils runs the replaygain CLI built into bin/ for the gain, peak and tags
// end-to-end tests.
package testutils

import (
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"
)

// Setup returns the root test case, with bin/replaygain resolved from the repository root.
// Subtests pass only the subcommand and its arguments.
func Setup() *test.Case {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	binaryPath := filepath.Join(projectRoot, "bin", "replaygain")

	return agar.Setup(binaryPath)
}
