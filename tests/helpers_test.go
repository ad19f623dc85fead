package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectNotContains returns a comparator verifying the output does not contain a substring.
func expectNotContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectValid returns a comparator verifying the output reports a valid value normalized to the given text.
func expectValid(normalizedKey, normalized string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		validLine := "valid: true"
		normalizedLine := fmt.Sprintf("%s: %s", normalizedKey, normalized)

		if strings.Contains(stdout, validLine) && strings.Contains(stdout, normalizedLine) {
			return
		}

		testing.Log(fmt.Sprintf("expected valid value %q not found in output:\n%s", normalized, stdout))
		testing.Fail()
	}
}
