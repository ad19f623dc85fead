package tests_test

import (
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/expect"
	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/replaygain/tests/testutils"
)

func TestGain(t *testing.T) {
	testCase := testutils.Setup()

	testCase.SubTests = []*test.Case{
		{
			Description: "gain without arguments fails",
			Command:     test.Command("gain"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "explicit plus sign is normalized away",
			Command:     test.Command("gain", "+3.00 dB"),
			Expected: test.Expects(expect.ExitCodeSuccess, nil, expect.All(
				expectValid("gain", "3 dB"),
				expectContains("normalized_ratio"),
			)),
		},
		{
			Description: "negative gain with upper case unit",
			Command:     test.Command("gain", "--", "-6 DB"),
			Expected:    test.Expects(expect.ExitCodeSuccess, nil, expectValid("gain", "-6 dB")),
		},
		{
			Description: "double sign is reported invalid",
			Command:     test.Command("gain", "++3 dB"),
			Expected: test.Expects(expect.ExitCodeSuccess, nil, expect.All(
				expectContains("valid: false"),
				expectNotContains("valid: true"),
			)),
		},
		{
			Description: "strict mode fails on invalid gain",
			Command:     test.Command("gain", "--strict", "--", "-6 dB", "loud"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
		{
			Description: "strict mode passes on valid gains",
			Command:     test.Command("gain", "--strict", "--", "-6 dB", "+1.5 dB"),
			Expected:    test.Expects(expect.ExitCodeSuccess, nil, expectValid("gain", "1.5 dB")),
		},
		{
			Description: "json output",
			Command:     test.Command("gain", "--format", "json", "0 dB"),
			Expected:    test.Expects(expect.ExitCodeSuccess, nil, expectContains("normalized_ratio")),
		},
		{
			Description: "unknown output format fails",
			Command:     test.Command("gain", "--format", "yaml-ish", "0 dB"),
			Expected:    test.Expects(expect.ExitCodeGenericFail, nil, nil),
		},
	}

	testCase.Run(t)
}
