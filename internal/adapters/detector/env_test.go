package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xclean/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "terminal", isTTY: true, expected: detector.ModeTUI},
		{name: "pipe", isTTY: false, expected: detector.ModeLinear},
		{name: "CI=true forces linear", isTTY: true, ci: "true", expected: detector.ModeLinear},
		{name: "CI=1 forces linear", isTTY: true, ci: "1", expected: detector.ModeLinear},
		{name: "CI=false keeps the terminal", isTTY: true, ci: "false", expected: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{name: "auto keeps TUI", autoDetected: detector.ModeTUI, userFlag: "auto", expected: detector.ModeTUI},
		{name: "empty keeps linear", autoDetected: detector.ModeLinear, userFlag: "", expected: detector.ModeLinear},
		{name: "tui overrides", autoDetected: detector.ModeLinear, userFlag: "tui", expected: detector.ModeTUI},
		{name: "linear overrides", autoDetected: detector.ModeTUI, userFlag: "linear", expected: detector.ModeLinear},
		{name: "ci is an alias for linear", autoDetected: detector.ModeTUI, userFlag: "ci", expected: detector.ModeLinear},
		{name: "unknown keeps detection", autoDetected: detector.ModeTUI, userFlag: "fancy", expected: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}
