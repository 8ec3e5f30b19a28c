package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, logrus.InfoLevel)

	logger.Debug("hidden")
	logger.WithFields(Fields{"locale": "fr"}).Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "locale=fr") {
		t.Errorf("Output = %q, expected info message with locale field", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
		wantErr  bool
	}{
		{"debug", logrus.DebugLevel, false},
		{"WARN", logrus.WarnLevel, false},
		{"error", logrus.ErrorLevel, false},
		{"loud", logrus.WarnLevel, true},
	}

	for _, tc := range tests {
		level, err := ParseLevel(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if level != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.input, level, tc.expected)
		}
	}
}
