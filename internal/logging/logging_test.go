package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		quiet     bool
		debug     bool
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"default", false, false, false, true, true},
		{"debug", false, true, true, true, true},
		{"quiet", true, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter(&buf, tt.quiet, tt.debug)

			l.Debug("debug %d", 1)
			l.Info("info %d", 2)
			l.Warn("warn %d", 3)
			l.Error("error %d", 4)

			out := buf.String()
			if got := strings.Contains(out, "debug 1"); got != tt.wantDebug {
				t.Errorf("debug shown = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "info 2"); got != tt.wantInfo {
				t.Errorf("info shown = %v, want %v\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "warn 3"); got != tt.wantWarn {
				t.Errorf("warn shown = %v, want %v\n%s", got, tt.wantWarn, out)
			}
			if !strings.Contains(out, "error 4") {
				t.Errorf("error must always be shown\n%s", out)
			}
		})
	}
}

func TestLoggerSuccess(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, false, false).Success("resolved %s", "C:\\x.mq5")
	if !strings.Contains(buf.String(), "resolved C:\\x.mq5") {
		t.Errorf("Success() output = %q", buf.String())
	}

	buf.Reset()
	NewWithWriter(&buf, true, false).Success("hidden")
	if buf.Len() != 0 {
		t.Errorf("Success() in quiet mode wrote %q", buf.String())
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, false, true).With("cmd", "whoami")
	l.Debug("Running")

	out := buf.String()
	if !strings.Contains(out, "Running") || !strings.Contains(out, "whoami") {
		t.Errorf("With() output = %q", out)
	}
}
