// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pion/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    logging.LogLevel
		wantErr bool
	}{
		{in: "debug", want: logging.LogLevelDebug},
		{in: " WARN ", want: logging.LogLevelWarn},
		{in: "warning", want: logging.LogLevelWarn},
		{in: "trace", want: logging.LogLevelTrace},
		{in: "off", want: logging.LogLevelDisabled},
		{in: "", want: logging.LogLevelInfo},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Not parallel: mutates the shared level and output.
func TestSetLevelReachesExistingLoggers(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(logging.LogLevelWarn)
	t.Cleanup(func() {
		SetLevel(logging.LogLevelWarn)
	})

	log := NewLogger("lofipcm/test")
	log.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug message logged at warn level: %q", buf.String())
	}

	SetLevel(logging.LogLevelDebug)
	log.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing after SetLevel(debug): %q", buf.String())
	}
}
