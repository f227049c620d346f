package logging

import (
	"bytes"
	"testing"

	golog "github.com/tochemey/goakt/v3/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    golog.Level
		wantErr bool
	}{
		{"debug", golog.DebugLevel, false},
		{"info", golog.InfoLevel, false},
		{"", golog.InfoLevel, false},
		{" WARN ", golog.WarningLevel, false},
		{"warning", golog.WarningLevel, false},
		{"error", golog.ErrorLevel, false},
		{"loud", golog.InvalidLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("flock ready")
	if !bytes.Contains(buf.Bytes(), []byte("flock ready")) {
		t.Errorf("expected the message in the output, got %q", buf.String())
	}

	if _, err := New("verbose", &buf); err == nil {
		t.Error("New() should reject an unknown level")
	}
}
