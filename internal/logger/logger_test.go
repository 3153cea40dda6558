package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestVerboseGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	SetVerbose(false)
	Debug("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("expected no output when verbose disabled, got %q", buf.String())
	}

	SetVerbose(true)
	Debug("shown %d", 2)
	Info("info")
	Warn("warn")
	Stage("loading")

	out := buf.String()
	for _, want := range []string{"[DEBUG] shown 2", "[INFO] info", "[WARN] warn", "=== loading ==="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestIsVerbose(t *testing.T) {
	SetVerbose(true)
	t.Cleanup(func() { SetVerbose(false) })
	if !IsVerbose() {
		t.Error("expected IsVerbose true")
	}
}
