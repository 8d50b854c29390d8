package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger captures log output for assertions in tests.
type TestLogger struct {
	Logger *zerolog.Logger
	buf    *bytes.Buffer
}

// NewTestLogger creates a logger that writes to an in-memory buffer.
func NewTestLogger(t *testing.T) *TestLogger {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return &TestLogger{Logger: &logger, buf: buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.buf.String()
}

// AssertContains fails the test if the output does not contain want.
func (tl *TestLogger) AssertContains(t *testing.T, want string) {
	t.Helper()
	if !strings.Contains(tl.buf.String(), want) {
		t.Errorf("expected log output to contain %q, got: %s", want, tl.buf.String())
	}
}
