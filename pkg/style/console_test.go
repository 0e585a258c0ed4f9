package style_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/appkit/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestConsoleTextFormat(t *testing.T) {
	tests := []struct {
		name     string
		write    func(c *style.Console)
		expected string
	}{
		{
			name:     "plain printf",
			write:    func(c *style.Console) { c.Printf("copied %s to %s", "logging.yml", "/tmp/cfg") },
			expected: "copied logging.yml to /tmp/cfg\n",
		},
		{
			name:     "success message",
			write:    func(c *style.Console) { c.Successf("done") },
			expected: "done\n",
		},
		{
			name:     "info message",
			write:    func(c *style.Console) { c.Infof("migrating from %s", "0.0") },
			expected: "migrating from 0.0\n",
		},
		{
			name:     "warning message",
			write:    func(c *style.Console) { c.Warningf("config corrupted") },
			expected: "config corrupted\n",
		},
		{
			name:     "error message",
			write:    func(c *style.Console) { c.Errorf("bad input") },
			expected: "bad input\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := style.NewConsoleWriter(&buf, style.FormatText)

			tt.write(c)

			assert.Equal(t, tt.expected, buf.String(),
				"Text format should write the plain message with a trailing newline")
		})
	}
}

func TestConsoleTerminalFormat(t *testing.T) {
	var buf bytes.Buffer
	c := style.NewConsoleWriter(&buf, style.FormatTerminal)

	c.Successf("operation %s", "completed")

	// Styling depends on the detected color profile, so only assert
	// that the message content survives rendering.
	assert.Contains(t, buf.String(), "operation completed")
}

func TestConsoleNilReceiver(t *testing.T) {
	var c *style.Console

	// All methods on a nil console are no-ops
	assert.NotPanics(t, func() {
		c.Printf("hello")
		c.Successf("hello")
		c.Infof("hello")
		c.Warningf("hello")
		c.Errorf("hello")
	})

	assert.Nil(t, c.Writer())
	assert.Equal(t, style.FormatText, c.Format())
}

func TestNewConsoleWriter(t *testing.T) {
	t.Run("auto degrades to text for plain writers", func(t *testing.T) {
		var buf bytes.Buffer
		c := style.NewConsoleWriter(&buf, style.FormatAuto)
		assert.Equal(t, style.FormatText, c.Format())
	})

	t.Run("explicit format is kept", func(t *testing.T) {
		var buf bytes.Buffer
		c := style.NewConsoleWriter(&buf, style.FormatTerminal)
		assert.Equal(t, style.FormatTerminal, c.Format())
		assert.Equal(t, &buf, c.Writer())
	})
}
