package style

import (
	"fmt"
	"io"
	"os"
)

// Console writes user-facing status messages, one per line, applying
// registry styles only when the destination supports them. It is the
// sink for messages that belong to the user rather than to the logs,
// such as config migration notices.
//
// A nil *Console is a valid no-op sink, so callers can thread an
// optional console through without guarding every call site.
type Console struct {
	out    io.Writer
	format Format
}

// NewConsole creates a console writing to f, detecting the output
// format from f's terminal capabilities.
func NewConsole(f *os.File) *Console {
	return &Console{out: f, format: DetectFormat(f)}
}

// NewConsoleWriter creates a console writing to w with a fixed format.
// FormatAuto degrades to plain text because w's capabilities are unknown.
func NewConsoleWriter(w io.Writer, format Format) *Console {
	if format == FormatAuto {
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		} else {
			format = FormatText
		}
	}
	return &Console{out: w, format: format}
}

// Writer returns the underlying writer, or nil for a nil console.
func (c *Console) Writer() io.Writer {
	if c == nil {
		return nil
	}
	return c.out
}

// Format returns the output format the console renders with.
func (c *Console) Format() Format {
	if c == nil {
		return FormatText
	}
	return c.format
}

// Printf writes a plain message line without any styling.
func (c *Console) Printf(format string, args ...interface{}) {
	c.print("", format, args...)
}

// Successf writes a message line in the Success style.
func (c *Console) Successf(format string, args ...interface{}) {
	c.print("Success", format, args...)
}

// Infof writes a message line in the Info style.
func (c *Console) Infof(format string, args ...interface{}) {
	c.print("Info", format, args...)
}

// Warningf writes a message line in the Warning style.
func (c *Console) Warningf(format string, args ...interface{}) {
	c.print("Warning", format, args...)
}

// Errorf writes a message line in the Error style.
func (c *Console) Errorf(format string, args ...interface{}) {
	c.print("Error", format, args...)
}

func (c *Console) print(styleName, format string, args ...interface{}) {
	if c == nil || c.out == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if styleName != "" && c.format == FormatTerminal {
		msg = GetStyle(styleName).Render(msg)
	}
	// Write errors on a message sink are not actionable
	_, _ = fmt.Fprintln(c.out, msg)
}
