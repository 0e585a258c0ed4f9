// Package progress wraps pterm's progress bar and spinner printers
// behind a small interface: determinate totals render a bar,
// non-positive totals render a spinner, and non-terminal writers render
// nothing at all while the counters keep working. Output goes to stderr
// unless redirected.
package progress

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/appkit/pkg/errors"
)

// Options configures a progress bar.
type Options struct {
	// Title is shown next to the bar or spinner.
	Title string

	// Total is the number of steps. Zero or negative means
	// indeterminate, rendered as a spinner.
	Total int

	// Transient removes the rendering once stopped.
	Transient bool

	// ShowElapsed displays the elapsed time.
	ShowElapsed bool

	// ShowCount displays current/total next to the bar.
	ShowCount bool

	// Writer receives the rendering. Nil means stderr.
	Writer io.Writer
}

// Bar is a running progress indicator. Counters advance even when
// nothing is rendered, so callers never branch on terminal state.
type Bar struct {
	bar     *pterm.ProgressbarPrinter
	spinner *pterm.SpinnerPrinter
	title   string
	total   int
	current int
}

// Start begins rendering a progress indicator. When the writer is not
// a terminal no printer is started and the returned Bar only tracks
// counts.
func Start(opts Options) (*Bar, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	b := &Bar{title: opts.Title, total: opts.Total}
	if !isTerminal(w) {
		return b, nil
	}

	if opts.Total <= 0 {
		spinner, err := pterm.DefaultSpinner.
			WithWriter(w).
			WithShowTimer(opts.ShowElapsed).
			WithRemoveWhenDone(opts.Transient).
			Start(opts.Title)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to start spinner")
		}
		b.spinner = spinner
		return b, nil
	}

	bar, err := pterm.DefaultProgressbar.
		WithWriter(w).
		WithTitle(opts.Title).
		WithTotal(opts.Total).
		WithShowElapsedTime(opts.ShowElapsed).
		WithShowCount(opts.ShowCount).
		WithRemoveWhenDone(opts.Transient).
		Start()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to start progress bar")
	}
	b.bar = bar
	return b, nil
}

// Increment advances the bar by one step.
func (b *Bar) Increment() {
	b.Add(1)
}

// Add advances the bar by n steps.
func (b *Bar) Add(n int) {
	b.current += n
	if b.bar != nil {
		b.bar.Add(n)
	}
}

// UpdateTitle replaces the displayed title.
func (b *Bar) UpdateTitle(title string) {
	b.title = title
	switch {
	case b.bar != nil:
		b.bar.UpdateTitle(title)
	case b.spinner != nil:
		b.spinner.UpdateText(title)
	}
}

// Stop ends the rendering. Safe to call more than once.
func (b *Bar) Stop() {
	switch {
	case b.bar != nil:
		_, _ = b.bar.Stop()
		b.bar = nil
	case b.spinner != nil:
		_ = b.spinner.Stop()
		b.spinner = nil
	}
}

// Title returns the current title.
func (b *Bar) Title() string { return b.title }

// Total returns the configured total.
func (b *Bar) Total() int { return b.total }

// Current returns the number of completed steps.
func (b *Bar) Current() int { return b.current }

// Track runs fn for every index from 0 to total-1 under a transient
// bar, advancing one step per call and stopping at the first error.
func Track(total int, title string, fn func(i int) error) error {
	bar, err := Start(Options{
		Title:     title,
		Total:     total,
		Transient: true,
		ShowCount: true,
	})
	if err != nil {
		return err
	}
	defer bar.Stop()

	for i := 0; i < total; i++ {
		if err := fn(i); err != nil {
			return err
		}
		bar.Increment()
	}
	return nil
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
