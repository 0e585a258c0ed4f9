package progress_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appkit/pkg/progress"
)

func TestStartNonTerminalRendersNothing(t *testing.T) {
	var buf bytes.Buffer

	bar, err := progress.Start(progress.Options{
		Title:     "copying",
		Total:     5,
		ShowCount: true,
		Writer:    &buf,
	})
	require.NoError(t, err)

	bar.Increment()
	bar.Add(2)
	bar.UpdateTitle("still copying")
	bar.Stop()

	assert.Empty(t, buf.String(), "a non-terminal writer gets no control sequences")
}

func TestBarCounters(t *testing.T) {
	var buf bytes.Buffer

	bar, err := progress.Start(progress.Options{Title: "work", Total: 10, Writer: &buf})
	require.NoError(t, err)
	defer bar.Stop()

	assert.Equal(t, "work", bar.Title())
	assert.Equal(t, 10, bar.Total())
	assert.Equal(t, 0, bar.Current())

	bar.Increment()
	assert.Equal(t, 1, bar.Current())

	bar.Add(4)
	assert.Equal(t, 5, bar.Current())

	bar.UpdateTitle("more work")
	assert.Equal(t, "more work", bar.Title())
}

func TestIndeterminateTotal(t *testing.T) {
	var buf bytes.Buffer

	bar, err := progress.Start(progress.Options{Title: "waiting", Total: 0, Writer: &buf})
	require.NoError(t, err)

	bar.Increment()
	bar.UpdateTitle("still waiting")
	bar.Stop()

	assert.Equal(t, 0, bar.Total())
	assert.Equal(t, 1, bar.Current())
	assert.Empty(t, buf.String())
}

func TestStopIdempotent(t *testing.T) {
	var buf bytes.Buffer

	bar, err := progress.Start(progress.Options{Title: "once", Total: 3, Writer: &buf})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		bar.Stop()
		bar.Stop()
	})
}

func TestTrackVisitsEveryIndex(t *testing.T) {
	var visited []int

	err := progress.Track(4, "steps", func(i int) error {
		visited = append(visited, i)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, visited)
}

func TestTrackStopsOnFirstError(t *testing.T) {
	boom := fmt.Errorf("step failed")
	var visited []int

	err := progress.Track(5, "steps", func(i int) error {
		visited = append(visited, i)
		if i == 2 {
			return boom
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, boom, err)
	assert.Equal(t, []int{0, 1, 2}, visited, "no index after the failing one runs")
}

func TestTrackZeroTotal(t *testing.T) {
	calls := 0

	err := progress.Track(0, "nothing", func(int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}
