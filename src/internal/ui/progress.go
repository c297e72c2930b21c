package ui

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// progressTick is how often an indeterminate bar advances
const progressTick = 120 * time.Millisecond

// newIndeterminateBar builds a bar for work of unknown length
func newIndeterminateBar(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(stderr)
		}),
	)
}

// AwaitWithProgress blocks until ch delivers a value, animating an
// indeterminate progress bar on stderr meanwhile. Without a terminal it
// just waits.
func AwaitWithProgress[T any](description string, ch <-chan T) T {
	if !interactive() {
		return <-ch
	}

	bar := newIndeterminateBar(description)
	ticker := time.NewTicker(progressTick)
	defer ticker.Stop()

	for {
		select {
		case v := <-ch:
			_ = bar.Finish()
			return v
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
