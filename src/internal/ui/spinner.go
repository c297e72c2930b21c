package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner with our color scheme. It draws nothing
// when stderr is not a terminal.
type Spinner struct {
	spinner *spinner.Spinner
	active  bool
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14], // dots style
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(os.Stderr),
	)
	return &Spinner{spinner: s}
}

// Start starts the spinner
func (s *Spinner) Start() {
	if !interactive() {
		return
	}
	s.active = true
	s.spinner.Start()
}

// Stop stops the spinner
func (s *Spinner) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.spinner.Stop()
}

// WithSpinner runs fn while a spinner is shown. Only the spinner is
// cleared on return; callers report the outcome themselves.
func WithSpinner(message string, fn func() error) error {
	s := NewSpinner(message)
	s.Start()
	defer s.Stop()
	return fn()
}
