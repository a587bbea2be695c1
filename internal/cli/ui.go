//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate is the animation interval of the collection spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts a terminal spinner so the collection step can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// NewSpinner returns a spinner drawing on w.
func NewSpinner(w io.Writer) Spinner {
	return newSpinner(spinner.WithWriter(w), spinner.WithHiddenCursor(true))
}

// NopSpinner does nothing. It is used when stderr is not a terminal.
type NopSpinner struct{}

func (NopSpinner) Start()              {}
func (NopSpinner) Stop()               {}
func (NopSpinner) UpdateSuffix(string) {}

// RunWithSpinner shows sp with the given message while fn runs. The spinner
// is always stopped before RunWithSpinner returns.
func RunWithSpinner(sp Spinner, message string, fn func() error) error {
	sp.UpdateSuffix(" " + message)
	sp.Start()
	defer sp.Stop()
	return fn()
}
