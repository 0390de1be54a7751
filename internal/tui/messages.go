package tui

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StateSavedMsg signals that panel state was persisted
type StateSavedMsg struct {
	Expanded []int
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}
