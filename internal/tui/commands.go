package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/accordion/internal/domain"
)

// Command factories for async operations

// SaveStateCmd persists panel state for a document
func SaveStateCmd(store domain.StateStore, docPath string, state domain.PanelState) tea.Cmd {
	if store == nil || docPath == "" {
		return nil
	}
	return func() tea.Msg {
		if err := store.Save(docPath, state); err != nil {
			return ErrMsg{Err: err, Context: "saving panel state"}
		}
		return StateSavedMsg{Expanded: state.Expanded}
	}
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
