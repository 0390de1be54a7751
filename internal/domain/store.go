package domain

import "time"

// PanelState is the persisted expansion state of one document
type PanelState struct {
	Expanded  []int     `json:"expanded"`
	Current   int       `json:"current"` // -1 when no item has been expanded
	UpdatedAt time.Time `json:"updated_at"`
}

// StateStore persists panel state across sessions, keyed by document path.
type StateStore interface {
	Load(docPath string) (PanelState, bool)
	Save(docPath string, state PanelState) error
	Delete(docPath string) error
	Clear() error
	Close() error
}
