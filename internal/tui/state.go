package tui

import (
	"log/slog"
	"slices"
	"time"

	"github.com/mmcdole/accordion/internal/accordion"
	"github.com/mmcdole/accordion/internal/domain"
)

// SnapshotState captures which items are expanded
func SnapshotState(coord *accordion.Coordinator) domain.PanelState {
	current := -1
	if cur := coord.Current(); cur.IsSet() {
		current = cur.Value()
	}
	return domain.PanelState{
		Expanded:  coord.ExpandedIndices(),
		Current:   current,
		UpdatedAt: time.Now(),
	}
}

// RestoreState re-activates saved items in ascending order, with the saved
// current item last so it ends up current. Indices that no longer exist are
// skipped. Items open before the restore that were not saved are collapsed
// once something was restored. It returns how many items were activated.
func RestoreState(coord *accordion.Coordinator, state domain.PanelState, logger *slog.Logger) int {
	order := slices.Clone(state.Expanded)
	slices.Sort(order)
	order = slices.Compact(order)
	if i := slices.Index(order, state.Current); i >= 0 {
		order = append(slices.Delete(order, i, i+1), state.Current)
	}

	restored := 0
	for _, idx := range order {
		if idx < 0 || idx >= coord.Len() {
			logger.Warn("skipping saved panel outside document", "index", idx, "items", coord.Len())
			continue
		}
		if err := coord.Activate(domain.At(idx)); err != nil {
			logger.Warn("failed to restore panel", "index", idx, "error", err)
			continue
		}
		restored++
	}

	// Drop anything opened at construction that was not saved
	if restored > 0 {
		for _, idx := range coord.ExpandedIndices() {
			if !slices.Contains(order, idx) {
				coord.Item(idx).Collapse()
			}
		}
	}
	return restored
}
