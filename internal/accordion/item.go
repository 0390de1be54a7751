package accordion

import "github.com/mmcdole/accordion/internal/domain"

// Item controls one panel. Its expanded state is read from the renderer on
// every query and never stored.
type Item struct {
	index int
	owner *Coordinator
}

// Index returns the item's fixed position
func (it *Item) Index() int {
	return it.index
}

// IsExpanded reports whether the item's panel is visible
func (it *Item) IsExpanded() bool {
	return it.owner.renderer.IsVisible(it.index)
}

// Toggle flips the item. Before any item has ever been expanded, Toggle always
// expands.
func (it *Item) Toggle() {
	if !it.owner.current.IsSet() {
		it.Expand()
		return
	}
	if it.IsExpanded() {
		it.Collapse()
		return
	}
	it.Expand()
}

// Expand opens the item. In radio mode the previously active item is asked to
// close before this panel is revealed.
func (it *Item) Expand() {
	c := it.owner
	c.RecordTransition(it.index)

	if c.opts.Radio {
		c.DeactivatePrevious()
	}

	c.renderer.AddClass(it.index, c.opts.ActiveClass)
	c.renderer.Show(it.index, c.opts.Transition())

	c.logger.Debug("item expanded", "index", it.index, "previous", c.previous.String())
	c.notify(domain.EventExpanded, it.index)
}

// Collapse closes the item unless the closing guard refuses. It reports
// whether the item was collapsed.
func (it *Item) Collapse() bool {
	c := it.owner
	if it.collapseRefused() {
		c.logger.Debug("collapse refused", "index", it.index, "current", c.current.String())
		c.notify(domain.EventCollapseRefused, it.index)
		return false
	}

	c.renderer.RemoveClass(it.index, c.opts.ActiveClass)
	c.renderer.Hide(it.index, c.opts.Transition())

	c.logger.Debug("item collapsed", "index", it.index)
	c.notify(domain.EventCollapsed, it.index)
	return true
}

// collapseRefused is the closing guard. With close-all off, the last open item
// may not close (radio off), and the current item may not close (radio on).
func (it *Item) collapseRefused() bool {
	c := it.owner
	if c.opts.CloseAll {
		return false
	}
	if !c.opts.Radio {
		return c.IsExactlyOneExpanded()
	}
	return c.current.IsSet() && c.current.Value() == it.index
}
