// Package accordion holds the state logic of a collapsible-panel widget: a
// Coordinator that owns the ordered items and cross-item policy, and one Item
// controller per panel.
package accordion

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/accordion/internal/domain"
)

// Coordinator owns the ordered items, the current/previous active indices and
// the radio/close-all policy. It mediates between items so that opening one
// can close another.
type Coordinator struct {
	items    []*Item
	current  domain.Index
	previous domain.Index

	opts     domain.Options
	renderer domain.Renderer
	observer domain.TransitionObserver
	logger   *slog.Logger
}

// New builds a coordinator with one item per renderer panel. If
// opts.ActiveIndex is set, that item is expanded before New returns;
// otherwise, with CloseAll off, the first item is.
func New(renderer domain.Renderer, opts domain.Options, logger *slog.Logger, observer domain.TransitionObserver) (*Coordinator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if observer == nil {
		observer = domain.NoOpObserver{}
	}
	if opts.ActiveClass == "" {
		opts.ActiveClass = domain.DefaultActiveClass
	}

	c := &Coordinator{
		current:  domain.NoIndex,
		previous: domain.NoIndex,
		opts:     opts,
		renderer: renderer,
		observer: observer,
		logger:   logger,
	}

	n := renderer.Len()
	c.items = make([]*Item, n)
	for i := 0; i < n; i++ {
		c.items[i] = &Item{index: i, owner: c}
	}

	switch {
	case opts.ActiveIndex.IsSet():
		if err := c.Activate(opts.ActiveIndex); err != nil {
			return nil, fmt.Errorf("initial active index: %w", err)
		}
	case !opts.CloseAll && n > 0:
		// Something must be open for the closing guard to hold on to
		c.items[0].Expand()
	}

	logger.Debug("accordion created",
		"items", n,
		"radio", opts.Radio,
		"close_all", opts.CloseAll,
		"active_index", opts.ActiveIndex.String())

	return c, nil
}

// Items returns every item when idx is absent, the item at idx when idx is
// non-negative, and the last item when idx is negative.
func (c *Coordinator) Items(idx domain.Index) ([]*Item, error) {
	if !idx.IsSet() {
		all := make([]*Item, len(c.items))
		copy(all, c.items)
		return all, nil
	}
	item, err := c.resolve(idx.Value())
	if err != nil {
		return nil, err
	}
	return []*Item{item}, nil
}

// Item returns the item at position i, or nil when i is out of range.
// Negative positions count from the end.
func (c *Coordinator) Item(i int) *Item {
	item, err := c.resolve(i)
	if err != nil {
		return nil
	}
	return item
}

func (c *Coordinator) resolve(i int) (*Item, error) {
	if len(c.items) == 0 {
		return nil, fmt.Errorf("%w: index %d on empty accordion", domain.ErrInvalidArgument, i)
	}
	if i < 0 {
		return c.items[len(c.items)-1], nil
	}
	if i >= len(c.items) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", domain.ErrInvalidArgument, i, len(c.items))
	}
	return c.items[i], nil
}

// Activate expands the item at idx. idx is required.
func (c *Coordinator) Activate(idx domain.Index) error {
	if !idx.IsSet() {
		return fmt.Errorf("%w: activate requires an index", domain.ErrInvalidArgument)
	}
	item, err := c.resolve(idx.Value())
	if err != nil {
		return err
	}
	item.Expand()
	return nil
}

// DeactivatePrevious collapses the previously active item, if any. Items call
// it when they need exclusive activation.
func (c *Coordinator) DeactivatePrevious() {
	if !c.previous.IsSet() {
		return
	}
	if item := c.Item(c.previous.Value()); item != nil {
		item.Collapse()
	}
}

// IsExactlyOneExpanded reports whether exactly one item is expanded.
func (c *Coordinator) IsExactlyOneExpanded() bool {
	count := 0
	for _, item := range c.items {
		if item.IsExpanded() {
			count++
		}
	}
	return count == 1
}

// RecordTransition records the first expanded item (lowest index) as previous
// and newIndex as current. Items call it just before they start expanding.
func (c *Coordinator) RecordTransition(newIndex int) {
	c.previous = domain.NoIndex
	for _, item := range c.items {
		if item.IsExpanded() {
			c.previous = domain.At(item.index)
			break
		}
	}
	c.current = domain.At(newIndex)
}

// Current returns the most recently expanded index
func (c *Coordinator) Current() domain.Index {
	return c.current
}

// Previous returns the index that was active before Current changed
func (c *Coordinator) Previous() domain.Index {
	return c.previous
}

// Options returns the immutable policy
func (c *Coordinator) Options() domain.Options {
	return c.opts
}

// Len returns the number of items
func (c *Coordinator) Len() int {
	return len(c.items)
}

// ExpandedIndices returns the positions of all expanded items in order
func (c *Coordinator) ExpandedIndices() []int {
	var out []int
	for _, item := range c.items {
		if item.IsExpanded() {
			out = append(out, item.index)
		}
	}
	return out
}

func (c *Coordinator) notify(kind domain.TransitionKind, index int) {
	c.observer.OnTransition(domain.TransitionEvent{
		Kind:     kind,
		Index:    index,
		Current:  c.current,
		Previous: c.previous,
	})
}
