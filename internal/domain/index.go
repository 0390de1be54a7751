package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Index is an optional item position. The zero value is NoIndex.
// Negative positions address items from the end (-1 is the last item).
type Index struct {
	n   int
	set bool
}

// NoIndex is the absent index
var NoIndex = Index{}

// At returns a present index for position n
func At(n int) Index {
	return Index{n: n, set: true}
}

// IsSet reports whether the index is present
func (i Index) IsSet() bool {
	return i.set
}

// Value returns the position. It is only meaningful when IsSet is true.
func (i Index) Value() int {
	return i.n
}

func (i Index) String() string {
	if !i.set {
		return "none"
	}
	return strconv.Itoa(i.n)
}

// ParseIndex converts user supplied text into an Index. Empty text is NoIndex;
// anything that is not an integer is rejected with ErrInvalidArgument.
func ParseIndex(raw string) (Index, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NoIndex, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return NoIndex, fmt.Errorf("%w: index %q is not a number", ErrInvalidArgument, raw)
	}
	return At(n), nil
}
