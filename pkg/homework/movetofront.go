package homework

import (
	"strings"

	"github.com/algokit/algokit/pkg/containers/dlist"
)

// MoveToFront reads the runes of input into a list, keeping a single copy
// of each (exercise 1.3.40). A rune seen again is taken out and pushed back
// on the right end, so the result lists the distinct runes from the least to
// the most recently used.
func MoveToFront(input string) string {
	list := dlist.New[rune]()

	for _, c := range input {
		list.Remove(c)
		list.PushRight(c)
	}

	sb := &strings.Builder{}
	sb.Grow(list.Len())
	for c := range list.All() {
		sb.WriteRune(c)
	}
	return sb.String()
}
