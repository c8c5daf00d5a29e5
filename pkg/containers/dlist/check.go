package dlist

import (
	"errors"
	"fmt"
)

// ErrCorrupted is wrapped by every error returned from Check.
var ErrCorrupted = errors.New("list links are inconsistent")

// Check verifies the structural invariants of the list:
//
//   - an empty list has no left and no right node and a zero count;
//   - otherwise left has no prev and right has no next;
//   - walking next from left reaches right in exactly Len()-1 steps, and
//     walking prev from right reaches left symmetrically;
//   - every visited node is live and its neighbours point back at it.
func (l *List[T]) Check() error {
	if l.count == 0 {
		if l.left != nilIndex || l.right != nilIndex {
			return fmt.Errorf("%w: empty list has left=%d right=%d", ErrCorrupted, l.left, l.right)
		}
		return nil
	}

	if l.left == nilIndex || l.right == nilIndex {
		return fmt.Errorf("%w: %d items but left=%d right=%d", ErrCorrupted, l.count, l.left, l.right)
	}
	if p := l.nodes[l.left].prev; p != nilIndex {
		return fmt.Errorf("%w: left node has prev %d", ErrCorrupted, p)
	}
	if n := l.nodes[l.right].next; n != nilIndex {
		return fmt.Errorf("%w: right node has next %d", ErrCorrupted, n)
	}

	if err := l.walk(l.left, l.right, func(n node[T]) (int32, int32) { return n.next, n.prev }); err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	if err := l.walk(l.right, l.left, func(n node[T]) (int32, int32) { return n.prev, n.next }); err != nil {
		return fmt.Errorf("backward: %w", err)
	}
	return nil
}

// walk follows links from start and expects to stop on end after count-1
// steps. links returns the forward link of a node and the link that must
// point back.
func (l *List[T]) walk(start, end int32, links func(node[T]) (int32, int32)) error {
	i := start
	for steps := 0; ; steps++ {
		if steps >= l.count {
			return fmt.Errorf("%w: more than %d nodes reachable", ErrCorrupted, l.count)
		}

		n := l.nodes[i]
		if !n.live {
			return fmt.Errorf("%w: released node %d is linked", ErrCorrupted, i)
		}

		forward, _ := links(n)
		if forward == nilIndex {
			if i != end {
				return fmt.Errorf("%w: chain ends at %d instead of %d", ErrCorrupted, i, end)
			}
			if steps != l.count-1 {
				return fmt.Errorf("%w: %d nodes reachable, count is %d", ErrCorrupted, steps+1, l.count)
			}
			return nil
		}

		if _, back := links(l.nodes[forward]); back != i {
			return fmt.Errorf("%w: node %d does not link back to %d", ErrCorrupted, forward, i)
		}
		i = forward
	}
}
