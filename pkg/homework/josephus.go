package homework

import (
	"errors"
	"fmt"

	"github.com/algokit/algokit/pkg/containers/linkedqueue"
)

var ErrInvalidJosephus = errors.New("invalid josephus parameters")

// Josephus seats n people numbered 0 to n-1 in a circle and eliminates every
// m-th one until nobody is left (exercise 1.3.37). It returns the order of
// elimination; the last entry is the survivor.
func Josephus(n, m int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must not be negative, got %d", ErrInvalidJosephus, n)
	}
	if m <= 0 {
		return nil, fmt.Errorf("%w: m must be positive, got %d", ErrInvalidJosephus, m)
	}

	circle := linkedqueue.New[int]()
	for i := 0; i < n; i++ {
		circle.Enqueue(i)
	}

	order := make([]int, 0, n)
	if n == 0 {
		return order, nil
	}

	k := (m - 1) % circle.Len()
	for !circle.IsEmpty() {
		eliminated, _ := circle.Remove(k)
		order = append(order, eliminated)

		if circle.Len() > 0 {
			k = (k + m - 1) % circle.Len()
		}
	}

	return order, nil
}
