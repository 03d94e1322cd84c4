package reservation

import "fmt"

// Available returns capacity minus sold. A sold count above capacity is an
// invariant violation and is returned as ErrOversold instead of being clamped.
func Available(g Geometry, sold int) (int, error) {
	capacity := g.Capacity()
	if sold < 0 || sold > capacity {
		return 0, fmt.Errorf("%w: %d sold, capacity %d", ErrOversold, sold, capacity)
	}
	return capacity - sold, nil
}
