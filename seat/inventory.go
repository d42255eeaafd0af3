// Package seat implements the per-train seat inventory: the set of seat
// numbers not currently assigned to a booking.
//
// Seats are numbered 1..Total. Allocate always hands out the smallest free
// number, so allocation order is reproducible. The inventory neither creates
// nor destroys seats: every number is at any time either free or assigned.
//
// Inventory is not safe for concurrent use; the owning train serializes access.
package seat

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors for seat operations.
var (
	// ErrNoSeatsAvailable indicates Allocate was called with no free seats.
	ErrNoSeatsAvailable = errors.New("seat: no seats available")

	// ErrInvalidSeat indicates Release of a seat out of range or already free.
	ErrInvalidSeat = errors.New("seat: invalid seat")

	// ErrInvalidTotal indicates a non-positive seat count at construction.
	ErrInvalidTotal = errors.New("seat: total seats must be positive")
)

// Inventory tracks the free seats of one train.
type Inventory struct {
	total  int
	free   seatHeap         // min-heap of free seat numbers
	isFree map[int]struct{} // membership mirror of free
}

// NewInventory returns an inventory with seats 1..total all free.
// Complexity: O(total).
func NewInventory(total int) (*Inventory, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTotal, total)
	}
	inv := &Inventory{
		total:  total,
		free:   make(seatHeap, 0, total),
		isFree: make(map[int]struct{}, total),
	}
	// An ascending slice already satisfies the heap invariant.
	for n := 1; n <= total; n++ {
		inv.free = append(inv.free, n)
		inv.isFree[n] = struct{}{}
	}

	return inv, nil
}

// Allocate removes and returns the smallest free seat number.
// Complexity: O(log n).
func (inv *Inventory) Allocate() (int, error) {
	if inv.free.Len() == 0 {
		return 0, ErrNoSeatsAvailable
	}
	n := heap.Pop(&inv.free).(int)
	delete(inv.isFree, n)

	return n, nil
}

// Release returns seat n to the free set.
// A seat outside 1..Total, or one that is already free, is rejected with
// ErrInvalidSeat and the inventory is left unchanged.
// Complexity: O(log n).
func (inv *Inventory) Release(n int) error {
	if n < 1 || n > inv.total {
		return fmt.Errorf("%w: %d out of range 1..%d", ErrInvalidSeat, n, inv.total)
	}
	if _, ok := inv.isFree[n]; ok {
		return fmt.Errorf("%w: %d is already free", ErrInvalidSeat, n)
	}
	heap.Push(&inv.free, n)
	inv.isFree[n] = struct{}{}

	return nil
}

// Available returns the number of free seats.
func (inv *Inventory) Available() int { return inv.free.Len() }

// Total returns the number of seats the inventory was created with.
func (inv *Inventory) Total() int { return inv.total }

// IsFree reports whether seat n is currently free.
func (inv *Inventory) IsFree(n int) bool {
	_, ok := inv.isFree[n]
	return ok
}

// Free returns the free seat numbers in ascending order.
// Complexity: O(total).
func (inv *Inventory) Free() []int {
	out := make([]int, 0, len(inv.isFree))
	for n := 1; n <= inv.total; n++ {
		if _, ok := inv.isFree[n]; ok {
			out = append(out, n)
		}
	}

	return out
}

// seatHeap is a min-heap of seat numbers.
type seatHeap []int

func (h seatHeap) Len() int           { return len(h) }
func (h seatHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h seatHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *seatHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *seatHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
