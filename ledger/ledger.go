// Package ledger holds the active bookings of one train, keyed by passenger id.
//
// Bookings are immutable values: they are inserted once and removed once,
// never edited in place. Listing returns the most recently inserted booking
// first.
//
// Ledger is not safe for concurrent use; the owning train serializes access.
package ledger

import (
	"errors"
	"fmt"
	"iter"
	"sort"
)

// Sentinel errors for ledger operations.
var (
	// ErrDuplicateID indicates Insert of a passenger id that already has an active booking.
	ErrDuplicateID = errors.New("ledger: duplicate passenger id")

	// ErrNotFound indicates no active booking exists for the passenger id.
	ErrNotFound = errors.New("ledger: passenger not found")
)

// Booking associates a passenger with an allocated seat.
type Booking struct {
	PassengerID string // unique per train
	Name        string
	Age         int
	Seat        int
	Ticket      string // booking reference printed on the ticket
}

// Ledger is an ordered associative container of bookings.
type Ledger struct {
	seq     uint64
	entries map[string]entry
}

type entry struct {
	booking Booking
	seq     uint64 // insertion stamp; higher is newer
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[string]entry)}
}

// Insert adds a new active booking.
// Returns ErrDuplicateID if b.PassengerID is already booked.
func (l *Ledger) Insert(b Booking) error {
	if _, ok := l.entries[b.PassengerID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, b.PassengerID)
	}
	l.seq++
	l.entries[b.PassengerID] = entry{booking: b, seq: l.seq}

	return nil
}

// Remove deletes and returns the booking for id.
func (l *Ledger) Remove(id string) (Booking, error) {
	e, ok := l.entries[id]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(l.entries, id)

	return e.booking, nil
}

// Find returns the booking for id without modifying the ledger.
func (l *Ledger) Find(id string) (Booking, error) {
	e, ok := l.entries[id]
	if !ok {
		return Booking{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	return e.booking, nil
}

// Len returns the number of active bookings.
func (l *Ledger) Len() int { return len(l.entries) }

// List returns a snapshot of all bookings, most recently inserted first.
// Complexity: O(n log n).
func (l *Ledger) List() []Booking {
	es := make([]entry, 0, len(l.entries))
	for _, e := range l.entries {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i].seq > es[j].seq })

	out := make([]Booking, len(es))
	for i, e := range es {
		out[i] = e.booking
	}

	return out
}

// All yields the same sequence as List. The snapshot is taken each time
// iteration starts, so the sequence can be ranged over repeatedly.
func (l *Ledger) All() iter.Seq[Booking] {
	return func(yield func(Booking) bool) {
		for _, b := range l.List() {
			if !yield(b) {
				return
			}
		}
	}
}
