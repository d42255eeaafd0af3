package reservation

import (
	"fmt"
	"sync"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/ledger"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/seat"
)

// Train is a numbered service between two stations with a fixed number of
// seats. It owns its seat inventory and passenger ledger; mu guards both.
type Train struct {
	Number      string
	Source      string
	Destination string
	Seats       int
	Distance    int64

	mu         sync.Mutex
	inventory  *seat.Inventory
	passengers *ledger.Ledger
}

func newTrain(number, src, dst string, seats int, distance int64) (*Train, error) {
	inv, err := seat.NewInventory(seats)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidTrain, number, err)
	}

	return &Train{
		Number:      number,
		Source:      src,
		Destination: dst,
		Seats:       seats,
		Distance:    distance,
		inventory:   inv,
		passengers:  ledger.New(),
	}, nil
}

// book allocates the lowest free seat and records b on it with a reference
// from ticket. ticket is only called once a seat is held. If the ledger
// rejects the booking, the seat goes straight back to the inventory.
func (t *Train) book(b ledger.Booking, ticket func() string) (ledger.Booking, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.passengers.Find(b.PassengerID); err == nil {
		return ledger.Booking{}, fmt.Errorf("%w: %q on train %s", ErrDuplicateID, b.PassengerID, t.Number)
	}
	n, err := t.inventory.Allocate()
	if err != nil {
		return ledger.Booking{}, fmt.Errorf("train %s: %w", t.Number, err)
	}
	b.Seat = n
	b.Ticket = ticket()
	if err := t.passengers.Insert(b); err != nil {
		// Seat n was just allocated, so it cannot be invalid here.
		_ = t.inventory.Release(n)
		return ledger.Booking{}, fmt.Errorf("train %s: %w", t.Number, err)
	}

	return b, nil
}

// cancel removes the passenger's booking and frees the seat recorded on it.
func (t *Train) cancel(id string) (ledger.Booking, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, err := t.passengers.Remove(id)
	if err != nil {
		return ledger.Booking{}, fmt.Errorf("train %s: %w", t.Number, err)
	}
	if err := t.inventory.Release(b.Seat); err != nil {
		// Keep the pair consistent: the seat could not be freed, so the booking stays.
		_ = t.passengers.Insert(b)
		return ledger.Booking{}, fmt.Errorf("train %s: %w", t.Number, err)
	}

	return b, nil
}

// Find returns the active booking of passenger id.
func (t *Train) Find(id string) (ledger.Booking, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	b, err := t.passengers.Find(id)
	if err != nil {
		return ledger.Booking{}, fmt.Errorf("train %s: %w", t.Number, err)
	}

	return b, nil
}

// Passengers returns active bookings, most recent first.
func (t *Train) Passengers() []ledger.Booking {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.passengers.List()
}

// Available returns the number of free seats.
func (t *Train) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inventory.Available()
}

// FreeSeats returns the free seat numbers in ascending order.
func (t *Train) FreeSeats() []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inventory.Free()
}
