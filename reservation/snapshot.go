package reservation

import (
	"errors"
	"fmt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

// Snapshot returns the persisted form of the system: trains sorted by number
// and standalone routes in insertion order. Bookings are session state and
// are not included. Users belong to the account registry, not here.
func (s *System) Snapshot() store.Snapshot {
	var snap store.Snapshot
	for _, t := range s.Trains() {
		snap.Trains = append(snap.Trains, store.TrainRecord{
			Number:      t.Number,
			Source:      t.Source,
			Destination: t.Destination,
			Seats:       t.Seats,
			Distance:    t.Distance,
		})
	}

	s.mu.RLock()
	for _, r := range s.extra {
		snap.Routes = append(snap.Routes, store.RouteRecord{From: r.from, To: r.to, Distance: r.distance})
	}
	s.mu.RUnlock()

	return snap
}

// Restore adds the trains and routes of snap. Every record is attempted;
// the returned error joins the failures.
func (s *System) Restore(snap store.Snapshot) error {
	var errs []error
	for _, r := range snap.Trains {
		if _, err := s.AddTrain(r.Number, r.Source, r.Destination, r.Seats, r.Distance); err != nil {
			errs = append(errs, fmt.Errorf("restore train %s: %w", r.Number, err))
		}
	}
	for _, r := range snap.Routes {
		if err := s.AddRoute(r.From, r.To, r.Distance); err != nil {
			errs = append(errs, fmt.Errorf("restore route %s-%s: %w", r.From, r.To, err))
		}
	}

	return errors.Join(errs...)
}
