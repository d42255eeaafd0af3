// Package reservation ties trains, their seat inventories and passenger
// ledgers to the shared station route graph.
//
// A System owns every Train and one core.Graph. Booking asks the train's
// inventory for the lowest free seat and records the passenger in its ledger;
// cancellation removes the passenger and frees the seat recorded on the
// booking. Route queries go straight to the graph and do not involve trains.
//
// Locking follows the two pieces of shared state: each Train has its own
// mutex around (inventory, ledger), and core.Graph locks itself. System.mu
// only guards the train catalog.
package reservation

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/bfs"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/dijkstra"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/ledger"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

// System is the reservation core consumed by a shell.
type System struct {
	mu     sync.RWMutex
	trains map[string]*Train
	extra  []routeEntry // routes added without a train, in insertion order

	routes *core.Graph
	log    *zap.Logger
	ticket func() string
}

type routeEntry struct {
	from, to string
	distance int64
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.log = l
		}
	}
}

// WithGraph makes the System use g as its route graph.
func WithGraph(g *core.Graph) Option {
	return func(s *System) {
		if g != nil {
			s.routes = g
		}
	}
}

// WithTicketFunc overrides how booking references are generated.
func WithTicketFunc(fn func() string) Option {
	return func(s *System) {
		if fn != nil {
			s.ticket = fn
		}
	}
}

// New returns an empty System.
func New(opts ...Option) *System {
	s := &System{
		trains: make(map[string]*Train),
		routes: core.NewGraph(),
		log:    zap.NewNop(),
		ticket: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph returns the shared route graph.
func (s *System) Graph() *core.Graph { return s.routes }

// AddTrain registers a train and inserts its src–dst route with the given
// distance into the route graph.
func (s *System) AddTrain(number, src, dst string, seats int, distance int64) (*Train, error) {
	if number == "" || src == "" || dst == "" {
		return nil, fmt.Errorf("%w: number, source and destination are required", ErrInvalidTrain)
	}
	for _, v := range []string{number, src, dst} {
		if err := store.CheckField(v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTrain, err)
		}
	}
	if src == dst {
		return nil, fmt.Errorf("%w %s: source and destination are both %s", ErrInvalidTrain, number, src)
	}
	if distance <= 0 {
		return nil, fmt.Errorf("%w %s: distance must be positive, got %d", ErrInvalidTrain, number, distance)
	}
	t, err := newTrain(number, src, dst, seats, distance)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trains[number]; ok {
		return nil, fmt.Errorf("%w: %s", ErrTrainExists, number)
	}
	if _, err := s.routes.AddEdge(src, dst, distance); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidTrain, number, err)
	}
	s.trains[number] = t

	s.log.Info("train added",
		zap.String("train", number),
		zap.String("from", src),
		zap.String("to", dst),
		zap.Int("seats", seats),
		zap.Int64("distance", distance))

	return t, nil
}

// Train returns the train with the given number.
func (s *System) Train(number string) (*Train, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trains[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTrainNotFound, number)
	}

	return t, nil
}

// Trains returns all trains sorted by number.
func (s *System) Trains() []*Train {
	s.mu.RLock()
	numbers := maps.Keys(s.trains)
	s.mu.RUnlock()
	slices.Sort(numbers)

	out := make([]*Train, 0, len(numbers))
	for _, n := range numbers {
		if t, err := s.Train(n); err == nil {
			out = append(out, t)
		}
	}

	return out
}

// Book reserves the lowest free seat on train number for a passenger.
func (s *System) Book(number, name string, age int, id string) (ledger.Booking, error) {
	if name == "" || id == "" {
		return ledger.Booking{}, fmt.Errorf("%w: name and id are required", ErrInvalidPassenger)
	}
	if age < 0 {
		return ledger.Booking{}, fmt.Errorf("%w: age %d", ErrInvalidPassenger, age)
	}
	t, err := s.Train(number)
	if err != nil {
		return ledger.Booking{}, err
	}

	b, err := t.book(ledger.Booking{PassengerID: id, Name: name, Age: age}, s.ticket)
	if err != nil {
		s.log.Info("booking refused", zap.String("train", number), zap.String("passenger", id), zap.Error(err))
		return ledger.Booking{}, err
	}
	s.log.Info("seat booked", zap.String("train", number), zap.String("passenger", id), zap.Int("seat", b.Seat))

	return b, nil
}

// Cancel removes passenger id from train number and frees the booked seat.
// The returned booking carries the seat that was freed.
func (s *System) Cancel(number, id string) (ledger.Booking, error) {
	t, err := s.Train(number)
	if err != nil {
		return ledger.Booking{}, err
	}
	b, err := t.cancel(id)
	if err != nil {
		return ledger.Booking{}, err
	}
	s.log.Info("booking cancelled", zap.String("train", number), zap.String("passenger", id), zap.Int("seat", b.Seat))

	return b, nil
}

// Passengers lists the active bookings of a train, most recent first.
func (s *System) Passengers(number string) ([]ledger.Booking, error) {
	t, err := s.Train(number)
	if err != nil {
		return nil, err
	}

	return t.Passengers(), nil
}

// Ticket is a printable view of one booking.
type Ticket struct {
	TrainNumber string
	From        string
	To          string
	ledger.Booking
}

// String renders the ticket the way it is printed to passengers.
func (tk Ticket) String() string {
	var sb strings.Builder
	sb.WriteString("--- Ticket ---\n")
	fmt.Fprintf(&sb, "Ticket Ref: %s\n", tk.Ticket)
	fmt.Fprintf(&sb, "Train Number: %s\n", tk.TrainNumber)
	fmt.Fprintf(&sb, "From: %s\n", tk.From)
	fmt.Fprintf(&sb, "To: %s\n", tk.To)
	fmt.Fprintf(&sb, "Passenger Name: %s\n", tk.Name)
	fmt.Fprintf(&sb, "Age: %d\n", tk.Age)
	fmt.Fprintf(&sb, "ID: %s\n", tk.PassengerID)
	fmt.Fprintf(&sb, "Allocated Seat: %d\n", tk.Seat)
	sb.WriteString("------------------\n")

	return sb.String()
}

// Ticket returns the ticket of passenger id on train number.
func (s *System) Ticket(number, id string) (Ticket, error) {
	t, err := s.Train(number)
	if err != nil {
		return Ticket{}, err
	}
	b, err := t.Find(id)
	if err != nil {
		return Ticket{}, err
	}

	return Ticket{TrainNumber: t.Number, From: t.Source, To: t.Destination, Booking: b}, nil
}

// AddRoute inserts a route that no train runs on yet.
func (s *System) AddRoute(a, b string, distance int64) error {
	for _, v := range []string{a, b} {
		if v == "" {
			continue // reported by the graph as core.ErrEmptyVertexID
		}
		if err := store.CheckField(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStation, err)
		}
	}
	if _, err := s.routes.AddEdge(a, b, distance); err != nil {
		return err
	}
	s.mu.Lock()
	s.extra = append(s.extra, routeEntry{from: a, to: b, distance: distance})
	s.mu.Unlock()
	s.log.Info("route added", zap.String("from", a), zap.String("to", b), zap.Int64("distance", distance))

	return nil
}

// Routes enumerates the route graph's adjacency entries.
func (s *System) Routes() iter.Seq[core.Route] { return s.routes.Routes() }

// ShortestRoute returns the minimum-distance path between two stations.
func (s *System) ShortestRoute(from, to string) (dijkstra.Path, error) {
	p, err := dijkstra.ShortestPath(s.routes, from, to)
	if err != nil {
		s.log.Debug("no route", zap.String("from", from), zap.String("to", to), zap.Error(err))
		return dijkstra.Path{}, err
	}
	s.log.Debug("shortest route",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int64("distance", p.Distance),
		zap.Strings("path", p.Stations))

	return p, nil
}

// Reachable lists every station reachable from station, itself included,
// ordered by number of legs.
func (s *System) Reachable(station string) ([]string, error) {
	res, err := bfs.BFS(s.routes, station)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, station)
	}

	return res.Order, nil
}

// FewestLegs returns a path from one station to another using the fewest
// routes, regardless of distance.
func (s *System) FewestLegs(from, to string) ([]string, error) {
	res, err := bfs.BFS(s.routes, from)
	if err != nil {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoRoute, from, to)
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoRoute, from, to)
	}

	return path, nil
}
