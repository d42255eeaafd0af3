package reservation_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/core"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/ledger"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/reservation"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

type SystemSuite struct {
	suite.Suite
	sys *reservation.System
	n   int
}

func (s *SystemSuite) SetupTest() {
	s.n = 0
	s.sys = reservation.New(
		reservation.WithLogger(zaptest.NewLogger(s.T())),
		reservation.WithTicketFunc(func() string {
			s.n++
			return fmt.Sprintf("PNR%03d", s.n)
		}),
	)
}

func (s *SystemSuite) TestBookCancelScenario() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("T1", "Delhi", "Mumbai", 2, 1400)
	require.NoError(err)

	a, err := s.sys.Book("T1", "Alice", 30, "ID1")
	require.NoError(err)
	require.Equal(1, a.Seat)
	b, err := s.sys.Book("T1", "Bob", 25, "ID2")
	require.NoError(err)
	require.Equal(2, b.Seat)

	_, err = s.sys.Book("T1", "Carol", 40, "ID3")
	require.ErrorIs(err, reservation.ErrNoSeatsAvailable)

	cancelled, err := s.sys.Cancel("T1", "ID1")
	require.NoError(err)
	require.Equal(1, cancelled.Seat, "the booking's own seat is freed")

	c, err := s.sys.Book("T1", "Carol", 40, "ID3")
	require.NoError(err)
	require.Equal(1, c.Seat)

	ps, err := s.sys.Passengers("T1")
	require.NoError(err)
	require.Equal([]ledger.Booking{
		{PassengerID: "ID3", Name: "Carol", Age: 40, Seat: 1, Ticket: "PNR003"},
		{PassengerID: "ID2", Name: "Bob", Age: 25, Seat: 2, Ticket: "PNR002"},
	}, ps)
}

func (s *SystemSuite) TestCancelFreesRecordedSeat() {
	require := require.New(s.T())
	tr, err := s.sys.AddTrain("T9", "A", "B", 3, 10)
	require.NoError(err)
	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := s.sys.Book("T9", "x", 1, id)
		require.NoError(err)
	}

	_, err = s.sys.Cancel("T9", "p2")
	require.NoError(err)
	require.Equal([]int{2}, tr.FreeSeats())
	require.Equal(1, tr.Available())

	_, err = s.sys.Cancel("T9", "p2")
	require.ErrorIs(err, reservation.ErrNotFound)
	require.Equal(1, tr.Available(), "failed cancel must not free seats")
}

func (s *SystemSuite) TestDuplicatePassengerDoesNotConsumeSeat() {
	require := require.New(s.T())
	tr, err := s.sys.AddTrain("T1", "A", "B", 2, 10)
	require.NoError(err)
	_, err = s.sys.Book("T1", "Alice", 30, "ID1")
	require.NoError(err)

	_, err = s.sys.Book("T1", "Alice again", 31, "ID1")
	require.ErrorIs(err, reservation.ErrDuplicateID)
	require.Equal(1, tr.Available())
}

func (s *SystemSuite) TestUnknownTrain() {
	require := require.New(s.T())
	_, err := s.sys.Book("nope", "Alice", 30, "ID1")
	require.ErrorIs(err, reservation.ErrTrainNotFound)
	_, err = s.sys.Cancel("nope", "ID1")
	require.ErrorIs(err, reservation.ErrTrainNotFound)
	_, err = s.sys.Passengers("nope")
	require.ErrorIs(err, reservation.ErrTrainNotFound)
	_, err = s.sys.Ticket("nope", "ID1")
	require.ErrorIs(err, reservation.ErrTrainNotFound)
}

func (s *SystemSuite) TestAddTrainValidation() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("", "A", "B", 2, 10)
	require.ErrorIs(err, reservation.ErrInvalidTrain)
	_, err = s.sys.AddTrain("T1", "A", "A", 2, 10)
	require.ErrorIs(err, reservation.ErrInvalidTrain)
	_, err = s.sys.AddTrain("T1", "A", "B", 0, 10)
	require.ErrorIs(err, reservation.ErrInvalidTrain)
	_, err = s.sys.AddTrain("T1", "A", "B", 2, 0)
	require.ErrorIs(err, reservation.ErrInvalidTrain)
	require.Zero(s.sys.Graph().EdgeCount(), "rejected trains add no routes")

	for _, bad := range [][3]string{
		{"#T1", "A", "B"},
		{"T1", "#A", "B"},
		{"T1", "A", "New Delhi"},
		{"T 1", "A", "B"},
	} {
		_, err = s.sys.AddTrain(bad[0], bad[1], bad[2], 2, 10)
		require.ErrorIs(err, reservation.ErrInvalidTrain, "%q", bad)
		require.ErrorIs(err, store.ErrMalformedRecord, "%q", bad)
	}
	require.Zero(s.sys.Graph().VertexCount(), "unstorable names never reach the graph")

	_, err = s.sys.AddTrain("T1", "A", "B", 2, 10)
	require.NoError(err)
	_, err = s.sys.AddTrain("T1", "C", "D", 2, 10)
	require.ErrorIs(err, reservation.ErrTrainExists)
	require.Equal(1, s.sys.Graph().EdgeCount())
}

func (s *SystemSuite) TestBookValidation() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("T1", "A", "B", 2, 10)
	require.NoError(err)

	_, err = s.sys.Book("T1", "Alice", -1, "ID1")
	require.ErrorIs(err, reservation.ErrInvalidPassenger)
	_, err = s.sys.Book("T1", "", 3, "ID1")
	require.ErrorIs(err, reservation.ErrInvalidPassenger)
	_, err = s.sys.Book("T1", "Alice", 3, "")
	require.ErrorIs(err, reservation.ErrInvalidPassenger)

	b, err := s.sys.Book("T1", "Baby", 0, "ID0")
	require.NoError(err)
	require.Equal(1, b.Seat)
}

func (s *SystemSuite) TestRefusedBookingsUseNoTicketRef() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("T1", "A", "B", 1, 10)
	require.NoError(err)

	a, err := s.sys.Book("T1", "Alice", 30, "ID1")
	require.NoError(err)
	require.Equal("PNR001", a.Ticket)
	_, err = s.sys.Book("T1", "Bob", 25, "ID2")
	require.ErrorIs(err, reservation.ErrNoSeatsAvailable)
	_, err = s.sys.Book("T1", "Alice", 30, "ID1")
	require.ErrorIs(err, reservation.ErrDuplicateID)
	_, err = s.sys.Book("nope", "Carol", 40, "ID3")
	require.ErrorIs(err, reservation.ErrTrainNotFound)

	_, err = s.sys.Cancel("T1", "ID1")
	require.NoError(err)
	b, err := s.sys.Book("T1", "Bob", 25, "ID2")
	require.NoError(err)
	require.Equal("PNR002", b.Ticket)
}

func (s *SystemSuite) TestTicket() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("T1", "Delhi", "Mumbai", 5, 1400)
	require.NoError(err)
	_, _ = s.sys.Book("T1", "Alice", 30, "ID1")
	_, _ = s.sys.Book("T1", "Bob", 25, "ID2")
	_, _ = s.sys.Cancel("T1", "ID1")

	tk, err := s.sys.Ticket("T1", "ID2")
	require.NoError(err)
	require.Equal("Delhi", tk.From)
	require.Equal("Mumbai", tk.To)
	require.Equal(2, tk.Seat, "ticket shows the booked seat")
	require.Contains(tk.String(), "Allocated Seat: 2\n")
	require.Contains(tk.String(), "Ticket Ref: PNR002\n")

	_, err = s.sys.Ticket("T1", "ID1")
	require.ErrorIs(err, reservation.ErrNotFound)
}

func (s *SystemSuite) TestRoutes() {
	require := require.New(s.T())
	require.NoError(s.sys.AddRoute("A", "B", 4))
	require.NoError(s.sys.AddRoute("B", "C", 4))
	require.NoError(s.sys.AddRoute("A", "C", 10))
	require.ErrorIs(s.sys.AddRoute("A", "D", 0), core.ErrBadWeight)
	require.ErrorIs(s.sys.AddRoute("#A", "D", 3), reservation.ErrInvalidStation)
	require.ErrorIs(s.sys.AddRoute("A", "Navi Mumbai", 3), reservation.ErrInvalidStation)
	require.ErrorIs(s.sys.AddRoute("", "D", 3), core.ErrEmptyVertexID)
	require.False(s.sys.Graph().HasVertex("D"))

	p, err := s.sys.ShortestRoute("A", "C")
	require.NoError(err)
	require.Equal(int64(8), p.Distance)
	require.Equal([]string{"A", "B", "C"}, p.Stations)

	legs, err := s.sys.FewestLegs("A", "C")
	require.NoError(err)
	require.Equal([]string{"A", "C"}, legs)

	_, err = s.sys.ShortestRoute("A", "Z")
	require.ErrorIs(err, reservation.ErrNoRoute)
	_, err = s.sys.FewestLegs("A", "Z")
	require.ErrorIs(err, reservation.ErrNoRoute)
	_, err = s.sys.FewestLegs("Z", "A")
	require.ErrorIs(err, reservation.ErrNoRoute)

	reach, err := s.sys.Reachable("B")
	require.NoError(err)
	require.Equal([]string{"B", "A", "C"}, reach)
	_, err = s.sys.Reachable("Z")
	require.ErrorIs(err, reservation.ErrStationNotFound)

	n := 0
	for range s.sys.Routes() {
		n++
	}
	require.Equal(6, n)
}

func (s *SystemSuite) TestTrainRoutesFeedGraph() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("T1", "Delhi", "Agra", 10, 230)
	require.NoError(err)
	_, err = s.sys.AddTrain("T2", "Agra", "Jhansi", 10, 290)
	require.NoError(err)

	p, err := s.sys.ShortestRoute("Delhi", "Jhansi")
	require.NoError(err)
	require.Equal(int64(520), p.Distance)

	numbers := []string{}
	for _, t := range s.sys.Trains() {
		numbers = append(numbers, t.Number)
	}
	require.Equal([]string{"T1", "T2"}, numbers)
}

func (s *SystemSuite) TestSnapshotRestore() {
	require := require.New(s.T())
	_, err := s.sys.AddTrain("T2", "Agra", "Jhansi", 10, 290)
	require.NoError(err)
	_, err = s.sys.AddTrain("T1", "Delhi", "Agra", 8, 230)
	require.NoError(err)
	require.NoError(s.sys.AddRoute("Jhansi", "Bhopal", 290))
	_, _ = s.sys.Book("T1", "Alice", 30, "ID1")

	snap := s.sys.Snapshot()
	require.Equal(store.Snapshot{
		Trains: []store.TrainRecord{
			{Number: "T1", Source: "Delhi", Destination: "Agra", Seats: 8, Distance: 230},
			{Number: "T2", Source: "Agra", Destination: "Jhansi", Seats: 10, Distance: 290},
		},
		Routes: []store.RouteRecord{{From: "Jhansi", To: "Bhopal", Distance: 290}},
	}, snap)

	restored := reservation.New()
	require.NoError(restored.Restore(snap))
	require.Equal(snap, restored.Snapshot())
	p, err := restored.ShortestRoute("Delhi", "Bhopal")
	require.NoError(err)
	require.Equal(int64(810), p.Distance)

	tr, err := restored.Train("T1")
	require.NoError(err)
	require.Equal(8, tr.Available(), "bookings are not persisted")

	// Restoring again reports every duplicate but still adds the routes.
	err = restored.Restore(snap)
	require.ErrorIs(err, reservation.ErrTrainExists)
}

func TestSystemSuite(t *testing.T) {
	suite.Run(t, new(SystemSuite))
}

// TestConcurrentBooking books from many goroutines and checks that every
// seat is handed out exactly once.
func TestConcurrentBooking(t *testing.T) {
	sys := reservation.New()
	const seats = 50
	_, err := sys.AddTrain("T1", "A", "B", seats, 10)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		got  = map[int]bool{}
		full int
	)
	for i := 0; i < seats+10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := sys.Book("T1", "p", 20, fmt.Sprintf("ID%d", i))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, reservation.ErrNoSeatsAvailable)
				full++
				return
			}
			assert.False(t, got[b.Seat], "seat %d allocated twice", b.Seat)
			got[b.Seat] = true
		}(i)
	}
	wg.Wait()

	assert.Len(t, got, seats)
	assert.Equal(t, 10, full)
}
