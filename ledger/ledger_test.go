package ledger_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/ledger"
)

var (
	alice = ledger.Booking{PassengerID: "ID1", Name: "Alice", Age: 30, Seat: 1}
	bob   = ledger.Booking{PassengerID: "ID2", Name: "Bob", Age: 25, Seat: 2}
	carol = ledger.Booking{PassengerID: "ID3", Name: "Carol", Age: 40, Seat: 3}
)

func TestInsertFind(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Insert(alice))

	got, err := l.Find("ID1")
	require.NoError(t, err)
	assert.Equal(t, alice, got)
	assert.Equal(t, 1, l.Len())
}

func TestRemoveThenFind(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Insert(alice))

	got, err := l.Remove("ID1")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = l.Find("ID1")
	require.ErrorIs(t, err, ledger.ErrNotFound)
	_, err = l.Remove("ID1")
	require.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Zero(t, l.Len())
}

func TestInsertDuplicate(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Insert(alice))

	dup := alice
	dup.Seat = 7
	require.ErrorIs(t, l.Insert(dup), ledger.ErrDuplicateID)

	got, err := l.Find("ID1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Seat, "original booking must survive")
}

func TestListNewestFirst(t *testing.T) {
	l := ledger.New()
	for _, b := range []ledger.Booking{alice, bob, carol} {
		require.NoError(t, l.Insert(b))
	}
	_, err := l.Remove("ID2")
	require.NoError(t, err)
	require.NoError(t, l.Insert(bob))

	want := []ledger.Booking{bob, carol, alice}
	if diff := cmp.Diff(want, l.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	var viaAll []ledger.Booking
	for b := range l.All() {
		viaAll = append(viaAll, b)
	}
	assert.Equal(t, want, viaAll)
}

func TestListIsSnapshot(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Insert(alice))
	snap := l.List()
	require.NoError(t, l.Insert(bob))

	assert.Len(t, snap, 1)
	assert.Len(t, l.List(), 2)
	assert.Empty(t, ledger.New().List())
}
