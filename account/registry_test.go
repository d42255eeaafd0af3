package account_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/account"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

func newRegistry(records ...store.UserRecord) *account.Registry {
	return account.NewRegistry(records, account.WithCost(bcrypt.MinCost))
}

func TestSignupLogin(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Signup("alice", "s3cret"))

	assert.NoError(t, r.Login("alice", "s3cret"))
	assert.ErrorIs(t, r.Login("alice", "wrong"), account.ErrBadLogin)
	assert.ErrorIs(t, r.Login("bob", "s3cret"), account.ErrBadLogin)
	assert.True(t, r.Exists("alice"))
	assert.Equal(t, 1, r.Len())
}

func TestSignupDuplicate(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Signup("alice", "one"))
	assert.ErrorIs(t, r.Signup("alice", "two"), account.ErrUserExists)
	assert.NoError(t, r.Login("alice", "one"), "original password is kept")
}

func TestSignupValidation(t *testing.T) {
	r := newRegistry()
	for _, tc := range []struct{ user, pass string }{
		{"", "pw"},
		{"alice", ""},
		{"al ice", "pw"},
		{"alice", "p\tw"},
		{"#alice", "pw"},
	} {
		assert.ErrorIs(t, r.Signup(tc.user, tc.pass), account.ErrInvalidCredentials, "%q/%q", tc.user, tc.pass)
	}
	assert.Zero(t, r.Len())
}

func TestRecordsRoundTrip(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Signup("zed", "pw1"))
	require.NoError(t, r.Signup("amy", "pw2"))

	recs := r.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "amy", recs[0].Username)
	assert.Equal(t, "zed", recs[1].Username)
	for _, rec := range recs {
		assert.True(t, strings.HasPrefix(rec.Hash, "$2a$"), "bcrypt hash, not plaintext")
	}

	reloaded := newRegistry(recs...)
	assert.NoError(t, reloaded.Login("amy", "pw2"))
	assert.NoError(t, reloaded.Login("zed", "pw1"))
	if diff := cmp.Diff(recs, reloaded.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestWithCostOutOfRange(t *testing.T) {
	r := account.NewRegistry(nil, account.WithCost(bcrypt.MaxCost+1))
	// Falls back to the default cost instead of failing on Signup.
	require.NoError(t, r.Signup("alice", "pw"))
	cost, err := bcrypt.Cost([]byte(r.Records()[0].Hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestConcurrentSignup(t *testing.T) {
	r := newRegistry()
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.Signup("same", "pw")
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, account.ErrUserExists)
	}
	assert.Equal(t, 1, ok)
}
