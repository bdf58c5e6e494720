//go:build unit

package waitlist_test

import (
	"testing"
	"time"

	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Now()
	e := waitlist.NewEntry(uuid.New(), "Jamie Doe", "jamie@example.com", "+15550100", now)

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.Equal(t, waitlist.StatusWaiting, e.Status())
	assert.Nil(t, e.ClaimTokenHash())
	assert.Nil(t, e.TokenExpiresAt())
	assert.Equal(t, now, e.CreatedAt())
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    waitlist.Status
		to      waitlist.Status
		allowed bool
	}{
		{"waiting to notified", waitlist.StatusWaiting, waitlist.StatusNotified, true},
		{"waiting to cancelled", waitlist.StatusWaiting, waitlist.StatusCancelled, true},
		{"waiting to converted", waitlist.StatusWaiting, waitlist.StatusConverted, false},
		{"notified to converted", waitlist.StatusNotified, waitlist.StatusConverted, true},
		{"notified to expired", waitlist.StatusNotified, waitlist.StatusExpired, true},
		{"notified to waiting", waitlist.StatusNotified, waitlist.StatusWaiting, false},
		{"converted is terminal", waitlist.StatusConverted, waitlist.StatusExpired, false},
		{"expired is terminal", waitlist.StatusExpired, waitlist.StatusNotified, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransition(c.to))
		})
	}
}

func TestNotify(t *testing.T) {
	now := time.Now()
	expiry := now.Add(48 * time.Hour)

	t.Run("binds token hash and expiry", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, e.Notify("hash123", expiry))

		assert.Equal(t, waitlist.StatusNotified, e.Status())
		require.NotNil(t, e.ClaimTokenHash())
		assert.Equal(t, "hash123", *e.ClaimTokenHash())
		require.NotNil(t, e.TokenExpiresAt())
		assert.Equal(t, expiry, *e.TokenExpiresAt())
	})

	t.Run("second notify is rejected", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, e.Notify("hash123", expiry))

		assert.ErrorIs(t, e.Notify("hash456", expiry), waitlist.ErrIllegalTransition)
	})
}

func TestTokenValidity(t *testing.T) {
	now := time.Now()
	expiry := now.Add(48 * time.Hour)

	t.Run("valid while notified and before expiry", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().AsNotified("hash123", expiry).BuildDomain()
		require.NoError(t, err)

		assert.True(t, e.TokenValid(now))
		assert.False(t, e.TokenExpired(now))
	})

	t.Run("invalid at the expiry instant", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().AsNotified("hash123", expiry).BuildDomain()
		require.NoError(t, err)

		assert.False(t, e.TokenValid(expiry))
		assert.True(t, e.TokenExpired(expiry))
	})

	t.Run("invalid once converted", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().AsNotified("hash123", expiry).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, e.Convert())

		assert.False(t, e.TokenValid(now))
	})

	t.Run("waiting entry has no valid token", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)

		assert.False(t, e.TokenValid(now))
		assert.False(t, e.TokenExpired(now))
	})
}

func TestConvert(t *testing.T) {
	expiry := time.Now().Add(48 * time.Hour)

	t.Run("converts exactly once", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().AsNotified("hash123", expiry).BuildDomain()
		require.NoError(t, err)

		require.NoError(t, e.Convert())
		assert.Equal(t, waitlist.StatusConverted, e.Status())

		assert.ErrorIs(t, e.Convert(), waitlist.ErrIllegalTransition)
	})

	t.Run("waiting entry cannot convert", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, e.Convert(), waitlist.ErrIllegalTransition)
	})
}

func TestExpireAndCancel(t *testing.T) {
	expiry := time.Now().Add(48 * time.Hour)

	t.Run("notified entry expires", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().AsNotified("hash123", expiry).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, e.Expire())
		assert.Equal(t, waitlist.StatusExpired, e.Status())
	})

	t.Run("waiting entry cancels", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, e.Cancel())
		assert.Equal(t, waitlist.StatusCancelled, e.Status())
	})

	t.Run("converted entry is immutable", func(t *testing.T) {
		e, err := builder.NewWaitlistBuilder().WithStatus(waitlist.StatusConverted).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, e.Expire(), waitlist.ErrIllegalTransition)
		assert.ErrorIs(t, e.Cancel(), waitlist.ErrIllegalTransition)
	})
}
