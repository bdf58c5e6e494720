//go:build unit

package enrollment_test

import (
	"testing"
	"time"

	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPending(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, enrollment.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		require.NotNil(t, actual.GatewaySessionID())
		assert.Nil(t, actual.GatewayPaymentIntentID())
		assert.Nil(t, actual.AccountID())
	})

	t.Run("rejects missing gateway session", func(t *testing.T) {
		_, err := builder.NewEnrollmentBuilder().WithSessionID("").BuildPending()
		assert.ErrorIs(t, err, enrollment.ErrMissingGatewaySession)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := builder.NewEnrollmentBuilder().WithAmount(-1).BuildPending()
		assert.ErrorIs(t, err, enrollment.ErrNegativeAmount)
	})
}

func TestNewManual(t *testing.T) {
	actual, err := builder.NewEnrollmentBuilder().
		With(func(b *builder.EnrollmentBuilder) { b.Notes = "paid cash at front desk" }).
		BuildManual()
	require.NoError(t, err)

	assert.Equal(t, enrollment.StatusCompleted, actual.Status())
	assert.Nil(t, actual.GatewaySessionID())
	assert.Equal(t, "paid cash at front desk", actual.Notes())
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    enrollment.Status
		to      enrollment.Status
		allowed bool
	}{
		{"pending to completed", enrollment.StatusPending, enrollment.StatusCompleted, true},
		{"pending to failed", enrollment.StatusPending, enrollment.StatusFailed, true},
		{"pending to cancelled", enrollment.StatusPending, enrollment.StatusCancelled, true},
		{"pending to refunded", enrollment.StatusPending, enrollment.StatusRefunded, false},
		{"completed to refunded", enrollment.StatusCompleted, enrollment.StatusRefunded, true},
		{"completed to failed", enrollment.StatusCompleted, enrollment.StatusFailed, false},
		{"completed to pending", enrollment.StatusCompleted, enrollment.StatusPending, false},
		{"refunded accepts nothing", enrollment.StatusRefunded, enrollment.StatusCompleted, false},
		{"failed accepts nothing", enrollment.StatusFailed, enrollment.StatusCompleted, false},
		{"cancelled accepts nothing", enrollment.StatusCancelled, enrollment.StatusCompleted, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransition(c.to))
		})
	}

	t.Run("admin may cancel a completed enrollment", func(t *testing.T) {
		assert.True(t, enrollment.StatusCompleted.CanAdminTransition(enrollment.StatusCancelled))
		assert.False(t, enrollment.StatusRefunded.CanAdminTransition(enrollment.StatusCancelled))
	})

	t.Run("only completed occupies a seat", func(t *testing.T) {
		assert.True(t, enrollment.StatusCompleted.OccupiesSeat())
		assert.False(t, enrollment.StatusPending.OccupiesSeat())
		assert.False(t, enrollment.StatusRefunded.OccupiesSeat())
	})
}

func TestComplete(t *testing.T) {
	now := time.Now()

	t.Run("attaches payment identifiers and settles the amount", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().WithAmount(0).BuildPending()
		require.NoError(t, err)

		require.NoError(t, e.Complete("pi_123", "cus_456", 4500, now))

		assert.True(t, e.IsCompleted())
		require.NotNil(t, e.GatewayPaymentIntentID())
		assert.Equal(t, "pi_123", *e.GatewayPaymentIntentID())
		require.NotNil(t, e.GatewayCustomerID())
		assert.Equal(t, "cus_456", *e.GatewayCustomerID())
		assert.Equal(t, int64(4500), e.AmountCents())
	})

	t.Run("zero event amount keeps the recorded amount", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().WithAmount(4500).BuildPending()
		require.NoError(t, err)

		require.NoError(t, e.Complete("pi_123", "", 0, now))
		assert.Equal(t, int64(4500), e.AmountCents())
		assert.Nil(t, e.GatewayCustomerID())
	})

	t.Run("replay against a completed enrollment is rejected", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)
		require.NoError(t, e.Complete("pi_123", "", 0, now))

		assert.ErrorIs(t, e.Complete("pi_123", "", 0, now), enrollment.ErrIllegalTransition)
	})
}

func TestApplyRefund(t *testing.T) {
	now := time.Now()

	newCompleted := func(t *testing.T, amount int64) *enrollment.Enrollment {
		t.Helper()
		e, err := builder.NewEnrollmentBuilder().WithAmount(amount).BuildPending()
		require.NoError(t, err)
		require.NoError(t, e.Complete("pi_123", "", 0, now))
		return e
	}

	t.Run("full refund transitions to refunded", func(t *testing.T) {
		e := newCompleted(t, 4500)
		require.NoError(t, e.ApplyRefund("re_1", 4500, now))

		assert.Equal(t, enrollment.StatusRefunded, e.Status())
		require.NotNil(t, e.Refund())
		assert.Equal(t, int64(4500), e.Refund().AmountCents)
	})

	t.Run("partial refund stays completed", func(t *testing.T) {
		e := newCompleted(t, 4500)
		require.NoError(t, e.ApplyRefund("re_1", 2000, now))

		assert.Equal(t, enrollment.StatusCompleted, e.Status())
		require.NotNil(t, e.Refund())
	})

	t.Run("refund above the amount paid is rejected", func(t *testing.T) {
		e := newCompleted(t, 4500)
		assert.ErrorIs(t, e.ApplyRefund("re_1", 5000, now), enrollment.ErrRefundExceedsAmount)
	})

	t.Run("refund against a pending enrollment is rejected", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)
		assert.ErrorIs(t, e.ApplyRefund("re_1", 4500, now), enrollment.ErrIllegalTransition)
	})

	t.Run("IsFullRefund treats over-refunds as full", func(t *testing.T) {
		e := newCompleted(t, 4500)
		assert.True(t, e.IsFullRefund(4500))
		assert.True(t, e.IsFullRefund(5000))
		assert.False(t, e.IsFullRefund(4499))
	})
}

func TestCancelByAdmin(t *testing.T) {
	now := time.Now()

	t.Run("cancels pending", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)
		require.NoError(t, e.CancelByAdmin(now))
		assert.Equal(t, enrollment.StatusCancelled, e.Status())
	})

	t.Run("cancels completed", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)
		require.NoError(t, e.Complete("pi_123", "", 0, now))
		require.NoError(t, e.CancelByAdmin(now))
		assert.Equal(t, enrollment.StatusCancelled, e.Status())
	})

	t.Run("cannot cancel refunded", func(t *testing.T) {
		e, err := builder.NewEnrollmentBuilder().WithStatus(enrollment.StatusRefunded).BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, e.CancelByAdmin(now), enrollment.ErrIllegalTransition)
	})
}

func TestCustomer(t *testing.T) {
	t.Run("normalizes input", func(t *testing.T) {
		c, err := enrollment.NewCustomer("  Jamie Doe  ", " Jamie@Example.COM ", " +15550100 ")
		require.NoError(t, err)

		assert.Equal(t, "Jamie Doe", c.Name())
		assert.Equal(t, "jamie@example.com", c.Email())
		assert.Equal(t, "+15550100", c.Phone())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := enrollment.NewCustomer("   ", "jamie@example.com", "")
		assert.ErrorIs(t, err, enrollment.ErrEmptyName)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@b", "a b@example.com"} {
			_, err := enrollment.NewCustomer("Jamie", email, "")
			assert.ErrorIs(t, err, enrollment.ErrInvalidEmail, "email %q", email)
		}
	})
}
