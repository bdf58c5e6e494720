//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/tests/common/builder"
	"workshop-enroll/tests/common/dbtest"
	commandsmock "workshop-enroll/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminFixture struct {
	enrollments  *commandsmock.MockEnrollmentRepository
	workshopRepo *commandsmock.MockWorkshopRepository
	accounts     *commandsmock.MockAccountRepository
	waitlist     *commandsmock.MockWaitlistCommands
	gatewayMock  *commandsmock.MockPaymentGateway
	cmd          commands.AdminCommands
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &adminFixture{
		enrollments:  commandsmock.NewMockEnrollmentRepository(ctrl),
		workshopRepo: commandsmock.NewMockWorkshopRepository(ctrl),
		accounts:     commandsmock.NewMockAccountRepository(ctrl),
		waitlist:     commandsmock.NewMockWaitlistCommands(ctrl),
		gatewayMock:  commandsmock.NewMockPaymentGateway(ctrl),
	}
	f.cmd = commands.NewAdminCommands(
		f.enrollments, f.workshopRepo, f.accounts, f.waitlist, f.gatewayMock,
		&dbtest.StubUnitOfWork{}, clock.NewMockClock(testNow),
	)
	return f
}

func TestRecordOfflineEnrollment(t *testing.T) {
	t.Run("registers a completed enrollment", func(t *testing.T) {
		f := newAdminFixture(t)
		ws, err := builder.NewWorkshopBuilder().BuildDomain()
		require.NoError(t, err)
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		require.NoError(t, err)

		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), ws.ID()).Return(ws, nil)
		f.enrollments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jamie@example.com").Return(acct, nil)
		f.enrollments.EXPECT().LinkAccount(gomock.Any(), gomock.Any(), gomock.Any(), acct.ID()).Return(nil)

		created, err := f.cmd.RecordOfflineEnrollment(context.Background(), commands.OfflineEnrollmentParams{
			WorkshopID:  ws.ID(),
			Customer:    testCustomer(t),
			AmountCents: 4500,
			Currency:    "usd",
			Notes:       "paid cash at front desk",
		})
		require.NoError(t, err)
		assert.True(t, created.IsCompleted())
		assert.Nil(t, created.GatewaySessionID())
		assert.Equal(t, "paid cash at front desk", created.Notes())
	})

	t.Run("no matching account is fine", func(t *testing.T) {
		f := newAdminFixture(t)
		ws, err := builder.NewWorkshopBuilder().BuildDomain()
		require.NoError(t, err)

		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), ws.ID()).Return(ws, nil)
		f.enrollments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errNotFound)

		created, err := f.cmd.RecordOfflineEnrollment(context.Background(), commands.OfflineEnrollmentParams{
			WorkshopID:  ws.ID(),
			Customer:    testCustomer(t),
			AmountCents: 4500,
			Currency:    "usd",
		})
		require.NoError(t, err)
		assert.Nil(t, created.AccountID())
	})

	t.Run("unknown workshop", func(t *testing.T) {
		f := newAdminFixture(t)
		id := uuid.New()

		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, errNotFound)

		_, err := f.cmd.RecordOfflineEnrollment(context.Background(), commands.OfflineEnrollmentParams{
			WorkshopID:  id,
			Customer:    testCustomer(t),
			AmountCents: 4500,
			Currency:    "usd",
		})
		assert.True(t, errors.Is(err, commands.ErrWorkshopNotFound))
	})
}

func TestInitiateRefund(t *testing.T) {
	t.Run("asks the gateway and leaves local state alone", func(t *testing.T) {
		f := newAdminFixture(t)
		done, err := builder.NewEnrollmentBuilder().
			WithPaymentIntentID("pi_900").
			AsCompleted().
			BuildDomain()
		require.NoError(t, err)
		amount := int64(2000)

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), done.ID()).Return(done, nil)
		f.gatewayMock.EXPECT().
			CreateRefund(gomock.Any(), gateway.RefundParams{PaymentIntentID: "pi_900", AmountCents: &amount}).
			Return(&gateway.CreatedRefund{ID: "re_900", AmountCents: 2000, Status: "pending"}, nil)

		require.NoError(t, f.cmd.InitiateRefund(context.Background(), done.ID(), &amount))
	})

	t.Run("pending enrollment is not refundable", func(t *testing.T) {
		f := newAdminFixture(t)
		pending, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), pending.ID()).Return(pending, nil)

		err = f.cmd.InitiateRefund(context.Background(), pending.ID(), nil)
		assert.True(t, errors.Is(err, commands.ErrRefundNotAllowed))
	})

	t.Run("unknown enrollment", func(t *testing.T) {
		f := newAdminFixture(t)
		id := uuid.New()

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, errNotFound)

		err := f.cmd.InitiateRefund(context.Background(), id, nil)
		assert.True(t, errors.Is(err, commands.ErrEnrollmentNotFound))
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := newAdminFixture(t)
		done, err := builder.NewEnrollmentBuilder().
			WithPaymentIntentID("pi_901").
			AsCompleted().
			BuildDomain()
		require.NoError(t, err)

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), done.ID()).Return(done, nil)
		f.gatewayMock.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrGatewayUnavailable)

		err = f.cmd.InitiateRefund(context.Background(), done.ID(), nil)
		assert.True(t, errors.Is(err, commands.ErrRefundFailed))
	})
}

func TestCancelEnrollment(t *testing.T) {
	t.Run("cancelling a completed enrollment promotes the waitlist", func(t *testing.T) {
		f := newAdminFixture(t)
		done, err := builder.NewEnrollmentBuilder().AsCompleted().BuildDomain()
		require.NoError(t, err)

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), done.ID()).Return(done, nil)
		f.enrollments.EXPECT().CancelByAdmin(gomock.Any(), gomock.Any(), done.ID(), testNow).Return(true, nil)
		f.waitlist.EXPECT().PromoteNext(gomock.Any(), gomock.Any(), done.WorkshopID()).Return(nil)

		require.NoError(t, f.cmd.CancelEnrollment(context.Background(), done.ID()))
	})

	t.Run("cancelling a pending enrollment frees no seat", func(t *testing.T) {
		f := newAdminFixture(t)
		pending, err := builder.NewEnrollmentBuilder().BuildPending()
		require.NoError(t, err)

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), pending.ID()).Return(pending, nil)
		f.enrollments.EXPECT().CancelByAdmin(gomock.Any(), gomock.Any(), pending.ID(), testNow).Return(true, nil)

		require.NoError(t, f.cmd.CancelEnrollment(context.Background(), pending.ID()))
	})

	t.Run("refunded enrollment cannot be cancelled", func(t *testing.T) {
		f := newAdminFixture(t)
		refunded, err := builder.NewEnrollmentBuilder().
			WithStatus(enrollment.StatusRefunded).
			BuildDomain()
		require.NoError(t, err)

		f.enrollments.EXPECT().FindByID(gomock.Any(), gomock.Any(), refunded.ID()).Return(refunded, nil)
		f.enrollments.EXPECT().CancelByAdmin(gomock.Any(), gomock.Any(), refunded.ID(), testNow).Return(false, nil)

		err = f.cmd.CancelEnrollment(context.Background(), refunded.ID())
		assert.True(t, errors.Is(err, commands.ErrCancelNotAllowed))
	})
}
