//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/claimtoken"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/tests/common/builder"
	"workshop-enroll/tests/common/dbtest"
	commandsmock "workshop-enroll/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	cartRepo     *commandsmock.MockCartRepository
	workshopRepo *commandsmock.MockWorkshopRepository
	enrollments  *commandsmock.MockEnrollmentRepository
	waitlistRepo *commandsmock.MockWaitlistRepository
	gatewayMock  *commandsmock.MockPaymentGateway
	cmd          commands.CheckoutCommands
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &checkoutFixture{
		cartRepo:     commandsmock.NewMockCartRepository(ctrl),
		workshopRepo: commandsmock.NewMockWorkshopRepository(ctrl),
		enrollments:  commandsmock.NewMockEnrollmentRepository(ctrl),
		waitlistRepo: commandsmock.NewMockWaitlistRepository(ctrl),
		gatewayMock:  commandsmock.NewMockPaymentGateway(ctrl),
	}
	uow := &dbtest.StubUnitOfWork{}
	clk := clock.NewMockClock(testNow)
	tokens := commands.NewTokenService(f.waitlistRepo, uow, clk, claimTTL)
	f.cmd = commands.NewCheckoutCommands(
		f.cartRepo, f.workshopRepo, f.enrollments, tokens, f.gatewayMock, uow, clk,
		config.GatewayConfig{
			SuccessURL: "http://localhost:3000/checkout/success",
			CancelURL:  "http://localhost:3000/checkout/cancel",
		},
	)
	return f
}

func testCustomer(t *testing.T) enrollment.Customer {
	t.Helper()
	customer, err := enrollment.NewCustomer("Jamie Doe", "jamie@example.com", "+15550100")
	require.NoError(t, err)
	return customer
}

func TestStartCartCheckout(t *testing.T) {
	t.Run("opens one session for the whole cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		owner := sessionOwner(t)
		first, err := builder.NewWorkshopBuilder().WithCapacity(10).WithTitle("Glazing").WithBasePrice(4500).BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewWorkshopBuilder().WithCapacity(10).WithTitle("Raku Firing").WithBasePrice(6000).BuildDomain()
		require.NoError(t, err)
		cartID := uuid.New()
		snapshot := builder.NewCartBuilder().
			WithSessionOwner("sess_test").
			WithLine(first.ID(), 4500).
			WithLine(second.ID(), 6000).
			BuildSnapshot()

		f.cartRepo.EXPECT().FindByOwner(gomock.Any(), gomock.Any(), owner).Return(snapshot, nil)
		f.cartRepo.EXPECT().FindCartID(gomock.Any(), gomock.Any(), owner).Return(cartID, nil)
		for _, ws := range []uuid.UUID{first.ID(), second.ID()} {
			f.workshopRepo.EXPECT().CountCompleted(gomock.Any(), gomock.Any(), ws).Return(0, nil)
		}
		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), first.ID()).Return(first, nil)
		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), second.ID()).Return(second, nil)

		f.gatewayMock.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gateway.CheckoutSessionParams) (*gateway.CreatedSession, error) {
				require.Len(t, params.LineItems, 2)
				assert.Equal(t, "Glazing", params.LineItems[0].Name)
				assert.Equal(t, int64(4500), params.LineItems[0].UnitPriceCents)
				assert.Equal(t, "jamie@example.com", params.CustomerEmail)
				assert.Equal(t, cartID.String(), params.Metadata[gateway.MetaCartID])
				// The workshop list rides along so a lost pending write can
				// be rebuilt by the completed webhook.
				ids := strings.Split(params.Metadata["workshop_ids"], ",")
				assert.Equal(t, []string{first.ID().String(), second.ID().String()}, ids)
				return &gateway.CreatedSession{ID: "cs_cart_1", URL: "https://gateway.test/c/cs_cart_1"}, nil
			})

		var created []*enrollment.Enrollment
		f.enrollments.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, e *enrollment.Enrollment) error {
				created = append(created, e)
				return nil
			}).Times(2)

		result, err := f.cmd.StartCartCheckout(context.Background(), owner, testCustomer(t))
		require.NoError(t, err)
		assert.Equal(t, "cs_cart_1", result.GatewaySessionID)
		assert.Equal(t, "https://gateway.test/c/cs_cart_1", result.CheckoutURL)

		require.Len(t, created, 2)
		for _, e := range created {
			assert.True(t, e.IsPending())
			require.NotNil(t, e.GatewaySessionID())
			assert.Equal(t, "cs_cart_1", *e.GatewaySessionID())
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		owner := sessionOwner(t)

		f.cartRepo.EXPECT().
			FindByOwner(gomock.Any(), gomock.Any(), owner).
			Return(builder.NewCartBuilder().BuildSnapshot(), nil)

		_, err := f.cmd.StartCartCheckout(context.Background(), owner, testCustomer(t))
		assert.True(t, errors.Is(err, commands.ErrCartEmpty))
	})

	t.Run("gateway timeout", func(t *testing.T) {
		f := newCheckoutFixture(t)
		owner := sessionOwner(t)
		ws, err := builder.NewWorkshopBuilder().WithCapacity(10).BuildDomain()
		require.NoError(t, err)
		snapshot := builder.NewCartBuilder().
			WithSessionOwner("sess_test").
			WithLine(ws.ID(), 4500).
			BuildSnapshot()

		f.cartRepo.EXPECT().FindByOwner(gomock.Any(), gomock.Any(), owner).Return(snapshot, nil)
		f.cartRepo.EXPECT().FindCartID(gomock.Any(), gomock.Any(), owner).Return(uuid.New(), nil)
		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), ws.ID()).Return(ws, nil)
		f.workshopRepo.EXPECT().CountCompleted(gomock.Any(), gomock.Any(), ws.ID()).Return(0, nil)
		f.gatewayMock.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded)

		// No pending rows are written when the gateway call fails.
		_, err = f.cmd.StartCartCheckout(context.Background(), owner, testCustomer(t))
		assert.True(t, errors.Is(err, commands.ErrGatewayTimeout))
	})
}

func TestStartWorkshopCheckout(t *testing.T) {
	t.Run("direct purchase", func(t *testing.T) {
		f := newCheckoutFixture(t)
		ws, err := builder.NewWorkshopBuilder().WithCapacity(10).WithBasePrice(4500).BuildDomain()
		require.NoError(t, err)

		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), ws.ID()).Return(ws, nil)
		f.workshopRepo.EXPECT().CountCompleted(gomock.Any(), gomock.Any(), ws.ID()).Return(0, nil)
		f.gatewayMock.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&gateway.CreatedSession{ID: "cs_solo_1", URL: "https://gateway.test/c/cs_solo_1"}, nil)
		f.enrollments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.cmd.StartWorkshopCheckout(context.Background(), commands.SingleCheckoutParams{
			WorkshopID: ws.ID(),
			Customer:   testCustomer(t),
		})
		require.NoError(t, err)
		assert.Equal(t, "cs_solo_1", result.GatewaySessionID)
	})

	t.Run("claimed checkout bypasses the seat check", func(t *testing.T) {
		f := newCheckoutFixture(t)
		// Full workshop: without the claim this would be rejected. No
		// CountCompleted expectation is set, so a seat check would fail the test.
		ws, err := builder.NewWorkshopBuilder().WithCapacity(1).WithBasePrice(4500).BuildDomain()
		require.NoError(t, err)

		plaintext, hash, err := claimtoken.Generate()
		require.NoError(t, err)
		entry, err := builder.NewWaitlistBuilder().
			WithWorkshopID(ws.ID()).
			AsNotified(hash, testNow.Add(24*time.Hour)).
			BuildDomain()
		require.NoError(t, err)
		entryID := entry.ID()

		f.waitlistRepo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)
		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), ws.ID()).Return(ws, nil)
		f.gatewayMock.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gateway.CheckoutSessionParams) (*gateway.CreatedSession, error) {
				// The claim rides the metadata so the webhook can consume it.
				assert.Equal(t, entryID.String(), params.Metadata[gateway.MetaWaitlistEntryID])
				assert.Equal(t, plaintext, params.Metadata[gateway.MetaClaimToken])
				return &gateway.CreatedSession{ID: "cs_claim_1", URL: "https://gateway.test/c/cs_claim_1"}, nil
			})
		f.enrollments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err = f.cmd.StartWorkshopCheckout(context.Background(), commands.SingleCheckoutParams{
			WorkshopID:   ws.ID(),
			Customer:     testCustomer(t),
			ClaimToken:   plaintext,
			ClaimEntryID: &entryID,
		})
		require.NoError(t, err)
	})

	t.Run("expired claim blocks checkout", func(t *testing.T) {
		f := newCheckoutFixture(t)
		plaintext, hash, err := claimtoken.Generate()
		require.NoError(t, err)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(-time.Minute)).
			BuildDomain()
		require.NoError(t, err)
		entryID := entry.ID()

		f.waitlistRepo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)
		f.waitlistRepo.EXPECT().MarkExpired(gomock.Any(), gomock.Any(), entryID).Return(true, nil)

		_, err = f.cmd.StartWorkshopCheckout(context.Background(), commands.SingleCheckoutParams{
			WorkshopID:   entry.WorkshopID(),
			Customer:     testCustomer(t),
			ClaimToken:   plaintext,
			ClaimEntryID: &entryID,
		})
		assert.True(t, errors.Is(err, commands.ErrTokenExpired))
	})

	t.Run("pending write failure after the session opened", func(t *testing.T) {
		f := newCheckoutFixture(t)
		ws, err := builder.NewWorkshopBuilder().WithCapacity(10).BuildDomain()
		require.NoError(t, err)

		f.workshopRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), ws.ID()).Return(ws, nil)
		f.workshopRepo.EXPECT().CountCompleted(gomock.Any(), gomock.Any(), ws.ID()).Return(0, nil)
		f.gatewayMock.EXPECT().
			CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(&gateway.CreatedSession{ID: "cs_solo_2", URL: "https://gateway.test/c/cs_solo_2"}, nil)
		f.enrollments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err = f.cmd.StartWorkshopCheckout(context.Background(), commands.SingleCheckoutParams{
			WorkshopID: ws.ID(),
			Customer:   testCustomer(t),
		})
		assert.True(t, errors.Is(err, commands.ErrCheckoutFailed))
	})
}
