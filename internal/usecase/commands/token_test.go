//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/internal/pkg/claimtoken"
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

const claimTTL = 48 * time.Hour

func newTokenService(t *testing.T) (*commands.TokenService, *commandsmock.MockWaitlistRepository, *clock.MockClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockWaitlistRepository(ctrl)
	clk := clock.NewMockClock(testNow)
	return commands.NewTokenService(repo, &dbtest.StubUnitOfWork{}, clk, claimTTL), repo, clk
}

func TestTokenIssue(t *testing.T) {
	t.Run("binds hash and expiry to the entry", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)

		var boundHash string
		repo.EXPECT().
			MarkNotified(gomock.Any(), gomock.Any(), entry.ID(), gomock.Any(), testNow.Add(claimTTL)).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, hash string, _ time.Time) (bool, error) {
				boundHash = hash
				return true, nil
			})

		plaintext, expiresAt, err := svc.Issue(context.Background(), nil, entry)
		require.NoError(t, err)
		assert.Equal(t, testNow.Add(claimTTL), expiresAt)
		// Only the hash reaches storage; the plaintext must reproduce it.
		assert.Equal(t, claimtoken.Hash(plaintext), boundHash)
		assert.NotEqual(t, plaintext, boundHash)
	})

	t.Run("lost promotion race", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().
			MarkNotified(gomock.Any(), gomock.Any(), entry.ID(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, _, err = svc.Issue(context.Background(), nil, entry)
		assert.True(t, errors.Is(err, commands.ErrTokenAlreadyClaimed))
	})
}

func TestTokenValidate(t *testing.T) {
	plaintext, hash, err := claimtoken.Generate()
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)

		entryID, err := svc.Validate(context.Background(), plaintext, entry.ID())
		require.NoError(t, err)
		assert.Equal(t, entry.ID(), entryID)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)

		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errNotFound)

		_, err := svc.Validate(context.Background(), "bogus", uuid.New())
		assert.True(t, errors.Is(err, commands.ErrTokenNotFound))
	})

	t.Run("entry id substitution is rejected", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)

		_, err = svc.Validate(context.Background(), plaintext, uuid.New())
		assert.True(t, errors.Is(err, commands.ErrTokenMismatch))
	})

	t.Run("already converted entry", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(time.Hour)).
			WithStatus(waitlist.StatusConverted).
			BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)

		_, err = svc.Validate(context.Background(), plaintext, entry.ID())
		assert.True(t, errors.Is(err, commands.ErrTokenAlreadyClaimed))
	})

	t.Run("expired token marks the entry expired", func(t *testing.T) {
		svc, repo, clk := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		clk.Set(testNow.Add(2 * time.Hour))
		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)
		repo.EXPECT().MarkExpired(gomock.Any(), gomock.Any(), entry.ID()).Return(true, nil)

		_, err = svc.Validate(context.Background(), plaintext, entry.ID())
		assert.True(t, errors.Is(err, commands.ErrTokenExpired))
	})
}

func TestTokenConsume(t *testing.T) {
	plaintext, hash, err := claimtoken.Generate()
	require.NoError(t, err)

	t.Run("single use", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)
		repo.EXPECT().MarkConverted(gomock.Any(), gomock.Any(), entry.ID()).Return(true, nil)

		require.NoError(t, svc.Consume(context.Background(), nil, plaintext, entry.ID()))
	})

	t.Run("concurrent consume loses the CAS", func(t *testing.T) {
		svc, repo, _ := newTokenService(t)
		entry, err := builder.NewWaitlistBuilder().
			AsNotified(hash, testNow.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		repo.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any(), hash).Return(entry, nil)
		repo.EXPECT().MarkConverted(gomock.Any(), gomock.Any(), entry.ID()).Return(false, nil)

		err = svc.Consume(context.Background(), nil, plaintext, entry.ID())
		assert.True(t, errors.Is(err, commands.ErrTokenAlreadyClaimed))
	})
}
