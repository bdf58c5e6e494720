//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-enroll/internal/pkg/jwt"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/tests/common/builder"
	"workshop-enroll/tests/common/dbtest"
	commandsmock "workshop-enroll/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	accounts *commandsmock.MockAccountRepository
	carts    *commandsmock.MockCartCommands
	jwtSvc   *jwt.Service
	cmd      commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &authFixture{
		accounts: commandsmock.NewMockAccountRepository(ctrl),
		carts:    commandsmock.NewMockCartCommands(ctrl),
		jwtSvc:   jwt.NewService("test-secret", time.Hour),
	}
	f.cmd = commands.NewAuthCommands(f.accounts, f.carts, f.jwtSvc, &dbtest.StubUnitOfWork{}, discardLogger())
	return f
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials merge the guest cart", func(t *testing.T) {
		f := newAuthFixture(t)
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		require.NoError(t, err)

		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jamie@example.com").Return(acct, nil)
		f.carts.EXPECT().Merge(gomock.Any(), "sess_test", acct.ID()).Return(nil)

		result, err := f.cmd.Login(context.Background(), "jamie@example.com", builder.DefaultTestPassword, "sess_test")
		require.NoError(t, err)
		assert.Equal(t, acct.ID(), result.Account.ID())

		claims, err := f.jwtSvc.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, acct.ID(), claims.AccountID)
	})

	t.Run("merge failure does not block the login", func(t *testing.T) {
		f := newAuthFixture(t)
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		require.NoError(t, err)

		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jamie@example.com").Return(acct, nil)
		f.carts.EXPECT().Merge(gomock.Any(), "sess_test", acct.ID()).Return(assert.AnError)

		result, err := f.cmd.Login(context.Background(), "jamie@example.com", builder.DefaultTestPassword, "sess_test")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("no session cart skips the merge", func(t *testing.T) {
		f := newAuthFixture(t)
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		require.NoError(t, err)

		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jamie@example.com").Return(acct, nil)

		_, err = f.cmd.Login(context.Background(), "jamie@example.com", builder.DefaultTestPassword, "")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		acct, err := builder.NewAccountBuilder().WithEmail("jamie@example.com").BuildDomain()
		require.NoError(t, err)

		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "jamie@example.com").Return(acct, nil)

		_, err = f.cmd.Login(context.Background(), "jamie@example.com", "wrong", "")
		assert.True(t, errors.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)

		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errNotFound)

		_, err := f.cmd.Login(context.Background(), "nobody@example.com", builder.DefaultTestPassword, "")
		assert.True(t, errors.Is(err, commands.ErrInvalidCredentials))
	})

	t.Run("implicit account has no password and cannot log in", func(t *testing.T) {
		f := newAuthFixture(t)
		acct, err := builder.NewAccountBuilder().
			WithEmail("implicit@example.com").
			AsImplicit().
			BuildDomain()
		require.NoError(t, err)

		f.accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), "implicit@example.com").Return(acct, nil)

		_, err = f.cmd.Login(context.Background(), "implicit@example.com", "anything", "")
		assert.True(t, errors.Is(err, commands.ErrInvalidCredentials))
	})
}

func TestMe(t *testing.T) {
	t.Run("returns the account", func(t *testing.T) {
		f := newAuthFixture(t)
		acct, err := builder.NewAccountBuilder().BuildDomain()
		require.NoError(t, err)

		f.accounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), acct.ID()).Return(acct, nil)

		got, err := f.cmd.Me(context.Background(), acct.ID())
		require.NoError(t, err)
		assert.Equal(t, acct.Email(), got.Email())
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newAuthFixture(t)
		id := uuid.New()

		f.accounts.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, errNotFound)

		_, err := f.cmd.Me(context.Background(), id)
		assert.True(t, errors.Is(err, commands.ErrAccountNotFound))
	})
}
