//go:build unit || e2e

package builder

import (
	"time"

	domaccount "workshop-enroll/internal/domain/account"
	"workshop-enroll/internal/pkg/password"

	"github.com/google/uuid"
)

const DefaultTestPassword = "correct-horse-battery"

type AccountBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	RawPassword  string
	PasswordHash *string
	Role         domaccount.Role
	CreatedAt    time.Time
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:          uuid.New(),
		Email:       "jamie@example.com",
		Name:        "Jamie Doe",
		RawPassword: DefaultTestPassword,
		Role:        domaccount.RoleCustomer,
		CreatedAt:   time.Now(),
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

// BuildDomain hashes RawPassword unless the account is explicitly implicit
// (RawPassword empty and PasswordHash nil).
func (b *AccountBuilder) BuildDomain() (*domaccount.Account, error) {
	email, err := domaccount.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	hash := b.PasswordHash
	if hash == nil && b.RawPassword != "" {
		h, err := password.HashPassword(b.RawPassword)
		if err != nil {
			return nil, err
		}
		hash = &h
	}
	return domaccount.ReconstructAccount(b.ID, email, b.Name, hash, b.Role, b.CreatedAt), nil
}

// Fluent builder methods
func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.Email = email
	return b
}

func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

func (b *AccountBuilder) WithRawPassword(raw string) *AccountBuilder {
	b.RawPassword = raw
	b.PasswordHash = nil
	return b
}

func (b *AccountBuilder) AsAdmin() *AccountBuilder {
	b.Role = domaccount.RoleAdmin
	return b
}

// AsImplicit models an account created by the webhook processor: no
// credential until the customer claims it.
func (b *AccountBuilder) AsImplicit() *AccountBuilder {
	b.RawPassword = ""
	b.PasswordHash = nil
	return b
}
