package account

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email string

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Account links enrollments to a login identity. Accounts created implicitly
// by the webhook processor have no password until the customer claims them.
type Account struct {
	id           uuid.UUID
	email        Email
	name         string
	passwordHash *string
	role         Role
	createdAt    time.Time
}

func NewAccount(email Email, name string, passwordHash *string, role Role) *Account {
	return &Account{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructAccount(id uuid.UUID, email Email, name string, passwordHash *string, role Role, createdAt time.Time) *Account {
	return &Account{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) Email() Email          { return a.email }
func (a *Account) Name() string          { return a.name }
func (a *Account) PasswordHash() *string { return a.passwordHash }
func (a *Account) Role() Role            { return a.role }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }

func (a *Account) IsAdmin() bool { return a.role == RoleAdmin }

// CanLogin requires a claimed account; implicit accounts have no credential.
func (a *Account) CanLogin() bool { return a.passwordHash != nil }
