package cart

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidOwner = errors.New("cart owner must be a session key or an account id")

type OwnerKind string

const (
	OwnerSession OwnerKind = "session"
	OwnerAccount OwnerKind = "account"
)

// Owner is the tagged union {Session(key), Account(id)}. A cart belongs to
// exactly one of the two, resolved once per request from the auth context.
type Owner struct {
	kind       OwnerKind
	sessionKey string
	accountID  uuid.UUID
}

func SessionOwner(key string) (Owner, error) {
	if key == "" {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{kind: OwnerSession, sessionKey: key}, nil
}

func AccountOwner(id uuid.UUID) (Owner, error) {
	if id == uuid.Nil {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{kind: OwnerAccount, accountID: id}, nil
}

func (o Owner) Kind() OwnerKind { return o.kind }

func (o Owner) IsSession() bool { return o.kind == OwnerSession }
func (o Owner) IsAccount() bool { return o.kind == OwnerAccount }

// SessionKey is only meaningful when IsSession reports true.
func (o Owner) SessionKey() string { return o.sessionKey }

// AccountID is only meaningful when IsAccount reports true.
func (o Owner) AccountID() uuid.UUID { return o.accountID }

func (o Owner) Equal(other Owner) bool {
	return o == other
}
