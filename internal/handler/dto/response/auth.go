package response

import (
	"workshop-enroll/internal/domain/account"

	"github.com/google/uuid"
)

type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func FromAccount(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:    a.ID(),
		Email: a.Email().String(),
		Name:  a.Name(),
		Role:  string(a.Role()),
	}
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Account     AccountResponse `json:"account"`
}
