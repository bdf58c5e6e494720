package enrollment

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyName    = errors.New("customer name is required")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer identifies who the enrollment belongs to. Email is the stable
// correlation key before an account is linked.
type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	if !emailPattern.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}
	return Customer{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func ReconstructCustomer(name, email, phone string) Customer {
	return Customer{name: name, email: email, phone: phone}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }
