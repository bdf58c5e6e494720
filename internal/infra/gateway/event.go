package gateway

import (
	"encoding/json"

	"workshop-enroll/internal/pkg/errs"
)

// Event types the fulfillment core consumes. Anything else is acknowledged
// and ignored.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventChargeRefunded    = "charge.refunded"
	EventPaymentFailed     = "payment_intent.payment_failed"
)

// Metadata keys round-tripped through the gateway from checkout-session
// creation back to the webhook.
const (
	MetaCartID          = "cart_id"
	MetaWaitlistEntryID = "waitlist_entry_id"
	MetaClaimToken      = "claim_token"
)

var ErrMalformedEvent = errs.New("malformed gateway event payload")

// Event is the signed envelope delivered to the webhook endpoint.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

func ParseEvent(payload []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	if ev.ID == "" || ev.Type == "" {
		return nil, ErrMalformedEvent
	}
	return &ev, nil
}

// CheckoutSession is the object carried by checkout.session.completed.
type CheckoutSession struct {
	ID              string            `json:"id"`
	PaymentIntentID string            `json:"payment_intent"`
	CustomerID      string            `json:"customer"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	Metadata        map[string]string `json:"metadata"`
}

// Charge is the object carried by charge.refunded. AmountRefunded is
// cumulative across partial refunds.
type Charge struct {
	ID              string `json:"id"`
	PaymentIntentID string `json:"payment_intent"`
	AmountCents     int64  `json:"amount"`
	AmountRefunded  int64  `json:"amount_refunded"`
	RefundID        string `json:"refund_id"`
}

// PaymentFailure is the object carried by payment_intent.payment_failed.
type PaymentFailure struct {
	PaymentIntentID   string `json:"id"`
	CheckoutSessionID string `json:"checkout_session"`
	FailureMessage    string `json:"last_payment_error"`
}

func (e *Event) CheckoutSession() (*CheckoutSession, error) {
	var s CheckoutSession
	if err := json.Unmarshal(e.Data.Object, &s); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	if s.ID == "" {
		return nil, ErrMalformedEvent
	}
	return &s, nil
}

func (e *Event) Charge() (*Charge, error) {
	var c Charge
	if err := json.Unmarshal(e.Data.Object, &c); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	if c.PaymentIntentID == "" {
		return nil, ErrMalformedEvent
	}
	return &c, nil
}

func (e *Event) PaymentFailure() (*PaymentFailure, error) {
	var f PaymentFailure
	if err := json.Unmarshal(e.Data.Object, &f); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	return &f, nil
}
