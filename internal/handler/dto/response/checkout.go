package response

import "workshop-enroll/internal/usecase/commands"

type CheckoutResponse struct {
	GatewaySessionID string `json:"gateway_session_id"`
	CheckoutURL      string `json:"checkout_url"`
}

func FromCheckoutResult(r *commands.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		GatewaySessionID: r.GatewaySessionID,
		CheckoutURL:      r.CheckoutURL,
	}
}
