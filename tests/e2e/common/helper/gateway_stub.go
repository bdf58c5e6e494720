//go:build e2e

package helper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	commonhttp "workshop-enroll/tests/common/httptest"
)

// GatewayStub plays the payment gateway for e2e tests: it answers the two
// outbound calls the app makes and records what it was asked, so a test can
// feed the session metadata back through a signed webhook.
type GatewayStub struct {
	Server *httptest.Server

	mu       sync.Mutex
	sessions []RecordedSession
	refunds  []RecordedRefund
	seq      int
}

type RecordedSession struct {
	ID     string
	Params gateway.CheckoutSessionParams
}

type RecordedRefund struct {
	ID     string
	Params gateway.RefundParams
}

func NewGatewayStub() *GatewayStub {
	stub := &GatewayStub{}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		var params gateway.CheckoutSessionParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stub.mu.Lock()
		stub.seq++
		id := fmt.Sprintf("cs_e2e_%d", stub.seq)
		stub.sessions = append(stub.sessions, RecordedSession{ID: id, Params: params})
		stub.mu.Unlock()

		_ = json.NewEncoder(w).Encode(gateway.CreatedSession{
			ID:  id,
			URL: "https://gateway.example.com/c/" + id,
		})
	})

	mux.HandleFunc("POST /v1/refunds", func(w http.ResponseWriter, r *http.Request) {
		var params gateway.RefundParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var amount int64
		if params.AmountCents != nil {
			amount = *params.AmountCents
		}

		stub.mu.Lock()
		stub.seq++
		id := fmt.Sprintf("re_e2e_%d", stub.seq)
		stub.refunds = append(stub.refunds, RecordedRefund{ID: id, Params: params})
		stub.mu.Unlock()

		_ = json.NewEncoder(w).Encode(gateway.CreatedRefund{
			ID:          id,
			AmountCents: amount,
			Status:      "succeeded",
		})
	})

	stub.Server = httptest.NewServer(mux)
	return stub
}

func (g *GatewayStub) URL() string { return g.Server.URL }

func (g *GatewayStub) Close() { g.Server.Close() }

// LastSession returns the most recently opened checkout session.
func (g *GatewayStub) LastSession(t *testing.T) RecordedSession {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.sessions, "no checkout session was opened")
	return g.sessions[len(g.sessions)-1]
}

func (g *GatewayStub) LastRefund(t *testing.T) RecordedRefund {
	t.Helper()
	g.mu.Lock()
	defer g.mu.Unlock()
	require.NotEmpty(t, g.refunds, "no refund was requested")
	return g.refunds[len(g.refunds)-1]
}

// WebhookSender signs raw event payloads the way the gateway does and posts
// them to the webhook endpoint.
type WebhookSender struct {
	verifier *gateway.SignatureVerifier
}

func NewWebhookSender(cfg config.GatewayConfig) *WebhookSender {
	return &WebhookSender{
		verifier: gateway.NewSignatureVerifier(cfg.WebhookSecret, cfg.SignatureMaxSkew),
	}
}

func (ws *WebhookSender) Post(t *testing.T, router *gin.Engine, payload []byte) *http.Response {
	t.Helper()

	rec := commonhttp.PerformRawRequest(t, router, http.MethodPost, "/api/webhooks/payment", payload, map[string]string{
		"Content-Type":          "application/json",
		gateway.SignatureHeader: ws.verifier.Sign(payload, time.Now()),
	})
	return rec.Result()
}

// PostEvent marshals, signs, and delivers the event, requiring a 200 receipt.
// It returns whether the app marked the event as a duplicate.
func (ws *WebhookSender) PostEvent(t *testing.T, router *gin.Engine, event map[string]any) bool {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	resp := ws.Post(t, router, payload)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var receipt struct {
		Received  bool `json:"received"`
		Duplicate bool `json:"duplicate"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
	require.True(t, receipt.Received)
	return receipt.Duplicate
}
