package bootstrap

import (
	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.PaymentGateway)),
		),
		NewSignatureVerifier,
	),
)

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Gateway)
}

func NewSignatureVerifier(cfg config.Config) *gateway.SignatureVerifier {
	return gateway.NewSignatureVerifier(cfg.Gateway.WebhookSecret, cfg.Gateway.SignatureMaxSkew)
}
