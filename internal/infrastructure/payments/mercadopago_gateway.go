// Package payments wraps the Mercado Pago SDK behind the gateway
// interface the settlement usecase talks to.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway charges freight clients through Mercado Pago. Mock
// mode is handled one layer up, in the settlement usecase; this type always
// talks to the real SDK.
type MercadoPagoGateway struct {
	client payment.Client
	log    zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("creating mercado pago sdk config: %w", err)
	}
	return &MercadoPagoGateway{
		client: payment.NewClient(cfg),
		log:    log.With().Str("component", "mercadopago").Logger(),
	}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, fmt.Errorf("decoding charge payload: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn().Err(err).Msg("payment create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info().Int("payment_id", resp.ID).Str("status", resp.Status).Msg("payment created")
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}
