package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

var (
	ErrInvalidChargePayload    = errors.New("invalid charge payload")
	ErrGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrChargeDeclined          = errors.New("charge was not approved")
)

// SettlementResult is the outcome of charging a receivable.
type SettlementResult struct {
	TransactionID     string          `json:"transactionId"`
	ProviderPaymentID string          `json:"providerPaymentId"`
	ProviderStatus    string          `json:"providerStatus"`
	Settled           bool            `json:"settled"`
	ProviderResponse  json.RawMessage `json:"providerResponse,omitempty"`
}

// SettlementUseCase collects a pending freight receivable through the
// payment gateway and marks the transaction paid when the charge is
// approved.
type SettlementUseCase struct {
	store   *LedgerStore
	gateway interfaces.IPaymentGateway
	log     zerolog.Logger
}

func NewSettlementUseCase(store *LedgerStore, gateway interfaces.IPaymentGateway) *SettlementUseCase {
	return &SettlementUseCase{
		store:   store,
		gateway: gateway,
		log:     log.With().Str("component", "settlement").Logger(),
	}
}

// ChargeReceivable sends the charge to the gateway. The payload is the
// caller's Mercado Pago request body; amount, external_reference and
// description are overwritten from the ledger so the provider never sees a
// figure that disagrees with the books.
func (u *SettlementUseCase) ChargeReceivable(ctx context.Context, transactionID string, payload json.RawMessage) (SettlementResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return SettlementResult{}, fmt.Errorf("%w: transaction id is required", ErrValidation)
	}
	mockMode := isGatewayMockEnabled()
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return SettlementResult{}, ErrInvalidChargePayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return SettlementResult{}, ErrGatewayNotConfigured
	}

	snap := u.store.Snapshot()
	var tx entities.Transaction
	found := false
	for _, t := range snap.Transactions {
		if t.ID == transactionID {
			tx, found = t, true
			break
		}
	}
	if !found {
		return SettlementResult{}, ErrTransactionNotFound
	}
	if tx.Type != entities.TransactionTypeRevenue || tx.IsPaid {
		return SettlementResult{}, ErrNotReceivable
	}

	payload = enrichChargePayload(payload, tx)

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
		err               error
	)
	if mockMode {
		u.log.Info().Str("transaction_id", tx.ID).Msg("mock mode enabled; skipping payment gateway")
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		providerResp, err = mockProviderResponse(payload, providerPaymentID, tx)
		if err != nil {
			return SettlementResult{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			u.log.Warn().Err(err).Str("transaction_id", tx.ID).Msg("payment gateway failed")
			return SettlementResult{}, classifyGatewayError(err)
		}
	}

	result := SettlementResult{
		TransactionID:     tx.ID,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
	}
	if providerStatus != "approved" {
		u.log.Warn().Str("transaction_id", tx.ID).Str("status", providerStatus).Msg("charge not approved")
		return result, ErrChargeDeclined
	}

	if _, err := u.store.MarkTransactionAsPaid(tx.ID); err != nil {
		return result, err
	}
	result.Settled = true
	u.log.Info().Str("transaction_id", tx.ID).Str("provider_payment_id", providerPaymentID).Msg("receivable settled")
	return result, nil
}

// enrichChargePayload forces ledger-derived fields into the request body.
func enrichChargePayload(payload json.RawMessage, tx entities.Transaction) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	reqMap["external_reference"] = tx.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = tx.Description
	}
	reqMap["transaction_amount"] = tx.Amount
	if b, err := json.Marshal(reqMap); err == nil {
		return b
	}
	return payload
}

func mockProviderResponse(payload json.RawMessage, paymentID string, tx entities.Transaction) (json.RawMessage, error) {
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = paymentID
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	resp["external_reference"] = tx.ID
	resp["transaction_amount"] = tx.Amount
	return json.Marshal(resp)
}

func isGatewayMockEnabled() bool {
	for _, name := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// classifyGatewayError maps well-known Mercado Pago error shapes onto
// sentinel errors the HTTP layer can translate.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrGatewayBadRequest
	}
	return err
}
