package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/metrics"
	"github.com/GlebRadaev/loghub/internal/service/depositservice"
	"github.com/GlebRadaev/loghub/pkg/utils"
	"github.com/GlebRadaev/loghub/pkg/webhooksig"
)

const (
	ProviderPaystack     = "paystack"
	ProviderPaymentPoint = "paymentpoint"

	PaystackSignatureHeader     = "x-paystack-signature"
	PaymentPointSignatureHeader = "paymentpoint-signature"

	maxBodySize = 1 << 20
)

var koboPerNaira = decimal.NewFromInt(100)

type Service interface {
	Process(ctx context.Context, d domain.Deposit) (*domain.DepositResult, error)
}

type WebhookHandler struct {
	depositService     Service
	paystackSecret     []byte
	paymentPointSecret []byte
	metrics            *metrics.Metrics
}

func New(depositService Service, paystackSecret, paymentPointSecret string, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{
		depositService:     depositService,
		paystackSecret:     []byte(paystackSecret),
		paymentPointSecret: []byte(paymentPointSecret),
		metrics:            m,
	}
}

// Paystack godoc
//
//	@Summary		Paystack deposit webhook
//	@Description	Credits the wallet whose email matches a successful Paystack charge. The body must be signed with HMAC-SHA512.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			x-paystack-signature	header		string					true	"Hex HMAC-SHA512 of the body"
//	@Param			request					body		dto.PaystackEventDTO	true	"Paystack event"
//	@Success		200						{object}	dto.WebhookResponseDTO
//	@Failure		400						{object}	utils.Response	"Malformed payload"
//	@Failure		401						{object}	utils.Response	"Invalid signature"
//	@Failure		404						{object}	utils.Response	"Recipient not found"
//	@Failure		500						{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/paystack [post]
func (h *WebhookHandler) Paystack(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r, ProviderPaystack, webhooksig.SHA512, h.paystackSecret, PaystackSignatureHeader)
	if !ok {
		return
	}

	var event dto.PaystackEventDTO
	if err := json.Unmarshal(body, &event); err != nil {
		h.reject(w, ProviderPaystack, "invalid", http.StatusBadRequest, "Invalid request body")
		return
	}
	if event.Event != "charge.success" || (event.Data.Status != "" && event.Data.Status != "success") {
		h.ignore(w, ProviderPaystack, event.Event)
		return
	}

	h.process(r.Context(), w, domain.Deposit{
		Provider:  ProviderPaystack,
		Reference: event.Data.Reference,
		Email:     event.Data.Customer.Email,
		Amount:    event.Data.Amount.Div(koboPerNaira),
	})
}

// PaymentPoint godoc
//
//	@Summary		PaymentPoint deposit webhook
//	@Description	Credits the wallet owning the receiving virtual account. The body must be signed with HMAC-SHA256.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			paymentpoint-signature	header		string						true	"Hex HMAC-SHA256 of the body"
//	@Param			request					body		dto.PaymentPointEventDTO	true	"PaymentPoint notification"
//	@Success		200						{object}	dto.WebhookResponseDTO
//	@Failure		400						{object}	utils.Response	"Malformed payload"
//	@Failure		401						{object}	utils.Response	"Invalid signature"
//	@Failure		404						{object}	utils.Response	"Recipient not found"
//	@Failure		500						{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/paymentpoint [post]
func (h *WebhookHandler) PaymentPoint(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r, ProviderPaymentPoint, webhooksig.SHA256, h.paymentPointSecret, PaymentPointSignatureHeader)
	if !ok {
		return
	}

	var event dto.PaymentPointEventDTO
	if err := json.Unmarshal(body, &event); err != nil {
		h.reject(w, ProviderPaymentPoint, "invalid", http.StatusBadRequest, "Invalid request body")
		return
	}
	if event.NotificationStatus != "payment_successful" {
		h.ignore(w, ProviderPaymentPoint, event.NotificationStatus)
		return
	}

	h.process(r.Context(), w, domain.Deposit{
		Provider:  ProviderPaymentPoint,
		Reference: event.TransactionID,
		Account:   event.Receiver.AccountNumber,
		Amount:    event.AmountPaid,
	})
}

func (h *WebhookHandler) verifiedBody(w http.ResponseWriter, r *http.Request, provider string, alg webhooksig.Algorithm, secret []byte, header string) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.reject(w, provider, "invalid", http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := webhooksig.Verify(alg, secret, body, r.Header.Get(header)); err != nil {
		zap.L().Warn("webhook signature rejected", zap.String("provider", provider), zap.Error(err))
		h.reject(w, provider, "unauthorized", http.StatusUnauthorized, "Invalid signature")
		return nil, false
	}
	return body, true
}

func (h *WebhookHandler) process(ctx context.Context, w http.ResponseWriter, d domain.Deposit) {
	result, err := h.depositService.Process(ctx, d)
	switch {
	case errors.Is(err, depositservice.ErrInvalidDeposit):
		h.reject(w, d.Provider, "invalid", http.StatusBadRequest, err.Error())
	case errors.Is(err, depositservice.ErrRecipientNotFound):
		h.reject(w, d.Provider, "not_found", http.StatusNotFound, err.Error())
	case err != nil:
		h.reject(w, d.Provider, "error", http.StatusInternalServerError, "Internal server error")
	case result.Duplicate:
		h.metrics.WebhookEvent(d.Provider, "duplicate")
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Message: "already processed"})
	default:
		h.metrics.WebhookEvent(d.Provider, "credited")
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Message: "success"})
	}
}

func (h *WebhookHandler) ignore(w http.ResponseWriter, provider, event string) {
	zap.L().Info("webhook event ignored", zap.String("provider", provider), zap.String("event", event))
	h.metrics.WebhookEvent(provider, "ignored")
	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Message: "ignored"})
}

func (h *WebhookHandler) reject(w http.ResponseWriter, provider, result string, code int, message string) {
	h.metrics.WebhookEvent(provider, result)
	utils.RespondWithError(w, code, message)
}
