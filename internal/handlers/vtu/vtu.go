package vtu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/vtuservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	vtuclient "github.com/GlebRadaev/loghub/pkg/clients/vtu"
	"github.com/GlebRadaev/loghub/pkg/utils"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

type Service interface {
	Plans(ctx context.Context, network string) ([]vtuclient.Plan, error)
	BuyData(ctx context.Context, userID int, network, planID, phone string) (*domain.Order, error)
	BuyAirtime(ctx context.Context, userID int, network string, amount decimal.Decimal, phone string) (*domain.Order, error)
}

type VTUHandler struct {
	vtuService Service
}

func New(vtuService Service) *VTUHandler {
	return &VTUHandler{
		vtuService: vtuService,
	}
}

// Plans godoc
//
//	@Summary		List data plans
//	@Tags			VTU
//	@Security		BearerAuth
//	@Produce		json
//	@Param			network	query		string	true	"mtn, glo, airtel or 9mobile"
//	@Success		200		{array}		dto.PlanResponseDTO
//	@Failure		400		{object}	utils.Response	"Unsupported network"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Provider error"
//	@Router			/api/vtu/plans [get]
func (h *VTUHandler) Plans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.vtuService.Plans(r.Context(), r.URL.Query().Get("network"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	response := make([]dto.PlanResponseDTO, len(plans))
	for i, p := range plans {
		response[i] = dto.PlanResponseDTO{
			ID:      p.ID,
			Network: p.Network,
			Name:    p.Name,
			Price:   p.Price,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// BuyData godoc
//
//	@Summary		Buy a data bundle
//	@Description	Charges the plan price to the wallet once the aggregator confirms delivery.
//	@Tags			VTU
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DataRequestDTO	true	"Data purchase"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Failure		502		{object}	utils.Response	"Provider error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vtu/data [post]
func (h *VTUHandler) BuyData(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DataRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.vtuService.BuyData(r.Context(), userID, req.Network, req.PlanID, req.Phone)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// BuyAirtime godoc
//
//	@Summary		Buy airtime
//	@Description	Tops up a phone number between 50 and 50000 naira.
//	@Tags			VTU
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AirtimeRequestDTO	true	"Airtime purchase"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		502		{object}	utils.Response	"Provider error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vtu/airtime [post]
func (h *VTUHandler) BuyAirtime(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AirtimeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.vtuService.BuyAirtime(r.Context(), userID, req.Network, req.Amount, req.Phone)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vtuservice.ErrInvalidNetwork),
		errors.Is(err, vtuservice.ErrInvalidPhone),
		errors.Is(err, vtuservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, vtuservice.ErrPlanNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, walletservice.ErrInsufficientBalance.Error())
	case errors.Is(err, vtuservice.ErrProvider):
		utils.RespondWithError(w, http.StatusBadGateway, vtuservice.ErrProvider.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toOrderDTO(o *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:         o.ID,
		Kind:       string(o.Kind),
		ProductRef: o.ProductRef,
		Quantity:   o.Quantity,
		UnitPrice:  o.UnitPrice,
		Total:      o.Total,
		Status:     string(o.Status),
		Response:   o.Response,
		CreatedAt:  o.CreatedAt,
	}
}
