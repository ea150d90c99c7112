package rentals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/rentalservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/utils"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

type Service interface {
	Quote(ctx context.Context, service, country string) (decimal.Decimal, error)
	Purchase(ctx context.Context, userID int, service, country string) (*domain.Rental, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.Rental, error)
	List(ctx context.Context, userID int) ([]domain.Rental, error)
	Cancel(ctx context.Context, userID int, id uuid.UUID) (*domain.Rental, error)
}

type RentalHandler struct {
	rentalService Service
	now           func() time.Time
}

func New(rentalService Service) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		now:           time.Now,
	}
}

// Quote godoc
//
//	@Summary		Rental price
//	@Description	Current price of renting a number for a service in a country. Quotes are cached for a few minutes.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			service	query		string	true	"Service"
//	@Param			country	query		string	true	"Country"
//	@Success		200		{object}	dto.RentalQuoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		502		{object}	utils.Response	"Provider error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals/price [get]
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	req := dto.RentalRequestDTO{
		Service: r.URL.Query().Get("service"),
		Country: r.URL.Query().Get("country"),
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	price, err := h.rentalService.Quote(r.Context(), req.Service, req.Country)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RentalQuoteResponseDTO{
		Service: req.Service,
		Country: req.Country,
		Price:   price,
	})
}

// Purchase godoc
//
//	@Summary		Rent a number
//	@Description	Rents a phone number for SMS verification and charges the provider's price to the wallet.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RentalRequestDTO	true	"Service and country"
//	@Success		201		{object}	dto.RentalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		502		{object}	utils.Response	"Provider error"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals [post]
func (h *RentalHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RentalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rental, err := h.rentalService.Purchase(r.Context(), userID, req.Service, req.Country)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.toDTO(rental))
}

// List godoc
//
//	@Summary		List rentals
//	@Description	Most recent rentals of the authenticated user.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RentalResponseDTO
//	@Success		204	{object}	utils.Response	"No rentals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals [get]
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	rentals, err := h.rentalService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rentals")
		return
	}
	if len(rentals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Rentals not found")
		return
	}

	response := make([]dto.RentalResponseDTO, len(rentals))
	for i := range rentals {
		response[i] = h.toDTO(&rentals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get rental
//	@Description	Current state of one rental with the seconds left before it expires.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Rental id"
//	@Success		200	{object}	dto.RentalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rental not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals/{id} [get]
func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, rentalservice.ErrRentalNotFound.Error())
		return
	}

	rental, err := h.rentalService.Get(r.Context(), userID, id)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(rental))
}

// Cancel godoc
//
//	@Summary		Cancel rental
//	@Description	Cancels an active rental at the provider. The charge is refunded when the provider confirms the refund.
//	@Tags			Rentals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Rental id"
//	@Success		200	{object}	dto.RentalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rental not found"
//	@Failure		409	{object}	utils.Response	"Rental already finished"
//	@Failure		502	{object}	utils.Response	"Provider error"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, rentalservice.ErrRentalNotFound.Error())
		return
	}

	rental, err := h.rentalService.Cancel(r.Context(), userID, id)
	if err != nil {
		h.respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(rental))
}

func (h *RentalHandler) respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rentalservice.ErrInvalidRequest):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, walletservice.ErrInsufficientBalance.Error())
	case errors.Is(err, rentalservice.ErrRentalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, rentalservice.ErrRentalFinished):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, rentalservice.ErrProvider):
		utils.RespondWithError(w, http.StatusBadGateway, rentalservice.ErrProvider.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *RentalHandler) toDTO(rental *domain.Rental) dto.RentalResponseDTO {
	return dto.RentalResponseDTO{
		ID:            rental.ID.String(),
		Service:       rental.Service,
		Country:       rental.Country,
		PhoneNumber:   rental.PhoneNumber,
		Code:          rental.Code,
		Status:        string(rental.Status),
		Price:         rental.ChargedPrice,
		TimeRemaining: int(rental.TimeRemaining(h.now()).Seconds()),
		ExpiresAt:     rental.ExpiresAt,
		CreatedAt:     rental.CreatedAt,
	}
}
