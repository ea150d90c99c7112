package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/referralservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/utils"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

type Service interface {
	Summary(ctx context.Context, userID int) (*domain.ReferralSummary, error)
	RequestWithdrawal(ctx context.Context, req domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// Summary godoc
//
//	@Summary		Referral summary
//	@Description	Referral code, lifetime earnings and the amount still available for withdrawal.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralSummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals [get]
func (h *ReferralHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.referralService.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralSummaryResponseDTO{
		ReferralCode:  summary.ReferralCode,
		TotalEarnings: summary.TotalEarnings,
		Withdrawn:     summary.Withdrawn,
		Available:     summary.Available,
		ReferredCount: summary.ReferredCount,
	})
}

// Withdraw godoc
//
//	@Summary		Request a referral withdrawal
//	@Description	Wallet withdrawals are credited at once. Bank withdrawals wait for an admin decision.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid destination"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Amount below minimum or above available earnings"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/withdrawals [post]
func (h *ReferralHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	wd, err := h.referralService.RequestWithdrawal(r.Context(), domain.WithdrawalRequest{
		UserID:        userID,
		Amount:        req.Amount,
		Destination:   domain.WithdrawalDestination(req.Destination),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		switch {
		case errors.Is(err, referralservice.ErrInvalidDestination):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, referralservice.ErrBelowMinimum),
			errors.Is(err, referralservice.ErrInsufficientEarnings):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, ToWithdrawalDTO(wd))
}

// GetWithdrawals godoc
//
//	@Summary		Get referral withdrawals
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Success		204	{object}	utils.Response	"No withdrawals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/withdrawals [get]
func (h *ReferralHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.referralService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = ToWithdrawalDTO(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func ToWithdrawalDTO(wd *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:            wd.ID,
		Amount:        wd.Amount,
		Destination:   string(wd.Destination),
		BankName:      wd.BankName,
		AccountNumber: wd.AccountNumber,
		AccountName:   wd.AccountName,
		Status:        string(wd.Status),
		CreatedAt:     wd.CreatedAt,
		ProcessedAt:   wd.ProcessedAt,
	}
}
