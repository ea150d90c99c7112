package wallet

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
	GetTransactions(ctx context.Context, userID, limit int) ([]domain.WalletTransaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get wallet
//	@Description	Current wallet balance with the user's referral code and funding account number.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.walletService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance:              profile.WalletBalance,
		ReferralCode:         profile.ReferralCode,
		VirtualAccountNumber: profile.VirtualAccountNumber,
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transactions
//	@Description	Ledger rows of the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int							false	"Maximum rows (default 50, max 200)"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Transactions"
//	@Success		204		{object}	utils.Response				"No transactions"
//	@Failure		400		{object}	utils.Response				"Invalid limit"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	txs, err := h.walletService.GetTransactions(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = dto.TransactionResponseDTO{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        string(tx.Type),
			Description: tx.Description,
			Reference:   tx.Reference,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
