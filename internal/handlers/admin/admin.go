package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/orderservice"
	"github.com/GlebRadaev/loghub/internal/service/referralservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/utils"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

const (
	actionDeduct  = "deduct"
	actionApprove = "approve"
	actionReject  = "reject"
)

type WalletService interface {
	AdminAdjust(ctx context.Context, adj domain.AdminAdjustment) (*domain.AdjustmentResult, error)
	Reconcile(ctx context.Context, userID int) (*domain.Reconciliation, error)
}

type WithdrawalService interface {
	Approve(ctx context.Context, id int) error
	Reject(ctx context.Context, id int) error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	AddItems(ctx context.Context, productID int, credentials []string) (int, error)
}

type AdminHandler struct {
	walletService     WalletService
	withdrawalService WithdrawalService
	catalogService    CatalogService
}

func New(walletService WalletService, withdrawalService WithdrawalService, catalogService CatalogService) *AdminHandler {
	return &AdminHandler{
		walletService:     walletService,
		withdrawalService: withdrawalService,
		catalogService:    catalogService,
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// AdjustBalance godoc
//
//	@Summary		Adjust a user's balance
//	@Description	Adds to or deducts from a wallet through the audited adjustment procedure. A deduction below zero is refused with 422.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Target user id"
//	@Param			request	body		dto.AdjustBalanceRequestDTO	true	"Adjustment"
//	@Success		200		{object}	dto.AdjustBalanceResponseDTO
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		403		{object}	utils.Response					"Admin role required"
//	@Failure		422		{object}	dto.AdjustBalanceResponseDTO	"Adjustment refused"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/users/{id}/balance [post]
func (h *AdminHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	targetID, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.AdjustBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount := decimal.RequireFromString(strings.TrimSpace(req.Amount))
	if req.Action == actionDeduct {
		amount = amount.Neg()
	}

	res, err := h.walletService.AdminAdjust(r.Context(), domain.AdminAdjustment{
		TargetUserID: targetID,
		AdminUserID:  adminID,
		Amount:       amount,
		Reason:       req.Reason,
	})
	switch {
	case errors.Is(err, walletservice.ErrAdjustmentRejected) && res != nil:
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, toAdjustmentDTO(res))
	case errors.Is(err, walletservice.ErrInvalidAmount), errors.Is(err, walletservice.ErrInvalidReason):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusOK, toAdjustmentDTO(res))
	}
}

// Reconcile godoc
//
//	@Summary		Reconcile a wallet
//	@Description	Compares the stored balance with the sum of the user's ledger rows.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	dto.ReconcileResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Profile not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/reconcile [get]
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	rec, err := h.walletService.Reconcile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconcileResponseDTO{
		UserID:        rec.UserID,
		WalletBalance: rec.WalletBalance,
		LedgerSum:     rec.LedgerSum,
		Drift:         rec.Drift,
		Consistent:    rec.Consistent(),
	})
}

// DecideWithdrawal godoc
//
//	@Summary		Approve or reject a withdrawal
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Withdrawal id"
//	@Param			request	body		dto.WithdrawalDecisionRequestDTO	true	"approve or reject"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id} [post]
func (h *AdminHandler) DecideWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	var req dto.WithdrawalDecisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		err     error
		message string
	)
	switch req.Action {
	case actionApprove:
		err = h.withdrawalService.Approve(r.Context(), id)
		message = "withdrawal approved"
	case actionReject:
		err = h.withdrawalService.Reject(r.Context(), id)
		message = "withdrawal rejected"
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be approve or reject")
		return
	}

	switch {
	case errors.Is(err, referralservice.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, referralservice.ErrWithdrawalNotPending):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
	}
}

// CreateProduct godoc
//
//	@Summary		Create a log product
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProductRequestDTO	true	"Product"
//	@Success		201		{object}	dto.ProductResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid product"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products [post]
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), &domain.Product{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, orderservice.ErrInvalidProduct) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ProductResponseDTO{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Stock:    product.Stock,
	})
}

// AddItems godoc
//
//	@Summary		Stock a log product
//	@Description	Adds one sellable item per credential line.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Product id"
//	@Param			request	body		dto.AddItemsRequestDTO	true	"Credentials"
//	@Success		201		{object}	dto.AddItemsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{id}/items [post]
func (h *AdminHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req dto.AddItemsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.catalogService.AddItems(r.Context(), productID, req.Credentials)
	switch {
	case errors.Is(err, orderservice.ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, "No credentials given")
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusCreated, dto.AddItemsResponseDTO{Added: added})
	}
}

func toAdjustmentDTO(res *domain.AdjustmentResult) dto.AdjustBalanceResponseDTO {
	return dto.AdjustBalanceResponseDTO{
		Success:         res.Success,
		PreviousBalance: res.PreviousBalance,
		NewBalance:      res.NewBalance,
		Error:           res.Error,
	}
}
