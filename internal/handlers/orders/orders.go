package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/loghub/internal/domain"
	"github.com/GlebRadaev/loghub/internal/dto"
	"github.com/GlebRadaev/loghub/internal/service/orderservice"
	"github.com/GlebRadaev/loghub/internal/service/walletservice"
	"github.com/GlebRadaev/loghub/pkg/auth"
	"github.com/GlebRadaev/loghub/pkg/utils"
	"github.com/GlebRadaev/loghub/pkg/validate"
)

type Service interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	PlaceOrder(ctx context.Context, userID, productID, quantity int) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ListProducts godoc
//
//	@Summary		List log products
//	@Description	Products with their price and the number of unsold items.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/products [get]
func (h *OrderHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.orderService.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	response := make([]dto.ProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductResponseDTO{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddOrder godoc
//
//	@Summary		Buy log items
//	@Description	Reserves the requested number of items, charges the wallet and returns the credentials in one step.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Product and quantity"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid quantity"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		409		{object}	utils.Response	"Out of stock"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orderservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, walletservice.ErrInsufficientBalance.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrders godoc
//
//	@Summary		Get orders
//	@Description	Purchase history of the authenticated user, newest first.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	{object}	utils.Response	"No orders"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Orders not found")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
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
