package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/loghub/docs"
	"github.com/GlebRadaev/loghub/internal/config"
	adminhandlers "github.com/GlebRadaev/loghub/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/loghub/internal/handlers/auth"
	ordershandlers "github.com/GlebRadaev/loghub/internal/handlers/orders"
	referralshandlers "github.com/GlebRadaev/loghub/internal/handlers/referrals"
	rentalshandlers "github.com/GlebRadaev/loghub/internal/handlers/rentals"
	vtuhandlers "github.com/GlebRadaev/loghub/internal/handlers/vtu"
	wallethandlers "github.com/GlebRadaev/loghub/internal/handlers/wallet"
	webhookhandlers "github.com/GlebRadaev/loghub/internal/handlers/webhooks"
	"github.com/GlebRadaev/loghub/internal/metrics"
	"github.com/GlebRadaev/loghub/internal/service"
	"github.com/GlebRadaev/loghub/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Paystack(w http.ResponseWriter, r *http.Request)
	PaymentPoint(w http.ResponseWriter, r *http.Request)
}

type RentalHandler interface {
	Quote(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type VTUHandler interface {
	Plans(w http.ResponseWriter, r *http.Request)
	BuyData(w http.ResponseWriter, r *http.Request)
	BuyAirtime(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	DecideWithdrawal(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	AddItems(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	WalletHandler   WalletHandler
	WebhookHandler  WebhookHandler
	RentalHandler   RentalHandler
	VTUHandler      VTUHandler
	OrderHandler    OrderHandler
	ReferralHandler ReferralHandler
	AdminHandler    AdminHandler

	jwtService auth.JWTServiceInterface
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
}

func New(s *service.Services, cfg *config.Config, jwtService auth.JWTServiceInterface, m *metrics.Metrics, gatherer prometheus.Gatherer) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		WalletHandler:   wallethandlers.New(s.WalletService),
		WebhookHandler:  webhookhandlers.New(s.DepositService, cfg.PaystackSecret, cfg.PaymentPointSecret, m),
		RentalHandler:   rentalshandlers.New(s.RentalService),
		VTUHandler:      vtuhandlers.New(s.VTUService),
		OrderHandler:    ordershandlers.New(s.OrderService),
		ReferralHandler: referralshandlers.New(s.ReferralService),
		AdminHandler:    adminhandlers.New(s.AdminWallet, s.WithdrawalService, s.CatalogService),
		jwtService:      jwtService,
		metrics:         m,
		gatherer:        gatherer,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Post("/webhooks/paystack", h.WebhookHandler.Paystack)
		r.Post("/webhooks/paymentpoint", h.WebhookHandler.PaymentPoint)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Get("/wallet/transactions", h.WalletHandler.GetTransactions)

			r.Route("/rentals", func(r chi.Router) {
				r.Post("/", h.RentalHandler.Purchase)
				r.Get("/", h.RentalHandler.List)
				r.Get("/price", h.RentalHandler.Quote)
				r.Get("/{id}", h.RentalHandler.Get)
				r.Post("/{id}/cancel", h.RentalHandler.Cancel)
			})

			r.Route("/vtu", func(r chi.Router) {
				r.Get("/plans", h.VTUHandler.Plans)
				r.Post("/data", h.VTUHandler.BuyData)
				r.Post("/airtime", h.VTUHandler.BuyAirtime)
			})

			r.Get("/products", h.OrderHandler.ListProducts)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.AddOrder)
				r.Get("/", h.OrderHandler.GetOrders)
			})

			r.Route("/referrals", func(r chi.Router) {
				r.Get("/", h.ReferralHandler.Summary)
				r.Post("/withdrawals", h.ReferralHandler.Withdraw)
				r.Get("/withdrawals", h.ReferralHandler.GetWithdrawals)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Post("/users/{id}/balance", h.AdminHandler.AdjustBalance)
				r.Get("/users/{id}/reconcile", h.AdminHandler.Reconcile)
				r.Post("/withdrawals/{id}", h.AdminHandler.DecideWithdrawal)
				r.Post("/products", h.AdminHandler.CreateProduct)
				r.Post("/products/{id}/items", h.AdminHandler.AddItems)
			})
		})
	})

	return r
}
