package service

import (
	"github.com/GlebRadaev/loghub/internal/config"
	"github.com/GlebRadaev/loghub/internal/handlers/admin"
	"github.com/GlebRadaev/loghub/internal/handlers/auth"
	"github.com/GlebRadaev/loghub/internal/handlers/orders"
	"github.com/GlebRadaev/loghub/internal/handlers/referrals"
	"github.com/GlebRadaev/loghub/internal/handlers/rentals"
	"github.com/GlebRadaev/loghub/internal/handlers/vtu"
	"github.com/GlebRadaev/loghub/internal/handlers/wallet"
	"github.com/GlebRadaev/loghub/internal/handlers/webhooks"
	"github.com/GlebRadaev/loghub/internal/metrics"
	"github.com/GlebRadaev/loghub/internal/rental"
	"github.com/GlebRadaev/loghub/internal/repo"
	"github.com/GlebRadaev/loghub/pkg/clients"
	"github.com/GlebRadaev/loghub/pkg/clients/smsprovider"
	vtuclient "github.com/GlebRadaev/loghub/pkg/clients/vtu"

	pkgauth "github.com/GlebRadaev/loghub/pkg/auth"

	authservice "github.com/GlebRadaev/loghub/internal/service/authservice"
	depositservice "github.com/GlebRadaev/loghub/internal/service/depositservice"
	orderservice "github.com/GlebRadaev/loghub/internal/service/orderservice"
	referralservice "github.com/GlebRadaev/loghub/internal/service/referralservice"
	rentalservice "github.com/GlebRadaev/loghub/internal/service/rentalservice"
	vtuservice "github.com/GlebRadaev/loghub/internal/service/vtuservice"
	walletservice "github.com/GlebRadaev/loghub/internal/service/walletservice"
)

type Services struct {
	AuthService       auth.Service
	WalletService     wallet.Service
	DepositService    webhooks.Service
	RentalService     rentals.Service
	VTUService        vtu.Service
	OrderService      orders.Service
	ReferralService   referrals.Service
	AdminWallet       admin.WalletService
	WithdrawalService admin.WithdrawalService
	CatalogService    admin.CatalogService
	RentalAdvancer    rental.Advancer
}

func New(repo *repo.Repositories, cfg *config.Config, client clients.HTTPClientI, jwtService pkgauth.JWTServiceInterface, m *metrics.Metrics) *Services {
	walletService := walletservice.New(repo.ProfileRepo, repo.LedgerRepo, repo.TXManager, m)
	depositService := depositservice.New(repo.ProfileRepo, walletService, repo.TXManager, cfg.ReferralPercent)
	rentalService := rentalservice.New(
		repo.RentalRepo,
		smsprovider.New(cfg.SMSProviderAddress, cfg.SMSProviderKey, client),
		walletService,
		repo.TXManager,
		m,
	)
	vtuService := vtuservice.New(
		vtuclient.New(cfg.VTUAddress, cfg.VTUKey, client),
		repo.OrderRepo,
		repo.ProfileRepo,
		walletService,
		repo.TXManager,
	)
	orderService := orderservice.New(repo.ProductRepo, repo.OrderRepo, walletService, repo.TXManager)
	referralService := referralservice.New(repo.ProfileRepo, repo.Withdrawal, walletService, repo.TXManager, cfg.MinWithdrawal)
	authService := authservice.New(repo.UserRepo, repo.ProfileRepo, repo.TXManager, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:       authService,
		WalletService:     walletService,
		DepositService:    depositService,
		RentalService:     rentalService,
		VTUService:        vtuService,
		OrderService:      orderService,
		ReferralService:   referralService,
		AdminWallet:       walletService,
		WithdrawalService: referralService,
		CatalogService:    orderService,
		RentalAdvancer:    rentalService,
	}
}
