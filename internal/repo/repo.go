package repo

import (
	"github.com/GlebRadaev/loghub/internal/pg"
	ledgerrepo "github.com/GlebRadaev/loghub/internal/repo/ledger-repo"
	orderrepo "github.com/GlebRadaev/loghub/internal/repo/order-repo"
	productrepo "github.com/GlebRadaev/loghub/internal/repo/product-repo"
	profilerepo "github.com/GlebRadaev/loghub/internal/repo/profile-repo"
	rentalrepo "github.com/GlebRadaev/loghub/internal/repo/rental-repo"
	userrepo "github.com/GlebRadaev/loghub/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/loghub/internal/repo/withdrawal-repo"
)

// Repositories holds the concrete repositories. Each service narrows them to
// the interface it needs.
type Repositories struct {
	TXManager   pg.TXManager
	UserRepo    *userrepo.Repository
	ProfileRepo *profilerepo.Repository
	LedgerRepo  *ledgerrepo.Repository
	RentalRepo  *rentalrepo.Repository
	OrderRepo   *orderrepo.Repository
	ProductRepo *productrepo.Repository
	Withdrawal  *withdrawalrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TXManager:   txManager,
		UserRepo:    userrepo.New(conn),
		ProfileRepo: profilerepo.New(conn),
		LedgerRepo:  ledgerrepo.New(conn),
		RentalRepo:  rentalrepo.New(conn),
		OrderRepo:   orderrepo.New(conn, txManager),
		ProductRepo: productrepo.New(conn),
		Withdrawal:  withdrawalrepo.New(conn),
	}
}
