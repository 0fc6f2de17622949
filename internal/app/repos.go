package app

import (
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/repos"
)

type Repos struct {
	User            repos.UserRepo
	Package         repos.PackageRepo
	Jamaah          repos.JamaahRepo
	Transaction     repos.TransactionRepo
	CompanySettings repos.CompanySettingsRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		Package:         repos.NewPackageRepo(db, log),
		Jamaah:          repos.NewJamaahRepo(db, log),
		Transaction:     repos.NewTransactionRepo(db, log),
		CompanySettings: repos.NewCompanySettingsRepo(db, log),
	}
}
