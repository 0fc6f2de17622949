package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/repos"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type PackageService interface {
	List(ctx context.Context) ([]*types.Package, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Package, error)
}

type packageService struct {
	db       *gorm.DB
	log      *logger.Logger
	packages repos.PackageRepo
}

func NewPackageService(db *gorm.DB, baseLog *logger.Logger, packageRepo repos.PackageRepo) PackageService {
	return &packageService{
		db:       db,
		log:      baseLog.With("service", "PackageService"),
		packages: packageRepo,
	}
}

func (s *packageService) List(ctx context.Context) ([]*types.Package, error) {
	return s.packages.List(ctx, nil)
}

func (s *packageService) Get(ctx context.Context, id uuid.UUID) (*types.Package, error) {
	return s.packages.GetByID(ctx, nil, id)
}
