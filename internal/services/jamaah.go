package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/repos"
	"github.com/safarnesia/umrah-backend/internal/types"
)

type JamaahService interface {
	List(ctx context.Context, packageID *uuid.UUID, limit int) ([]*types.Jamaah, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Jamaah, error)
}

type jamaahService struct {
	db     *gorm.DB
	log    *logger.Logger
	jamaah repos.JamaahRepo
}

func NewJamaahService(db *gorm.DB, baseLog *logger.Logger, jamaahRepo repos.JamaahRepo) JamaahService {
	return &jamaahService{
		db:     db,
		log:    baseLog.With("service", "JamaahService"),
		jamaah: jamaahRepo,
	}
}

func (s *jamaahService) List(ctx context.Context, packageID *uuid.UUID, limit int) ([]*types.Jamaah, error) {
	if packageID != nil {
		return s.jamaah.ListByPackage(ctx, nil, *packageID)
	}
	return s.jamaah.List(ctx, nil, limit)
}

func (s *jamaahService) Get(ctx context.Context, id uuid.UUID) (*types.Jamaah, error) {
	return s.jamaah.GetByID(ctx, nil, id)
}
