package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/repos"
	"github.com/safarnesia/umrah-backend/internal/rooming"
	"github.com/safarnesia/umrah-backend/internal/sse"
	"github.com/safarnesia/umrah-backend/internal/types"
)

// RoomListView is the room occupancy picture for one package at one moment.
type RoomListView struct {
	Package       *types.Package     `json:"package,omitempty"`
	Unassigned    []*types.Jamaah    `json:"unassigned"`
	Rooms         []rooming.RoomGroup `json:"rooms"`
	TotalAssigned int                `json:"total_assigned"`
	TotalRooms    int                `json:"total_rooms"`
}

// RoomListService owns the reload-after-mutate loop around the rooming core:
// every mutation applies a batch through the bulk update sink, then callers
// re-read a fresh partition. No roster state lives here.
type RoomListService interface {
	GetRoomList(ctx context.Context, packageID uuid.UUID, search string) (*RoomListView, error)
	AssignRoom(ctx context.Context, packageID uuid.UUID, jamaahIDs []uuid.UUID, roomNumber, roomType string, override bool) error
	RemoveFromRoom(ctx context.Context, packageID, jamaahID uuid.UUID) error
	DismissRoom(ctx context.Context, packageID uuid.UUID, roomNumber, roomType string) error
}

type roomListService struct {
	db       *gorm.DB
	log      *logger.Logger
	jamaah   repos.JamaahRepo
	packages repos.PackageRepo
	notify   Notifier
}

func NewRoomListService(db *gorm.DB, baseLog *logger.Logger, jamaahRepo repos.JamaahRepo, packageRepo repos.PackageRepo, notify Notifier) RoomListService {
	return &roomListService{
		db:       db,
		log:      baseLog.With("service", "RoomListService"),
		jamaah:   jamaahRepo,
		packages: packageRepo,
		notify:   notify,
	}
}

func (s *roomListService) GetRoomList(ctx context.Context, packageID uuid.UUID, search string) (*RoomListView, error) {
	pkg, err := s.packages.GetByID(ctx, nil, packageID)
	if err != nil {
		return nil, fmt.Errorf("load package: %w", err)
	}

	roster, err := s.jamaah.ListByPackage(ctx, nil, packageID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	partition := rooming.Split(roster, search)
	return &RoomListView{
		Package:       pkg,
		Unassigned:    partition.Unassigned,
		Rooms:         partition.Rooms,
		TotalAssigned: partition.TotalAssigned(),
		TotalRooms:    len(partition.Rooms),
	}, nil
}

func (s *roomListService) AssignRoom(ctx context.Context, packageID uuid.UUID, jamaahIDs []uuid.UUID, roomNumber, roomType string, override bool) error {
	batch, err := rooming.Assign(jamaahIDs, roomNumber, roomType, override)
	if err != nil {
		return err
	}
	if err := s.jamaah.BulkUpdateRooms(ctx, nil, batch); err != nil {
		return fmt.Errorf("apply assign batch: %w", err)
	}
	s.log.Info("Room assigned", "package_id", packageID, "room_number", roomNumber, "room_type", roomType, "count", len(batch))
	s.notifyRoomListUpdated(ctx, packageID)
	return nil
}

func (s *roomListService) RemoveFromRoom(ctx context.Context, packageID, jamaahID uuid.UUID) error {
	batch := rooming.Unassign(jamaahID)
	if err := s.jamaah.BulkUpdateRooms(ctx, nil, batch); err != nil {
		return fmt.Errorf("apply unassign batch: %w", err)
	}
	s.notifyRoomListUpdated(ctx, packageID)
	return nil
}

// DismissRoom empties a room identified by its (number, type) pair. A room
// that no longer exists dismisses to nothing, which keeps the operation
// idempotent under double-clicks and stale views.
func (s *roomListService) DismissRoom(ctx context.Context, packageID uuid.UUID, roomNumber, roomType string) error {
	roster, err := s.jamaah.ListByPackage(ctx, nil, packageID)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	partition := rooming.Split(roster, "")
	key := rooming.RoomKey{Number: roomNumber, Type: roomType}
	for i := range partition.Rooms {
		if partition.Rooms[i].Key() != key {
			continue
		}
		batch := rooming.DismissRoom(partition.Rooms[i])
		if err := s.jamaah.BulkUpdateRooms(ctx, nil, batch); err != nil {
			return fmt.Errorf("apply dismiss batch: %w", err)
		}
		s.log.Info("Room dismissed", "package_id", packageID, "room_number", roomNumber, "count", len(batch))
		s.notifyRoomListUpdated(ctx, packageID)
		return nil
	}

	s.log.Debug("Dismiss on unknown room is a no-op", "package_id", packageID, "room_number", roomNumber)
	return nil
}

func (s *roomListService) notifyRoomListUpdated(ctx context.Context, packageID uuid.UUID) {
	if s.notify == nil {
		return
	}
	s.notify.Notify(ctx, sse.SSEMessage{
		Channel: sse.PackageChannel(packageID),
		Event:   sse.SSEEventRoomListUpdated,
	})
}
