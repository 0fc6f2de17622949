package rooming

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmptySelection  = errors.New("no jamaah selected")
	ErrEmptyRoomNumber = errors.New("room number must not be empty")
)

// CapacityExceededError signals that a selection does not fit the chosen room
// type. It is a condition for the caller to confirm, not a hard failure: the
// caller re-invokes Assign with override=true to proceed anyway. The core
// never truncates the selection on its own.
type CapacityExceededError struct {
	Requested int
	Capacity  int
	RoomType  string
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("selection of %d exceeds %s capacity of %d", e.Requested, e.RoomType, e.Capacity)
}

// RoomAssignment is the partial update written back through the bulk update
// sink. Nil pointers mean SQL NULL, the canonical cleared state.
type RoomAssignment struct {
	RoomNumber *string `json:"room_number"`
	RoomType   *string `json:"room_type"`
}

// JamaahUpdate pairs one jamaah id with its room mutation.
type JamaahUpdate struct {
	ID   uuid.UUID      `json:"id"`
	Data RoomAssignment `json:"data"`
}

// MutationBatch describes an intended room mutation. Applying it (and
// re-fetching the roster afterwards) is the repository's job.
type MutationBatch []JamaahUpdate

// Assign builds the batch placing every selected jamaah into the given room.
// Validation failures reject before any batch is constructed; an oversized
// selection yields *CapacityExceededError until the caller overrides.
func Assign(ids []uuid.UUID, roomNumber, roomType string, override bool) (MutationBatch, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	if roomNumber == "" {
		return nil, ErrEmptyRoomNumber
	}

	capacity := Capacity(roomType)
	if len(ids) > capacity && !override {
		return nil, &CapacityExceededError{Requested: len(ids), Capacity: capacity, RoomType: roomType}
	}

	batch := make(MutationBatch, 0, len(ids))
	for _, id := range ids {
		num, typ := roomNumber, roomType
		batch = append(batch, JamaahUpdate{
			ID:   id,
			Data: RoomAssignment{RoomNumber: &num, RoomType: &typ},
		})
	}
	return batch, nil
}

// Unassign clears the room fields of a single jamaah. Clearing an already
// unassigned jamaah produces the same batch, so re-applying is a no-op.
func Unassign(id uuid.UUID) MutationBatch {
	return MutationBatch{{ID: id, Data: RoomAssignment{}}}
}

// DismissRoom clears the room fields of every member in one batch, so the
// update sink sees a single round trip instead of one per traveler.
func DismissRoom(group RoomGroup) MutationBatch {
	batch := make(MutationBatch, 0, len(group.Members))
	for _, j := range group.Members {
		if j == nil {
			continue
		}
		batch = append(batch, JamaahUpdate{ID: j.ID, Data: RoomAssignment{}})
	}
	return batch
}
