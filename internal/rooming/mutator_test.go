package rooming

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/safarnesia/umrah-backend/internal/types"
)

func TestAssignValidation(t *testing.T) {
	cases := []struct {
		name       string
		ids        []uuid.UUID
		roomNumber string
		wantErr    error
	}{
		{name: "empty_selection", ids: nil, roomNumber: "101", wantErr: ErrEmptySelection},
		{name: "empty_room_number", ids: []uuid.UUID{uuid.New()}, roomNumber: "", wantErr: ErrEmptyRoomNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			batch, err := Assign(tc.ids, tc.roomNumber, RoomTypeQuad, false)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v, want %v", err, tc.wantErr)
			}
			if batch != nil {
				t.Fatalf("validation failure must not produce a batch")
			}
		})
	}
}

func TestAssignCapacitySignal(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	batch, err := Assign(ids, "102", RoomTypeDouble, false)
	if batch != nil {
		t.Fatalf("over-capacity assign must not produce a batch without override")
	}

	var capErr *CapacityExceededError
	if !errors.As(err, &capErr) {
		t.Fatalf("err=%T, want *CapacityExceededError", err)
	}
	if capErr.Requested != 3 || capErr.Capacity != 2 {
		t.Fatalf("signal carries requested=%d capacity=%d, want 3/2", capErr.Requested, capErr.Capacity)
	}
}

func TestAssignOverrideProceeds(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	batch, err := Assign(ids, "102", RoomTypeDouble, true)
	if err != nil {
		t.Fatalf("override assign failed: %v", err)
	}
	if len(batch) != 3 {
		t.Fatalf("batch size=%d, want full selection of 3", len(batch))
	}
}

func TestAssignSingleWithinCapacity(t *testing.T) {
	id := uuid.New()

	batch, err := Assign([]uuid.UUID{id}, "102", RoomTypeSingle, false)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if len(batch) != 1 || batch[0].ID != id {
		t.Fatalf("batch=%v, want one update for %s", batch, id)
	}
	if batch[0].Data.RoomNumber == nil || *batch[0].Data.RoomNumber != "102" {
		t.Fatalf("room number not set")
	}
	if batch[0].Data.RoomType == nil || *batch[0].Data.RoomType != RoomTypeSingle {
		t.Fatalf("room type not set")
	}
}

func TestAssignUnknownTypeDefaultsToQuadCapacity(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	if _, err := Assign(ids, "500", "family-suite", false); err != nil {
		t.Fatalf("four travelers should fit the default capacity: %v", err)
	}

	ids = append(ids, uuid.New())
	var capErr *CapacityExceededError
	if _, err := Assign(ids, "500", "family-suite", false); !errors.As(err, &capErr) {
		t.Fatalf("fifth traveler should trip the default capacity")
	}
}

func TestUnassignIsIdempotent(t *testing.T) {
	id := uuid.New()

	first := Unassign(id)
	second := Unassign(id)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unassign emits exactly one update")
	}
	if first[0] != second[0] {
		t.Fatalf("repeated unassign must describe the same mutation")
	}
	if first[0].Data.RoomNumber != nil || first[0].Data.RoomType != nil {
		t.Fatalf("unassign must clear both room fields")
	}
}

func TestDismissRoomClearsEveryMember(t *testing.T) {
	a := jamaah("Ahmad", "101", "quad")
	b := jamaah("Budi", "101", "quad")
	group := RoomGroup{RoomNumber: "101", RoomType: "quad", Members: []*types.Jamaah{a, b}}

	batch := DismissRoom(group)

	if len(batch) != 2 {
		t.Fatalf("batch size=%d, want 2", len(batch))
	}
	for _, u := range batch {
		if u.Data.RoomNumber != nil || u.Data.RoomType != nil {
			t.Fatalf("dismiss must clear room fields for %s", u.ID)
		}
	}
	if batch[0].ID != a.ID || batch[1].ID != b.ID {
		t.Fatalf("dismiss batch must keep member order")
	}
}
