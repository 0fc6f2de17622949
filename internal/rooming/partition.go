package rooming

import (
	"sort"
	"strings"

	"github.com/safarnesia/umrah-backend/internal/types"
)

// RoomKey identifies one room. Type is part of the identity: older bulk
// updates did not always normalize the type, and travelers recorded with the
// same number but different types must not be merged silently.
type RoomKey struct {
	Number string
	Type   string
}

// RoomGroup is a derived view, never persisted. Members keep roster order.
type RoomGroup struct {
	RoomNumber string          `json:"room_number"`
	RoomType   string          `json:"room_type"`
	Members    []*types.Jamaah `json:"members"`
}

func (g *RoomGroup) Key() RoomKey {
	return RoomKey{Number: g.RoomNumber, Type: g.RoomType}
}

// Partition is the result of splitting a roster into room groups.
type Partition struct {
	Unassigned []*types.Jamaah `json:"unassigned"`
	Rooms      []RoomGroup     `json:"rooms"`
}

// TotalAssigned counts travelers currently placed in a room.
func (p *Partition) TotalAssigned() int {
	n := 0
	for i := range p.Rooms {
		n += len(p.Rooms[i].Members)
	}
	return n
}

// Split partitions a roster snapshot into room groups plus the unassigned
// remainder. search applies a case-insensitive substring filter on the name
// before grouping; filtered-out travelers appear in neither output. The
// roster is treated as immutable and the full partition is recomputed on
// every call.
func Split(travelers []*types.Jamaah, search string) Partition {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := Partition{Unassigned: []*types.Jamaah{}, Rooms: []RoomGroup{}}
	index := make(map[RoomKey]int)

	for _, j := range travelers {
		if j == nil {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(j.Name), needle) {
			continue
		}
		if !j.Assigned() {
			out.Unassigned = append(out.Unassigned, j)
			continue
		}
		key := RoomKey{Number: *j.RoomNumber}
		if j.RoomType != nil {
			key.Type = *j.RoomType
		}
		pos, ok := index[key]
		if !ok {
			pos = len(out.Rooms)
			index[key] = pos
			out.Rooms = append(out.Rooms, RoomGroup{RoomNumber: key.Number, RoomType: key.Type})
		}
		out.Rooms[pos].Members = append(out.Rooms[pos].Members, j)
	}

	sort.SliceStable(out.Rooms, func(a, b int) bool {
		if c := compareNatural(out.Rooms[a].RoomNumber, out.Rooms[b].RoomNumber); c != 0 {
			return c < 0
		}
		return out.Rooms[a].RoomType < out.Rooms[b].RoomType
	})

	return out
}

// compareNatural orders strings with embedded numbers the way a hotel floor
// plan reads: "9" before "10", "A2" before "A10".
func compareNatural(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	default:
		return 0
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
