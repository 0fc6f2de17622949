package redis

import (
	"testing"

	"github.com/safarnesia/umrah-backend/internal/sse"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
		channel string
		event   sse.SSEEvent
	}{
		{
			name:    "room list update",
			payload: `{"channel":"package:7e6b0b2e-0000-0000-0000-000000000001","event":"RoomListUpdated"}`,
			channel: "package:7e6b0b2e-0000-0000-0000-000000000001",
			event:   sse.SSEEventRoomListUpdated,
		},
		{
			name:    "batch progress with data",
			payload: `{"channel":"invoice-batch:x","event":"InvoiceBatchProgress","data":{"completed":5,"total":12}}`,
			channel: "invoice-batch:x",
			event:   sse.SSEEventInvoiceProgress,
		},
		{
			name:    "not json",
			payload: "ping",
			wantErr: true,
		},
		{
			name:    "missing channel",
			payload: `{"event":"RoomListUpdated"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := decodeEvent(tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("decode succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if msg.Channel != tt.channel || msg.Event != tt.event {
				t.Fatalf("decoded %q/%q, want %q/%q", msg.Channel, msg.Event, tt.channel, tt.event)
			}
		})
	}
}
