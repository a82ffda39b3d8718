package client

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
)

func TestRelayMonotonicSurfacing(t *testing.T) {
	storage := NewMemoryStorage()
	publisher := NewRelay(storage, "tab-1", zap.NewNop())
	consumer := NewRelay(storage, "tab-2", zap.NewNop())

	publisher.Publish(BroadcastRecord{Title: "e1", Message: "m", Timestamp: 1000})
	publisher.Publish(BroadcastRecord{Title: "e2", Message: "m", Timestamp: 2000})

	got := consumer.Wake()
	if got == nil || got.Title != "e2" {
		t.Fatalf("first wake surfaced %+v, want the tail e2", got)
	}

	if again := consumer.Wake(); again != nil {
		t.Fatalf("wake with no new entries surfaced %+v", again)
	}

	publisher.Publish(BroadcastRecord{Title: "e3", Message: "m", Timestamp: 3000})
	if got := consumer.Wake(); got == nil || got.Title != "e3" {
		t.Fatalf("wake after new entry surfaced %+v, want e3", got)
	}
}

func TestRelayStaleEntryNotResurfaced(t *testing.T) {
	storage := NewMemoryStorage()
	publisher := NewRelay(storage, "tab-1", zap.NewNop())
	consumer := NewRelay(storage, "tab-2", zap.NewNop())

	publisher.Publish(BroadcastRecord{Title: "e1", Message: "m", Timestamp: 2000})
	if got := consumer.Wake(); got == nil || got.Title != "e1" {
		t.Fatalf("first wake surfaced %+v, want e1", got)
	}

	// an entry with an older timestamp lands later (clock skew between tabs)
	publisher.Publish(BroadcastRecord{Title: "stale", Message: "m", Timestamp: 1500})
	if got := consumer.Wake(); got != nil {
		t.Fatalf("stale entry was surfaced: %+v", got)
	}
}

func TestRelayLogTrimmed(t *testing.T) {
	storage := NewMemoryStorage()
	publisher := NewRelay(storage, "tab-1", zap.NewNop())

	for i := 0; i < BroadcastLogMax+15; i++ {
		publisher.Publish(BroadcastRecord{Title: fmt.Sprintf("e%d", i), Message: "m", Timestamp: int64(i + 1)})
	}

	entries := publisher.readLog()
	if len(entries) != BroadcastLogMax {
		t.Fatalf("log length = %d, want %d", len(entries), BroadcastLogMax)
	}
	if entries[0].Title != fmt.Sprintf("e%d", 15) {
		t.Fatalf("oldest surviving entry is %s, want e15", entries[0].Title)
	}
	if entries[len(entries)-1].Title != fmt.Sprintf("e%d", BroadcastLogMax+14) {
		t.Fatalf("newest entry is %s", entries[len(entries)-1].Title)
	}
}

func TestRelayLocalListener(t *testing.T) {
	storage := NewMemoryStorage()
	relay := NewRelay(storage, "tab-1", zap.NewNop())

	var local []string
	relay.OnLocal(func(rec BroadcastRecord) {
		local = append(local, rec.Title)
	})

	relay.Publish(BroadcastRecord{Title: "e1", Message: "m", Timestamp: 1000})

	if len(local) != 1 || local[0] != "e1" {
		t.Fatalf("local listener saw %v, want [e1]", local)
	}
}

func TestRelayWakesThroughStorageSignal(t *testing.T) {
	storage := NewMemoryStorage()
	publisher := NewRelay(storage, "tab-1", zap.NewNop())
	consumer := NewRelay(storage, "tab-2", zap.NewNop())

	var surfaced []string
	storage.Subscribe(func(key string) {
		if key != BroadcastLogKey {
			return
		}
		if rec := consumer.Wake(); rec != nil {
			surfaced = append(surfaced, rec.Title)
		}
	})

	publisher.Publish(BroadcastRecord{Title: "e1", Message: "m", Timestamp: 1000})
	publisher.Publish(BroadcastRecord{Title: "e2", Message: "m", Timestamp: 2000})

	if len(surfaced) != 2 || surfaced[0] != "e1" || surfaced[1] != "e2" {
		t.Fatalf("storage-driven wakes surfaced %v, want [e1 e2]", surfaced)
	}
}
