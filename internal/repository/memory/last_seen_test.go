package memory

import (
	"context"
	"sync"
	"testing"
)

func TestLastSeenStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewLastSeenStore()

	if _, ok, _ := s.Get(ctx, "PKK_FOREIGNERS"); ok {
		t.Fatal("empty store must have no value")
	}
	_ = s.Set(ctx, "PKK_FOREIGNERS", "2024-05-10")
	term, ok, err := s.Get(ctx, "PKK_FOREIGNERS")
	if err != nil || !ok || term != "2024-05-10" {
		t.Fatalf("unexpected get: %q %v %v", term, ok, err)
	}
	_ = s.Delete(ctx, "PKK_FOREIGNERS")
	if _, ok, _ := s.Get(ctx, "PKK_FOREIGNERS"); ok {
		t.Fatal("value must be gone after delete")
	}
}

func TestLastSeenStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewLastSeenStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "K", "2024-05-10")
			_, _, _ = s.Get(ctx, "K")
		}()
	}
	wg.Wait()

	if term, _, _ := s.Get(ctx, "K"); term != "2024-05-10" {
		t.Fatalf("unexpected term %q", term)
	}
}
