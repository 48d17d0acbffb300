package tasks

import (
	"testing"

	"traktlist/internal/trakt"
)

func TestSearchCache(t *testing.T) {
	t.Run("nil map is a valid empty cache", func(t *testing.T) {
		cache := NewSearchCache(nil)

		if cache.Len() != 0 {
			t.Errorf("expected empty cache, got %d entries", cache.Len())
		}
		if _, ok := cache.Lookup("Heat"); ok {
			t.Error("empty cache should miss")
		}
	})

	t.Run("lookup counts hits", func(t *testing.T) {
		cache := NewSearchCache(map[string]int64{"Heat": 72})

		id, ok := cache.Lookup("Heat")
		if !ok || id != 72 {
			t.Fatalf("expected hit with 72, got %d (ok=%v)", id, ok)
		}

		cache.Lookup("Heat")
		cache.Lookup("Missing")

		if cache.Hits() != 2 {
			t.Errorf("expected 2 hits, got %d", cache.Hits())
		}
	})

	t.Run("lookups are case sensitive", func(t *testing.T) {
		cache := NewSearchCache(map[string]int64{"Heat": 72})

		if _, ok := cache.Lookup("heat"); ok {
			t.Error("lookup must not case-fold the key")
		}
	})

	t.Run("put tracks dirty entries", func(t *testing.T) {
		cache := NewSearchCache(map[string]int64{"Heat": 72})

		cache.Put("Ronin", trakt.MediaTypeMovie, 79)

		if id, ok := cache.Lookup("Ronin"); !ok || id != 79 {
			t.Errorf("expected put entry to be visible, got %d (ok=%v)", id, ok)
		}

		dirty := cache.Dirty()
		if len(dirty) != 1 {
			t.Fatalf("expected 1 dirty entry, got %d", len(dirty))
		}
		if dirty[0].Title != "Ronin" || dirty[0].TraktID != 79 || dirty[0].MediaType != "movie" {
			t.Errorf("unexpected dirty entry %+v", dirty[0])
		}
	})

	t.Run("preloaded entries are not dirty", func(t *testing.T) {
		cache := NewSearchCache(map[string]int64{"Heat": 72, "Ronin": 79})

		if len(cache.Dirty()) != 0 {
			t.Errorf("loaded entries must not be flushed back, got %d dirty", len(cache.Dirty()))
		}
	})
}
