package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	s := openTemp(t)

	t.Run("EmptySnapshot", func(t *testing.T) {
		if _, err := s.LoadSnapshot(); !errors.Is(err, ErrNoSnapshot) {
			t.Errorf("Expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("SnapshotRoundTrip", func(t *testing.T) {
		snap := &Snapshot{Games: []CachedGame{
			{ID: "g1", FEN: "8/8/8/8/8/8/8/8 w", Color: "white", Opponent: "alice", IsMyTurn: true},
			{ID: "g2", FEN: "8/8/8/8/8/8/8/8 b", Color: "black", Opponent: "bob", LastMove: "e7e5"},
		}}
		if err := s.SaveSnapshot(snap); err != nil {
			t.Fatalf("SaveSnapshot failed: %v", err)
		}
		if snap.FetchedAt.IsZero() {
			t.Error("Expected FetchedAt to be stamped")
		}

		got, err := s.LoadSnapshot()
		if err != nil {
			t.Fatalf("LoadSnapshot failed: %v", err)
		}
		if len(got.Games) != 2 || got.Games[1].Opponent != "bob" || got.Games[1].LastMove != "e7e5" {
			t.Errorf("unexpected snapshot: %+v", got)
		}
		if time.Since(got.FetchedAt) > time.Minute {
			t.Errorf("FetchedAt not preserved: %v", got.FetchedAt)
		}
	})

	t.Run("LastViewed", func(t *testing.T) {
		id, err := s.LastViewed()
		if err != nil || id != "" {
			t.Errorf("Expected empty last viewed, got %q, %v", id, err)
		}
		if err := s.SetLastViewed("g2"); err != nil {
			t.Fatalf("SetLastViewed failed: %v", err)
		}
		id, err = s.LastViewed()
		if err != nil || id != "g2" {
			t.Errorf("Expected g2, got %q, %v", id, err)
		}
	})
}

func TestStoragePersists(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	if err := s.SetLastViewed("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewStorage(dir)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer s.Close()

	if id, _ := s.LastViewed(); id != "abc" {
		t.Errorf("Expected abc after reopen, got %q", id)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME is only honored on Linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir failed: %v", err)
	}
	if want := filepath.Join(base, "chesstalk", "games"); dir != want {
		t.Errorf("cacheDir = %q, want %q", dir, want)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Cache directory was not created: %v", err)
	}

	s, err := NewStorage("")
	if err != nil {
		t.Fatalf("NewStorage in default dir failed: %v", err)
	}
	defer s.Close()
	if err := s.SetLastViewed("xyz"); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		t.Errorf("Expected database files in %s, got %v, %v", dir, entries, err)
	}
}
