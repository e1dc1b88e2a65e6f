package persist

import "testing"

func TestRecordSearchAccumulates(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.RecordSearch(1000); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if err := s.RecordSearch(500); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}

	stats, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.SearchesRun != 2 {
		t.Errorf("SearchesRun = %d, want 2", stats.SearchesRun)
	}
	if stats.NodesSearched != 1500 {
		t.Errorf("NodesSearched = %d, want 1500", stats.NodesSearched)
	}
}

func TestRecordNewGameIncrements(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for i := 0; i < 3; i++ {
		if err := s.RecordNewGame(); err != nil {
			t.Fatalf("RecordNewGame: %v", err)
		}
	}

	stats, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", stats.GamesPlayed)
	}
}

func TestLoadOnEmptyStoreReturnsZeroValue(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	stats, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.SearchesRun != 0 || stats.NodesSearched != 0 {
		t.Errorf("expected zero-value Stats on an empty store, got %+v", stats)
	}
}
