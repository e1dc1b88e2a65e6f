// Package persist keeps cumulative engine statistics (games played, nodes
// searched) in a small embedded database so they survive process restarts.
// It sits entirely outside the core: the engine itself has no persistent
// state beyond the transposition table's process lifetime.
package persist

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const statsKey = "stats"

// Stats is the cumulative record kept across every search this database has
// observed.
type Stats struct {
	GamesPlayed   int       `json:"games_played"`
	SearchesRun   int       `json:"searches_run"`
	NodesSearched uint64    `json:"nodes_searched"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Store wraps an embedded key-value database holding a single Stats record.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database's file locks.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the stored Stats, or a zero Stats if none exists yet.
func (s *Store) Load() (Stats, error) {
	var stats Stats
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(statsKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stats)
		})
	})
	return stats, err
}

// RecordSearch folds one completed search's node count into the running
// total and persists it immediately.
func (s *Store) RecordSearch(nodes uint64) error {
	stats, err := s.Load()
	if err != nil {
		return err
	}
	stats.SearchesRun++
	stats.NodesSearched += nodes
	stats.LastUpdated = time.Now()
	return s.save(stats)
}

// RecordNewGame increments the games-played counter on ucinewgame.
func (s *Store) RecordNewGame() error {
	stats, err := s.Load()
	if err != nil {
		return err
	}
	stats.GamesPlayed++
	stats.LastUpdated = time.Now()
	return s.save(stats)
}

func (s *Store) save(stats Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(statsKey), data)
	})
}
