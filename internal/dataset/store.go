package dataset

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"ecom-dashboard/internal/models"
	"golang.org/x/sync/singleflight"
)

const (
	cacheVersion = "v1"
	cacheDir     = ".cache"
)

// Store memoizes generated datasets by seed. A dataset is produced at most
// once per process (concurrent first calls collapse via singleflight) and is
// immutable afterwards, so readers never need a copy.
type Store struct {
	mu     sync.RWMutex
	sets   map[int64][]models.TransactionRecord
	group  singleflight.Group
	start  time.Time
	days   int
	logger *slog.Logger
}

func NewStore(start time.Time, days int) *Store {
	return &Store{
		sets:   make(map[int64][]models.TransactionRecord),
		start:  start,
		days:   days,
		logger: slog.Default(),
	}
}

// Dataset returns the memoized dataset for a seed, generating it on first use.
// Callers must treat the returned slice as read-only.
func (s *Store) Dataset(seed int64) []models.TransactionRecord {
	s.mu.RLock()
	set, ok := s.sets[seed]
	s.mu.RUnlock()
	if ok {
		return set
	}

	v, _, _ := s.group.Do(strconv.FormatInt(seed, 10), func() (any, error) {
		s.mu.RLock()
		set, ok := s.sets[seed]
		s.mu.RUnlock()
		if ok {
			return set, nil
		}

		set = s.load(seed)

		s.mu.Lock()
		s.sets[seed] = set
		s.mu.Unlock()
		return set, nil
	})

	return v.([]models.TransactionRecord)
}

func (s *Store) load(seed int64) []models.TransactionRecord {
	if cached, err := s.loadFromCache(seed); err == nil {
		s.logger.Info("dataset loaded from cache", "seed", seed, "records", len(cached))
		return cached
	}

	start := time.Now()
	set := Generate(seed, s.start, s.days)

	if err := s.saveToCache(seed, set); err != nil {
		s.logger.Warn("failed to save dataset cache", "seed", seed, "error", err)
	}

	s.logger.Info("dataset generated",
		"seed", seed,
		"records", len(set),
		"duration", time.Since(start))
	return set
}

// Seeds reports which seeds are currently memoized, for the admin endpoint.
func (s *Store) Seeds() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seeds := make([]int64, 0, len(s.sets))
	for seed := range s.sets {
		seeds = append(seeds, seed)
	}
	return seeds
}

// Cache management. The dataset is pure arithmetic, so the gob cache is only
// a warm-start shortcut; a missing or stale file just means regenerating.
// The filename carries the full generation configuration (seed, start, span)
// so a store never serves a file written under a different configuration.
func (s *Store) cacheFilename(seed int64) string {
	return fmt.Sprintf("%s/dataset_%d_%s_%d_%s.gob", cacheDir, seed, s.start.Format("20060102"), s.days, cacheVersion)
}

func (s *Store) saveToCache(seed int64, set []models.TransactionRecord) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}

	file, err := os.Create(s.cacheFilename(seed))
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(set)
}

func (s *Store) loadFromCache(seed int64) ([]models.TransactionRecord, error) {
	file, err := os.Open(s.cacheFilename(seed))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var set []models.TransactionRecord
	if err := gob.NewDecoder(file).Decode(&set); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("empty cached dataset")
	}
	return set, nil
}
