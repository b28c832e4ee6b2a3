package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// foodLogFile is the fixed relative name of the food diary file.
// Not configurable — the whole app shares this one logical resource.
const foodLogFile = "food_log.json"

// errPersistence marks a food-log file that could not be read, parsed, or
// written. The failed operation is abandoned; prior entries are never dropped.
var errPersistence = errors.New("food log persistence failure")

// foodLogStore is an append-only log of food entries backed by a single JSON
// file holding the whole array. The read-modify-write cycle is not locked:
// concurrent writers can clobber each other (last write wins on the whole
// collection). Acceptable for the single-user dashboard this serves; a
// multi-session deployment would need a file lock or single-writer queue.
type foodLogStore struct {
	path string
}

func newFoodLogStore(path string) *foodLogStore {
	return &foodLogStore{path: path}
}

// loadAll returns every stored entry in original insertion order. A missing
// file is a valid initial state and yields an empty slice, not an error.
// Malformed content is an error — the store never fabricates a default over
// data it cannot read.
func (s *foodLogStore) loadAll() ([]foodLogEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []foodLogEntry{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", errPersistence, s.path, err)
	}

	var entries []foodLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", errPersistence, s.path, err)
	}
	if entries == nil {
		entries = []foodLogEntry{}
	}
	return entries, nil
}

// append loads the full collection, appends e preserving prior order, and
// rewrites the whole file. If the load fails the write is not attempted —
// overwriting a file we could not parse would silently destroy prior entries.
func (s *foodLogStore) append(e foodLogEntry) error {
	entries, err := s.loadAll()
	if err != nil {
		return err
	}

	entries = append(entries, e)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", errPersistence, s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", errPersistence, s.path, err)
	}
	return nil
}

// summarizeDay aggregates the entries whose date field equals date (string
// equality on the YYYY-MM-DD form): total calories over all matches, plus the
// last five matches in original order — the tail, not a sample.
func (s *foodLogStore) summarizeDay(date string) (daySummary, error) {
	entries, err := s.loadAll()
	if err != nil {
		return daySummary{}, err
	}

	matches := []foodLogEntry{}
	total := 0
	for _, e := range entries {
		if e.Date == date {
			matches = append(matches, e)
			total += e.Calories
		}
	}

	tail := matches
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}

	return daySummary{
		Date:          date,
		TotalCalories: total,
		EntryCount:    len(matches),
		Entries:       tail,
	}, nil
}
