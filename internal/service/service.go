// Package service implements the note operations (create, list, delete) on
// top of the JSON store.
//
// Failures while reading or writing the store never abort an operation:
// load problems degrade to an empty store and are surfaced as warnings, and
// save problems are returned in the result so the caller can report them.
// A store that exists but cannot be read is never overwritten; only a
// corrupt store is replaced by the next change.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-ports/notes/internal/models"
	"github.com/go-ports/notes/internal/store"
)

// ErrEmptyTitle is returned by Create when the title is empty.
var ErrEmptyTitle = errors.New("title is required")

// Service runs note operations against one store file.
type Service struct {
	StorePath string

	now func() time.Time
}

// New returns a Service bound to the store file at storePath.
func New(storePath string) *Service {
	return &Service{StorePath: storePath, now: time.Now}
}

// CreateResult is returned from Service.Create.
type CreateResult struct {
	Note     models.Note
	Warnings []string
	SaveErr  error
}

// ListResult is returned from Service.List.
type ListResult struct {
	Notes    []models.Note // most recent first
	Warnings []string
}

// DeleteResult is returned from Service.Delete.
type DeleteResult struct {
	Removed  int
	Warnings []string
	SaveErr  error
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// load reads the store, degrading to an empty slice on any error. The
// returned warnings describe what was discarded. readErr is set when the
// file exists but could not be read; callers must not save over it.
func (s *Service) load() (notes []models.Note, warnings []string, readErr error) {
	notes, err := store.Load(s.StorePath)
	if err == nil {
		return notes, nil, nil
	}

	var perr *store.ParseError
	if errors.As(err, &perr) {
		slog.Debug("load: corrupt store", "path", s.StorePath, "err", perr.Err)
		return []models.Note{}, []string{
			fmt.Sprintf("notes file %s is corrupted and was ignored; it will be replaced on the next change", s.StorePath),
		}, nil
	}
	slog.Debug("load: read failed", "path", s.StorePath, "err", err)
	return []models.Note{}, []string{fmt.Sprintf("could not read notes file: %v", err)}, err
}

// sortByRecency orders notes by created_at, newest first. The sort is stable;
// notes whose timestamp does not parse keep their relative order and are
// placed after every dated note. It returns how many timestamps failed.
func sortByRecency(notes []models.Note) ([]models.Note, int) {
	type keyed struct {
		note models.Note
		at   time.Time
		ok   bool
	}
	keys := make([]keyed, len(notes))
	bad := 0
	for i, n := range notes {
		at, err := n.Created()
		keys[i] = keyed{note: n, at: at, ok: err == nil}
		if err != nil {
			bad++
		}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.ok && !b.ok:
			return -1
		case !a.ok && b.ok:
			return 1
		case !a.ok && !b.ok:
			return 0
		}
		return b.at.Compare(a.at)
	})

	out := make([]models.Note, len(keys))
	for i, k := range keys {
		out[i] = k.note
	}
	return out, bad
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

// Create appends a new note to the store. description may be empty.
func (s *Service) Create(title, description string) (*CreateResult, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	notes, warnings, readErr := s.load()

	taken := make(map[string]bool, len(notes))
	for _, n := range notes {
		taken[n.ID] = true
	}
	note := models.New(title, description, s.now(), taken)
	notes = append(notes, note)

	res := &CreateResult{Note: note, Warnings: warnings}
	if readErr != nil {
		res.SaveErr = fmt.Errorf("existing notes could not be read, not overwriting: %w", readErr)
		return res, nil
	}
	if err := store.Save(s.StorePath, notes); err != nil {
		slog.Debug("Create: save failed", "err", err)
		res.SaveErr = err
	}
	return res, nil
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List returns every note, most recent first.
func (s *Service) List() (*ListResult, error) {
	notes, warnings, _ := s.load()

	sorted, bad := sortByRecency(notes)
	if bad > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d note(s) have an unreadable created_at and are listed last in file order", bad,
		))
	}
	return &ListResult{Notes: sorted, Warnings: warnings}, nil
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

// Delete removes every note whose id equals id. The store is only rewritten
// when something was removed.
func (s *Service) Delete(id string) (*DeleteResult, error) {
	notes, warnings, readErr := s.load()

	kept := slices.DeleteFunc(slices.Clone(notes), func(n models.Note) bool {
		return n.ID == id
	})

	res := &DeleteResult{Removed: len(notes) - len(kept), Warnings: warnings}
	if res.Removed == 0 || readErr != nil {
		return res, nil
	}
	if err := store.Save(s.StorePath, kept); err != nil {
		slog.Debug("Delete: save failed", "err", err)
		res.SaveErr = err
	}
	return res, nil
}
