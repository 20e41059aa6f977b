// Package store persists notes as a single pretty-printed JSON array.
//
// Every mutation rewrites the whole file. Loading goes through an explicit
// Parse step on loosely-typed records followed by Migrate, which backfills
// fields missing from legacy or hand-edited entries.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-ports/notes/internal/config"
	"github.com/go-ports/notes/internal/models"
)

// indent is the per-level indentation of the store file.
const indent = "    "

// tempFilePattern names the scratch file used for atomic saves.
const tempFilePattern = ".notes-tmp-*.json"

// ErrCorrupt is wrapped by every ParseError.
var ErrCorrupt = errors.New("note store is not valid JSON")

// ParseError reports store contents that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrCorrupt, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrCorrupt, e.Err)
}

// Unwrap lets errors.Is match both ErrCorrupt and the decoder error.
func (e *ParseError) Unwrap() []error { return []error{ErrCorrupt, e.Err} }

// Record is a note as found on disk, before normalization.
type Record map[string]any

// ---------------------------------------------------------------------------
// Parse / Migrate
// ---------------------------------------------------------------------------

// Parse decodes data as a JSON array of objects.
func Parse(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Err: err}
	}
	return records, nil
}

// Migrate converts records to notes. Records without an id receive a fresh
// short id distinct from every other id in the set; records without a
// created_at receive now. It reports how many records were changed.
func Migrate(records []Record, now time.Time) ([]models.Note, int) {
	taken := make(map[string]bool, len(records))
	for _, r := range records {
		if id, ok := r.field("id"); ok {
			taken[id] = true
		}
	}

	notes := make([]models.Note, 0, len(records))
	migrated := 0
	stamp := models.FormatTimestamp(now)
	for _, r := range records {
		changed := false

		id, ok := r.field("id")
		if !ok {
			id = models.UniqueShortID(taken)
			taken[id] = true
			changed = true
		}
		createdAt, ok := r.field("created_at")
		if !ok {
			createdAt = stamp
			changed = true
		}
		title, _ := r.field("title")
		description, _ := r.field("description")

		if changed {
			migrated++
		}
		notes = append(notes, models.Note{
			ID:          id,
			Title:       title,
			Description: description,
			CreatedAt:   createdAt,
		})
	}
	return notes, migrated
}

// field returns the value stored under key as a string. Absent, null and
// empty values report false. Numbers are rendered without an exponent so a
// hand-edited numeric id stays addressable; other scalars use %v.
func (r Record) field(key string) (string, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s = fmt.Sprint(t)
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// ---------------------------------------------------------------------------
// Load / Save
// ---------------------------------------------------------------------------

// Load reads every note from path. A missing or empty file yields an empty
// slice. Undecodable contents yield a *ParseError; the caller decides
// whether to carry on with an empty store.
func Load(path string) ([]models.Note, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []models.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}
	if len(data) == 0 {
		return []models.Note{}, nil
	}

	records, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}

	notes, migrated := Migrate(records, time.Now())
	slog.Debug("store.Load", "path", path, "notes", len(notes), "migrated", migrated)
	return notes, nil
}

// Encode renders notes in the on-disk format.
func Encode(notes []models.Note) ([]byte, error) {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.MarshalIndent(notes, "", indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save replaces the contents of path with notes. The data is written to a
// temporary file in the same directory and renamed over the target.
func Save(path string, notes []models.Note) error {
	data, err := Encode(notes)
	if err != nil {
		return fmt.Errorf("store.Save: encode: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	slog.Debug("store.Save", "path", path, "notes", len(notes))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, config.FilePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
