// Package models defines the note entity and its identifier and timestamp helpers.
package models

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShortIDLen is the length of a note identifier.
const ShortIDLen = 8

// maxIDAttempts bounds regeneration when a fresh id collides with an existing one.
const maxIDAttempts = 32

// Note is a single persisted note. Field order is the on-disk key order.
type Note struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// New builds a note stamped with now and a short id not present in taken.
// taken may be nil.
func New(title, description string, now time.Time, taken map[string]bool) Note {
	return Note{
		ID:          UniqueShortID(taken),
		Title:       title,
		Description: description,
		CreatedAt:   FormatTimestamp(now),
	}
}

// Created parses CreatedAt.
func (n Note) Created() (time.Time, error) {
	return ParseTimestamp(n.CreatedAt)
}

// ---------------------------------------------------------------------------
// Identifiers
// ---------------------------------------------------------------------------

// NewShortID returns the first eight characters of a random UUID.
func NewShortID() string {
	return uuid.New().String()[:ShortIDLen]
}

// UniqueShortID returns a short id that is not a key of taken.
func UniqueShortID(taken map[string]bool) string {
	return uniqueID(taken, NewShortID)
}

func uniqueID(taken map[string]bool, gen func() string) string {
	id := gen()
	for i := 1; i < maxIDAttempts && taken[id]; i++ {
		id = gen()
	}
	if taken[id] {
		slog.Warn("UniqueShortID: gave up regenerating colliding id", "id", id)
	}
	return id
}

// ---------------------------------------------------------------------------
// Timestamps
// ---------------------------------------------------------------------------

// TimestampLayout is the ISO-8601 layout written for new notes.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// parseLayouts are tried in order; the offset-free forms cover records written
// by older tools that stored naive local times.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatTimestamp renders t for storage.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses an ISO-8601 timestamp. Values without an offset are
// read in the local zone.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
