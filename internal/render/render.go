// Package render writes note listings in the formats offered by `notes list`.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/notes/internal/models"
)

// Format names accepted by Write.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Formats lists every supported format, default first.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatMarkdown}

// Placeholder is shown for fields that are empty.
const Placeholder = "(none)"

// Divider separates entries in text output.
var Divider = strings.Repeat("-", 40)

// displayLayout is the local timestamp layout in text and markdown output.
const displayLayout = "2006-01-02 15:04:05"

// Write renders notes to w in the given format. now anchors relative ages.
func Write(w io.Writer, format string, notes []models.Note, now time.Time) error {
	switch format {
	case FormatText, "":
		return Text(w, notes, now)
	case FormatJSON:
		return JSON(w, notes)
	case FormatYAML:
		return YAML(w, notes)
	case FormatMarkdown:
		return Markdown(w, notes)
	}
	return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

// Text writes one block per note followed by a divider.
func Text(w io.Writer, notes []models.Note, now time.Time) error {
	var sb strings.Builder
	for _, n := range notes {
		sb.WriteString("ID:          ")
		sb.WriteString(orPlaceholder(n.ID))
		sb.WriteString("\nTitle:       ")
		sb.WriteString(orPlaceholder(n.Title))
		sb.WriteString("\nDescription: ")
		sb.WriteString(orPlaceholder(n.Description))
		sb.WriteString("\nCreated:     ")
		sb.WriteString(CreatedLabel(n, now))
		sb.WriteString("\n")
		sb.WriteString(Divider)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// CreatedLabel renders created_at in local time with its age, or the raw
// value when it does not parse.
func CreatedLabel(n models.Note, now time.Time) string {
	at, err := n.Created()
	if err != nil {
		return orPlaceholder(n.CreatedAt)
	}
	return fmt.Sprintf("%s (%s)", at.Local().Format(displayLayout), humanize.RelTime(at, now, "ago", "from now"))
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// ---------------------------------------------------------------------------
// Structured formats
// ---------------------------------------------------------------------------

// JSON writes notes as an indented JSON array.
func JSON(w io.Writer, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(notes)
}

// YAML writes notes as a YAML sequence.
func YAML(w io.Writer, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return err
	}
	return enc.Close()
}

// ---------------------------------------------------------------------------
// Markdown
// ---------------------------------------------------------------------------

// RenderSection produces a single ### heading block for a note.
func RenderSection(n models.Note) string {
	var sb strings.Builder
	sb.WriteString("### ")
	sb.WriteString(orPlaceholder(n.Title))
	sb.WriteString("\n**ID:** ")
	sb.WriteString(orPlaceholder(n.ID))
	sb.WriteString("\n**Created:** ")
	if at, err := n.Created(); err == nil {
		sb.WriteString(at.Local().Format(displayLayout))
	} else {
		sb.WriteString(orPlaceholder(n.CreatedAt))
	}
	if n.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(n.Description)
	}
	return sb.String()
}

// Markdown writes a document with one section per note.
func Markdown(w io.Writer, notes []models.Note) error {
	var sb strings.Builder
	sb.WriteString("# Notes\n")
	for _, n := range notes {
		sb.WriteString("\n")
		sb.WriteString(RenderSection(n))
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
