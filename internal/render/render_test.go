package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/notes/internal/models"
	"github.com/go-ports/notes/internal/render"
)

var sample = []models.Note{
	{ID: "ccc222dd", Title: "Call Bob", Description: "about the invoice", CreatedAt: "2024-01-02T10:00:00.000000Z"},
	{ID: "aaa111bb", Title: "Buy milk", Description: "", CreatedAt: "2024-01-01T10:00:00.000000Z"},
}

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

func TestText_HappyPath(t *testing.T) {
	c := qt.New(t)

	now := time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	c.Assert(render.Text(&buf, sample, now), qt.IsNil)

	out := buf.String()
	c.Assert(strings.Count(out, render.Divider), qt.Equals, 2)
	c.Assert(out, qt.Contains, "ID:          ccc222dd")
	c.Assert(out, qt.Contains, "Title:       Call Bob")
	c.Assert(out, qt.Contains, "Description: about the invoice")
	c.Assert(out, qt.Contains, "Description: (none)")
	c.Assert(out, qt.Contains, "3 hours ago")
	c.Assert(strings.Index(out, "Call Bob") < strings.Index(out, "Buy milk"), qt.IsTrue)
}

func TestCreatedLabel(t *testing.T) {
	c := qt.New(t)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	c.Run("parseable timestamp is shown in local time", func(c *qt.C) {
		n := models.Note{CreatedAt: "2024-01-01T09:00:00.000000Z"}
		want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).Local().Format("2006-01-02 15:04:05")
		c.Assert(render.CreatedLabel(n, now), qt.Equals, want+" (1 hour ago)")
	})

	c.Run("raw value when unparseable", func(c *qt.C) {
		n := models.Note{CreatedAt: "last tuesday"}
		c.Assert(render.CreatedLabel(n, now), qt.Equals, "last tuesday")
	})

	c.Run("placeholder when empty", func(c *qt.C) {
		c.Assert(render.CreatedLabel(models.Note{}, now), qt.Equals, render.Placeholder)
	})
}

// ---------------------------------------------------------------------------
// Structured formats
// ---------------------------------------------------------------------------

func TestJSON_HappyPath(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.JSON(&buf, sample), qt.IsNil)

	var got []models.Note
	c.Assert(json.Unmarshal(buf.Bytes(), &got), qt.IsNil)
	c.Assert(got, qt.DeepEquals, sample)
}

func TestJSON_NilIsEmptyArray(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.JSON(&buf, nil), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "[]\n")
}

func TestYAML_HappyPath(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.YAML(&buf, sample), qt.IsNil)
	c.Assert(buf.String(), qt.Contains, "- id: ccc222dd\n  title: Call Bob\n")
	c.Assert(buf.String(), qt.Contains, "created_at: \"2024-01-02T10:00:00.000000Z\"")

	var got []models.Note
	c.Assert(yaml.Unmarshal(buf.Bytes(), &got), qt.IsNil)
	c.Assert(got, qt.DeepEquals, sample)
}

// ---------------------------------------------------------------------------
// Markdown
// ---------------------------------------------------------------------------

func TestRenderSection_HappyPath(t *testing.T) {
	c := qt.New(t)

	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Local().Format("2006-01-02 15:04:05")

	cases := []struct {
		name string
		note models.Note
		want string
	}{
		{
			name: "title only",
			note: models.Note{ID: "aaa111bb", Title: "Buy milk", CreatedAt: "2024-01-01T10:00:00.000000Z"},
			want: "### Buy milk\n**ID:** aaa111bb\n**Created:** " + created,
		},
		{
			name: "with description",
			note: models.Note{ID: "aaa111bb", Title: "Buy milk", Description: "2%", CreatedAt: "2024-01-01T10:00:00.000000Z"},
			want: "### Buy milk\n**ID:** aaa111bb\n**Created:** " + created + "\n\n2%",
		},
		{
			name: "missing fields use placeholder",
			note: models.Note{CreatedAt: "garbled"},
			want: "### (none)\n**ID:** (none)\n**Created:** garbled",
		},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(render.RenderSection(tc.note), qt.Equals, tc.want)
		})
	}
}

func TestMarkdown_HappyPath(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(render.Markdown(&buf, sample), qt.IsNil)
	c.Assert(buf.String(), qt.Matches, `(?s)# Notes\n\n### Call Bob\n.*\n### Buy milk\n.*`)
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

func TestWrite_Dispatch(t *testing.T) {
	c := qt.New(t)

	now := time.Now()
	for _, format := range append([]string{""}, render.Formats...) {
		c.Run("format "+format, func(c *qt.C) {
			var buf bytes.Buffer
			c.Assert(render.Write(&buf, format, sample, now), qt.IsNil)
			c.Assert(buf.String(), qt.Contains, "Call Bob")
		})
	}
}

func TestWrite_FailurePath(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	err := render.Write(&buf, "xml", sample, time.Now())
	c.Assert(err, qt.ErrorMatches, `unknown format "xml" \(want one of text, json, yaml, markdown\)`)
	c.Assert(buf.Len(), qt.Equals, 0)
}
