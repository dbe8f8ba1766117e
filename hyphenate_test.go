package runoff_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/runoff"
	"github.com/npillmayer/runoff/hyphen"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// pageSink renders the output stream to a fixed-width page image and counts
// emitted hyphens.
type pageSink struct {
	col     int
	row     []byte
	rows    []string
	hyphens int
}

func (s *pageSink) Glyph(c runoff.Cell) {
	if c.Code == '-' {
		s.hyphens++
	}
	if c.ZeroWidth {
		return
	}
	for len(s.row) <= s.col {
		s.row = append(s.row, ' ')
	}
	s.row[s.col] = c.Code
	s.col++
}

func (s *pageSink) HMotion(units int) {
	s.col += units
}

func (s *pageSink) VMotion(units int) {
	s.rows = append(s.rows, strings.TrimRight(string(s.row), " "))
	for i := 1; i < units; i++ {
		s.rows = append(s.rows, "")
	}
	s.row = s.row[:0]
	s.col = 0
}

type nopRunner struct{}

func (nopRunner) Invoke(int) bool { return false }

func TestComposerHyphenatesOverflowingWord(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	params := runoff.DefaultParams()
	params.LineLength = 12
	out := &pageSink{}
	ctx := runoff.New(params, runoff.FromString("xx hyphenation yy\n"), out, nopRunner{})
	ctx.Hyph = hyphen.New(nil)
	if err := ctx.Text(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if len(out.rows) < 2 {
		t.Fatalf("expected 2 output rows, got %q", out.rows)
	}
	if out.rows[0] != "xx  hyphena-" {
		t.Errorf("split row is %q, want %q", out.rows[0], "xx  hyphena-")
	}
	if out.rows[1] != "tion yy" {
		t.Errorf("continuation row is %q, want %q", out.rows[1], "tion yy")
	}
	if out.hyphens != 1 {
		t.Errorf("emitted %d hyphens, want exactly 1 at an interior offset", out.hyphens)
	}
}

func TestTrapImminenceSuppressesHyphenation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	params := runoff.DefaultParams()
	params.LineLength = 12
	params.HyphMode = runoff.HyphOn | runoff.HyphNotNearTrap
	out := &pageSink{}
	ctx := runoff.New(params, runoff.FromString("xx hyphenation yy\n"), out, nopRunner{})
	ctx.Hyph = hyphen.New(nil)
	ctx.PlantTrap(1, 7) // the trap is one line away when the word overflows
	if err := ctx.Text(); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if out.hyphens != 0 {
		t.Errorf("word was hyphenated right above a trap: %q", out.rows)
	}
	if len(out.rows) < 2 || out.rows[1] != "hyphenation" {
		t.Errorf("rows are %q, want the word moved whole to row 1", out.rows)
	}
}
