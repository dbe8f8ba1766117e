package runoff

import (
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// eventSink records the output stream and renders a fixed-width page image,
// one glyph per column, one vertical unit per row.
type eventSink struct {
	events []string
	col    int
	row    []byte
	rows   []string
}

func (s *eventSink) Glyph(c Cell) {
	s.events = append(s.events, "G("+string(rune(c.Code))+")")
	if c.ZeroWidth {
		return
	}
	for len(s.row) <= s.col {
		s.row = append(s.row, ' ')
	}
	s.row[s.col] = c.Code
	s.col++
}

func (s *eventSink) HMotion(units int) {
	s.events = append(s.events, "H")
	s.col += units
}

func (s *eventSink) VMotion(units int) {
	s.events = append(s.events, "V")
	s.rows = append(s.rows, strings.TrimRight(string(s.row), " "))
	for i := 1; i < units; i++ {
		s.rows = append(s.rows, "")
	}
	s.row = s.row[:0]
	s.col = 0
}

type countRunner struct {
	calls     []int
	interrupt bool
}

func (m *countRunner) Invoke(id int) bool {
	m.calls = append(m.calls, id)
	return m.interrupt
}

func testCtx(t *testing.T, params *Params, input string) (*Context, *eventSink) {
	t.Helper()
	out := &eventSink{}
	ctx := New(params, FromString(input), out, &countRunner{})
	return ctx, out
}

func feed(t *testing.T, ctx *Context, lines int) {
	t.Helper()
	for i := 0; i < lines; i++ {
		if err := ctx.Text(); err != nil {
			t.Fatalf("input line %d: %v", i+1, err)
		}
	}
}

func TestJustifiedLineFillsMeasure(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	params := DefaultParams()
	params.LineLength = 36
	ctx, out := testCtx(t, params, "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd\n")
	feed(t, ctx, 1)
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if len(out.rows) < 2 {
		t.Fatalf("expected 2 output rows, got %d", len(out.rows))
	}
	want := "aaaaaaaaaa   bbbbbbbbbb   cccccccccc"
	if out.rows[0] != want {
		t.Errorf("justified line is %q, want %q", out.rows[0], want)
	}
	if len(out.rows[0]) != 36 {
		t.Errorf("justified line has length %d, want the full measure 36", len(out.rows[0]))
	}
	if out.rows[1] != "dddddddddd" {
		t.Errorf("leftover word row is %q", out.rows[1])
	}
}

func TestAdjustmentRemainderIsDriftFree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	// leftover space 3 over 2 gaps: padding must sum to exactly 3
	params := DefaultParams()
	params.LineLength = 35
	ctx, out := testCtx(t, params, "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd\n")
	feed(t, ctx, 1)
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if len(out.rows[0]) != 35 {
		t.Errorf("justified line has length %d, want the full measure 35", len(out.rows[0]))
	}
}

func TestExplicitBreakHintSplitsWordOnce(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	params := DefaultParams()
	params.LineLength = 6
	ctx, out := testCtx(t, params, "aaaa\x14bbbb\n")
	feed(t, ctx, 1)
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if out.rows[0] != "aaaa-" {
		t.Errorf("split row is %q, want %q", out.rows[0], "aaaa-")
	}
	if out.rows[1] != "bbbb" {
		t.Errorf("continuation row is %q, want %q", out.rows[1], "bbbb")
	}
	hyphens := 0
	for _, ev := range out.events {
		if ev == "G(-)" {
			hyphens++
		}
	}
	if hyphens != 1 {
		t.Errorf("emitted %d hyphens, want exactly 1", hyphens)
	}
}

func TestExactFitLineBreaksCleanly(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.LineLength = 4
	ctx, out := testCtx(t, params, "aaaa bbbb\n")
	feed(t, ctx, 1)
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if out.rows[0] != "aaaa" || out.rows[1] != "bbbb" {
		t.Errorf("rows are %q, want exact-fit split aaaa/bbbb", out.rows[:2])
	}
	for _, ev := range out.events {
		if ev == "G(-)" {
			t.Errorf("exact fit must not hyphenate")
		}
	}
}

func TestRunsAreReproducible(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	input := "the quick brown fox jumps over the lazy dog again and again\n"
	run := func() []string {
		params := DefaultParams()
		params.LineLength = 20
		ctx, out := testCtx(t, params, input)
		feed(t, ctx, 1)
		if err := ctx.Finish(); err != nil {
			t.Fatal(err)
		}
		return out.events
	}
	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ")
	}
}

func TestBlankLineForcesBreakAndSpace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ctx, out := testCtx(t, DefaultParams(), "aa\n\nbb\n")
	feed(t, ctx, 3)
	ctx.Break()
	if len(out.rows) < 3 {
		t.Fatalf("expected 3 rows, got %d: %q", len(out.rows), out.rows)
	}
	if out.rows[0] != "aa" || out.rows[1] != "" || out.rows[2] != "bb" {
		t.Errorf("rows are %q, want aa / blank / bb", out.rows[:3])
	}
}

func TestLeadingSpacesBreakAndIndentOneLine(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ctx, out := testCtx(t, DefaultParams(), "aa\n  bb\ncc\n")
	feed(t, ctx, 3)
	ctx.Break()
	if out.rows[0] != "aa" {
		t.Errorf("row 0 is %q, want the broken-off %q", out.rows[0], "aa")
	}
	if out.rows[1] != "  bb cc" {
		t.Errorf("row 1 is %q, want indented continuation %q", out.rows[1], "  bb cc")
	}
}

func TestSentenceEndDoublesGap(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.Adjust = false
	ctx, out := testCtx(t, params, "one.\ntwo three\n")
	feed(t, ctx, 2)
	ctx.Break()
	if out.rows[0] != "one.  two three" {
		t.Errorf("row is %q, want doubled gap after the sentence end", out.rows[0])
	}
}

func TestCenteredLine(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.LineLength = 10
	params.Center = 1
	ctx, out := testCtx(t, params, "abcd\n")
	feed(t, ctx, 1)
	if out.rows[0] != "   abcd" {
		t.Errorf("centered row is %q, want %q", out.rows[0], "   abcd")
	}
	if params.Center != 0 {
		t.Errorf("center count not consumed")
	}
}

func TestNoFillContinuation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.Fill = false
	ctx, out := testCtx(t, params, "ab\x15cd\n")
	feed(t, ctx, 2)
	if out.rows[0] != "abcd" {
		t.Errorf("interrupted line came out as %q, want %q", out.rows[0], "abcd")
	}
}

func TestEmptyNoFillLineKeepsVerticalSpace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.Fill = false
	ctx, out := testCtx(t, params, "aa\nbb\n")
	feed(t, ctx, 2)
	if len(out.rows) != 2 || out.rows[0] != "aa" || out.rows[1] != "bb" {
		t.Errorf("no-fill rows are %q", out.rows)
	}
}

func TestTrapFiresOnceAtBoundary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	params := DefaultParams()
	params.Fill = false
	params.PageLength = 10
	runner := &countRunner{}
	out := &eventSink{}
	ctx := New(params, FromString("l1\nl2\nl3\nl4\nl5\n"), out, runner)
	ctx.PlantTrap(3, 7)
	feed(t, ctx, 5)
	if len(runner.calls) != 1 || runner.calls[0] != 7 {
		t.Errorf("trap macro calls are %v, want exactly one call of 7", runner.calls)
	}
	if err := ctx.Finish(); err != nil {
		t.Fatal(err)
	}
	if len(runner.calls) != 1 {
		t.Errorf("page eject re-fired the trap: %v", runner.calls)
	}
}

func TestBottomTrapFromPageLength(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// position -2 resolves to page length 10 - 2 = 8
	params := DefaultParams()
	params.Fill = false
	params.PageLength = 10
	runner := &countRunner{}
	ctx := New(params, FromString("l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\n"), &eventSink{}, runner)
	ctx.PlantTrap(-2, 9)
	feed(t, ctx, 8)
	if len(runner.calls) != 1 || runner.calls[0] != 9 {
		t.Errorf("bottom trap calls are %v, want one call of 9", runner.calls)
	}
}

func TestDiversionRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	direct := func() []string {
		ctx, out := testCtx(t, DefaultParams(), "abc def\n")
		feed(t, ctx, 1)
		ctx.Break()
		return out.events
	}
	diverted := func() []string {
		ctx, out := testCtx(t, DefaultParams(), "abc def\n")
		if _, err := ctx.BeginDiversion("keep"); err != nil {
			t.Fatal(err)
		}
		feed(t, ctx, 1)
		h, err := ctx.EndDiversion()
		if err != nil {
			t.Fatal(err)
		}
		if ctx.DiversionHeight != 1 {
			t.Errorf("diversion height is %d, want 1", ctx.DiversionHeight)
		}
		if ctx.DiversionWidth != 7 {
			t.Errorf("diversion width is %d, want 7", ctx.DiversionWidth)
		}
		if err := ctx.Replay(h); err != nil {
			t.Fatal(err)
		}
		return out.events
	}
	d1, d2 := direct(), diverted()
	if !reflect.DeepEqual(d1, d2) {
		t.Errorf("replayed diversion differs from direct output:\n direct  %v\n replay  %v", d1, d2)
	}
}

func TestNestedDiversionCapturesIntoParent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx, out := testCtx(t, DefaultParams(), "xy\n")
	if _, err := ctx.BeginDiversion("outer"); err != nil {
		t.Fatal(err)
	}
	inner, err := ctx.BeginDiversion("inner")
	if err != nil {
		t.Fatal(err)
	}
	feed(t, ctx, 1)
	if _, err = ctx.EndDiversion(); err != nil {
		t.Fatal(err)
	}
	if err = ctx.Replay(inner); err != nil { // replays into "outer"
		t.Fatal(err)
	}
	outer, err := ctx.EndDiversion()
	if err != nil {
		t.Fatal(err)
	}
	if err = ctx.Replay(outer); err != nil {
		t.Fatal(err)
	}
	if len(out.rows) == 0 || out.rows[0] != "xy" {
		t.Errorf("page rows are %q, want xy", out.rows)
	}
}

func TestDiversionDepthIsBounded(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	ctx, _ := testCtx(t, DefaultParams(), "")
	for i := 0; i < MaxDiversions; i++ {
		if _, err := ctx.BeginDiversion("d"); err != nil {
			t.Fatalf("diversion %d failed early: %v", i+1, err)
		}
	}
	if _, err := ctx.BeginDiversion("one-too-many"); err != ErrDiversionOverflow {
		t.Errorf("expected ErrDiversionOverflow, got %v", err)
	}
	if ctx.Err() == nil {
		t.Errorf("diversion overflow must poison the context")
	}
}

func TestPageRollAndPrintRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.Fill = false
	params.PageLength = 2
	params.Pages = []PageRange{{From: 2, To: 2}}
	out := &eventSink{}
	ctx := New(params, FromString("p1a\np1b\np2a\np2b\np3a\n"), out, &countRunner{})
	for i := 0; i < 5; i++ {
		err := ctx.Text()
		if err == ErrInputDone {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	joined := strings.Join(out.rows, "|")
	if strings.Contains(joined, "p1a") || strings.Contains(joined, "p3a") {
		t.Errorf("pages outside the print range leaked: %q", out.rows)
	}
	if !strings.Contains(joined, "p2a") || !strings.Contains(joined, "p2b") {
		t.Errorf("selected page 2 missing from output: %q", out.rows)
	}
	if !ctx.Finished() {
		t.Errorf("context should report the range as finished")
	}
}

func TestMarkAndReturn(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	params := DefaultParams()
	params.Fill = false
	ctx, _ := testCtx(t, params, "aa\nbb\n")
	feed(t, ctx, 1)
	mark := ctx.Mark()
	feed(t, ctx, 1)
	if ctx.Position() != mark+1 {
		t.Fatalf("position is %d, expected %d", ctx.Position(), mark+1)
	}
	ctx.ReturnTo(-1)
	if ctx.Position() != mark {
		t.Errorf("return-to-mark left position at %d, want %d", ctx.Position(), mark)
	}
}

func TestLineOverflowIsReportedOnce(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	params := DefaultParams()
	params.Fill = false
	params.LineLength = 10
	long := strings.Repeat("x", 2*(lineBufSize+wordBufSize))
	ctx, out := testCtx(t, params, long+"\n")
	feed(t, ctx, 1)
	if ctx.Err() != nil {
		t.Fatalf("overflow must be recoverable, got %v", ctx.Err())
	}
	if len(out.rows) == 0 {
		t.Fatalf("overflowing line was dropped entirely")
	}
	if strings.IndexByte(out.rows[0], codePlaceholder) < 0 {
		t.Errorf("expected a placeholder glyph in the overflowed line")
	}
}
