package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// The line composer is the justification engine: it accepts words from the
// collector, decides line-full/backtrack/hyphenate, computes the
// justification spacing and emits the finished glyph and motion stream.
//
// Per-line state lives on the Context: ne is the effective length composed
// so far, nel the remaining space, un the left margin of the line and nwd
// the number of words placed. The invariant ne + nel == LineLength - un
// holds at all times before adjustment.

// Text processes one input line of filled text: words are collected and
// placed until the input line is exhausted; whenever a word overflows the
// line, the line is justified, emitted and passed to the vertical
// scheduler. Partial lines stay in the buffer across calls, which is what
// makes filling work across input lines.
//
// Centered and no-fill lines are delegated to NoFill.
func (ctx *Context) Text() error {
	if ctx.err != nil {
		return ctx.err
	}
	if ctx.finished {
		return ErrInputDone
	}
	ctx.nlflg = false
	if !ctx.diverted() && ctx.nl == -1 {
		ctx.newline(true)
	}
	ctx.setnel()
	if ctx.Params.Center > 0 || !ctx.Params.Fill {
		return ctx.NoFill()
	}
	if !ctx.pendWord {
		if !ctx.pendt {
			ctx.pendt = true
			if err := ctx.leadingSpaces(); err != nil {
				return err
			}
			if ctx.nlflg { // blank input line: break plus one line space
				ctx.pendt = false
				ctx.spcnt = 0
				ctx.lineSpace()
				return ctx.err
			}
		}
		if ctx.spcnt > 0 {
			// leading spaces force a break and indent this one line
			ctx.Break()
			if len(ctx.line) > 0 || ctx.word.remaining() > 0 {
				return ctx.err
			}
			ctx.un += ctx.spcnt * ctx.Params.SpaceWidth
			ctx.spcnt = 0
			ctx.setnel()
			if ctx.trap {
				return ctx.err
			}
		}
	}
	for {
		if ctx.pendWord || ctx.word.remaining() == 0 {
			noWord, err := ctx.collectWord(false)
			if err != nil {
				return err
			}
			if ctx.pendWord {
				return ctx.err // interrupted word completes on a later call
			}
			if noWord {
				break // input line exhausted
			}
		}
		if !ctx.moveWord() {
			continue // word fit; next word
		}
		// line full: compute adjustment spacing and break
		if ctx.nlflg {
			ctx.pendt = false
		}
		ctx.computeAdjust()
		ctx.brflg = 1
		ctx.Break()
		if ctx.err != nil {
			return ctx.err
		}
		if ctx.trap {
			if !ctx.nlflg {
				return ctx.err // a trap macro took over mid-line
			}
			break
		}
	}
	ctx.pendt = false
	return ctx.err
}

// leadingSpaces consumes spaces at the start of an input line into spcnt.
func (ctx *Context) leadingSpaces() error {
	for {
		c, err := ctx.next()
		if err != nil {
			return err
		}
		if !c.Motion && c.Code == ' ' {
			ctx.spcnt++
			continue
		}
		if !c.Motion && c.Code == '\n' {
			ctx.nlflg = true
		} else {
			ctx.unget(c)
		}
		return nil
	}
}

// NoFill reproduces one input line verbatim: no filling, no adjustment,
// optionally centered in the leftover space. Continuation cells leave the
// line pending for a later call.
func (ctx *Context) NoFill() error {
	p := ctx.Params
	if !ctx.pendnf {
		ctx.over = false
		ctx.Break()
		if ctx.trap {
			return ctx.err
		}
		if ctx.nlflg {
			ctx.lineSpace()
			return ctx.err
		}
		ctx.adsp, ctx.adrem = 0, 0
		ctx.nwd = 10000
	}
	if !p.Fill {
		ctx.lineCap = lineBufSize + wordBufSize
	}
	for {
		c, err := ctx.next()
		if err != nil {
			return err
		}
		if c.Motion {
			ctx.storeLine(c, -1)
			continue
		}
		switch c.Code {
		case '\n':
			ctx.nlflg = true
		case CodeBreakHint:
			continue
		case CodeContinuation:
			ctx.pendnf = true
			return ctx.err
		default:
			ctx.storeLine(c, -1)
			continue
		}
		break
	}
	if p.Center > 0 {
		p.Center--
		if i := quant(ctx.nel/2, p.AdjustUnit); i > 0 {
			ctx.un += i
		}
	}
	if len(ctx.line) == 0 {
		ctx.storeLine(Glyph(CodeFiller), 0)
	}
	ctx.brflg = 2
	ctx.Break()
	ctx.lineCap = lineBufSize
	ctx.pendnf = false
	return ctx.err
}

// setnel re-arms the line counters at the start of an empty line, honoring a
// pending one-shot indent.
func (ctx *Context) setnel() {
	if len(ctx.line) != 0 {
		return
	}
	if ctx.Params.TempIndent >= 0 {
		ctx.un1 = ctx.Params.TempIndent
		ctx.Params.TempIndent = -1
	}
	if ctx.un1 >= 0 {
		ctx.un = ctx.un1
		ctx.un1 = -1
	}
	ctx.nel = ctx.Params.LineLength - ctx.un
	ctx.ne = 0
	ctx.adsp, ctx.adrem = 0, 0
}

// storeLine appends one cell of width wd to the line buffer; wd < 0 asks
// for the width to be measured. Overflow is reported once per line: a
// placeholder glyph is substituted and everything further is dropped.
func (ctx *Context) storeLine(c Cell, wd int) {
	if len(ctx.line) >= ctx.lineCap-1 {
		if ctx.over {
			return
		}
		T().Errorf("line overflow")
		ctx.over = true
		c = Glyph(codePlaceholder)
		wd = -1
	}
	if wd < 0 {
		wd = ctx.width(c)
	}
	ctx.ne += wd
	ctx.nel -= wd
	ctx.line = append(ctx.line, c)
}

// moveWord transfers the collected word into the line buffer. It reports
// true when the line is full and must be broken: either the word was split
// at a discretionary break (a hyphen glyph replaces the marker), or the
// word moves to the next line in one piece. A first word that fits nowhere
// is placed in full even though it overflows.
func (ctx *Context) moveWord() bool {
	p := ctx.Params
	w := &ctx.word
	ctx.over = false
	if ctx.nwd == 0 { // strip the inter-word gap for the line's first word
		for w.next < len(w.cells) && w.cells[w.next].IsSpace() {
			w.width -= ctx.width(w.cells[w.next])
			w.next++
		}
	}
	wdStart, wdEnd := -1, -1
	if w.width > ctx.nel && w.noHyph == 0 && p.HyphMode&HyphOn != 0 &&
		(ctx.nwd == 0 || ctx.nel > 3*p.SpaceWidth) &&
		(p.HyphMode&HyphNotNearTrap == 0 || ctx.distanceToTrap() > p.LineSpacing) &&
		ctx.Hyph != nil {
		w.breaks = append(w.breaks[:0], ctx.Hyph.Breaks(w.cells)...)
		if len(w.breaks) > 0 {
			wdStart, wdEnd = letterSpan(w.cells)
		}
	}
	bi := 0
	for bi < len(w.breaks) && w.breaks[bi] <= w.next {
		bi++
	}
	nhyp := 0
	saved := w.remaining()
	for w.remaining() > 0 {
		if w.noHyph != 1 && bi < len(w.breaks) && w.breaks[bi] == w.next {
			bi++
			if ctx.breakAllowed(w.next, wdStart, wdEnd) {
				nhyp++
				ctx.storeLine(breakMark(), 0)
			}
		}
		c := w.cells[w.next]
		w.next++
		wd := ctx.width(c)
		w.width -= wd
		ctx.storeLine(c, wd)
	}
	if ctx.nel >= 0 {
		ctx.nwd++
		return false
	}
	ctx.backtrack(nhyp, saved)
	return true
}

// breakAllowed checks a candidate break offset against the hyphenation
// policy bits. Explicit input hints carry no letter span and are always
// allowed.
func (ctx *Context) breakAllowed(at, wdStart, wdEnd int) bool {
	if wdStart < 0 {
		return true
	}
	hyf := ctx.Params.HyphMode
	if at <= wdStart+1 || at >= wdEnd {
		return false
	}
	if hyf&HyphNoTail != 0 && at >= wdEnd-1 {
		return false
	}
	if hyf&HyphNoHead != 0 && at <= wdStart+2 {
		return false
	}
	return true
}

// letterSpan returns the indices of the first and last letter cell.
func letterSpan(cells []Cell) (int, int) {
	first, last := -1, -1
	for i, c := range cells {
		if c.Motion {
			continue
		}
		if (c.Code >= 'a' && c.Code <= 'z') || (c.Code >= 'A' && c.Code <= 'Z') {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	return first, last
}

// backtrackState names the stations of the overflow backtracking search.
type backtrackState int

const (
	btPop    backtrackState = iota // examine the line tail
	btSplit                        // a usable break marker was found
	btPlaced                       // word placed (whole or split)
)

// backtrack resolves a line overflow by searching the line tail for a
// usable break marker. Cells are given back to the word one at a time; when
// a marker surfaces, a real hyphen replaces it (unless the cell before it
// is already a dash) and the rest of the word moves to the next line. A
// first word without usable markers stays in full.
func (ctx *Context) backtrack(nhyp, saved int) {
	w := &ctx.word
	hys := ctx.Params.CharWidth // width of the hyphen glyph
	state := btPop
	for state != btPlaced {
		switch state {
		case btPop:
			if nhyp == 0 {
				if ctx.nwd == 0 {
					ctx.nwd++ // a first word that fits nowhere stays, overlong
					state = btPlaced
					continue
				}
				if w.remaining() == saved {
					state = btPlaced // whole word moves to the next line
					continue
				}
			}
			last := len(ctx.line) - 1
			c := ctx.line[last]
			if !c.isBreakMark() {
				// give the cell back to the word
				wd := ctx.width(c)
				ctx.line = ctx.line[:last]
				ctx.ne -= wd
				ctx.nel += wd
				w.width += wd
				w.next--
				continue
			}
			ctx.line = ctx.line[:last]
			nhyp--
			if nhyp == 0 && ctx.nwd == 0 {
				state = btSplit // last chance for a first word: split here
				continue
			}
			if ctx.nel < hys {
				continue // hyphen would not fit; keep searching
			}
			state = btSplit
		case btSplit:
			if last := len(ctx.line) - 1; last >= 0 {
				prev := ctx.line[last]
				if !prev.Motion && prev.Code != CodeHyphen && prev.Code != CodeEmDash {
					hy := prev
					hy.Code = CodeHyphen
					hy.ZeroWidth = false
					ctx.line = append(ctx.line, hy)
					ctx.ne += hys
					ctx.nel -= hys
				}
			}
			ctx.nwd++
			state = btPlaced
		}
	}
}

// Break terminates the current line: pending words are completed, the
// accumulated line is justified according to the adjustment state and
// emitted as glyphs and motions, and the vertical scheduler advances.
// An explicit break request from the host is exactly this call.
func (ctx *Context) Break() {
	if ctx.err != nil {
		return
	}
	ctx.trap = false
	if ctx.noBreak {
		return
	}
	if !ctx.diverted() && ctx.nl == -1 {
		ctx.newline(true)
		return
	}
	p := ctx.Params
	if len(ctx.line) == 0 {
		ctx.setnel()
		if ctx.word.remaining() == 0 {
			return
		}
		if ctx.pendWord {
			ctx.collectWord(true)
		}
		ctx.moveWord()
	} else if ctx.pendWord && ctx.brflg == 0 {
		ctx.collectWord(true)
		ctx.moveWord()
	}
	d := ctx.env()
	d.noSpace = 0
	if !ctx.diverted() {
		ctx.horiz(p.PageOffset)
	}
	lastl := ctx.ne
	if ctx.brflg != 1 {
		ctx.totout = 0
	} else if p.Adjust {
		lastl = p.LineLength - ctx.un
		if lastl < ctx.ne {
			lastl = ctx.ne
		}
	}
	if p.AdjMode != AdjBoth && p.Adjust && ctx.brflg != 2 {
		lastl = ctx.ne
		ctx.adsp, ctx.adrem = 0, 0
		switch p.AdjMode {
		case AdjCenter:
			ctx.un += quant(ctx.nel/2, p.AdjustUnit)
		case AdjRight:
			ctx.un += ctx.nel
		}
	}
	ctx.totout++
	ctx.brflg = 0
	if lastl > d.maxLine {
		d.maxLine = lastl
	}
	ctx.horiz(ctx.un)
	ctx.emitLine()
	ctx.ne = 0
	ctx.nwd = 0
	ctx.un = p.Indent
	ctx.setnel()
	ctx.newline(false)
	if ctx.diverted() {
		if d.dnl > d.highest {
			d.highest = d.dnl
		}
	} else if ctx.nl > d.highest {
		d.highest = ctx.nl
	}
	for j := p.SpacingMult - 1; j > 0 && !ctx.trap; j-- {
		ctx.newline(false)
	}
}

// computeAdjust derives the per-gap padding and the remainder for the
// line about to be broken. The padding is quantized down to the device
// adjustment unit, the remainder is distributed gap by gap during emission.
func (ctx *Context) computeAdjust() {
	ctx.adsp, ctx.adrem = 0, 0
	p := ctx.Params
	if p.Adjust && ctx.nwd > 1 {
		adsp := ctx.nel / (ctx.nwd - 1)
		if p.AdjustUnit > 1 {
			adsp = adsp / p.AdjustUnit * p.AdjustUnit
		}
		ctx.adsp = adsp
		ctx.adrem = ctx.nel - adsp*(ctx.nwd-1)
	}
}

// SpreadBreak breaks like Break but first pads the inter-word gaps so the
// partial line fills the whole line length.
func (ctx *Context) SpreadBreak() {
	if len(ctx.line) == 0 {
		ctx.Break()
		return
	}
	ctx.computeAdjust()
	ctx.brflg = 1
	ctx.Break()
}

// emitLine walks the line buffer, turning glyph cells into sink glyphs and
// runs of space cells into one accumulated and adjusted horizontal motion.
func (ctx *Context) emitLine() {
	p := ctx.Params
	i, n := 0, len(ctx.line)
	for i < n {
		c := ctx.line[i]
		if !c.IsSpace() {
			if !c.isBreakMark() {
				ctx.emit(c)
			}
			i++
			continue
		}
		pad := 0
		for i < n && ctx.line[i].IsSpace() {
			pad += ctx.width(ctx.line[i])
			i++
		}
		pad += ctx.adsp
		if ctx.adrem != 0 {
			if ctx.adrem < 0 {
				pad -= p.AdjustUnit
				ctx.adrem += p.AdjustUnit
			} else {
				// spread the remainder greedily on alternate output
				// lines, back-loaded on the others
				give := ctx.totout&1 != 0
				if !give {
					ctx.nwd--
					give = ctx.adrem/p.AdjustUnit >= ctx.nwd
				}
				if give {
					pad += p.AdjustUnit
					ctx.adrem -= p.AdjustUnit
				}
			}
		}
		ctx.horiz(pad)
	}
	ctx.line = ctx.line[:0]
}

// lineSpace emits the vertical space for a blank input line.
func (ctx *Context) lineSpace() {
	i := ctx.flss
	if i == 0 {
		i = ctx.Params.LineSpacing
	}
	ctx.flss = 0
	ctx.Space(i)
}

// quant rounds n to the nearest multiple of the device quantum m.
func quant(n, m int) int {
	if m <= 1 {
		return n
	}
	neg := n < 0
	if neg {
		n = -n
	}
	n = (n + m/2) / m * m
	if neg {
		return -n
	}
	return n
}
