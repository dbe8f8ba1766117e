package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// The word collector pulls cells from the input collaborator until a space
// or newline terminates the word. Leading spaces become inter-word gap cells
// attached to the front of the word; the line composer strips them again for
// the first word on a line. A word ending in '.', '!' or '?' flags a doubled
// gap before the following word.
//
// Break-hint cells inside a word record explicit discretionary break
// offsets; a break-hint cell at the very start of a word vetoes hyphenation
// of this word altogether. A dash inside a word records a break offset right
// after the dash.
//
// A continuation cell leaves the word pending: the next collect call resumes
// where the input was interrupted. This is what keeps interrupted lines
// (no-fill continuation) working without any suspended control flow.

// collectWord gathers the next word from the input. With finish set, a
// pending interrupted word is completed as-is instead of reading on.
// It reports noWord when the input line ended before any word cell arrived.
func (ctx *Context) collectWord(finish bool) (noWord bool, err error) {
	w := &ctx.word
	if finish && ctx.pendWord {
		ctx.pendWord = false
		ctx.setnel()
		return false, nil
	}
	resume := ctx.pendWord
	ctx.pendWord = false
	if !resume {
		w.reset()
		var c Cell
		for { // leading gap: spaces in front of the word
			if c, err = ctx.next(); err != nil {
				return false, err
			}
			if c.Motion {
				ctx.storeWord(c, ctx.width(c))
				continue
			}
			switch c.Code {
			case '\n':
				w.width = 0
				w.cells = w.cells[:0]
				ctx.nlflg = true
				ctx.setnel()
				return true, nil
			case CodeBreakHint:
				w.noHyph = 1
				continue
			case ' ':
				ctx.storeWord(c, ctx.width(c))
				continue
			}
			break
		}
		// One gap space separates this word from the previous one, two
		// when the previous word ended a sentence. The gap's width is
		// carried by the word and stripped again for a line's first word.
		gap := Cell{Code: ' ', Font: c.Font, Size: c.Size}
		ctx.storeWord(gap, -1)
		if ctx.spaceFlag {
			ctx.storeWord(gap, -1)
			ctx.spaceFlag = false
		}
		ctx.unget(c)
	}
	for {
		c, err := ctx.next()
		if err != nil {
			return false, err
		}
		if c.Motion {
			ctx.storeWord(c, ctx.width(c))
			continue
		}
		switch c.Code {
		case ' ':
			ctx.finishWord()
			return false, nil
		case '\n':
			ctx.nlflg = true
			if n := len(w.cells); n > 0 {
				switch w.cells[n-1].Code {
				case '.', '!', '?':
					ctx.spaceFlag = true
				}
			}
			ctx.finishWord()
			return false, nil
		case CodeContinuation:
			ctx.pendWord = true
			return false, nil
		case CodeBreakHint:
			if w.noHyph != 1 {
				w.noHyph = 2
				w.addBreak(len(w.cells))
			}
			continue
		case CodeHyphen, CodeEmDash:
			if w.noHyph != 1 && len(w.cells) > 1 {
				w.noHyph = 2
				w.addBreak(len(w.cells) + 1)
			}
		}
		ctx.storeWord(c, ctx.width(c))
	}
}

// storeWord appends one cell of width wd to the word buffer; wd < 0 asks for
// the width to be measured. Overflow beyond the word capacity is reported
// once, substitutes a placeholder glyph and swallows the rest of the word.
func (ctx *Context) storeWord(c Cell, wd int) {
	w := &ctx.word
	if len(w.cells) >= wordBufSize-1 {
		if w.over {
			return
		}
		T().Errorf("word overflow")
		w.over = true
		c = Glyph(codePlaceholder)
		wd = -1
	}
	if wd < 0 {
		wd = ctx.width(c)
	}
	w.width += wd
	w.cells = append(w.cells, c)
}

// finishWord seals the collected word and re-arms the line counters.
func (ctx *Context) finishWord() {
	ctx.word.next = 0
	ctx.pendWord = false
	ctx.setnel()
}

// addBreak records a candidate break offset, capped at the candidate limit.
func (w *wordBuffer) addBreak(at int) {
	if len(w.breaks) >= maxBreaks {
		return
	}
	w.breaks = append(w.breaks, at)
}
