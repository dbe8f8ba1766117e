package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// The vertical scheduler owns the page position nl, the page roll and the
// trap machinery. Every emitted line goes through newline, which advances
// nl by the accumulated leading, rolls to the next page when the page
// length is exceeded and springs at most one trap per advance.

const farAway = int(^uint(0) >> 1)

// newline advances the vertical position by one line of leading. With first
// set it opens the very first page instead. Inside a diversion the motion is
// captured and checked against the diversion trap; on the page it may roll
// the page and spring a planted trap.
func (ctx *Context) newline(first bool) {
	p := ctx.Params
	d := ctx.env()
	if !first && ctx.diverted() {
		lead := p.LineSpacing
		if ctx.flss != 0 {
			lead = ctx.flss
		}
		ctx.flss = 0
		lead += d.blss
		d.blss = 0
		d.dnl += lead
		ctx.divAppend(VMotion(lead))
		if d.alss != 0 {
			d.dnl += d.alss
			ctx.divAppend(VMotion(d.alss))
			d.alss = 0
		}
		if d.trapMacro != 0 && !d.trapFired && d.dnl >= d.trapPos {
			d.trapFired = true
			ctx.trap = ctx.invoke(d.trapMacro)
		}
		return
	}
	nlss := 0
	pageFull := first
	if !first {
		lead := p.LineSpacing
		if ctx.flss != 0 {
			lead = ctx.flss
		}
		ctx.flss = 0
		nlss = d.alss + d.blss + lead
		d.alss, d.blss = 0, 0
		ctx.nl += nlss
		if ctx.printing {
			ctx.Out.VMotion(nlss)
		}
		pageFull = ctx.nl >= p.PageLength
	}
	if pageFull {
		d.highest = 0
		ctx.nl = 0
		ctx.pn++
		if ctx.npnflg {
			ctx.pn = ctx.npn
			ctx.npnflg = false
		}
		ctx.evalPrintRange()
	}
	ctx.trap = false
	if ctx.nl == 0 {
		if m, ok := ctx.traps.exact(0); ok {
			ctx.trap = ctx.invoke(m)
		}
		return
	}
	if i := ctx.findTrapDist(ctx.nl - nlss); i <= nlss {
		m, ok := ctx.traps.resolved(ctx.nl-nlss+i, p.PageLength)
		if !ok {
			// the trap moved out from under us; trace and carry on
			T().Errorf("trap botch")
			return
		}
		ctx.trap = ctx.invoke(m)
	}
}

// findTrapDist returns the distance from position a down to the nearest
// trap, or to the bottom of the page. Inside a diversion only the diversion
// trap counts and there is no bottom.
func (ctx *Context) findTrapDist(a int) int {
	if ctx.diverted() {
		d := ctx.env()
		if d.trapMacro != 0 {
			if i := d.trapPos - a; i > 0 {
				return i
			}
		}
		return farAway
	}
	k := farAway
	ctx.traps.each(func(pos, _ int) {
		if pos < 0 {
			pos += ctx.Params.PageLength
		}
		if j := pos - a; j > 0 && j < k {
			k = j
		}
	})
	if i := ctx.Params.PageLength - a; i < k {
		k = i
	}
	return k
}

// distanceToTrap is findTrapDist from the current position of the current
// output target.
func (ctx *Context) distanceToTrap() int {
	if ctx.diverted() {
		return ctx.findTrapDist(ctx.env().dnl)
	}
	return ctx.findTrapDist(ctx.nl)
}

// Space breaks the line and moves down n units; n <= 0 means one line of
// leading. The motion is clipped at the next trap and never moves above the
// top of the page. In no-space mode the request is discarded.
func (ctx *Context) Space(n int) {
	ctx.Break()
	d := ctx.env()
	if d.noSpace > 0 || ctx.trap {
		return
	}
	j := n
	if j == 0 {
		j = ctx.Params.LineSpacing
	}
	if j == 0 {
		return
	}
	if i := ctx.distanceToTrap(); i < j {
		j = i
	}
	pos := ctx.nl
	if ctx.diverted() {
		pos = d.dnl
	}
	if pos+j < 0 {
		j = -pos
	}
	if j == 0 {
		return
	}
	ctx.flss = j
	ctx.newline(false)
}

// Eject breaks the line and skips to the top of the next page, springing any
// traps passed on the way. Inside a diversion there are no pages to eject.
func (ctx *Context) Eject() {
	if ctx.diverted() {
		return
	}
	ctx.Break()
	if ctx.trap {
		return
	}
	if ctx.nl < 0 {
		ctx.newline(true)
		return
	}
	for {
		ctx.flss = ctx.findTrapDist(ctx.nl)
		ctx.newline(false)
		if ctx.nl == 0 || ctx.trap {
			break
		}
	}
}

// Mark records the current vertical position of the output target and
// returns it.
func (ctx *Context) Mark() int {
	d := ctx.env()
	pos := ctx.nl
	if ctx.diverted() {
		pos = d.dnl
	}
	d.mark = pos
	return pos
}

// ReturnTo moves back up to position a on the current output target; a < 0
// returns to the last Mark. The motion never goes below the current
// position and, unlike Space, does not force a line break.
func (ctx *Context) ReturnTo(a int) {
	d := ctx.env()
	pos := ctx.nl
	if ctx.diverted() {
		pos = d.dnl
	}
	if a < 0 {
		a = d.mark
	}
	if a < 0 || a >= pos {
		return
	}
	ctx.noBreak = true
	ctx.Space(a - pos)
	ctx.noBreak = false
}

// NoSpaceMode discards vertical space requests until restored or until the
// next output line.
func (ctx *Context) NoSpaceMode() {
	ctx.env().noSpace++
}

// RestoreSpacing leaves no-space mode.
func (ctx *Context) RestoreSpacing() {
	ctx.env().noSpace = 0
}

// SetLeading installs extra leading around the next output line: before is
// added above it, after below it. Both are one-shot.
func (ctx *Context) SetLeading(before, after int) {
	d := ctx.env()
	d.blss = before
	d.alss = after
}

// SetNextPageNumber forces the page number the next page roll will use.
func (ctx *Context) SetNextPageNumber(n int) {
	ctx.npn = n
	ctx.npnflg = true
}

// PageNumber returns the current page number; 0 before any output.
func (ctx *Context) PageNumber() int {
	return ctx.pn
}

// Position returns the vertical position on the page, -1 before the first
// page is opened.
func (ctx *Context) Position() int {
	return ctx.nl
}

// Finished reports that the print-range list is exhausted: every selected
// page has been produced and the host may stop feeding input.
func (ctx *Context) Finished() bool {
	return ctx.finished
}

// evalPrintRange decides whether the current page is printed and whether
// all selected pages are behind us.
func (ctx *Context) evalPrintRange() {
	p := ctx.Params
	if len(p.Pages) == 0 {
		ctx.printing = true
		return
	}
	ctx.printing = false
	past := true
	for _, r := range p.Pages {
		if ctx.pn >= r.From && ctx.pn <= r.To {
			ctx.printing = true
		}
		if ctx.pn <= r.To {
			past = false
		}
	}
	if past {
		ctx.finished = true
	}
}

// invoke runs a trap macro through the macro collaborator.
func (ctx *Context) invoke(m int) bool {
	if ctx.Macros == nil {
		return false
	}
	T().Debugf("springing trap macro %d at nl=%d", m, ctx.nl)
	return ctx.Macros.Invoke(m)
}

// Finish completes a run: a pending partial line is broken and, when output
// reached the current page, the page is ejected so bottom-of-page traps
// still fire.
func (ctx *Context) Finish() error {
	ctx.Break()
	if ctx.err != nil {
		return ctx.err
	}
	if !ctx.diverted() && ctx.nl > 0 {
		ctx.Eject()
	}
	return ctx.err
}
