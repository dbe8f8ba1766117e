package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"github.com/npillmayer/runoff/storage"
)

// A diversion captures formatted output — finished glyphs and motions, not
// raw input — into a storage buffer instead of the page. Diversions nest:
// each open diversion pushes an environment frame with its own vertical
// position, leading state and trap. Frame 0 is the page itself and is never
// popped.

type environment struct {
	out  storage.Handle // capture buffer, zero for the page frame
	name string         // for tracing only

	dnl     int // vertical position inside the diversion
	mark    int // position remembered by Mark
	maxLine int // widest line so far
	highest int // lowest position output has reached

	alss, blss int // one-shot extra leading after/before the next line
	noSpace    int // no-space mode depth

	trapPos   int
	trapMacro int
	trapFired bool
}

// BeginDiversion starts capturing output into a fresh storage buffer. The
// name is used for tracing only. Nesting deeper than MaxDiversions is a
// fatal error: it is traced, the stack stays unchanged and the context is
// poisoned.
func (ctx *Context) BeginDiversion(name string) (storage.Handle, error) {
	if ctx.err != nil {
		return 0, ctx.err
	}
	if len(ctx.envs) > MaxDiversions {
		T().Errorf("cannot divert: %q nests deeper than %d", name, MaxDiversions)
		ctx.fatal(ErrDiversionOverflow)
		return 0, ErrDiversionOverflow
	}
	h, err := ctx.Store.Alloc()
	if err != nil {
		T().Errorf("cannot divert %q: %v", name, err)
		ctx.fatal(ErrStorageExhausted)
		return 0, ErrStorageExhausted
	}
	ctx.envs = append(ctx.envs, environment{out: h, name: name})
	T().Debugf("diversion %q open, depth %d", name, len(ctx.envs)-1)
	return h, nil
}

// AppendDiversion reopens an existing diversion buffer and captures further
// output at its end. The vertical position resumes at dnl, the position the
// buffer had reached when it was closed.
func (ctx *Context) AppendDiversion(name string, h storage.Handle, dnl int) error {
	if ctx.err != nil {
		return ctx.err
	}
	if !h.IsValid() {
		_, err := ctx.BeginDiversion(name)
		return err
	}
	if len(ctx.envs) > MaxDiversions {
		T().Errorf("cannot divert: %q nests deeper than %d", name, MaxDiversions)
		ctx.fatal(ErrDiversionOverflow)
		return ErrDiversionOverflow
	}
	ctx.envs = append(ctx.envs, environment{out: h, name: name, dnl: dnl})
	return nil
}

// EndDiversion closes the innermost diversion and returns its buffer. The
// result registers DiversionHeight and DiversionWidth are set to the
// captured vertical extent and the widest captured line. Closing with no
// open diversion is a no-op.
func (ctx *Context) EndDiversion() (storage.Handle, error) {
	if !ctx.diverted() {
		return 0, ctx.err
	}
	ctx.Break()
	d := ctx.env()
	ctx.DiversionHeight = d.dnl
	ctx.DiversionWidth = d.maxLine
	h := d.out
	T().Debugf("diversion %q closed: height %d, width %d", d.name, d.dnl, d.maxLine)
	ctx.envs = ctx.envs[:len(ctx.envs)-1]
	return h, ctx.err
}

// SetDiversionTrap plants a trap inside the innermost diversion: when the
// captured text grows past pos, macro m runs once. On the page frame the
// call is traced and ignored.
func (ctx *Context) SetDiversionTrap(pos, m int) {
	if !ctx.diverted() {
		T().Errorf("diversion trap outside of a diversion")
		return
	}
	d := ctx.env()
	d.trapPos = pos
	d.trapMacro = m
	d.trapFired = false
}

// divAppend captures one cell into the innermost diversion's buffer.
// Storage exhaustion is fatal: half a diversion is worthless.
func (ctx *Context) divAppend(c Cell) {
	d := ctx.env()
	if err := ctx.Store.Append(d.out, c.Pack()); err != nil {
		T().Errorf("diversion %q: %v", d.name, err)
		ctx.fatal(ErrStorageExhausted)
	}
}

// Replay plays a captured diversion back into the current output target:
// onto the page when no diversion is open, or into the surrounding
// diversion otherwise. Glyphs and horizontal motions come back exactly as
// captured; vertical motions go through the scheduler, so replaying onto
// the page rolls pages and springs traps like freshly formatted text.
func (ctx *Context) Replay(h storage.Handle) error {
	if ctx.err != nil {
		return ctx.err
	}
	if !ctx.diverted() && ctx.nl == -1 {
		ctx.newline(true)
	}
	err := ctx.Store.Each(h, func(word uint32) error {
		c := Unpack(word)
		if c.Motion && c.Vertical {
			if ctx.diverted() {
				ctx.env().dnl += c.Units()
				ctx.emit(c)
			} else {
				ctx.flss = c.Units()
				ctx.newline(false)
			}
			return ctx.err
		}
		ctx.emit(c)
		return ctx.err
	})
	if err != nil && ctx.err == nil {
		return err
	}
	return ctx.err
}
