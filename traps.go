package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Page traps associate a macro with a vertical position: when the scheduler
// advances across the position, the macro is invoked. A negative position
// counts backwards from the bottom of the page, which is how running
// footers survive page-length changes. The table is a fixed array of slots;
// a macro id of 0 marks a free slot.

type trapTable struct {
	pos   [MaxTraps]int
	macro [MaxTraps]int
}

// PlantTrap plants macro m at position pos. Planting a second trap at the
// same position replaces the first. A full table is traced and the request
// dropped.
func (ctx *Context) PlantTrap(pos, m int) {
	t := &ctx.traps
	free := -1
	for k := range t.macro {
		if t.macro[k] == 0 {
			if free < 0 {
				free = k
			}
			continue
		}
		if t.pos[k] == pos {
			t.macro[k] = m
			return
		}
	}
	if free < 0 {
		T().Errorf("cannot plant trap at %d: trap table full", pos)
		return
	}
	t.pos[free] = pos
	t.macro[free] = m
}

// MoveTrap moves the trap running macro m to position pos. Without a planted
// trap for m the call does nothing.
func (ctx *Context) MoveTrap(m, pos int) {
	t := &ctx.traps
	for k := range t.macro {
		if t.macro[k] == m {
			t.pos[k] = pos
			return
		}
	}
}

// RemoveTrap unplants the trap running macro m.
func (ctx *Context) RemoveTrap(m int) {
	t := &ctx.traps
	for k := range t.macro {
		if t.macro[k] == m {
			t.macro[k] = 0
			return
		}
	}
}

// exact finds a trap planted at raw position pos, without resolving
// negative positions. The top-of-page check uses this.
func (t *trapTable) exact(pos int) (int, bool) {
	for k := range t.macro {
		if t.macro[k] != 0 && t.pos[k] == pos {
			return t.macro[k], true
		}
	}
	return 0, false
}

// resolved finds a trap whose effective position on a page of length pl is
// a.
func (t *trapTable) resolved(a, pl int) (int, bool) {
	for k := range t.macro {
		if t.macro[k] == 0 {
			continue
		}
		j := t.pos[k]
		if j < 0 {
			j += pl
		}
		if j == a {
			return t.macro[k], true
		}
	}
	return 0, false
}

// each visits every planted trap.
func (t *trapTable) each(f func(pos, macro int)) {
	for k := range t.macro {
		if t.macro[k] != 0 {
			f(t.pos[k], t.macro[k])
		}
	}
}
