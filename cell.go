package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Cell is the atomic unit flowing through the formatter: either a printable
// glyph with its inline attributes, or an explicit motion command. The two
// roles are mutually exclusive; a motion cell carries no glyph code and a
// glyph cell carries no motion amount.
type Cell struct {
	Code      byte // glyph code; one code occupies one fixed-width cell
	Font      int  // font position
	Size      int  // size class
	ZeroWidth bool // glyph does not advance the output position

	Motion   bool // cell is a motion command, not a glyph
	Amount   int  // motion amount in device units, always >= 0
	Vertical bool // vertical motion (downward unless Negative)
	Negative bool // motion in the negative direction
}

// Control codes understood by the word collector. They occupy the same
// control-character slots the historical formatters used.
const (
	CodeBreakHint    byte = 0o24  // discretionary break hint in the input
	CodeContinuation byte = 0o25  // interrupted line, word completes later
	CodeFiller       byte = 0o37  // padding glyph for empty no-fill lines
	CodeHyphen       byte = '-'   //
	CodeEmDash       byte = 0o203 // 3/4-em dash
)

// codeBreakMark is the in-line zero-width marker for an accepted
// discretionary break (the historical "impossible" character).
const codeBreakMark byte = 0o4

// codePlaceholder substitutes for cells lost to buffer overflow.
const codePlaceholder byte = 0o343

// Glyph returns a printable cell for code c.
func Glyph(c byte) Cell {
	return Cell{Code: c}
}

// HMotion returns a horizontal motion cell over the given amount of device
// units. Negative amounts move backwards.
func HMotion(units int) Cell {
	m := Cell{Motion: true, Amount: units}
	if units < 0 {
		m.Amount = -units
		m.Negative = true
	}
	return m
}

// VMotion returns a vertical motion cell over the given amount of device
// units. Negative amounts move upwards.
func VMotion(units int) Cell {
	m := Cell{Motion: true, Vertical: true, Amount: units}
	if units < 0 {
		m.Amount = -units
		m.Negative = true
	}
	return m
}

// IsSpace reports whether the cell is an inter-word space glyph.
func (c Cell) IsSpace() bool {
	return !c.Motion && c.Code == ' '
}

// isBreakMark reports whether the cell is a zero-width discretionary break
// marker inserted by the line composer.
func (c Cell) isBreakMark() bool {
	return !c.Motion && c.Code == codeBreakMark && c.ZeroWidth
}

func breakMark() Cell {
	return Cell{Code: codeBreakMark, ZeroWidth: true}
}

// Units returns the signed motion amount of a motion cell, 0 for glyphs.
func (c Cell) Units() int {
	if !c.Motion {
		return 0
	}
	if c.Negative {
		return -c.Amount
	}
	return c.Amount
}

// --- Packing for diversion storage -----------------------------------------

// Diverted output is stored as packed 32-bit words, one per cell, laid out
// after the historical single-word character encoding:
//
//	bit 31     motion flag
//	bit 30     vertical motion
//	bit 29     negative motion
//	bits 0-28  motion amount
//
// and for glyph cells
//
//	bits 0-7   glyph code
//	bit 8      zero-width flag
//	bits 9-12  font position
//	bits 13-18 size class
const (
	packMotion   = 1 << 31
	packVertical = 1 << 30
	packNegative = 1 << 29
	packAmount   = packNegative - 1

	packZeroWidth = 1 << 8
	packFontShift = 9
	packFontMask  = 0xf
	packSizeShift = 13
	packSizeMask  = 0x3f
)

// Pack encodes a cell into a storage word.
func (c Cell) Pack() uint32 {
	if c.Motion {
		w := uint32(packMotion) | uint32(c.Amount&packAmount)
		if c.Vertical {
			w |= packVertical
		}
		if c.Negative {
			w |= packNegative
		}
		return w
	}
	w := uint32(c.Code)
	if c.ZeroWidth {
		w |= packZeroWidth
	}
	w |= uint32(c.Font&packFontMask) << packFontShift
	w |= uint32(c.Size&packSizeMask) << packSizeShift
	return w
}

// Unpack decodes a storage word back into a cell.
func Unpack(w uint32) Cell {
	if w&packMotion != 0 {
		return Cell{
			Motion:   true,
			Amount:   int(w & packAmount),
			Vertical: w&packVertical != 0,
			Negative: w&packNegative != 0,
		}
	}
	return Cell{
		Code:      byte(w),
		ZeroWidth: w&packZeroWidth != 0,
		Font:      int(w>>packFontShift) & packFontMask,
		Size:      int(w>>packSizeShift) & packSizeMask,
	}
}
