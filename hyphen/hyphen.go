package hyphen

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/runoff"
)

// Hyphenator proposes break points for word buffers, implementing
// runoff.Hyphenator. It is stateful (threshold, exception words) but cheap;
// create one per formatter context.
type Hyphenator struct {
	tables *Tables
	thresh int
	excBuf int // letters spent on exception words
	exc    []exception
}

// DefaultThreshold is the digram score a break candidate has to beat.
const DefaultThreshold = 160

// maxExceptionLetters bounds the exception word list, counting one letter
// per stored cell plus a terminator per word.
const maxExceptionLetters = 128

// maxBreaks caps the number of candidates reported per word.
const maxBreaks = 10

type exception struct {
	letters string // lowercase, no marks
	breaks  []int  // letter offsets a break may go before
}

// New creates a hyphenator on the given tables; nil selects the built-in
// English set.
func New(t *Tables) *Hyphenator {
	if t == nil {
		t = Builtin()
	}
	return &Hyphenator{tables: t, thresh: DefaultThreshold}
}

// SetThreshold changes the digram acceptance threshold. Lower values
// hyphenate more aggressively; n <= 0 restores the default.
func (h *Hyphenator) SetThreshold(n int) {
	if n <= 0 {
		n = DefaultThreshold
	}
	h.thresh = n
}

// Learn adds exception words with explicitly marked break points, given in
// the form "hy-phen". Exceptions beat the digram tables. The list budget is
// bounded; words past the budget are dropped with an error.
func (h *Hyphenator) Learn(words ...string) error {
	for _, word := range words {
		var b strings.Builder
		var breaks []int
		for _, r := range strings.ToLower(word) {
			if r == '-' {
				breaks = append(breaks, b.Len())
				continue
			}
			if r < 'a' || r > 'z' {
				continue
			}
			b.WriteByte(byte(r))
		}
		if b.Len() == 0 {
			continue
		}
		if h.excBuf+b.Len()+1 > maxExceptionLetters {
			tracer().Errorf("exception word list full, dropping %q", word)
			return ErrExceptionsFull
		}
		h.excBuf += b.Len() + 1
		h.exc = append(h.exc, exception{letters: b.String(), breaks: breaks})
	}
	return nil
}

// Breaks returns candidate break offsets for the word, in ascending order.
// An offset k allows a break before cell k. Punctuation around the word is
// tolerated; embedded punctuation or fewer than five letters yield no
// candidates.
func (h *Hyphenator) Breaks(word []runoff.Cell) []int {
	letters, wdstart, wdend := isolate(word)
	if wdstart < 0 || wdend-wdstart < 4 {
		return nil
	}
	out := h.exword(letters, wdstart, wdend)
	if out == nil {
		out = h.digram(letters, wdstart, wdend)
	}
	if len(out) > maxBreaks {
		out = out[:maxBreaks]
	}
	sort.Ints(out)
	return out
}

// isolate maps the word's cells to lowercase letters and finds the letter
// span. It fails (start -1) on punctuation inside the word.
func isolate(word []runoff.Cell) (letters []byte, start, end int) {
	letters = make([]byte, len(word))
	for i, c := range word {
		if c.Motion {
			continue
		}
		letters[i] = low(c.Code)
	}
	i := 0
	for i < len(letters) && letters[i] == 0 {
		i++
	}
	if i == len(letters) {
		return letters, -1, -1
	}
	start = i
	for i < len(letters) && letters[i] != 0 {
		i++
	}
	end = i - 1
	for i < len(letters) {
		if letters[i] != 0 {
			return letters, -1, -1 // letters after embedded punctuation
		}
		i++
	}
	return letters, start, end
}

// low maps a letter code to lowercase, everything else to 0.
func low(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c
	case c >= 'A' && c <= 'Z':
		return c + 'a' - 'A'
	}
	return 0
}

// exword matches the word against the exception list. A full match wins, as
// does a match of everything but a trailing 's'.
func (h *Hyphenator) exword(letters []byte, wdstart, wdend int) []int {
	for _, e := range h.exc {
		w, k := wdstart, 0
		for k < len(e.letters) && w <= wdend && e.letters[k] == letters[w] {
			k++
			w++
		}
		if k < len(e.letters) {
			continue
		}
		if w-1 == wdend || (w == wdend && letters[w] == 's') {
			var out []int
			for _, b := range e.breaks {
				out = append(out, wdstart+b)
			}
			tracer().Debugf("exception word %q hyphenated", e.letters)
			return out
		}
	}
	return nil
}

// digram scores break candidates region by region, walking the word from
// its end towards the start. Each region between two vowels contributes at
// most its best-scoring candidate, and only when the score beats the
// threshold. A candidate at position w+1 is scored by the product of three
// table weights: the pair left of w, the pair (w, w+1) and the pair
// (w+1, w+2).
func (h *Hyphenator) digram(letters []byte, wdstart, wdend int) []int {
	t := h.tables
	var out []int
	hyend := wdend
	for {
		v := lastVowel(letters, wdstart, hyend+1)
		if v < 0 {
			return out
		}
		hyend = v
		nhyend := lastVowel(letters, wdstart, hyend)
		if nhyend < 0 {
			return out
		}
		maxval, maxw := 0, -1
		for w := nhyend; w < hyend && w < wdend-1; w++ {
			var val int
			switch w {
			case wdstart:
				val = look(t.Bxh[:], 'a', letters[w])
			case wdstart + 1:
				val = look(t.Bxxh[:], letters[w-1], letters[w])
			default:
				val = look(t.Xxh[:], letters[w-1], letters[w])
			}
			val *= look(t.Xhx[:], letters[w], letters[w+1])
			val *= look(t.Hxx[:], letters[w+1], letters[w+2])
			if val > maxval {
				maxval = val
				maxw = w + 1
			}
		}
		hyend = nhyend
		if maxval > h.thresh {
			out = append(out, maxw)
		}
	}
}

// lastVowel finds the rightmost vowel before position limit, or -1.
func lastVowel(letters []byte, wdstart, limit int) int {
	for w := limit - 1; w >= wdstart; w-- {
		switch letters[w] {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return w
		}
	}
	return -1
}
