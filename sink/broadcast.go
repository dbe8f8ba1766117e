package sink

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/runoff"
)

// Event is one output event published by a Broadcast sink.
type Event struct {
	Kind  EventKind
	Cell  runoff.Cell // for EventGlyph
	Units int         // for motions
}

// EventKind discriminates broadcast events.
type EventKind int

// Event kinds.
const (
	EventGlyph EventKind = iota
	EventHMotion
	EventVMotion
)

// Broadcast is a sink which forwards every output event to an inner sink
// and additionally publishes it to any number of subscribers. Pagination
// progress displays or concurrent post-processors subscribe with Subscribe
// and read events from the returned channel.
type Broadcast struct {
	inner runoff.Sink
	cast  *caster.Caster // broadcaster for output events
}

// NewBroadcast wraps inner; a nil inner discards the events after
// publishing.
func NewBroadcast(inner runoff.Sink) *Broadcast {
	return &Broadcast{
		inner: inner,
		cast:  caster.New(nil),
	}
}

// Subscribe attaches an observer. The returned channel delivers Event
// values until the sink is closed or ctx is canceled.
func (b *Broadcast) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return b.cast.Sub(ctx, 64)
}

// Close ends broadcasting and closes all subscriber channels.
func (b *Broadcast) Close() {
	b.cast.Close()
}

// Glyph implements runoff.Sink.
func (b *Broadcast) Glyph(c runoff.Cell) {
	if b.inner != nil {
		b.inner.Glyph(c)
	}
	b.cast.Pub(Event{Kind: EventGlyph, Cell: c})
}

// HMotion implements runoff.Sink.
func (b *Broadcast) HMotion(units int) {
	if b.inner != nil {
		b.inner.HMotion(units)
	}
	b.cast.Pub(Event{Kind: EventHMotion, Units: units})
}

// VMotion implements runoff.Sink.
func (b *Broadcast) VMotion(units int) {
	if b.inner != nil {
		b.inner.VMotion(units)
	}
	b.cast.Pub(Event{Kind: EventVMotion, Units: units})
}
