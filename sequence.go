// Package nback - the finished sequence and its consumer-facing views.
package nback

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the fixed serialization header; positions below it are
// 1-indexed for display.
var csvHeader = []string{"Position", "ItemType", "Stimulus"}

// Sequence is one fully bound n-back sequence: an ordered list of items and
// the spec that produced it. A Sequence exclusively owns its items; the only
// cross-item relationship is the read-only backward reference implied by
// each non-filler type.
type Sequence struct {
	spec  Spec
	items []Item
}

// Spec returns the specification the sequence was generated from.
func (s *Sequence) Spec() Spec { return s.spec }

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// Items returns a copy of the sequence's items.
func (s *Sequence) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)

	return out
}

// Words returns the display stimulus of every position in order: the bound
// word after Rebind, otherwise the decimal placeholder identity.
func (s *Sequence) Words() []string {
	out := make([]string, len(s.items))
	var i int
	for i = range s.items {
		out[i] = s.items[i].Stimulus()
	}

	return out
}

// Rows returns the consumer-facing (Position, ItemType, Stimulus) triples,
// 1-indexed, in sequence order.
func (s *Sequence) Rows() []Row {
	out := make([]Row, len(s.items))
	var i int
	for i = range s.items {
		out[i] = Row{
			Position: i + 1,
			ItemType: s.items[i].Type.Label(),
			Stimulus: s.items[i].Stimulus(),
		}
	}

	return out
}

// WriteCSV writes the sequence in the tabular contract format: the
// "Position,ItemType,Stimulus" header followed by one row per item.
func (s *Sequence) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	var i int
	for i = range s.items {
		rec := []string{
			strconv.Itoa(i + 1),
			s.items[i].Type.Label(),
			s.items[i].Stimulus(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
