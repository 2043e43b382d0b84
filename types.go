// Package nback - shared types and sentinel errors.
//
// This file defines the item-type variant, the item/row value types, and the
// strict sentinel errors used across the package. Construction helpers are
// deterministic and side-effect free; no logging, no panics on user input -
// only sentinel errors, wrapped with context where a rule name helps the caller.
package nback

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidSpec is returned by NewSpec when the requested parameters are
	// malformed or structurally contradictory. The wrapping message names the
	// violated rule; test with errors.Is.
	ErrInvalidSpec = errors.New("nback: invalid specification")

	// ErrUnsatisfiable is returned by Place/Generate when the backtracking
	// search exhausted every candidate at every depth without completing a
	// sequence. The caller may retry with a relaxed specification; the search
	// never relaxes constraints on its own.
	ErrUnsatisfiable = errors.New("nback: no sequence satisfies the specification")

	// ErrSearchAborted is returned when the backtrack budget is exceeded.
	// It exists as a fail-fast safeguard against pathological inputs that
	// slipped past validation; see WithMaxBacktracks.
	ErrSearchAborted = errors.New("nback: search aborted: backtrack budget exceeded")

	// ErrTokenPoolExhausted indicates a filler position requested a token from
	// an empty pool. With a validated Spec and a pool sized to Spec.Fillers()
	// this is unreachable; it signals an internal accounting defect, never a
	// recoverable condition.
	ErrTokenPoolExhausted = errors.New("nback: token pool exhausted")

	// ErrInvalidTypeOrder indicates a type ordering handed to Bind references
	// a position before the start of the sequence (distance > position index).
	ErrInvalidTypeOrder = errors.New("nback: type ordering references a position before sequence start")

	// ErrInsufficientWords is returned by Rebind when, after dropping
	// duplicates, fewer distinct words remain than the sequence has fillers.
	// The wrapping message carries available vs. needed counts.
	ErrInsufficientWords = errors.New("nback: word list too short")
)

// kindTag discriminates the ItemType variant.
const (
	kindFiller = iota // fresh, previously unused stimulus
	kindTarget        // repeats the stimulus nLevel positions back
	kindLure          // repeats the stimulus d positions back, d != nLevel
)

// ItemType is a tagged variant: Filler, Target(level), or Lure(distance).
// A target and a lure of numerically equal distance never compare equal -
// the tag keeps them distinct even though validation independently forbids
// lure distance == level.
//
// The zero value is Filler().
type ItemType struct {
	kind     uint8
	distance int // backward reference distance; 0 for fillers
}

// Filler returns the item type introducing a previously unused stimulus.
func Filler() ItemType { return ItemType{kind: kindFiller} }

// Target returns the item type repeating the stimulus level positions back.
func Target(level int) ItemType { return ItemType{kind: kindTarget, distance: level} }

// Lure returns the item type repeating the stimulus distance positions back
// while differing from the n-back stimulus.
func Lure(distance int) ItemType { return ItemType{kind: kindLure, distance: distance} }

// IsFiller reports whether t is a filler.
func (t ItemType) IsFiller() bool { return t.kind == kindFiller }

// IsTarget reports whether t is a target.
func (t ItemType) IsTarget() bool { return t.kind == kindTarget }

// IsLure reports whether t is a lure.
func (t ItemType) IsLure() bool { return t.kind == kindLure }

// Distance returns the backward reference distance of t (the n-level for a
// target, the lure's own distance for a lure, 0 for a filler).
func (t ItemType) Distance() int { return t.distance }

// Label returns the human-readable type label used in serialized output:
// "filler", "target", or "<distance>lure".
func (t ItemType) Label() string {
	switch t.kind {
	case kindTarget:
		return "target"
	case kindLure:
		return strconv.Itoa(t.distance) + "lure"
	default:
		return "filler"
	}
}

// String implements fmt.Stringer; identical to Label.
func (t ItemType) String() string { return t.Label() }

// Item is one resolved position of a sequence: its type, its placeholder
// stimulus identity, and - after Rebind - the external word bound to it.
// Items are owned exclusively by the sequence that produced them.
type Item struct {
	// Type is the item's placement type.
	Type ItemType

	// Stim is the placeholder stimulus identity in [0, fillers).
	// Two items carry the same Stim iff they resolve to the same stimulus.
	Stim int

	// Word is the external stimulus assigned by Rebind; empty before rebinding.
	Word string
}

// Stimulus returns the display form of the item's stimulus: the bound word
// when present, otherwise the decimal placeholder identity.
func (it Item) Stimulus() string {
	if it.Word != "" {
		return it.Word
	}

	return strconv.Itoa(it.Stim)
}

// Row is one consumer-facing output triple. Positions are 1-indexed for
// display, per the serialization contract.
type Row struct {
	Position int
	ItemType string
	Stimulus string
}
