// Package reveal tracks which page sections have already played their entrance
// animation. Each section owns a one-way latch; once played it never resets.
package reveal

import "sync/atomic"

// Latch is a two-state flag: unplayed, then played. The zero value is unplayed.
type Latch struct {
	played atomic.Bool
}

// Play performs the unplayed to played transition and reports whether this
// call made it. Every later call returns false.
func (l *Latch) Play() bool {
	return l.played.CompareAndSwap(false, true)
}

// Played reports whether the transition has happened.
func (l *Latch) Played() bool {
	return l.played.Load()
}
