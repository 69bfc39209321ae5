// SPDX-License-Identifier: EPL-2.0

package instrument

import (
	"github.com/EricSpeidel/OpenWah/audio"
	"github.com/EricSpeidel/OpenWah/keyboard"
)

// Instrument is the full set of per-key playable waveforms derived from one
// base note. It is immutable: a new clip produces a whole new Instrument and
// the previous one is discarded, never patched, so a key can never play a
// pitch derived from a stale base note.
type Instrument struct {
	layout *keyboard.Layout
	notes  map[int]*audio.Buffer
}

// Layout returns the keyboard layout the instrument was built for.
func (in *Instrument) Layout() *keyboard.Layout { return in.layout }

// Note returns the playable buffer for a note number and whether the note
// exists in the instrument.
func (in *Instrument) Note(note int) (*audio.Buffer, bool) {
	b, ok := in.notes[note]
	return b, ok
}
