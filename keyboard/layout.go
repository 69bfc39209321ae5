package keyboard

import "fmt"

// MIDI note numbers bounding the piano. The reference key plays the base
// note unshifted; every other key is pitched relative to it.
const (
	FirstNote     = 48 // C3
	ReferenceNote = 60 // C4
	LastNote      = 72 // C5
)

// Key describes one piano key independent of any loaded sound.
type Key struct {
	// Note is the MIDI-style note number identifying the key.
	Note int
	// Black reports standard piano key color.
	Black bool
	// Offset is the signed semitone distance from the layout's reference key.
	Offset int
}

// Layout is an ordered, immutable run of piano keys. It is built once and
// shared read-only between the pitch mapper and the input adapter.
type Layout struct {
	reference int
	keys      []Key
	offsets   map[int]int
}

// New builds a layout spanning first..last inclusive with the given
// reference note at semitone offset zero.
func New(first, last, reference int) (*Layout, error) {
	if last < first {
		return nil, fmt.Errorf("invalid key range %d..%d", first, last)
	}
	if reference < first || reference > last {
		return nil, fmt.Errorf("reference note %d outside key range %d..%d", reference, first, last)
	}

	l := &Layout{
		reference: reference,
		keys:      make([]Key, 0, last-first+1),
		offsets:   make(map[int]int, last-first+1),
	}
	for note := first; note <= last; note++ {
		l.keys = append(l.keys, Key{
			Note:   note,
			Black:  IsBlack(note),
			Offset: note - reference,
		})
		l.offsets[note] = note - reference
	}
	return l, nil
}

// Standard returns the fixed two-octave C3..C5 layout with C4 as the
// reference key.
func Standard() *Layout {
	l, err := New(FirstNote, LastNote, ReferenceNote)
	if err != nil {
		panic(err) // constants above are a valid range
	}
	return l
}

// Keys returns the ordered key sequence. The slice is shared; callers must
// not modify it.
func (l *Layout) Keys() []Key { return l.keys }

// Len is the number of keys in the layout.
func (l *Layout) Len() int { return len(l.keys) }

// Reference returns the note number of the key at offset zero.
func (l *Layout) Reference() int { return l.reference }

// OffsetFor returns the semitone offset of note relative to the reference
// key, and whether the note is part of the layout.
func (l *Layout) OffsetFor(note int) (int, bool) {
	offset, ok := l.offsets[note]
	return offset, ok
}

// Contains reports whether note is one of the layout's keys.
func (l *Layout) Contains(note int) bool {
	_, ok := l.offsets[note]
	return ok
}

// blackDegrees marks the black keys within a 12-semitone octave rooted at C:
// C#, D#, F#, G#, A#.
var blackDegrees = [12]bool{
	false, true, false, true, false, false,
	true, false, true, false, true, false,
}

// IsBlack reports whether a MIDI note is a black piano key.
func IsBlack(note int) bool {
	degree := note % 12
	if degree < 0 {
		degree += 12
	}
	return blackDegrees[degree]
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName formats a MIDI note number as a pitch name with octave, e.g.
// 60 -> "C4", 66 -> "F#4".
func NoteName(note int) string {
	degree := note % 12
	if degree < 0 {
		degree += 12
	}
	octave := note/12 - 1
	if note < 0 && note%12 != 0 {
		octave--
	}
	return fmt.Sprintf("%s%d", noteNames[degree], octave)
}
