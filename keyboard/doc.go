// Package keyboard describes the static piano key layout: note numbers,
// black/white geometry and semitone offsets from the reference key.
package keyboard
