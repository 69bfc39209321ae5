// SPDX-License-Identifier: EPL-2.0

package openwah

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EricSpeidel/OpenWah/audio"
	"github.com/EricSpeidel/OpenWah/formats/aiff"
	"github.com/EricSpeidel/OpenWah/formats/mp3"
	"github.com/EricSpeidel/OpenWah/formats/vorbis"
	"github.com/EricSpeidel/OpenWah/formats/wav"
	"github.com/EricSpeidel/OpenWah/instrument"
	"github.com/EricSpeidel/OpenWah/keyboard"
)

var ErrUnsupportedFormat = errors.New("no decoder registered for file extension")

// maxClipSeconds bounds how much of a file LoadClip decodes. The normalizer
// only keeps the first second, so there is no reason to hold an entire album
// track in memory.
const maxClipSeconds = 30

// DefaultRegistry returns a registry with every bundled format decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aifc", aiff.Decoder{})
	return r
}

// LoadClip decodes the file at path into a buffer using the decoder
// registered for its extension. Decoding is capped at maxClipSeconds of
// audio; a failure of any kind leaves the caller's instrument untouched.
func LoadClip(registry *audio.Registry, path string) (*audio.Buffer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening clip: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	return audio.Collect(src, src.SampleRate()*maxClipSeconds)
}

// BuildInstrument decodes the clip at path and runs it through the full
// pipeline: normalize to the one second base note, then pitch-map across the
// standard C3..C5 layout.
func BuildInstrument(registry *audio.Registry, path string) (*instrument.Instrument, error) {
	clip, err := LoadClip(registry, path)
	if err != nil {
		return nil, err
	}

	base := instrument.Normalize(clip, instrument.BaseNoteDuration)
	return instrument.Map(base, keyboard.Standard()), nil
}
