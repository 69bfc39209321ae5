// SPDX-License-Identifier: EPL-2.0

package instrument

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/EricSpeidel/OpenWah/audio"
	"github.com/EricSpeidel/OpenWah/keyboard"
)

// Sink consumes playable buffers. Implementations play fire-and-forget:
// Play hands the buffer off and returns without waiting for audio to finish.
type Sink interface {
	Play(b *audio.Buffer) error
}

// Piano owns the current Instrument and rebuilds it when a new clip is
// loaded. The instrument is published through an atomic pointer, so a
// concurrent Play always observes either the fully old or fully new
// instrument, never a partially built one.
type Piano struct {
	layout *keyboard.Layout
	sink   Sink

	current atomic.Pointer[Instrument]

	// loadGen hands out build generations; publishMu serializes publication
	// so an older build can never overwrite a newer one (last request wins).
	loadGen      atomic.Uint64
	publishMu    sync.Mutex
	publishedGen uint64
}

// NewPiano creates a piano over layout that plays through sink. It starts
// with an instrument built from the generated default tone, so every key is
// playable before any file is opened.
func NewPiano(layout *keyboard.Layout, sink Sink) *Piano {
	p := &Piano{
		layout: layout,
		sink:   sink,
	}
	base := Normalize(GeneratedTone(DefaultToneRate), BaseNoteDuration)
	p.current.Store(Map(base, layout))
	return p
}

// Load normalizes clip into a base note, maps it across the layout and
// atomically swaps the new instrument in. The work runs on the calling
// goroutine; callers that must keep an input loop responsive run Load from
// their own goroutine. If another Load starts while this one is mapping,
// this build is discarded and Load reports false.
func (p *Piano) Load(clip *audio.Buffer) bool {
	gen := p.loadGen.Add(1)

	base := Normalize(clip, BaseNoteDuration)
	inst := Map(base, p.layout)

	p.publishMu.Lock()
	defer p.publishMu.Unlock()
	if gen < p.publishedGen || p.loadGen.Load() != gen {
		return false
	}
	p.publishedGen = gen
	p.current.Store(inst)
	return true
}

// Play hands the buffer for note to the sink and returns immediately.
// A note outside the layout is a logged no-op; overlapping notes are the
// sink's concern. Sink failures surface as the returned error and leave the
// instrument untouched.
func (p *Piano) Play(note int) error {
	b, ok := p.current.Load().Note(note)
	if !ok {
		log.Printf("instrument: ignoring unknown note %d", note)
		return nil
	}
	return p.sink.Play(b)
}

// Current returns the instrument as of this instant. Later loads publish a
// new instrument; the returned value itself never changes.
func (p *Piano) Current() *Instrument { return p.current.Load() }

// Layout returns the piano's static key layout.
func (p *Piano) Layout() *keyboard.Layout { return p.layout }
