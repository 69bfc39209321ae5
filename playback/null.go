package playback

import "github.com/EricSpeidel/OpenWah/audio"

// Null is a sink that discards everything it is given. It stands in for the
// speaker in tests and headless runs.
type Null struct{}

func (Null) Play(*audio.Buffer) error { return nil }
