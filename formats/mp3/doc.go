// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III streams into audio.Source streams
// using github.com/hajimehoshi/go-mp3.
package mp3
