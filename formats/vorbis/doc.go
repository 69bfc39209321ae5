// Package vorbis decodes Ogg Vorbis streams into audio.Source streams
// using github.com/jfreymuth/oggvorbis.
package vorbis
