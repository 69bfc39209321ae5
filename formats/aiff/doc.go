// Package aiff decodes AIFF files into audio.Source streams using
// github.com/go-audio/aiff.
package aiff
