// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE PCM files into audio.Source streams.
// It uses the github.com/go-audio library for robust WAV file handling
// and supports 8, 16, 24 and 32-bit PCM data.
package wav
