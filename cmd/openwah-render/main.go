// Package main renders every key of a sample-mapped instrument to WAV files,
// one file per note. Useful for inspecting pitch mapping offline and for
// exporting an instrument to samplers that load per-note WAVs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/spf13/cobra"

	openwah "github.com/EricSpeidel/OpenWah"
	"github.com/EricSpeidel/OpenWah/audio"
	"github.com/EricSpeidel/OpenWah/instrument"
	"github.com/EricSpeidel/OpenWah/keyboard"
	"github.com/EricSpeidel/OpenWah/utils"
)

var (
	outDir  string
	outRate int
	mono    bool
	useTone bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openwah-render [clip]",
	Short: "Render all keys of a sample-mapped instrument to WAV files",
	Long: `openwah-render builds an instrument from a clip (or from the built-in
tone with --tone) and writes one 16-bit PCM WAV per key into the output
directory, named after the note (C3.wav, Cs3.wav, ...).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "rendered", "output directory")
	rootCmd.Flags().IntVar(&outRate, "rate", 0, "resample output to this rate in Hz (0 keeps the source rate)")
	rootCmd.Flags().BoolVar(&mono, "mono", false, "downmix output to mono")
	rootCmd.Flags().BoolVar(&useTone, "tone", false, "render the built-in tone instead of a clip")
}

func runRender(cmd *cobra.Command, args []string) error {
	var inst *instrument.Instrument

	switch {
	case useTone:
		base := instrument.Normalize(instrument.GeneratedTone(instrument.DefaultToneRate), instrument.BaseNoteDuration)
		inst = instrument.Map(base, keyboard.Standard())
	case len(args) == 1:
		var err error
		inst, err = openwah.BuildInstrument(openwah.DefaultRegistry(), args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("pass a clip path or --tone")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, key := range inst.Layout().Keys() {
		buf, ok := inst.Note(key.Note)
		if !ok {
			continue
		}

		if mono {
			buf = audio.DownmixMono(buf)
		}
		if outRate > 0 {
			buf = audio.Resample(buf, outRate)
		}

		path := filepath.Join(outDir, fileName(key.Note))
		if err := writeWAV16(path, buf); err != nil {
			return fmt.Errorf("rendering %s: %w", keyboard.NoteName(key.Note), err)
		}
		fmt.Printf("%s  %d Hz, %d channel(s), %d frames\n",
			path, buf.SampleRate(), buf.Channels(), buf.Frames())
	}

	return nil
}

// fileName maps a note to a filesystem-safe name: C#4 -> Cs4.wav.
func fileName(note int) string {
	return strings.ReplaceAll(keyboard.NoteName(note), "#", "s") + ".wav"
}

// writeWAV16 encodes buf as 16-bit PCM through the go-audio wav encoder.
func writeWAV16(path string, buf *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := gowav.NewEncoder(f, buf.SampleRate(), 16, buf.Channels(), 1)

	samples := buf.Samples()
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.SampleRate(),
		},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		intBuf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(intBuf); err != nil {
		return err
	}
	return enc.Close()
}
