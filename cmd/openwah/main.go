// Package main is the entry point for the OpenWah terminal piano.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	openwah "github.com/EricSpeidel/OpenWah"
	"github.com/EricSpeidel/OpenWah/instrument"
	"github.com/EricSpeidel/OpenWah/internal/tui"
	"github.com/EricSpeidel/OpenWah/keyboard"
	"github.com/EricSpeidel/OpenWah/playback"
)

var (
	version = "dev"

	deviceRate int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openwah [clip]",
	Short: "Turn any sound clip into a two-octave sample piano",
	Long: `openwah loads a short sound clip, keeps its first second as the base
note (C4) and pitch-maps it across a C3..C5 keyboard. Before a clip is
loaded the piano plays a built-in tone.

Examples:
  openwah                 start with the built-in tone
  openwah meow.wav        start with a clip already mapped
  openwah formats         list supported clip formats`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runPiano,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported clip formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range openwah.DefaultRegistry().Formats() {
			fmt.Println(f)
		}
	},
}

func init() {
	rootCmd.Flags().IntVar(&deviceRate, "rate", 44100, "output device sample rate in Hz")
	rootCmd.AddCommand(formatsCmd)
}

func runPiano(cmd *cobra.Command, args []string) error {
	registry := openwah.DefaultRegistry()

	// Without an output device the piano still runs, just silently.
	var sink instrument.Sink
	speaker, err := playback.NewSpeaker(deviceRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio initialization failed: %v (running silent)\n", err)
		sink = playback.Null{}
	} else {
		sink = speaker
		defer speaker.Close()
	}

	piano := instrument.NewPiano(keyboard.Standard(), sink)

	if len(args) == 1 {
		clip, err := openwah.LoadClip(registry, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not load clip: %v (starting with built-in tone)\n", err)
		} else {
			piano.Load(clip)
		}
	}

	_, err = tea.NewProgram(tui.New(piano, registry)).Run()
	return err
}
