// Package tui is the terminal input adapter for the sample piano: it renders
// the key grid, binds a row of physical keys around middle C and translates
// every activation into a single Piano.Play call.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	openwah "github.com/EricSpeidel/OpenWah"
	"github.com/EricSpeidel/OpenWah/audio"
	"github.com/EricSpeidel/OpenWah/instrument"
	"github.com/EricSpeidel/OpenWah/keyboard"
)

var (
	ivory = lipgloss.Color("#FFFFF0")
	ebony = lipgloss.Color("#1A1A1A")
	gold  = lipgloss.Color("#FFD700")
	smoke = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold).
			MarginBottom(1)

	whiteKeyStyle = lipgloss.NewStyle().
			Foreground(ebony).
			Background(ivory).
			Padding(0, 1)

	blackKeyStyle = lipgloss.NewStyle().
			Foreground(ivory).
			Background(ebony).
			Padding(0, 1)

	activeKeyStyle = lipgloss.NewStyle().
			Foreground(ebony).
			Background(gold).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEFA")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(smoke).
			MarginTop(1)
)

// physicalKeys binds one octave around middle C, same rows a DAW virtual
// keyboard uses: white keys on the home row, black keys above them.
var physicalKeys = map[string]int{
	"a": 60, "w": 61, "s": 62, "e": 63, "d": 64, "f": 65, "t": 66,
	"g": 67, "y": 68, "h": 69, "u": 70, "j": 71, "k": 72,
}

// bindingFor is the reverse of physicalKeys, for labelling the key grid.
func bindingFor(note int) string {
	for k, n := range physicalKeys {
		if n == note {
			return k
		}
	}
	return ""
}

type mode int

const (
	modePlay mode = iota
	modePick
)

type clipLoadedMsg struct {
	path     string
	rate     int
	channels int
	err      error
}

// Model is the bubbletea model driving the piano UI.
type Model struct {
	piano    *instrument.Piano
	registry *audio.Registry

	mode        mode
	picker      filepicker.Model
	clipPath    string
	status      string
	statusIsErr bool
	lastNote    int
}

// New builds the UI around an existing piano and decoder registry.
func New(piano *instrument.Piano, registry *audio.Registry) Model {
	fp := filepicker.New()
	for _, format := range registry.Formats() {
		fp.AllowedTypes = append(fp.AllowedTypes, "."+format)
	}
	fp.CurrentDirectory, _ = os.Getwd()

	return Model{
		piano:    piano,
		registry: registry,
		picker:   fp,
		status:   "Load any sound clip to replace the built-in tone.",
		lastNote: -1,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// loadClip decodes off the update loop so key presses stay responsive while
// a new instrument is being mapped. Piano.Load discards stale builds on its
// own when picks overlap.
func (m Model) loadClip(path string) tea.Cmd {
	piano := m.piano
	registry := m.registry
	return func() tea.Msg {
		clip, err := openwah.LoadClip(registry, path)
		if err != nil {
			return clipLoadedMsg{path: path, err: err}
		}
		piano.Load(clip)
		return clipLoadedMsg{
			path:     path,
			rate:     clip.SampleRate(),
			channels: clip.Channels(),
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modePick {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case clipLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load clip: %v", msg.err)
			m.statusIsErr = true
			return m, nil
		}
		m.clipPath = msg.path
		m.status = fmt.Sprintf("Loaded %s (%d Hz, %d channel(s)). First second is mapped across the keyboard.",
			lastPathPart(msg.path), msg.rate, msg.channels)
		m.statusIsErr = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "o":
			m.mode = modePick
			return m, m.picker.Init()
		}

		if note, ok := physicalKeys[msg.String()]; ok {
			m.lastNote = note
			if err := m.piano.Play(note); err != nil {
				m.status = fmt.Sprintf("Playback error: %v", err)
				m.statusIsErr = true
			}
		}
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.mode = modePlay
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.mode = modePlay
		m.status = fmt.Sprintf("Loading %s...", lastPathPart(path))
		m.statusIsErr = false
		return m, m.loadClip(path)
	}

	return m, cmd
}

func (m Model) View() string {
	if m.mode == modePick {
		return titleStyle.Render("OpenWah – pick a sound clip") + "\n\n" +
			m.picker.View() + "\n" +
			helpStyle.Render("enter: select   esc: cancel")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("OpenWah – Soundbite Piano (C3 to C5)"))
	b.WriteString("\n")
	b.WriteString(m.renderKeys())
	b.WriteString("\n")

	if m.clipPath != "" {
		b.WriteString(helpStyle.Render("Current clip: " + m.clipPath))
		b.WriteString("\n")
	}

	if m.statusIsErr {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a..k: play keys around middle C   o: open clip   q: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderKeys draws the white and black key rows, mirroring piano geometry:
// black keys sit between their neighbouring white keys.
func (m Model) renderKeys() string {
	var whites, blacks []string
	for _, key := range m.piano.Layout().Keys() {
		label := keyboard.NoteName(key.Note)
		if binding := bindingFor(key.Note); binding != "" {
			label += ":" + binding
		}

		style := whiteKeyStyle
		if key.Black {
			style = blackKeyStyle
		}
		if key.Note == m.lastNote {
			style = activeKeyStyle
		}

		if key.Black {
			blacks = append(blacks, style.Render(label))
		} else {
			whites = append(whites, style.Render(label))
		}
	}

	return "  " + strings.Join(blacks, " ") + "\n\n" +
		strings.Join(whites, " ")
}

func lastPathPart(path string) string {
	return filepath.Base(path)
}
