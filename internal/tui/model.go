// Package tui is the interactive terminal viewer for a comparison session.
//
// The model owns no image state of its own: every key press changes the
// session boundary and the view re-renders through Session.Render.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/splitview/internal/adapters/imagefile"
	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
	"github.com/bft-labs/splitview/pkg/log"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, caption, slider, status and help lines
	chromeLines = 6
	jumpSteps   = 10
)

// Session is the comparison state driven by the viewer.
type Session interface {
	Fraction() float64
	SetFraction(f float64) float64
	Nudge(steps int) float64
	Reset() float64
	Render() (domain.Grid, error)
	Percent() string
	Caption() string
	FileName(ext string) string
}

// Saver writes a grid to a file.
type Saver interface {
	Save(path string, g domain.Grid, format string) error
}

// Options configures the viewer.
type Options struct {
	OutputDir string
	Format    string
	Saver     Saver
	// Resizer downsamples the composite for the preview.
	Resizer ports.Resizer
	Logger  ports.Logger
}

// ReloadedMsg tells the model that the session images changed.
type ReloadedMsg struct{}

type savedMsg struct{ path string }

type saveErrMsg struct{ err error }

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// Model is the bubbletea model for the viewer.
type Model struct {
	session Session
	opts    Options
	keys    keyMap
	help    help.Model

	width  int
	height int
	status string
	err    error
}

// New creates a viewer for session.
func New(session Session, opts Options) Model {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	opts.Format = imagefile.NormalizeFormat(opts.Format)
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return Model{
		session: session,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ReloadedMsg:
		m.status = "inputs reloaded"
		m.err = nil
		return m, nil

	case savedMsg:
		m.status = "saved " + msg.path
		m.err = nil
		return m, nil

	case saveErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.session.Nudge(-1)
	case key.Matches(msg, m.keys.Right):
		m.session.Nudge(1)
	case key.Matches(msg, m.keys.JumpLeft):
		m.session.Nudge(-jumpSteps)
	case key.Matches(msg, m.keys.JumpRight):
		m.session.Nudge(jumpSteps)
	case key.Matches(msg, m.keys.Start):
		m.session.SetFraction(0)
	case key.Matches(msg, m.keys.End):
		m.session.SetFraction(1)
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	default:
		return m, nil
	}
	m.status = ""
	return m, nil
}

// save renders the current boundary and writes it under OutputDir.
func (m Model) save() tea.Cmd {
	path := filepath.Join(m.opts.OutputDir, m.session.FileName(imagefile.Extension(m.opts.Format)))
	return func() tea.Msg {
		if m.opts.Saver == nil {
			return saveErrMsg{errors.New("no output configured")}
		}
		out, err := m.session.Render()
		if err != nil {
			return saveErrMsg{err}
		}
		if err := m.opts.Saver.Save(path, out, m.opts.Format); err != nil {
			m.opts.Logger.Error("save failed", log.String("path", path), log.Err(err))
			return saveErrMsg{err}
		}
		m.opts.Logger.Info("comparison saved", log.String("path", path))
		return savedMsg{path: path}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("splitview"))
	b.WriteString("  ")
	b.WriteString(m.session.Caption())
	b.WriteByte('\n')

	out, err := m.session.Render()
	switch {
	case errors.Is(err, domain.ErrNoImages):
		b.WriteString("waiting for images...\n")
	case err != nil:
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteByte('\n')
	case m.opts.Resizer != nil:
		rows := max(m.height-chromeLines, 1)
		b.WriteString(renderPreview(out, m.width, rows, m.opts.Resizer))
		b.WriteByte('\n')
	}

	b.WriteString(slider(m.session.Fraction(), min(m.width, 60)))
	b.WriteString(" ")
	b.WriteString(m.session.Percent())
	b.WriteByte('\n')

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// NewProgram creates the viewer program on the alternate screen. Background
// producers may call Send with ReloadedMsg once it is running.
func NewProgram(ctx context.Context, m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}

// Run runs p until the user quits. Cancellation of the program context is
// not reported as an error.
func Run(ctx context.Context, p *tea.Program) error {
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
