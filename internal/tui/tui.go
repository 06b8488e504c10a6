// Package tui provides a Bubble Tea terminal user interface for mvn-downloader.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/mvn-downloader/internal/config"
	"github.com/handiism/mvn-downloader/internal/download"
	ioutils "github.com/handiism/mvn-downloader/internal/io"
	"github.com/handiism/mvn-downloader/internal/logger"
	"github.com/handiism/mvn-downloader/internal/resolver"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateDownloading
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	engine    *download.Engine
	resolver  *resolver.Resolver

	// Current session
	job        *download.Job
	version    string
	targets    []string
	percent    int
	cancelling bool

	// quitAfterDone defers tea.Quit until the job has cleaned up.
	quitAfterDone bool

	// Result
	archivePath string
	err         error
	warning     string

	// Options
	bypassTLS bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Paste Link Here..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		engine:    download.NewEngine(settings.ToHTTPOptions(), log),
		resolver:  settings.NewResolver(),
		bypassTLS: !settings.VerifyTLS,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// StartedMsg is sent once a download job is running.
	StartedMsg struct {
		Job *download.Job
	}

	// DoneMsg is sent when the job returns.
	DoneMsg struct {
		Path string
		Err  error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.state != StateDownloading {
				return m, tea.Quit
			}
			// Quit once the job has removed its scratch directory.
			m.quitAfterDone = true
			m.requestCancel()
			return m, nil

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateDownloading:
				m.requestCancel()
			}

		case "tab":
			if m.state == StateInput {
				m.bypassTLS = !m.bypassTLS
				return m, nil
			}

		case "enter":
			if m.state == StateInput {
				return m.startDownload()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case StartedMsg:
		m.job = msg.Job
		if m.cancelling {
			m.job.Cancel()
		}
		cmds = append(cmds, waitForJob(msg.Job), tickProgress())

	case TickMsg:
		if m.job != nil && m.state == StateDownloading {
			m.percent = m.job.Progress()
			cmds = append(cmds, m.progress.SetPercent(float64(m.percent)/100), tickProgress())
		}

	case DoneMsg:
		m.job = nil
		m.cancelling = false
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			m.percent = 0
		} else {
			m.state = StateComplete
			m.archivePath = msg.Path
			m.percent = 100
		}
		if m.quitAfterDone {
			return m, tea.Quit
		}
		cmds = append(cmds, m.progress.SetPercent(float64(m.percent)/100))

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startDownload resolves the input and launches a job.
func (m Model) startDownload() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.textInput.Value())
	if raw == "" {
		m.warning = "Please enter a valid URL."
		return m, nil
	}

	targets, version := m.resolver.Resolve(raw)
	if len(targets) == 0 {
		m.warning = "Could not parse the provided URL."
		return m, nil
	}

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		m.state = StateError
		m.err = fmt.Errorf("could not create downloads directory: %w", err)
		return m, nil
	}

	m.warning = ""
	m.state = StateDownloading
	m.version = version
	m.targets = targets.Filenames()
	m.percent = 0
	m.textInput.Blur()

	req := download.Request{
		Targets:   targets,
		Version:   version,
		OutputDir: m.settings.OutputDir,
		VerifyTLS: !m.bypassTLS,
	}
	engine := m.engine

	start := func() tea.Msg {
		return StartedMsg{Job: engine.Start(context.Background(), req, download.Callbacks{})}
	}
	return m, tea.Batch(start, m.progress.SetPercent(0), m.spinner.Tick)
}

// requestCancel asks the running job to stop. A job that has not reported
// StartedMsg yet is cancelled when it does.
func (m *Model) requestCancel() {
	if m.cancelling {
		return
	}
	m.cancelling = true
	if m.job != nil {
		m.job.Cancel()
	}
}

func (m *Model) reset() {
	m.state = StateInput
	m.job = nil
	m.version = ""
	m.targets = nil
	m.percent = 0
	m.archivePath = ""
	m.err = nil
	m.warning = ""
	m.textInput.SetValue("")
	m.textInput.Focus()
}

// waitForJob blocks until the job returns.
func waitForJob(job *download.Job) tea.Cmd {
	return func() tea.Msg {
		path, err := job.Wait()
		return DoneMsg{Path: path, Err: err}
	}
}

// tickProgress returns a command to tick progress updates.
func tickProgress() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mvnDL"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download Maven artifacts as a single zip"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

// StatusText returns the one-line status for the current state.
func (m Model) StatusText() string {
	switch m.state {
	case StateDownloading:
		if m.cancelling {
			return "Cancelling..."
		}
		label := "package"
		if m.version != "" {
			label = m.version
		}
		return fmt.Sprintf("Downloading %s...", label)
	case StateComplete:
		return "Download Complete!"
	case StateError:
		if download.IsCancelled(m.err) {
			return "Download cancelled."
		}
		return "Error occurred."
	}
	return "Ready"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter an mvnrepository.com artifact URL or a direct file URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if m.bypassTLS {
		check = "[x]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Bypass SSL Verification (tab)\n", check))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Save location: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("! " + m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.StatusText()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	for _, name := range m.targets {
		b.WriteString(infoStyle.Render("  • " + name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.progress.View())
	b.WriteString("\n\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(m.StatusText()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"%s\n\nPackage saved to:\n%s",
		successStyle.Render(m.StatusText()),
		m.archivePath,
	))
	return box + "\n"
}

func (m Model) viewError() string {
	var b strings.Builder

	style := errorStyle
	if download.IsCancelled(m.err) {
		style = warningStyle
	}
	b.WriteString(style.Render(m.StatusText()))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString("  " + strings.ReplaceAll(download.Describe(m.err), "\n", "\n  "))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: download • tab: toggle SSL bypass • esc: quit"
	case StateDownloading:
		return "esc: cancel • ctrl+c: cancel and quit"
	case StateComplete, StateError:
		return "r: new download • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	settings, err := config.Load("")
	if err != nil {
		return err
	}

	logCfg := settings.ToLoggerConfig()
	logCfg.Quiet = true
	log := logger.New(logCfg)
	defer log.Close()

	p := tea.NewProgram(NewModel(settings, log), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
