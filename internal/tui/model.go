package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devproc/internal/app"
	"devproc/internal/process"
)

const rpcTimeout = 4 * time.Second

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status() (app.DaemonStatus, error)
	StartDaemon(app.StartParams) (*app.DaemonHandle, error)
	List(context.Context, time.Duration) ([]process.Process, error)
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller
	configArg  string
	handle     *app.DaemonHandle

	list      list.Model
	processes []process.Process
	// portedOnly hides processes that were not given a port.
	portedOnly bool

	daemonStatus app.DaemonStatus
	statusMsg    string

	err     error
	loading bool

	width  int
	height int

	lastUpdated time.Time
}

// New constructs a TUI model with default styles. configArg is handed to the
// daemon when it is started from the TUI.
func New(ctrl Controller, configArg string) *Model {
	delegate := list.NewDefaultDelegate()
	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Processes"
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()

	return &Model{
		controller: ctrl,
		configArg:  configArg,
		list:       lst,
		statusMsg:  "Checking daemon status…",
		loading:    true,
	}
}

// Run spins up the Bubble Tea program. A daemon started from the TUI is
// stopped when the program exits.
func Run(ctrl Controller, configArg string) error {
	m := New(ctrl, configArg)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	if cerr := m.handle.Close(); err == nil {
		err = cerr
	}
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(checkDaemonStatusCmd(m.controller), loadProcessesCmd(m.controller))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.height > 4 {
			m.list.SetSize(msg.Width, msg.Height-4)
		}

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if msg.status.Running {
			if msg.status.PID > 0 {
				m.statusMsg = fmt.Sprintf("Daemon running (pid %d). Press r to reload, q to quit.", msg.status.PID)
			} else {
				m.statusMsg = "Daemon running. Press r to reload, q to quit."
			}
		} else {
			m.statusMsg = "Daemon is not running. Press s to start it."
			m.processes = nil
			m.list.SetItems(nil)
		}

	case processesLoadedMsg:
		m.loading = false
		m.err = nil
		m.processes = msg.processes
		m.refreshItems()
		m.lastUpdated = time.Now()

	case daemonStartedMsg:
		m.handle = msg.handle
		m.statusMsg = "Daemon started."
		return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadProcessesCmd(m.controller))

	case errMsg:
		m.loading = false
		m.err = msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(checkDaemonStatusCmd(m.controller), loadProcessesCmd(m.controller))
		case "s":
			if !m.daemonStatus.Running {
				m.statusMsg = "Starting daemon…"
				return m, startDaemonCmd(m.controller, m.configArg)
			}
		case "p":
			m.portedOnly = !m.portedOnly
			m.refreshItems()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.daemonStatus.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	if m.loading {
		b.WriteString("Loading processes…\n")
	} else if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}

	if len(m.list.Items()) == 0 && !m.loading && m.err == nil && m.daemonStatus.Running {
		b.WriteString("No processes found.\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteByte('\n')
	}

	if current := m.currentProcess(); current != nil {
		detail := fmt.Sprintf(
			"label=%s port=%s autorun=%t\ncmd=%s\ndir=%s\nindex=%d sleep=%ds",
			current.Label,
			portOrDash(current.Port),
			!current.DisableAutorun,
			current.Command,
			valueOrDash(current.Dir),
			current.Index,
			current.Sleep,
		)
		detailStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
		b.WriteString(detailStyle.Render(detail))
		b.WriteByte('\n')
	}

	help := "Commands: q quit • r reload • s start daemon • p toggle ported only"
	if m.portedOnly {
		help += " • filter=ported"
	}
	if !m.lastUpdated.IsZero() {
		help += fmt.Sprintf(" • last update %s", m.lastUpdated.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

// processItem adapts process.Process to the bubbles list item interface.
type processItem struct {
	Process process.Process
}

func (p processItem) Title() string {
	autorun := "autorun"
	if p.Process.DisableAutorun {
		autorun = "manual"
	}
	return fmt.Sprintf("%s :%s (%s)", p.Process.Label, portOrDash(p.Process.Port), autorun)
}

func (p processItem) Description() string {
	return p.Process.Command
}

func (p processItem) FilterValue() string {
	return p.Process.Label
}

func (m *Model) visibleProcesses() []process.Process {
	if !m.portedOnly {
		return m.processes
	}
	out := make([]process.Process, 0, len(m.processes))
	for _, p := range m.processes {
		if p.HasPort() {
			out = append(out, p)
		}
	}
	return out
}

func (m *Model) refreshItems() {
	visible := m.visibleProcesses()
	items := make([]list.Item, 0, len(visible))
	for _, proc := range visible {
		items = append(items, processItem{Process: proc})
	}
	m.list.SetItems(items)
}

func (m *Model) currentProcess() *process.Process {
	item, ok := m.list.SelectedItem().(processItem)
	if !ok {
		return nil
	}
	return &item.Process
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func portOrDash(port int) string {
	if port <= 0 {
		return "-"
	}
	return fmt.Sprint(port)
}

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type processesLoadedMsg struct {
	processes []process.Process
}

type daemonStartedMsg struct {
	handle *app.DaemonHandle
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Status()
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func loadProcessesCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		procs, err := ctrl.List(context.Background(), rpcTimeout)
		if err != nil {
			return errMsg{err}
		}
		return processesLoadedMsg{processes: procs}
	}
}

func startDaemonCmd(ctrl Controller, configArg string) tea.Cmd {
	return func() tea.Msg {
		h, err := ctrl.StartDaemon(app.StartParams{Config: configArg})
		if err != nil {
			return errMsg{err}
		}
		return daemonStartedMsg{handle: h}
	}
}
