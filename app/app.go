package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/tickdo/config"
	"github.com/kastheco/tickdo/internal/taskdb"
	"github.com/kastheco/tickdo/keys"
	"github.com/kastheco/tickdo/internal/tick"
	"github.com/kastheco/tickdo/log"
	"github.com/kastheco/tickdo/ui"
	"github.com/kastheco/tickdo/ui/overlay"
)

// mode is the top-level input mode of the application. Exactly one mode is
// active at a time and it decides how every keypress is routed.
type mode int

const (
	// modeNormal is the default browsing mode.
	modeNormal mode = iota
	// modeInsert is active while a task or postpone modal is open, or while
	// the inline task editor has focus.
	modeInsert
	// modeVisual extends the selection to a contiguous range of tasks.
	modeVisual
	// modeProcessing gates all input while a remote operation is in flight.
	modeProcessing
	// modeHelp shows the help screen until dismissed.
	modeHelp
)

// errBannerTicks is how many UI ticks an error banner stays visible.
const errBannerTicks = 12

// tickInterval drives the spinner and the banner countdown.
const tickInterval = 500 * time.Millisecond

// TaskService is the remote surface the console talks to. *tick.Client
// satisfies it; tests substitute a mock.
type TaskService interface {
	FetchAll(ctx context.Context, now time.Time) (tick.Lists, error)
	CreateTask(ctx context.Context, t tick.Task) (tick.Task, error)
	UpdateTask(ctx context.Context, t tick.Task) (tick.Task, error)
	CompleteTask(ctx context.Context, projectID, taskID string) error
	DeleteTask(ctx context.Context, projectID, taskID string) error
}

type home struct {
	ctx     context.Context
	service TaskService
	cfg     *config.Config

	// now is injectable so tests can pin the clock.
	now func() time.Time

	mode mode
	// returnMode is the mode restored when a Processing operation finishes.
	returnMode mode

	list *ui.TaskList
	pane *ui.TaskPane

	lists  tick.Lists
	loaded bool

	// pending carries the result of an in-flight refresh from the fetch
	// goroutine to Update. Capacity 1: at most one refresh runs at a time,
	// so a send never blocks, and Update drains it exactly once.
	pending chan tick.Lists

	snapshots *taskdb.Store

	spinner      spinner.Model
	spinnerLabel string

	errBanner string
	errTicks  int

	taskOverlay     *overlay.TaskOverlay
	postponeOverlay *overlay.PostponeOverlay
	confirmOverlay  *overlay.ConfirmationOverlay
	// pendingConfirmAction runs when the user confirms the confirmation
	// overlay. Cleared on cancel.
	pendingConfirmAction tea.Cmd

	// editingTask holds the original task while the edit modal is open.
	editingTask *tick.Task

	helpView string

	width  int
	height int
}

type Options struct {
	Service   TaskService
	Config    *config.Config
	Snapshots *taskdb.Store
	Now       func() time.Time
}

func newHome(ctx context.Context, opts Options) *home {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	view := ui.ViewFromName(opts.Config.DefaultView)
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(ui.SpinnerStyle))
	h := &home{
		ctx:        ctx,
		service:    opts.Service,
		cfg:        opts.Config,
		now:        opts.Now,
		mode:       modeNormal,
		returnMode: modeNormal,
		list:       ui.NewTaskList(view),
		pane:       ui.NewTaskPane(),
		pending:    make(chan tick.Lists, 1),
		snapshots:  opts.Snapshots,
		spinner:    sp,
	}
	if h.snapshots != nil {
		if lists, err := h.snapshots.Load(); err != nil {
			log.WarningLog.Printf("could not load task snapshot: %v", err)
		} else {
			h.lists = lists
			h.applyView()
		}
	}
	return h
}

// Run starts the interactive console and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newHome(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(), m.startRefresh())
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		m.pane.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tickMsg:
		if m.errBanner != "" {
			m.errTicks++
			if m.errTicks > errBannerTicks {
				m.errBanner = ""
				m.errTicks = 0
			}
		}
		return m, tickCmd()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tasksFetchedMsg:
		select {
		case lists := <-m.pending:
			m.lists = lists
			m.loaded = true
			m.applyView()
			m.saveSnapshot()
		default:
			// Stale wakeup; nothing was in flight.
		}
		m.finishProcessing()
		return m, nil
	case fetchFailedMsg:
		m.finishProcessing()
		m.handleError(msg.err)
		return m, nil
	case opDoneMsg:
		m.finishProcessing()
		if msg.err != nil {
			m.handleError(msg.err)
			return m, nil
		}
		return m, m.startRefresh()
	case batchDoneMsg:
		m.finishProcessing()
		if len(msg.failures) > 0 {
			m.handleError(fmt.Errorf("Failed to %s %d task(s): %s",
				msg.op, len(msg.failures), strings.Join(msg.failures, ", ")))
			return m, nil
		}
		return m, m.startRefresh()
	}
	return m, nil
}

func (m *home) View() string {
	header := m.renderHeader()
	body := m.list.String()
	pane := m.pane.String()
	status := m.renderStatusBar()

	base := lipgloss.JoinVertical(lipgloss.Left, header, body, pane, status)
	if m.width > 0 {
		base = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, base)
	}

	switch {
	case m.mode == modeHelp:
		return overlay.PlaceOverlay(0, 0, m.helpView, base, true, true)
	case m.confirmOverlay != nil:
		return overlay.PlaceOverlay(0, 0, m.confirmOverlay.Render(), base, true, true)
	case m.taskOverlay != nil:
		return overlay.PlaceOverlay(0, 0, m.taskOverlay.Render(), base, true, true)
	case m.postponeOverlay != nil:
		return overlay.PlaceOverlay(0, 0, m.postponeOverlay.Render(), base, true, true)
	}
	return base
}

func (m *home) renderHeader() string {
	title := ui.TitleStyle.Render("tickdo")
	if m.errBanner != "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", ui.BannerStyle.Render(m.errBanner))
	}
	if m.mode == modeProcessing {
		label := m.spinnerLabel
		if label == "" {
			label = "working"
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.spinner.View(), " ", label)
	}
	return title
}

// renderStatusBar shows the keys available in the current mode, read from
// the live bindings table so keymap overrides are reflected.
func (m *home) renderStatusBar() string {
	var hints []string
	switch m.mode {
	case modeVisual:
		hints = keyHints(keys.KeyDown, keys.KeyUp, keys.KeyComplete, keys.KeyDelete,
			keys.KeyPostpone, keys.KeyClearSelection)
	case modeInsert:
		hints = []string{
			ui.StatusKeyStyle.Render("tab") + " " + ui.StatusDescStyle.Render("next field"),
			ui.StatusKeyStyle.Render("enter") + " " + ui.StatusDescStyle.Render("confirm"),
			ui.StatusKeyStyle.Render("esc") + " " + ui.StatusDescStyle.Render("cancel"),
		}
	case modeProcessing:
		hints = []string{ui.StatusDescStyle.Render("waiting")}
	default:
		hints = keyHints(keys.KeyDown, keys.KeyNew, keys.KeyComplete, keys.KeyDelete,
			keys.KeyVisual, keys.KeyHelp, keys.KeyQuit)
	}
	return strings.Join(hints, ui.StatusDescStyle.Render(" · "))
}

func keyHints(names ...keys.KeyName) []string {
	hints := make([]string, 0, len(names))
	for _, n := range names {
		h := keys.GlobalkeyBindings[n].Help()
		hints = append(hints, ui.StatusKeyStyle.Render(h.Key)+" "+ui.StatusDescStyle.Render(h.Desc))
	}
	return hints
}

// applyView copies the active view's tasks from the cache into the list.
func (m *home) applyView() {
	switch m.list.ActiveView() {
	case ui.ViewToday:
		m.list.SetTasks(m.lists.Today)
	case ui.ViewWeek:
		m.list.SetTasks(m.lists.Week)
	default:
		m.list.SetTasks(m.lists.Inbox)
	}
	m.syncPane()
}

// syncPane points the detail pane at the current cursor task.
func (m *home) syncPane() {
	m.pane.SetTask(m.list.Selected())
}

func (m *home) beginProcessing(label string, prev mode) {
	m.returnMode = prev
	m.mode = modeProcessing
	m.spinnerLabel = label
}

func (m *home) finishProcessing() {
	if m.mode == modeProcessing {
		m.mode = m.returnMode
		m.returnMode = modeNormal
	}
	m.spinnerLabel = ""
}

// handleError funnels every surfaced failure through the log and the
// header banner.
func (m *home) handleError(err error) {
	if err == nil {
		return
	}
	log.ErrorLog.Printf("%v", err)
	m.errBanner = err.Error()
	m.errTicks = 0
}

func (m *home) saveSnapshot() {
	if m.snapshots == nil {
		return
	}
	if err := m.snapshots.Save(m.lists); err != nil {
		log.WarningLog.Printf("could not save task snapshot: %v", err)
	}
}
