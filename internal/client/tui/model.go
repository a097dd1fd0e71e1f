// Package tui is the full-screen portal client built on bubbletea. It drives
// the same explorer, inspection and viewer controllers as the REPL.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oluccaa/qualidade-sub001/internal/client/session"
	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/explorer"
	"github.com/oluccaa/qualidade-sub001/internal/inspection"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/viewer"
)

// Backend is what the TUI needs from the server.
type Backend interface {
	explorer.FileService
	inspection.Notifier
	viewer.URLResolver

	Login(ctx context.Context, email, password string) (models.User, error)
	Logout()
}

// Preferences keeps the sign-in email and the listing layout between runs.
type Preferences interface {
	LastEmail(ctx context.Context) (string, error)
	SetLastEmail(ctx context.Context, email string) error
	ViewMode(ctx context.Context, userID string) (explorer.ViewMode, error)
	SetViewMode(ctx context.Context, userID string, mode explorer.ViewMode) error
}

type screen int

const (
	screenLogin screen = iota
	screenBrowse
	screenPrompt
	screenViewer
	screenNotFound
)

type promptKind int

const (
	promptSearch promptKind = iota
	promptReject
	promptConfirmDelete
	promptGoto
)

// doneMsg reports the end of a backend call started with run.
type doneMsg struct {
	op  string
	err error
}

// foundMsg carries the result of a lookup by id.
type foundMsg struct {
	id   string
	node models.FileNode
	err  error
}

type Model struct {
	ctx      context.Context
	backend  Backend
	prefs    Preferences
	session  *session.Session
	logger   logging.Logger
	explorer *explorer.Controller
	viewer   *viewer.Viewer

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	email    textinput.Model
	password textinput.Model
	input    textinput.Model

	screen  screen
	prompt  promptKind
	target  models.FileNode
	missing string
	cursor  int
	busy    bool
	status  string
	err     error
	width   int
	height  int
}

// New returns the login screen. ctx bounds every backend call made by the
// program.
func New(ctx context.Context, backend Backend, sess *session.Session, logger logging.Logger, pageSize int) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Prompt = "Email:    "
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	input := textinput.New()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:      ctx,
		backend:  backend,
		session:  sess,
		logger:   logger.With("module", "tui"),
		explorer: explorer.NewController(backend, sess, logger, pageSize),
		viewer:   viewer.New(backend, sess, logger),
		keys:     defaultKeys(),
		help:     help.New(),
		spinner:  sp,
		email:    email,
		password: password,
		input:    input,
		screen:   screenLogin,
	}
}

// UsePreferences restores the last sign-in email and enables saving the
// layout chosen by each user.
func (m *Model) UsePreferences(p Preferences) {
	m.prefs = p
	email, err := p.LastEmail(m.ctx)
	if err != nil {
		m.logger.Warn(m.ctx, "could not read last email", "error", err)
		return
	}
	if email != "" {
		m.email.SetValue(email)
		m.email.Blur()
		m.password.Focus()
	}
}

// restorePrefs runs after a successful sign-in.
func (m Model) restorePrefs(ctx context.Context, email string, user models.User) {
	if m.prefs == nil {
		return
	}
	if err := m.prefs.SetLastEmail(ctx, email); err != nil {
		m.logger.Warn(ctx, "could not remember email", "error", err)
	}
	mode, err := m.prefs.ViewMode(ctx, user.ID)
	if err != nil {
		m.logger.Warn(ctx, "could not read view mode", "error", err)
		return
	}
	if m.explorer.State().ViewMode != mode {
		m.explorer.ToggleViewMode()
	}
}

func (m Model) saveViewMode(mode explorer.ViewMode) {
	if m.prefs == nil {
		return
	}
	user, err := m.session.CurrentUser()
	if err != nil {
		return
	}
	if err := m.prefs.SetViewMode(m.ctx, user.ID, mode); err != nil {
		m.logger.Warn(m.ctx, "could not save view mode", "error", err)
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// run executes fn off the UI goroutine and reports its result as doneMsg.
func (m *Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	m.busy = true
	m.err = nil
	m.status = ""
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return doneMsg{op: op, err: fn(ctx)}
	})
}

func (m Model) current() (models.FileNode, bool) {
	items := m.explorer.State().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return models.FileNode{}, false
	}
	return items[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.explorer.State().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case doneMsg:
		return m.finish(msg)

	case foundMsg:
		return m.found(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenPrompt:
			return m.updatePrompt(msg)
		case screenViewer:
			return m.updateViewer(msg)
		case screenNotFound:
			return m.updateNotFound(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m.forwardToInputs(msg)
}

func (m Model) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		if m.email.Focused() {
			m.email, cmd = m.email.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
	case screenPrompt:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) finish(msg doneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.err = msg.err
	if msg.err != nil {
		m.logger.Debug(m.ctx, "operation failed", "op", msg.op, "error", msg.err)
		if msg.op == "open" {
			// The viewer shows its own error.
			m.err = nil
		}
		if !m.session.SignedIn() {
			m.screen = screenLogin
			m.password.SetValue("")
		}
		return m, nil
	}

	switch msg.op {
	case "login":
		m.screen = screenBrowse
		m.password.SetValue("")
		m.cursor = 0
	case "navigate":
		m.cursor = 0
	default:
		m.status = msg.op + " done"
	}
	m.clampCursor()
	return m, nil
}

func (m Model) found(msg foundMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	switch {
	case errors.Is(msg.err, common.ErrorNotFound):
		m.missing = msg.id
		m.screen = screenNotFound
	case msg.err != nil:
		m.err = msg.err
	default:
		for i, n := range m.explorer.State().Items {
			if n.ID == msg.node.ID {
				m.cursor = i
			}
		}
	}
	return m, nil
}

func (m Model) updateNotFound(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "backspace", "esc", "enter":
		m.screen = screenBrowse
		m.missing = ""
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.email.Focused() {
			m.email.Blur()
			return m, m.password.Focus()
		}
		m.password.Blur()
		return m, m.email.Focus()

	case "enter":
		if m.busy {
			return m, nil
		}
		if m.email.Focused() {
			m.email.Blur()
			return m, m.password.Focus()
		}
		email, password := strings.TrimSpace(m.email.Value()), m.password.Value()
		return m, m.run("login", func(ctx context.Context) error {
			user, err := m.backend.Login(ctx, email, password)
			if err != nil {
				return err
			}
			m.restorePrefs(ctx, email, user)
			return m.explorer.Navigate(ctx, models.RootID)
		})
	}
	return m.forwardToInputs(msg)
}

func (m Model) openPrompt(kind promptKind, placeholder, value string) (tea.Model, tea.Cmd) {
	m.screen = screenPrompt
	m.prompt = kind
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy && !key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.Help, m.keys.Quit) {
		return m, nil
	}
	k := m.keys
	node, hasNode := m.current()

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.explorer.State().Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, k.Open):
		if !hasNode {
			return m, nil
		}
		if node.IsFolder() {
			return m, m.run("navigate", func(ctx context.Context) error { return m.explorer.Navigate(ctx, node.ID) })
		}
		m.screen = screenViewer
		items := m.explorer.State().Items
		return m, m.run("open", func(ctx context.Context) error { return m.viewer.Open(ctx, node, items) })

	case key.Matches(msg, k.Back):
		return m, m.run("navigate", m.explorer.NavigateUp)

	case key.Matches(msg, k.Search):
		return m.openPrompt(promptSearch, "search this folder", m.explorer.State().SearchTerm)

	case key.Matches(msg, k.Goto):
		return m.openPrompt(promptGoto, "document id", "")

	case key.Matches(msg, k.More):
		return m, m.run("load more", m.explorer.LoadMore)

	case key.Matches(msg, k.Refresh):
		return m, m.run("refresh", m.explorer.Refresh)

	case key.Matches(msg, k.Select):
		if hasNode {
			m.explorer.Toggle(node.ID)
		}

	case key.Matches(msg, k.ViewMode):
		m.saveViewMode(m.explorer.ToggleViewMode())

	case key.Matches(msg, k.Favorite):
		if hasNode {
			return m, m.run("favorite", func(ctx context.Context) error { return m.explorer.ToggleFavorite(ctx, node.ID) })
		}

	case key.Matches(msg, k.Delete):
		if m.explorer.Selection().Count() == 0 && hasNode {
			m.explorer.Toggle(node.ID)
		}
		if m.explorer.Selection().Count() == 0 {
			return m, nil
		}
		return m.openPrompt(promptConfirmDelete, "type y to confirm", "")

	case key.Matches(msg, k.Approve):
		return m.inspect(node, hasNode, "approve", func(ctx context.Context, w *inspection.Workflow) error { return w.Approve(ctx) })

	case key.Matches(msg, k.Revert):
		return m.inspect(node, hasNode, "revert", func(ctx context.Context, w *inspection.Workflow) error { return w.RevertToPending(ctx) })

	case key.Matches(msg, k.Reject):
		if !hasNode || node.IsFolder() {
			return m, nil
		}
		m.target = node
		return m.openPrompt(promptReject, "rejection reason", "")
	}
	return m, nil
}

func (m Model) inspect(node models.FileNode, ok bool, op string, fn func(context.Context, *inspection.Workflow) error) (tea.Model, tea.Cmd) {
	if !ok {
		return m, nil
	}
	w, err := inspection.NewWorkflow(node, m.backend, m.backend, m.session, m.logger)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, m.run(op, func(ctx context.Context) error {
		if err := fn(ctx, w); err != nil {
			return err
		}
		return m.explorer.Refresh(ctx)
	})
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.screen = screenBrowse
		if m.prompt == promptConfirmDelete {
			m.explorer.Selection().Clear()
		}
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.screen = screenBrowse

		switch m.prompt {
		case promptSearch:
			return m, m.run("navigate", func(ctx context.Context) error { return m.explorer.SetSearch(ctx, value) })

		case promptGoto:
			if value == "" {
				return m, nil
			}
			m.busy = true
			m.err = nil
			ctx := m.ctx
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
				n, err := m.explorer.Find(ctx, value)
				return foundMsg{id: value, node: n, err: err}
			})

		case promptConfirmDelete:
			if !strings.EqualFold(value, "y") {
				m.explorer.Selection().Clear()
				m.status = "delete cancelled"
				return m, nil
			}
			return m, m.run("delete", m.explorer.DeleteSelected)

		case promptReject:
			if value == "" {
				m.err = common.ErrEmptyRejectionReason
				return m, nil
			}
			return m.inspect(m.target, true, "reject", func(ctx context.Context, w *inspection.Workflow) error {
				return w.Reject(ctx, value)
			})
		}
	}
	return m.forwardToInputs(msg)
}

func (m Model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "q" {
		k = "esc"
	}
	if k == "esc" {
		m.viewer.Close()
		m.screen = screenBrowse
		return m, nil
	}
	switch k {
	case "right", "left":
		return m, m.run("open", func(ctx context.Context) error {
			_, err := m.viewer.HandleKey(ctx, k)
			return err
		})
	default:
		_, _ = m.viewer.HandleKey(m.ctx, k)
	}
	return m, nil
}
