package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/oluccaa/qualidade-sub001/internal/client/admin"
	"github.com/oluccaa/qualidade-sub001/internal/client/session"
	"github.com/oluccaa/qualidade-sub001/internal/explorer"
	"github.com/oluccaa/qualidade-sub001/internal/inspection"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/viewer"
)

// Backend is everything the REPL needs from the server.
type Backend interface {
	explorer.FileService
	inspection.Notifier
	viewer.URLResolver
	admin.Service

	Login(ctx context.Context, email, password string) (models.User, error)
	Logout()
	History(ctx context.Context, id string) ([]models.InspectionEvent, error)
	ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Preferences remembers the last sign-in email between runs.
type Preferences interface {
	LastEmail(ctx context.Context) (string, error)
	SetLastEmail(ctx context.Context, email string) error
}

type App struct {
	backend   Backend
	prefs     Preferences
	session   *session.Session
	logger    logging.Logger
	explorer  *explorer.Controller
	viewer    *viewer.Viewer
	directory *admin.Directory
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds the controllers around backend. sess must be the session
// backend authenticates with.
func NewApp(backend Backend, sess *session.Session, logger logging.Logger, pageSize int) *App {
	return &App{
		backend:   backend,
		session:   sess,
		logger:    logger,
		explorer:  explorer.NewController(backend, sess, logger, pageSize),
		viewer:    viewer.New(backend, sess, logger),
		directory: admin.NewDirectory(backend, sess, logger),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

// UsePreferences enables remembering the sign-in email.
func (a *App) UsePreferences(p Preferences) {
	a.prefs = p
}

func (a *App) isLoggedIn() bool {
	return a.session.SignedIn()
}

func (a *App) currentUser() models.User {
	u, _ := a.session.CurrentUser()
	return u
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "(signed out)"
	}
	u := a.currentUser()
	s := a.explorer.State()
	path := ""
	for i, c := range s.Breadcrumbs {
		if i > 0 {
			path += "/"
		}
		path += c.Name
	}
	if s.SearchTerm != "" {
		path += " ?" + s.SearchTerm
	}
	return "(" + u.Name + " " + string(u.Role) + ") " + path
}

// Run prompts for credentials and then serves commands until exit.
func (a *App) Run(ctx context.Context) {
	printlnFn("Steel quality portal (type 'help' for commands)")

	if err := a.Login(ctx, nil); err != nil {
		printlnFn("Error:", err)
	}

	runREPL(ctx, a.commands(), a.isLoggedIn, a.status, a.reader)
}
