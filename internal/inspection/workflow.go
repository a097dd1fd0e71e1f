package inspection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// Persister stores metadata changes.
type Persister interface {
	UpdateFile(ctx context.Context, user models.User, id string, patch models.FilePatch) error
}

// Notifier delivers a message to another user.
type Notifier interface {
	AddNotification(ctx context.Context, user models.User, targetUserID, title, body string, kind models.NotificationKind) error
}

// UserProvider supplies the acting user.
type UserProvider interface {
	CurrentUser() (models.User, error)
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// Workflow drives the inspection of a single document.
type Workflow struct {
	persister Persister
	notifier  Notifier
	users     UserProvider
	logger    logging.Logger
	now       func() time.Time

	mu         sync.Mutex
	file       models.FileNode
	processing bool
}

// NewWorkflow returns a workflow for file. Folders cannot be inspected.
func NewWorkflow(file models.FileNode, persister Persister, notifier Notifier, users UserProvider, logger logging.Logger, opts ...Option) (*Workflow, error) {
	if file.IsFolder() {
		return nil, common.ErrFolderMetadata
	}
	w := &Workflow{
		persister: persister,
		notifier:  notifier,
		users:     users,
		logger:    logger.With("module", "inspection", "file", file.ID),
		now:       time.Now,
		file:      file,
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// File returns a copy of the document as last persisted.
func (w *Workflow) File() models.FileNode {
	w.mu.Lock()
	defer w.mu.Unlock()
	f := w.file
	if f.Metadata != nil {
		m := f.Metadata.Clone()
		f.Metadata = &m
	}
	return f
}

// Status returns the current inspection status.
func (w *Workflow) Status() models.InspectionStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status()
}

func (w *Workflow) status() models.InspectionStatus {
	if w.file.Metadata == nil {
		return models.StatusPending
	}
	return Normalize(w.file.Metadata.Status)
}

// IsProcessing reports whether a transition is in flight.
func (w *Workflow) IsProcessing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.processing
}

func (w *Workflow) CanApprove() bool { return w.can(models.StatusApproved) }
func (w *Workflow) CanReject() bool  { return w.can(models.StatusRejected) }
func (w *Workflow) CanRevert() bool  { return w.can(models.StatusPending) }

func (w *Workflow) can(to models.InspectionStatus) bool {
	user, err := w.users.CurrentUser()
	if err != nil || !user.Can(models.ActionInspect) {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	from := w.status()
	return !w.processing && from != to && CheckTransition(from, to) == nil
}

// Approve marks the document as approved by the current user and notifies its owner.
func (w *Workflow) Approve(ctx context.Context) error {
	return w.transition(ctx, models.StatusApproved, "")
}

// Reject marks the document as rejected with reason. A blank reason fails
// with common.ErrEmptyRejectionReason without contacting the backend.
func (w *Workflow) Reject(ctx context.Context, reason string) error {
	return w.transition(ctx, models.StatusRejected, reason)
}

// RevertToPending returns the document to review, dropping the previous
// verdict and its attribution.
func (w *Workflow) RevertToPending(ctx context.Context) error {
	return w.transition(ctx, models.StatusPending, "")
}

func (w *Workflow) transition(ctx context.Context, to models.InspectionStatus, reason string) error {
	user, err := w.users.CurrentUser()
	if err != nil {
		return err
	}
	if !user.Can(models.ActionInspect) {
		return fmt.Errorf("%w: role %s cannot inspect documents", common.ErrorForbidden, user.Role)
	}

	w.mu.Lock()
	if w.processing {
		w.mu.Unlock()
		return common.ErrBusy
	}
	var cur models.SteelBatchMetadata
	if w.file.Metadata != nil {
		cur = w.file.Metadata.Clone()
	}
	next, changed, err := Apply(cur, to, reason, user.Name, w.now().UTC())
	if err != nil || !changed {
		w.mu.Unlock()
		return err
	}
	w.processing = true
	file := w.file
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.processing = false
		w.mu.Unlock()
	}()

	if err := w.persister.UpdateFile(ctx, user, file.ID, models.FilePatch{Metadata: &next}); err != nil {
		w.logger.Error(ctx, "inspection update failed", "status", to, "error", err)
		return fmt.Errorf("update inspection: %w", err)
	}

	w.mu.Lock()
	w.file.Metadata = &next
	w.mu.Unlock()
	w.logger.Info(ctx, "inspection updated", "status", to, "by", user.ID)

	w.notify(ctx, user, file, next)
	return nil
}

// verdictNotices holds the owner notification sent for each verdict.
var verdictNotices = map[models.InspectionStatus]struct {
	title, body string
	kind        models.NotificationKind
}{
	models.StatusApproved: {
		title: "Document approved",
		body:  "Your steel batch document passed quality inspection.",
		kind:  models.NotificationSuccess,
	},
	models.StatusRejected: {
		title: "Document rejected",
		body:  "Your steel batch document was rejected. Open it to read the inspector's reason.",
		kind:  models.NotificationAlert,
	},
}

// notify tells the owner about a verdict. The text depends only on the
// verdict; the reason stays on the document.
func (w *Workflow) notify(ctx context.Context, user models.User, file models.FileNode, m models.SteelBatchMetadata) {
	if file.OwnerID == "" {
		return
	}
	notice, ok := verdictNotices[m.Status]
	if !ok {
		return
	}
	if err := w.notifier.AddNotification(ctx, user, file.OwnerID, notice.title, notice.body, notice.kind); err != nil {
		// The verdict is already stored.
		w.logger.Warn(ctx, "owner notification failed", "owner", file.OwnerID, "error", err)
	}
}
