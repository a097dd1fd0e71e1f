// Package services contains the server-side business logic of the portal:
// the library tree, notifications and the user directory. Handlers in
// internal/server/grpc authenticate the caller and pass it in explicitly.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/inspection"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/server/metrics"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/nodes"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/repomanager"
	"github.com/oluccaa/qualidade-sub001/internal/server/storage"
)

// MaxPageSize bounds a single listing request.
const MaxPageSize = 100

// BlobStore is the object storage used for document contents.
type BlobStore interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key, filename string) (string, error)
	Delete(ctx context.Context, key string) error
}

// FileService manages the library tree.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	logger      logging.Logger
	now         func() time.Time
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, logger logging.Logger) *FileService {
	return &FileService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		logger:      logger.With("service", "files"),
		now:         time.Now,
	}
}

func authorize(user models.User, action models.Action) error {
	if !user.Can(action) {
		return fmt.Errorf("%w: %s may not %s", common.ErrorForbidden, user.Role, action)
	}
	return nil
}

// visibleNode loads a node and hides it from users outside its organization.
func (s *FileService) visibleNode(ctx context.Context, repo nodes.Repository, user models.User, id string) (*models.FileNode, error) {
	n, err := repo.Get(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if !user.CanSeeOrganization(n.OrganizationID) {
		return nil, fmt.Errorf("node %s: %w", id, common.ErrorNotFound)
	}
	return n, nil
}

// folder resolves parentID to a visible folder. The root resolves to nil.
func (s *FileService) folder(ctx context.Context, repo nodes.Repository, user models.User, parentID string) (*models.FileNode, error) {
	if parentID == models.RootID {
		return nil, nil
	}
	f, err := s.visibleNode(ctx, repo, user, parentID)
	if err != nil {
		return nil, err
	}
	if !f.IsFolder() {
		return nil, fmt.Errorf("%w: %s is not a folder", common.ErrorValidation, f.Name)
	}
	return f, nil
}

// ownerOrganization picks the organization of a new node: the parent's,
// else the requested one, else the creator's.
func ownerOrganization(parent *models.FileNode, requested string, user models.User) (string, error) {
	switch {
	case parent != nil && parent.OrganizationID != "":
		return parent.OrganizationID, nil
	case requested != "":
		return requested, nil
	case user.HasOrganization():
		return user.OrganizationID, nil
	}
	return "", common.ErrNoOrganization
}

// List returns one page of the direct children of folderID.
func (s *FileService) List(ctx context.Context, user models.User, folderID string, page, pageSize int, search string) (models.Page, error) {
	if err := authorize(user, models.ActionRead); err != nil {
		return models.Page{}, err
	}
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return models.Page{}, fmt.Errorf("%w: page %d size %d", common.ErrorValidation, page, pageSize)
	}

	q := srvmodels.NodeQuery{
		ParentID: folderID,
		ViewerID: user.ID,
		Search:   search,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}
	if user.Role == models.RoleClient {
		if !user.HasOrganization() {
			return models.Page{}, common.ErrNoOrganization
		}
		q.OrganizationID = user.OrganizationID
	}

	repo := s.repomanager.Nodes(s.db)
	if _, err := s.folder(ctx, repo, user, folderID); err != nil {
		return models.Page{}, err
	}

	items, total, err := repo.List(ctx, q)
	if err != nil {
		return models.Page{}, err
	}
	if items == nil {
		items = []models.FileNode{}
	}
	return models.Page{Items: items, Total: total, HasMore: total > page*pageSize}, nil
}

// Breadcrumbs returns the path from the library root to folderID.
func (s *FileService) Breadcrumbs(ctx context.Context, user models.User, folderID string) ([]models.BreadcrumbItem, error) {
	if err := authorize(user, models.ActionRead); err != nil {
		return nil, err
	}
	crumbs := []models.BreadcrumbItem{{ID: models.RootID, Name: common.RootFolderName}}
	if folderID == models.RootID {
		return crumbs, nil
	}

	repo := s.repomanager.Nodes(s.db)
	if _, err := s.folder(ctx, repo, user, folderID); err != nil {
		return nil, err
	}
	path, err := repo.Ancestors(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return append(crumbs, path...), nil
}

// BeginUpload stores a pending document and returns it with a presigned
// PUT URL. The document stays hidden until CompleteUpload.
func (s *FileService) BeginUpload(ctx context.Context, user models.User, draft models.FileDraft, orgID string) (*models.FileNode, string, error) {
	if err := authorize(user, models.ActionUpload); err != nil {
		return nil, "", err
	}
	if err := models.ValidateName(draft.Name); err != nil {
		return nil, "", err
	}
	if draft.Size < 0 {
		return nil, "", fmt.Errorf("%w: negative size", common.ErrorValidation)
	}

	repo := s.repomanager.Nodes(s.db)
	parent, err := s.folder(ctx, repo, user, draft.ParentID)
	if err != nil {
		return nil, "", err
	}
	org, err := ownerOrganization(parent, orgID, user)
	if err != nil {
		return nil, "", err
	}

	typ := draft.Type
	if !typ.Valid() || typ == models.NodeFolder {
		typ = models.DetectNodeType(draft.Name, draft.MimeType)
	}

	node := &srvmodels.StoredNode{
		FileNode: models.FileNode{
			ParentID:       draft.ParentID,
			Name:           strings.TrimSpace(draft.Name),
			Type:           typ,
			Size:           draft.Size,
			MimeType:       draft.MimeType,
			OwnerID:        user.ID,
			OrganizationID: org,
			StoragePath:    storage.NewKey(org, s.now()),
			Metadata:       &models.SteelBatchMetadata{Status: models.StatusPending},
		},
		UploadPending: true,
	}

	url, err := s.blobs.PresignPut(ctx, node.StoragePath, node.MimeType)
	if err != nil {
		return nil, "", err
	}
	if err := repo.Insert(ctx, node); err != nil {
		return nil, "", err
	}

	metrics.RecordUploadStarted()
	s.logger.Info(ctx, "upload started", "node", node.ID, "name", node.Name, "org", org)
	return &node.FileNode, url, nil
}

// CompleteUpload publishes a pending document after its blob was stored.
func (s *FileService) CompleteUpload(ctx context.Context, user models.User, id string) (*models.FileNode, error) {
	if err := authorize(user, models.ActionUpload); err != nil {
		return nil, err
	}
	repo := s.repomanager.Nodes(s.db)

	pending, err := repo.GetPending(ctx, id)
	if err != nil {
		return nil, err
	}
	if pending.OwnerID != user.ID && user.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: upload belongs to another user", common.ErrorForbidden)
	}
	if err := repo.MarkUploaded(ctx, id); err != nil {
		return nil, err
	}

	n, err := repo.Get(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	metrics.RecordUploadCompleted(n.Size)
	return n, nil
}

// CreateFolder adds an empty folder under parentID.
func (s *FileService) CreateFolder(ctx context.Context, user models.User, parentID, name, orgID string) (*models.FileNode, error) {
	if err := authorize(user, models.ActionManageFolders); err != nil {
		return nil, err
	}
	if err := models.ValidateName(name); err != nil {
		return nil, err
	}

	repo := s.repomanager.Nodes(s.db)
	parent, err := s.folder(ctx, repo, user, parentID)
	if err != nil {
		return nil, err
	}
	org, err := ownerOrganization(parent, orgID, user)
	if err != nil {
		return nil, err
	}

	node := &srvmodels.StoredNode{FileNode: models.FileNode{
		ParentID:       parentID,
		Name:           strings.TrimSpace(name),
		Type:           models.NodeFolder,
		OwnerID:        user.ID,
		OrganizationID: org,
	}}
	if err := repo.Insert(ctx, node); err != nil {
		return nil, err
	}
	return &node.FileNode, nil
}

// Delete removes the given nodes with their subtrees in one transaction and
// then drops the stored blobs. Blob removal failures are logged only.
func (s *FileService) Delete(ctx context.Context, user models.User, ids []string) error {
	if err := authorize(user, models.ActionDelete); err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: nothing to delete", common.ErrorValidation)
	}

	var paths []string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Nodes(tx)
		for _, id := range ids {
			removed, err := repo.DeleteTree(ctx, id)
			if err != nil {
				return err
			}
			paths = append(paths, removed...)
		}
		return nil
	})
	if err != nil {
		return err
	}
	metrics.RecordDelete()

	for _, p := range paths {
		if err := s.blobs.Delete(ctx, p); err != nil {
			metrics.RecordStorageCleanupFailure()
			s.logger.Warn(ctx, "blob cleanup failed", "key", p, "error", err)
		}
	}
	return nil
}

// Rename changes the name of a node.
func (s *FileService) Rename(ctx context.Context, user models.User, id, name string) error {
	return s.Update(ctx, user, id, models.FilePatch{Name: &name})
}

// Update applies a partial update. Metadata changes are checked against the
// inspection state machine and recorded in the inspection history.
func (s *FileService) Update(ctx context.Context, user models.User, id string, patch models.FilePatch) error {
	if patch.Name != nil {
		if err := authorize(user, models.ActionRename); err != nil {
			return err
		}
		if err := models.ValidateName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.IsFavorite != nil {
		if err := authorize(user, models.ActionFavorite); err != nil {
			return err
		}
	}
	if patch.Metadata != nil {
		if err := authorize(user, models.ActionInspect); err != nil {
			return err
		}
	}

	var transition *models.InspectionEvent
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Nodes(tx)
		node, err := s.visibleNode(ctx, repo, user, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			if err := repo.Rename(ctx, id, strings.TrimSpace(*patch.Name)); err != nil {
				return err
			}
		}
		if patch.IsFavorite != nil {
			if err := repo.SetFavorite(ctx, user.ID, id, *patch.IsFavorite); err != nil {
				return err
			}
		}
		if patch.Metadata != nil {
			transition, err = s.updateMetadata(ctx, repo, user, node, *patch.Metadata)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if transition != nil {
		metrics.RecordInspectionTransition(string(transition.FromStatus), string(transition.ToStatus))
		s.logger.Info(ctx, "inspection status changed",
			"node", id, "from", transition.FromStatus, "to", transition.ToStatus, "by", user.ID)
	}
	return nil
}

// updateMetadata stores a metadata patch. A status change is stamped with
// the caller and the server clock; whatever attribution the patch carries is
// discarded. Without a status change the stored verdict is kept, and an
// inspected document only accepts a patch that leaves its batch data alone.
func (s *FileService) updateMetadata(ctx context.Context, repo nodes.Repository, user models.User, node *models.FileNode, meta models.SteelBatchMetadata) (*models.InspectionEvent, error) {
	if node.IsFolder() {
		return nil, common.ErrFolderMetadata
	}
	meta.Status = inspection.Normalize(meta.Status)

	var cur models.SteelBatchMetadata
	if node.Metadata != nil {
		cur = node.Metadata.Clone()
	}
	from := inspection.Normalize(cur.Status)
	if err := inspection.CheckTransition(from, meta.Status); err != nil {
		return nil, err
	}

	if from == meta.Status {
		meta.RejectionReason = cur.RejectionReason
		meta.InspectedBy = cur.InspectedBy
		meta.InspectedAt = cur.InspectedAt
		if from != models.StatusPending {
			if sameBatch(cur, meta) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %s document is locked, revert it to pending first", common.ErrInvalidTransition, from)
		}
	} else {
		meta.InspectedBy, meta.InspectedAt = "", nil
		if meta.Status != models.StatusPending {
			at := s.now().UTC()
			meta.InspectedBy = user.Name
			meta.InspectedAt = &at
		}
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	if err := repo.UpdateMetadata(ctx, node.ID, &meta); err != nil {
		return nil, err
	}
	if from == meta.Status {
		return nil, nil
	}

	event := &models.InspectionEvent{
		NodeID:          node.ID,
		FromStatus:      from,
		ToStatus:        meta.Status,
		RejectionReason: meta.RejectionReason,
		ActorID:         user.ID,
		ActorName:       user.Name,
	}
	if err := repo.InsertInspectionEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func sameBatch(a, b models.SteelBatchMetadata) bool {
	return a.BatchNumber == b.BatchNumber &&
		a.Grade == b.Grade &&
		a.InvoiceNumber == b.InvoiceNumber &&
		maps.Equal(a.ChemicalComposition, b.ChemicalComposition) &&
		maps.Equal(a.MechanicalProperties, b.MechanicalProperties)
}

// History returns the inspection history of a document, oldest first.
func (s *FileService) History(ctx context.Context, user models.User, id string) ([]models.InspectionEvent, error) {
	if err := authorize(user, models.ActionRead); err != nil {
		return nil, err
	}
	repo := s.repomanager.Nodes(s.db)
	if _, err := s.visibleNode(ctx, repo, user, id); err != nil {
		return nil, err
	}
	return repo.ListInspectionEvents(ctx, id)
}

// SignedURL returns a time-limited download URL for a document.
func (s *FileService) SignedURL(ctx context.Context, user models.User, id string) (string, error) {
	if err := authorize(user, models.ActionRead); err != nil {
		return "", err
	}
	n, err := s.visibleNode(ctx, s.repomanager.Nodes(s.db), user, id)
	if err != nil {
		return "", err
	}
	if n.IsFolder() {
		return "", fmt.Errorf("%w: folders have no content", common.ErrorValidation)
	}
	if n.StoragePath == "" {
		return "", fmt.Errorf("%w: %s has no stored content", common.ErrorNotFound, n.Name)
	}
	return s.blobs.PresignGet(ctx, n.StoragePath, n.Name)
}
