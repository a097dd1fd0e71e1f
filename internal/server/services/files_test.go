package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

var (
	admin   = models.User{ID: "admin", Name: "Root", Role: models.RoleAdmin}
	quality = models.User{ID: "qa", Name: "Quinn", Role: models.RoleQuality, OrganizationID: "steelco"}
	acme    = models.User{ID: "c1", Name: "Carla", Role: models.RoleClient, OrganizationID: "acme"}

	inspectedAt = time.Date(2024, 6, 3, 14, 0, 0, 0, time.UTC)
)

type fileFixture struct {
	svc   *FileService
	repos *fakeRepoManager
	blobs *fakeBlobs
	mock  sqlmock.Sqlmock
}

// newFileFixture seeds:
//
//	acme/            (folder, acme)
//	  cert-1.pdf     (acme)
//	  cert-2.pdf     (acme)
//	  cert-3.pdf     (acme)
//	zeta/            (folder, zeta)
//	  z.pdf          (zeta)
func newFileFixture(t *testing.T) *fileFixture {
	t.Helper()
	db, mock := newSQLMockDB(t)
	repos := newFakeRepoManager()
	blobs := &fakeBlobs{deleteErr: map[string]error{}}

	pending := &models.SteelBatchMetadata{Status: models.StatusPending}
	repos.nodes.add(models.FileNode{ID: "acme", Name: "Acme", Type: models.NodeFolder, OrganizationID: "acme"})
	repos.nodes.add(models.FileNode{ID: "zeta", Name: "Zeta", Type: models.NodeFolder, OrganizationID: "zeta"})
	for _, n := range []string{"cert-1.pdf", "cert-2.pdf", "cert-3.pdf"} {
		id := strings.TrimSuffix(n, ".pdf")
		repos.nodes.add(models.FileNode{ID: id, ParentID: "acme", Name: n, Type: models.NodePDF,
			OrganizationID: "acme", OwnerID: "qa", StoragePath: "acme/" + id, Metadata: pending})
	}
	repos.nodes.add(models.FileNode{ID: "z", ParentID: "zeta", Name: "z.pdf", Type: models.NodePDF,
		OrganizationID: "zeta", StoragePath: "zeta/z", Metadata: pending})

	return &fileFixture{
		svc:   NewFileService(db, repos, blobs, logging.Nop()),
		repos: repos,
		blobs: blobs,
		mock:  mock,
	}
}

func TestList_Pagination(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	p1, err := f.svc.List(ctx, quality, "acme", 1, 2, "")
	require.NoError(t, err)
	assert.Len(t, p1.Items, 2)
	assert.True(t, p1.HasMore)
	assert.Equal(t, 3, p1.Total)

	p2, err := f.svc.List(ctx, quality, "acme", 2, 2, "")
	require.NoError(t, err)
	require.Len(t, p2.Items, 1)
	assert.Equal(t, "cert-3.pdf", p2.Items[0].Name)
	assert.False(t, p2.HasMore)

	found, err := f.svc.List(ctx, quality, "acme", 1, 10, "CERT-2")
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "cert-2", found.Items[0].ID)
}

func TestList_InvalidPaging(t *testing.T) {
	f := newFileFixture(t)
	for _, tc := range []struct{ page, size int }{{0, 10}, {1, 0}, {1, MaxPageSize + 1}} {
		_, err := f.svc.List(context.Background(), quality, "", tc.page, tc.size, "")
		assert.ErrorIs(t, err, common.ErrorValidation, "page %d size %d", tc.page, tc.size)
	}
}

func TestList_ClientSeesOwnOrganizationOnly(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	root, err := f.svc.List(ctx, acme, models.RootID, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, root.Items, 1)
	assert.Equal(t, "acme", root.Items[0].ID)

	_, err = f.svc.List(ctx, acme, "zeta", 1, 10, "")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.svc.List(ctx, models.User{ID: "x", Role: models.RoleClient}, models.RootID, 1, 10, "")
	assert.ErrorIs(t, err, common.ErrNoOrganization)
}

func TestBreadcrumbs(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	root, err := f.svc.Breadcrumbs(ctx, acme, models.RootID)
	require.NoError(t, err)
	assert.Equal(t, []models.BreadcrumbItem{{ID: models.RootID, Name: common.RootFolderName}}, root)

	f.repos.nodes.add(models.FileNode{ID: "y24", ParentID: "acme", Name: "2024", Type: models.NodeFolder, OrganizationID: "acme"})
	path, err := f.svc.Breadcrumbs(ctx, acme, "y24")
	require.NoError(t, err)
	assert.Equal(t, []models.BreadcrumbItem{
		{ID: models.RootID, Name: common.RootFolderName},
		{ID: "acme", Name: "Acme"},
		{ID: "y24", Name: "2024"},
	}, path)

	_, err = f.svc.Breadcrumbs(ctx, acme, "cert-1")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpload_PendingUntilCompleted(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	draft := models.FileDraft{ParentID: "acme", Name: " mill-report.png ", MimeType: "image/png", Size: 42}
	node, url, err := f.svc.BeginUpload(ctx, quality, draft, "")
	require.NoError(t, err)
	assert.Equal(t, "mill-report.png", node.Name)
	assert.Equal(t, models.NodeImage, node.Type)
	assert.Equal(t, "acme", node.OrganizationID, "inherits the parent's organization")
	assert.True(t, strings.HasPrefix(node.StoragePath, "acme/"))
	assert.Equal(t, "https://blobs/put/"+node.StoragePath, url)
	require.NotNil(t, node.Metadata)
	assert.Equal(t, models.StatusPending, node.Metadata.Status)

	page, err := f.svc.List(ctx, quality, "acme", 1, 10, "mill")
	require.NoError(t, err)
	assert.Empty(t, page.Items, "pending uploads are hidden")

	_, err = f.svc.CompleteUpload(ctx, models.User{ID: "other", Role: models.RoleQuality}, node.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	done, err := f.svc.CompleteUpload(ctx, quality, node.ID)
	require.NoError(t, err)
	assert.Equal(t, node.ID, done.ID)

	page, err = f.svc.List(ctx, quality, "acme", 1, 10, "mill")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	_, err = f.svc.CompleteUpload(ctx, quality, node.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestBeginUpload_Rules(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()
	draft := models.FileDraft{Name: "a.pdf"}

	_, _, err := f.svc.BeginUpload(ctx, acme, draft, "")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, _, err = f.svc.BeginUpload(ctx, admin, draft, "")
	assert.ErrorIs(t, err, common.ErrNoOrganization)

	_, _, err = f.svc.BeginUpload(ctx, quality, models.FileDraft{Name: "a/b.pdf"}, "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, _, err = f.svc.BeginUpload(ctx, quality, models.FileDraft{ParentID: "cert-1", Name: "x.pdf"}, "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	node, _, err := f.svc.BeginUpload(ctx, admin, draft, "zeta")
	require.NoError(t, err)
	assert.Equal(t, "zeta", node.OrganizationID)
	assert.Equal(t, models.NodePDF, node.Type)
}

func TestCreateFolder(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	folder, err := f.svc.CreateFolder(ctx, quality, "acme", "2025", "")
	require.NoError(t, err)
	assert.True(t, folder.IsFolder())
	assert.Equal(t, "acme", folder.OrganizationID)
	assert.Nil(t, folder.Metadata)

	_, err = f.svc.CreateFolder(ctx, quality, "acme", "2025", "")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = f.svc.CreateFolder(ctx, quality, "acme", "  ", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.CreateFolder(ctx, acme, "acme", "mine", "")
	assert.ErrorIs(t, err, common.ErrorForbidden)
}

func TestDelete_RemovesSubtreeAndBlobs(t *testing.T) {
	f := newFileFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	f.blobs.deleteErr["acme/cert-2"] = errors.New("bucket unavailable")

	err := f.svc.Delete(context.Background(), quality, []string{"acme"})
	require.NoError(t, err, "blob cleanup failures are not surfaced")

	assert.False(t, f.repos.nodes.exists("acme"))
	assert.False(t, f.repos.nodes.exists("cert-1"))
	assert.True(t, f.repos.nodes.exists("zeta"))
	assert.ElementsMatch(t, []string{"acme/cert-1", "acme/cert-2", "acme/cert-3"}, f.blobs.deleted)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestDelete_RollsBackOnMissingNode(t *testing.T) {
	f := newFileFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.Delete(context.Background(), quality, []string{"z", "ghost"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, f.blobs.deleted)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestDelete_Rules(t *testing.T) {
	f := newFileFixture(t)
	assert.ErrorIs(t, f.svc.Delete(context.Background(), acme, []string{"cert-1"}), common.ErrorForbidden)
	assert.ErrorIs(t, f.svc.Delete(context.Background(), quality, nil), common.ErrorValidation)
}

func TestUpdate_InspectionTransitionIsRecorded(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	at := inspectedAt
	meta := models.SteelBatchMetadata{
		Status: models.StatusRejected, RejectionReason: "carbon out of range",
		InspectedAt: &at, InspectedBy: "Quinn",
	}
	require.NoError(t, f.svc.Update(ctx, quality, "cert-1", models.FilePatch{Metadata: &meta}))

	n, err := f.repos.nodes.Get(ctx, "cert-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, n.Metadata.Status)

	history, err := f.svc.History(ctx, acme, "cert-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.StatusPending, history[0].FromStatus)
	assert.Equal(t, models.StatusRejected, history[0].ToStatus)
	assert.Equal(t, "carbon out of range", history[0].RejectionReason)
	assert.Equal(t, "qa", history[0].ActorID)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdate_InvalidTransitionRollsBack(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	at := inspectedAt
	approved := models.SteelBatchMetadata{Status: models.StatusApproved, InspectedAt: &at, InspectedBy: "Quinn"}
	f.repos.nodes.add(models.FileNode{ID: "ok", ParentID: "acme", Name: "ok.pdf", Type: models.NodePDF,
		OrganizationID: "acme", Metadata: &approved})

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	rejected := models.SteelBatchMetadata{Status: models.StatusRejected, RejectionReason: "late", InspectedAt: &at, InspectedBy: "Quinn"}
	err := f.svc.Update(ctx, quality, "ok", models.FilePatch{Metadata: &rejected})
	assert.ErrorIs(t, err, common.ErrInvalidTransition)

	history, err := f.svc.History(ctx, quality, "ok")
	require.NoError(t, err)
	assert.Empty(t, history)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdate_AttributionIsStampedByServer(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()
	f.svc.now = func() time.Time { return inspectedAt }

	forgedAt := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	approve := models.SteelBatchMetadata{
		BatchNumber: "B-1", Status: models.StatusApproved,
		InspectedAt: &forgedAt, InspectedBy: "Chief Inspector",
	}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.Update(ctx, quality, "cert-1", models.FilePatch{Metadata: &approve}))

	n, err := f.repos.nodes.Get(ctx, "cert-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, n.Metadata.Status)
	assert.Equal(t, "Quinn", n.Metadata.InspectedBy)
	require.NotNil(t, n.Metadata.InspectedAt)
	assert.True(t, n.Metadata.InspectedAt.Equal(inspectedAt))

	// same status, different batch data and attribution
	rewrite := models.SteelBatchMetadata{
		BatchNumber: "rewritten", Status: models.StatusApproved,
		InspectedAt: &forgedAt, InspectedBy: "Nobody",
	}
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	err = f.svc.Update(ctx, quality, "cert-1", models.FilePatch{Metadata: &rewrite})
	assert.ErrorIs(t, err, common.ErrInvalidTransition)

	// same status and batch data, forged attribution only
	replay := models.SteelBatchMetadata{
		BatchNumber: "B-1", Status: models.StatusApproved,
		InspectedAt: &forgedAt, InspectedBy: "Nobody",
	}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.Update(ctx, quality, "cert-1", models.FilePatch{Metadata: &replay}))

	n, err = f.repos.nodes.Get(ctx, "cert-1", "")
	require.NoError(t, err)
	assert.Equal(t, "B-1", n.Metadata.BatchNumber)
	assert.Equal(t, "Quinn", n.Metadata.InspectedBy)
	assert.True(t, n.Metadata.InspectedAt.Equal(inspectedAt))

	history, err := f.svc.History(ctx, quality, "cert-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Quinn", history[0].ActorName)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdate_RevertClearsAttribution(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	at := inspectedAt
	rejected := models.SteelBatchMetadata{Status: models.StatusRejected, RejectionReason: "late", InspectedAt: &at, InspectedBy: "Quinn"}
	f.repos.nodes.add(models.FileNode{ID: "bad", ParentID: "acme", Name: "bad.pdf", Type: models.NodePDF,
		OrganizationID: "acme", Metadata: &rejected})

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	revert := models.SteelBatchMetadata{Status: models.StatusPending, InspectedBy: "Nobody", InspectedAt: &at}
	require.NoError(t, f.svc.Update(ctx, quality, "bad", models.FilePatch{Metadata: &revert}))

	n, err := f.repos.nodes.Get(ctx, "bad", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, n.Metadata.Status)
	assert.Empty(t, n.Metadata.InspectedBy)
	assert.Nil(t, n.Metadata.InspectedAt)
	assert.Empty(t, n.Metadata.RejectionReason)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdate_PendingBatchDataIsEditable(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	edit := models.SteelBatchMetadata{
		BatchNumber: "B-7", Grade: "SAE 1045", Status: models.StatusPending, InspectedBy: "Nobody",
		ChemicalComposition: map[string]float64{"C": 0.45},
	}
	require.NoError(t, f.svc.Update(ctx, quality, "cert-2", models.FilePatch{Metadata: &edit}))

	n, err := f.repos.nodes.Get(ctx, "cert-2", "")
	require.NoError(t, err)
	assert.Equal(t, "B-7", n.Metadata.BatchNumber)
	assert.Equal(t, 0.45, n.Metadata.ChemicalComposition["C"])
	assert.Empty(t, n.Metadata.InspectedBy)

	history, err := f.svc.History(ctx, quality, "cert-2")
	require.NoError(t, err)
	assert.Empty(t, history)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdate_MetadataRules(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()
	meta := models.SteelBatchMetadata{Status: models.StatusPending}

	assert.ErrorIs(t, f.svc.Update(ctx, acme, "cert-1", models.FilePatch{Metadata: &meta}), common.ErrorForbidden)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	assert.ErrorIs(t, f.svc.Update(ctx, quality, "acme", models.FilePatch{Metadata: &meta}), common.ErrFolderMetadata)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	blank := models.SteelBatchMetadata{Status: models.StatusRejected}
	assert.ErrorIs(t, f.svc.Update(ctx, quality, "cert-1", models.FilePatch{Metadata: &blank}), common.ErrEmptyRejectionReason)
}

func TestUpdate_FavoriteAndRename(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	fav := true
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.Update(ctx, acme, "cert-1", models.FilePatch{IsFavorite: &fav}))

	page, err := f.svc.List(ctx, acme, "acme", 1, 10, "cert-1")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsFavorite)

	assert.ErrorIs(t, f.svc.Rename(ctx, acme, "cert-1", "mine.pdf"), common.ErrorForbidden)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	require.NoError(t, f.svc.Rename(ctx, quality, "cert-1", " renamed.pdf "))
	n, err := f.repos.nodes.Get(ctx, "cert-1", "")
	require.NoError(t, err)
	assert.Equal(t, "renamed.pdf", n.Name)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestSignedURL(t *testing.T) {
	f := newFileFixture(t)
	ctx := context.Background()

	url, err := f.svc.SignedURL(ctx, acme, "cert-1")
	require.NoError(t, err)
	assert.Equal(t, "https://blobs/get/acme/cert-1?name=cert-1.pdf", url)

	_, err = f.svc.SignedURL(ctx, acme, "acme")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.SignedURL(ctx, acme, "z")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
