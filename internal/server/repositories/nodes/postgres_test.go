package nodes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var listCols = []string{"id", "parent_id", "name", "type", "size", "mime_type", "updated_at",
	"owner_id", "organization_id", "storage_path", "metadata", "favorite", "total"}

func TestInsert_PendingDocument(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+nodes\s*\(id,\s*parent_id,\s*name,.*upload_pending\).*RETURNING\s+updated_at$`).
		WithArgs(sqlmock.AnyArg(), "folder-1", "cert.pdf", models.NodePDF, int64(1024), "application/pdf",
			"u1", "org1", "org1/abc", sqlmock.AnyArg(), true).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	node := &srvmodels.StoredNode{
		FileNode: models.FileNode{
			ParentID: "folder-1", Name: "cert.pdf", Type: models.NodePDF, Size: 1024, MimeType: "application/pdf",
			OwnerID: "u1", OrganizationID: "org1", StoragePath: "org1/abc",
			Metadata: &models.SteelBatchMetadata{Status: models.StatusPending},
		},
		UploadPending: true,
	}
	if err := repo.Insert(context.Background(), node); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if node.ID == "" || !node.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected node after insert: %+v", node)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsert_DuplicateName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO nodes`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Insert(context.Background(), &srvmodels.StoredNode{FileNode: models.FileNode{Name: "Reports", Type: models.NodeFolder}})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestGet_DecodesMetadataAndFavorite(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	meta := []byte(`{"batch_number":"B-1","grade":"SAE 1020","invoice_number":"NF-9","status":"PENDING"}`)
	mock.ExpectQuery(`(?s)FROM nodes n\s+WHERE n.id = \$1 AND NOT n.upload_pending`).
		WithArgs("n1", "viewer").
		WillReturnRows(sqlmock.NewRows(listCols[:12]).
			AddRow("n1", "", "cert.pdf", "PDF", 10, "application/pdf", time.Now(), "u1", "org1", "org1/n1", meta, true))

	n, err := repo.Get(context.Background(), "n1", "viewer")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !n.IsFavorite || n.ParentID != models.RootID || n.Type != models.NodePDF {
		t.Fatalf("unexpected node: %+v", n)
	}
	if n.Metadata == nil || n.Metadata.BatchNumber != "B-1" || n.Metadata.Status != models.StatusPending {
		t.Fatalf("unexpected metadata: %+v", n.Metadata)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM nodes n`).WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), "missing", ""); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestList_RootWithSearch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM nodes n\s+WHERE NOT n.upload_pending.*IS NOT DISTINCT FROM \$1::uuid.*ILIKE.*LIMIT \$5 OFFSET \$6`).
		WithArgs(nil, "org1", `50\%`, "viewer", 2, 4).
		WillReturnRows(sqlmock.NewRows(listCols).
			AddRow("f1", "", "Invoices 50%", "FOLDER", 0, "", time.Now(), "", "org1", "", nil, false, 5).
			AddRow("d1", "", "report 50%.pdf", "PDF", 7, "application/pdf", time.Now(), "u1", "org1", "org1/d1", nil, true, 5))

	items, total, err := repo.List(context.Background(), srvmodels.NodeQuery{
		OrganizationID: "org1", ViewerID: "viewer", Search: " 50% ", Limit: 2, Offset: 4,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 || len(items) != 2 {
		t.Fatalf("got %d items, total %d", len(items), total)
	}
	if !items[0].IsFolder() || items[0].Metadata != nil || !items[1].IsFavorite {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestList_EmptyPage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM nodes n`).
		WithArgs("folder-1", "", "", "", 20, 0).
		WillReturnRows(sqlmock.NewRows(listCols))

	items, total, err := repo.List(context.Background(), srvmodels.NodeQuery{ParentID: "folder-1", Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Fatalf("expected empty page, got %d/%d", len(items), total)
	}
}

func TestAncestors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WITH RECURSIVE chain AS .*ORDER BY depth DESC`).
		WithArgs("c").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("a", "Clients").AddRow("b", "Acme").AddRow("c", "2024"))

	got, err := repo.Ancestors(context.Background(), "c")
	if err != nil {
		t.Fatalf("Ancestors: %v", err)
	}
	if len(got) != 3 || got[0].Name != "Clients" || got[2].ID != "c" {
		t.Fatalf("unexpected path: %+v", got)
	}
}

func TestAncestors_UnknownFolder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WITH RECURSIVE chain`).WithArgs("ghost").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	if _, err := repo.Ancestors(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestRenameAndMarkUploaded(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE nodes SET name = \$2, updated_at = now\(\) WHERE id = \$1 AND NOT upload_pending`).
		WithArgs("n1", "renamed.pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE nodes SET upload_pending = FALSE`).
		WithArgs("n2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Rename(context.Background(), "n1", "renamed.pdf"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if err := repo.MarkUploaded(context.Background(), "n2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound for already uploaded node, got %v", err)
	}
}

func TestUpdateMetadata_CheckViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE nodes SET metadata = \$2`).
		WithArgs("n1", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23514", Message: "folder_without_metadata"})

	err := repo.UpdateMetadata(context.Background(), "n1", &models.SteelBatchMetadata{Status: models.StatusPending})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestInspectionEvents(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+inspection_events`).
		WithArgs("n1", models.StatusPending, models.StatusRejected, "bad grade", "u1", "Ana").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(at))
	mock.ExpectQuery(`(?s)FROM inspection_events\s+WHERE node_id = \$1`).
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows([]string{"node_id", "from_status", "to_status", "rejection_reason", "actor_id", "actor_name", "created_at"}).
			AddRow("n1", "PENDING", "REJECTED", "bad grade", "u1", "Ana", at))

	e := &models.InspectionEvent{
		NodeID: "n1", FromStatus: models.StatusPending, ToStatus: models.StatusRejected,
		RejectionReason: "bad grade", ActorID: "u1", ActorName: "Ana",
	}
	if err := repo.InsertInspectionEvent(context.Background(), e); err != nil {
		t.Fatalf("InsertInspectionEvent: %v", err)
	}
	if !e.CreatedAt.Equal(at) {
		t.Fatalf("created_at not populated: %v", e.CreatedAt)
	}

	events, err := repo.ListInspectionEvents(context.Background(), "n1")
	if err != nil {
		t.Fatalf("ListInspectionEvents: %v", err)
	}
	if len(events) != 1 || events[0].ToStatus != models.StatusRejected {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestDeleteTree(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WITH RECURSIVE tree AS .*DELETE FROM nodes.*RETURNING storage_path`).
		WithArgs("folder").
		WillReturnRows(sqlmock.NewRows([]string{"storage_path"}).
			AddRow("").AddRow("org1/a").AddRow("org1/b"))

	paths, err := repo.DeleteTree(context.Background(), "folder")
	if err != nil {
		t.Fatalf("DeleteTree: %v", err)
	}
	if len(paths) != 2 || paths[0] != "org1/a" {
		t.Fatalf("unexpected paths: %v", paths)
	}

	mock.ExpectQuery(`WITH RECURSIVE tree`).WithArgs("ghost").WillReturnRows(sqlmock.NewRows([]string{"storage_path"}))
	if _, err := repo.DeleteTree(context.Background(), "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestSetFavorite(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO favorites \(user_id, node_id\) VALUES \(\$1, \$2\) ON CONFLICT DO NOTHING`).
		WithArgs("u1", "n1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM favorites WHERE user_id = \$1 AND node_id = \$2`).
		WithArgs("u1", "n1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetFavorite(context.Background(), "u1", "n1", true); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if err := repo.SetFavorite(context.Background(), "u1", "n1", false); err != nil {
		t.Fatalf("unfavorite: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
