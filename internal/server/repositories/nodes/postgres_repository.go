package nodes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const nodeColumns = `n.id, COALESCE(n.parent_id::text, ''), n.name, n.type, n.size, n.mime_type, n.updated_at,
	COALESCE(n.owner_id::text, ''), COALESCE(n.organization_id::text, ''), n.storage_path, n.metadata`

// favoriteColumn expects the viewer id as the given placeholder.
func favoriteColumn(placeholder string) string {
	return `EXISTS (SELECT 1 FROM favorites f WHERE f.node_id = n.id AND f.user_id::text = ` + placeholder + `)`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func encodeMetadata(m *models.SteelBatchMetadata) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return b, nil
}

func scanNode(row interface{ Scan(...any) error }, n *models.FileNode, extra ...any) error {
	var meta []byte
	dest := append([]any{&n.ID, &n.ParentID, &n.Name, &n.Type, &n.Size, &n.MimeType, &n.UpdatedAt,
		&n.OwnerID, &n.OrganizationID, &n.StoragePath, &meta}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	if len(meta) > 0 {
		n.Metadata = &models.SteelBatchMetadata{}
		if err := json.Unmarshal(meta, n.Metadata); err != nil {
			return fmt.Errorf("decode metadata of %s: %w", n.ID, err)
		}
	}
	return nil
}

func (r *PostgresRepository) Insert(ctx context.Context, node *srvmodels.StoredNode) error {
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	meta, err := encodeMetadata(node.Metadata)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO nodes (id, parent_id, name, type, size, mime_type, owner_id, organization_id, storage_path, metadata, upload_pending)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING updated_at`

	err = r.db.QueryRowContext(ctx, query,
		node.ID, dbx.Nullable(node.ParentID), node.Name, node.Type, node.Size, node.MimeType,
		dbx.Nullable(node.OwnerID), dbx.Nullable(node.OrganizationID), node.StoragePath, meta, node.UploadPending,
	).Scan(&node.UpdatedAt)
	return dbx.MapError("insert node", err)
}

func (r *PostgresRepository) Get(ctx context.Context, id, viewerID string) (*models.FileNode, error) {
	query := `SELECT ` + nodeColumns + `, ` + favoriteColumn("$2") + `
		FROM nodes n
		WHERE n.id = $1 AND NOT n.upload_pending`

	n := &models.FileNode{}
	if err := scanNode(r.db.QueryRowContext(ctx, query, id, viewerID), n, &n.IsFavorite); err != nil {
		return nil, dbx.MapError("get node", err)
	}
	return n, nil
}

func (r *PostgresRepository) GetPending(ctx context.Context, id string) (*srvmodels.StoredNode, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes n WHERE n.id = $1 AND n.upload_pending`

	n := &srvmodels.StoredNode{UploadPending: true}
	if err := scanNode(r.db.QueryRowContext(ctx, query, id), &n.FileNode); err != nil {
		return nil, dbx.MapError("get pending node", err)
	}
	return n, nil
}

func (r *PostgresRepository) MarkUploaded(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE nodes SET upload_pending = FALSE, updated_at = now() WHERE id = $1 AND upload_pending`, id)
	if err != nil {
		return dbx.MapError("mark uploaded", err)
	}
	return dbx.ExpectOne("mark uploaded", res)
}

// List returns one page of the direct children of q.ParentID, folders
// first, and the total number of matching children.
func (r *PostgresRepository) List(ctx context.Context, q srvmodels.NodeQuery) ([]models.FileNode, int, error) {
	query := `SELECT ` + nodeColumns + `, ` + favoriteColumn("$4") + `, COUNT(*) OVER ()
		FROM nodes n
		WHERE NOT n.upload_pending
		  AND n.parent_id IS NOT DISTINCT FROM $1::uuid
		  AND ($2::text = '' OR n.organization_id::text = $2)
		  AND ($3::text = '' OR n.name ILIKE '%' || $3 || '%')
		ORDER BY (n.type = 'FOLDER') DESC, lower(n.name), n.id
		LIMIT $5 OFFSET $6`

	search := likeEscaper.Replace(strings.TrimSpace(q.Search))
	rows, err := r.db.QueryContext(ctx, query,
		dbx.Nullable(q.ParentID), q.OrganizationID, search, q.ViewerID, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, dbx.MapError("list nodes", err)
	}
	defer rows.Close()

	var (
		result []models.FileNode
		total  int
	)
	for rows.Next() {
		var n models.FileNode
		if err := scanNode(rows, &n, &n.IsFavorite, &total); err != nil {
			return nil, 0, fmt.Errorf("scan node: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dbx.MapError("list nodes", err)
	}
	return result, total, nil
}

func (r *PostgresRepository) Ancestors(ctx context.Context, id string) ([]models.BreadcrumbItem, error) {
	query :=
		`WITH RECURSIVE chain AS (
			SELECT id, parent_id, name, 0 AS depth FROM nodes WHERE id = $1 AND NOT upload_pending
			UNION ALL
			SELECT p.id, p.parent_id, p.name, c.depth + 1 FROM nodes p JOIN chain c ON p.id = c.parent_id
		)
		SELECT id, name FROM chain ORDER BY depth DESC`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.MapError("ancestors", err)
	}
	defer rows.Close()

	var result []models.BreadcrumbItem
	for rows.Next() {
		var b models.BreadcrumbItem
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan breadcrumb: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError("ancestors", err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("ancestors of %s: %w", id, common.ErrorNotFound)
	}
	return result, nil
}

func (r *PostgresRepository) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE nodes SET name = $2, updated_at = now() WHERE id = $1 AND NOT upload_pending`, id, name)
	if err != nil {
		return dbx.MapError("rename node", err)
	}
	return dbx.ExpectOne("rename node", res)
}

func (r *PostgresRepository) UpdateMetadata(ctx context.Context, id string, meta *models.SteelBatchMetadata) error {
	payload, err := encodeMetadata(meta)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE nodes SET metadata = $2, updated_at = now() WHERE id = $1 AND type <> 'FOLDER'`, id, payload)
	if err != nil {
		return dbx.MapError("update metadata", err)
	}
	return dbx.ExpectOne("update metadata", res)
}

func (r *PostgresRepository) InsertInspectionEvent(ctx context.Context, e *models.InspectionEvent) error {
	query :=
		`INSERT INTO inspection_events (node_id, from_status, to_status, rejection_reason, actor_id, actor_name)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.NodeID, e.FromStatus, e.ToStatus, e.RejectionReason, dbx.Nullable(e.ActorID), e.ActorName,
	).Scan(&e.CreatedAt)
	return dbx.MapError("insert inspection event", err)
}

func (r *PostgresRepository) ListInspectionEvents(ctx context.Context, nodeID string) ([]models.InspectionEvent, error) {
	query :=
		`SELECT node_id, from_status, to_status, rejection_reason, COALESCE(actor_id::text, ''), actor_name, created_at
		 FROM inspection_events
		 WHERE node_id = $1
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, dbx.MapError("list inspection events", err)
	}
	defer rows.Close()

	var result []models.InspectionEvent
	for rows.Next() {
		var e models.InspectionEvent
		if err := rows.Scan(&e.NodeID, &e.FromStatus, &e.ToStatus, &e.RejectionReason, &e.ActorID, &e.ActorName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inspection event: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError("list inspection events", err)
	}
	return result, nil
}

func (r *PostgresRepository) DeleteTree(ctx context.Context, id string) ([]string, error) {
	query :=
		`WITH RECURSIVE tree AS (
			SELECT id FROM nodes WHERE id = $1
			UNION ALL
			SELECT n.id FROM nodes n JOIN tree t ON n.parent_id = t.id
		)
		DELETE FROM nodes WHERE id IN (SELECT id FROM tree)
		RETURNING storage_path`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, dbx.MapError("delete tree", err)
	}
	defer rows.Close()

	var (
		paths   []string
		removed int
	)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan storage path: %w", err)
		}
		removed++
		if p != "" {
			paths = append(paths, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError("delete tree", err)
	}
	if removed == 0 {
		return nil, fmt.Errorf("delete tree %s: %w", id, common.ErrorNotFound)
	}
	return paths, nil
}

func (r *PostgresRepository) SetFavorite(ctx context.Context, userID, nodeID string, favorite bool) error {
	var err error
	if favorite {
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO favorites (user_id, node_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, nodeID)
	} else {
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM favorites WHERE user_id = $1 AND node_id = $2`, userID, nodeID)
	}
	return dbx.MapError("set favorite", err)
}

var _ Repository = (*PostgresRepository)(nil)

