package nodes

import (
	"context"

	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
)

// Repository persists the library tree. Nodes with UploadPending set are
// invisible to Get, List and Ancestors until MarkUploaded.
type Repository interface {
	Insert(ctx context.Context, node *srvmodels.StoredNode) error
	Get(ctx context.Context, id, viewerID string) (*models.FileNode, error)
	GetPending(ctx context.Context, id string) (*srvmodels.StoredNode, error)
	MarkUploaded(ctx context.Context, id string) error
	List(ctx context.Context, q srvmodels.NodeQuery) ([]models.FileNode, int, error)
	// Ancestors returns the path from the top-level folder down to id, inclusive.
	Ancestors(ctx context.Context, id string) ([]models.BreadcrumbItem, error)
	Rename(ctx context.Context, id, name string) error
	UpdateMetadata(ctx context.Context, id string, meta *models.SteelBatchMetadata) error
	InsertInspectionEvent(ctx context.Context, e *models.InspectionEvent) error
	ListInspectionEvents(ctx context.Context, nodeID string) ([]models.InspectionEvent, error)
	// DeleteTree removes id and all its descendants and returns the storage
	// paths of the removed documents.
	DeleteTree(ctx context.Context, id string) ([]string, error)
	SetFavorite(ctx context.Context, userID, nodeID string, favorite bool) error
}
