package models

import "github.com/oluccaa/qualidade-sub001/internal/models"

// StoredNode is a tree node as persisted. UploadPending is true between
// BeginUpload and CompleteUpload; such nodes are hidden from listings.
type StoredNode struct {
	models.FileNode
	UploadPending bool
}

// NodeQuery selects one page of a folder listing.
type NodeQuery struct {
	ParentID string
	// OrganizationID restricts the listing to one organization when set.
	OrganizationID string
	// ViewerID resolves the per-user favorite flag.
	ViewerID string
	Search   string
	Limit    int
	Offset   int
}
