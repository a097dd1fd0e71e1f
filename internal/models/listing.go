package models

// BreadcrumbItem is one step of the root-to-current path. The root entry
// has ID == RootID.
type BreadcrumbItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Page is one slice of a folder listing.
type Page struct {
	Items   []FileNode `json:"items"`
	HasMore bool       `json:"has_more"`
	Total   int        `json:"total"`
}

// FileDraft describes a document about to be uploaded.
type FileDraft struct {
	ParentID string   `json:"parent_id,omitempty"`
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	MimeType string   `json:"mime_type,omitempty"`
	Size     int64    `json:"size"`
	Blob     []byte   `json:"-"`
}

// FilePatch is a partial update of a node. Nil fields are left untouched.
type FilePatch struct {
	Name       *string             `json:"name,omitempty"`
	IsFavorite *bool               `json:"is_favorite,omitempty"`
	Metadata   *SteelBatchMetadata `json:"metadata,omitempty"`
}
