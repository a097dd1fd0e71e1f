// Package models defines the data types shared by the portal server, the
// gRPC wire layer and the client-side controllers.
package models

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/common"
)

// NodeType classifies a FileNode.
type NodeType string

const (
	NodeFolder NodeType = "FOLDER"
	NodePDF    NodeType = "PDF"
	NodeImage  NodeType = "IMAGE"
	NodeOther  NodeType = "OTHER"
)

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeFolder, NodePDF, NodeImage, NodeOther:
		return true
	}
	return false
}

// RootID identifies the library root. Nodes whose ParentID equals RootID
// live directly under the root.
const RootID = ""

// FileNode is a tree entry: either a folder or a stored document.
type FileNode struct {
	ID             string              `json:"id"`
	ParentID       string              `json:"parent_id,omitempty"`
	Name           string              `json:"name"`
	Type           NodeType            `json:"type"`
	Size           int64               `json:"size,omitempty"`
	MimeType       string              `json:"mime_type,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at"`
	OwnerID        string              `json:"owner_id,omitempty"`
	OrganizationID string              `json:"organization_id,omitempty"`
	StoragePath    string              `json:"storage_path,omitempty"`
	IsFavorite     bool                `json:"is_favorite"`
	Metadata       *SteelBatchMetadata `json:"metadata,omitempty"`
}

// IsFolder reports whether the node is a folder.
func (n FileNode) IsFolder() bool { return n.Type == NodeFolder }

// Validate checks the node-level invariants: a known type, a usable name
// and no metadata on folders.
func (n FileNode) Validate() error {
	if !n.Type.Valid() {
		return fmt.Errorf("%w: unknown node type %q", common.ErrorValidation, n.Type)
	}
	if err := ValidateName(n.Name); err != nil {
		return err
	}
	if n.IsFolder() && n.Metadata != nil {
		return common.ErrFolderMetadata
	}
	if n.Metadata != nil {
		return n.Metadata.Validate()
	}
	return nil
}

// ValidateName rejects empty names and names containing path separators.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if strings.ContainsAny(trimmed, `/\`) || trimmed == "." || trimmed == ".." {
		return fmt.Errorf("%w: invalid name %q", common.ErrorValidation, name)
	}
	return nil
}

// DetectNodeType derives a document type from its MIME type, falling back
// to the file extension when the MIME type is not an image.
func DetectNodeType(name, mimeType string) NodeType {
	if strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return NodeImage
	}
	if strings.EqualFold(mimeType, "application/pdf") {
		return NodePDF
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".pdf":
		return NodePDF
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff":
		return NodeImage
	}
	return NodeOther
}
