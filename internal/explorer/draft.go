package explorer

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// NewDraft builds the upload draft for blob. When contentType is empty it is
// guessed from the extension and, failing that, sniffed from the content.
func NewDraft(blob []byte, name, contentType, parentID string) models.FileDraft {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
	}
	if contentType == "" && len(blob) > 0 {
		contentType = http.DetectContentType(blob)
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}

	return models.FileDraft{
		ParentID: parentID,
		Name:     name,
		Type:     models.DetectNodeType(name, contentType),
		MimeType: contentType,
		Size:     int64(len(blob)),
		Blob:     blob,
	}
}
