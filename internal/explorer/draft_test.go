package explorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oluccaa/qualidade-sub001/internal/models"
)

func TestNewDraft(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name        string
		blob        []byte
		fileName    string
		contentType string
		wantType    models.NodeType
		wantMime    string
	}{
		{name: "explicit pdf", blob: []byte("%PDF-1.4"), fileName: "cert.pdf", contentType: "application/pdf", wantType: models.NodePDF, wantMime: "application/pdf"},
		{name: "pdf from extension", blob: []byte("%PDF-1.4"), fileName: "cert.pdf", wantType: models.NodePDF, wantMime: "application/pdf"},
		{name: "params stripped", blob: []byte("x"), fileName: "scan.png", contentType: "image/png; q=0.9", wantType: models.NodeImage, wantMime: "image/png"},
		{name: "sniffed image", blob: png, fileName: "scan", wantType: models.NodeImage, wantMime: "image/png"},
		{name: "unknown", blob: []byte{0x00, 0x01}, fileName: "blob", wantType: models.NodeOther, wantMime: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft(tt.blob, tt.fileName, tt.contentType, "parent")
			assert.Equal(t, tt.wantType, d.Type)
			assert.Equal(t, tt.wantMime, d.MimeType)
			assert.Equal(t, int64(len(tt.blob)), d.Size)
			assert.Equal(t, "parent", d.ParentID)
			assert.Equal(t, tt.fileName, d.Name)
		})
	}
}
