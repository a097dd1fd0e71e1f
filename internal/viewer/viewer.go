// Package viewer holds the state of the document preview: which sibling is
// shown, its signed URL, zoom and fullscreen.
package viewer

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	ZoomStep    = 0.25
	DefaultZoom = 1.0
)

// URLResolver returns a short-lived URL for reading a document.
type URLResolver interface {
	GetFileSignedURL(ctx context.Context, user models.User, id string) (string, error)
}

// UserProvider supplies the acting user.
type UserProvider interface {
	CurrentUser() (models.User, error)
}

// State is a snapshot of the viewer.
type State struct {
	Open       bool
	File       models.FileNode
	Index      int
	Count      int
	Zoom       float64
	Fullscreen bool
	URL        string
	Err        error
}

// Viewer navigates the non-folder siblings of the opened document.
type Viewer struct {
	resolver URLResolver
	users    UserProvider
	logger   logging.Logger

	mu         sync.Mutex
	open       bool
	files      []models.FileNode
	index      int
	zoom       float64
	fullscreen bool
	url        string
	err        error
	gen        uint64
}

// New returns a closed viewer.
func New(resolver URLResolver, users UserProvider, logger logging.Logger) *Viewer {
	return &Viewer{
		resolver: resolver,
		users:    users,
		logger:   logger.With("module", "viewer"),
		zoom:     DefaultZoom,
	}
}

// Open shows file, navigable among the non-folder entries of siblings.
// file itself is included even when siblings does not list it.
func (v *Viewer) Open(ctx context.Context, file models.FileNode, siblings []models.FileNode) error {
	if file.IsFolder() {
		return fmt.Errorf("%w: folders cannot be previewed", common.ErrorValidation)
	}

	files := make([]models.FileNode, 0, len(siblings)+1)
	index := -1
	for _, n := range siblings {
		if n.IsFolder() {
			continue
		}
		if n.ID == file.ID {
			index = len(files)
		}
		files = append(files, n)
	}
	if index < 0 {
		index = len(files)
		files = append(files, file)
	}

	v.mu.Lock()
	v.open = true
	v.files = files
	v.index = index
	v.zoom = DefaultZoom
	v.fullscreen = false
	v.mu.Unlock()

	return v.resolve(ctx)
}

// Close hides the viewer. Keys are ignored until the next Open.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = false
	v.files = nil
	v.index = 0
	v.url = ""
	v.err = nil
	v.gen++
}

// Next shows the following sibling, wrapping to the first.
func (v *Viewer) Next(ctx context.Context) error { return v.step(ctx, 1) }

// Prev shows the preceding sibling, wrapping to the last.
func (v *Viewer) Prev(ctx context.Context) error { return v.step(ctx, -1) }

func (v *Viewer) step(ctx context.Context, delta int) error {
	v.mu.Lock()
	if !v.open || len(v.files) == 0 {
		v.mu.Unlock()
		return nil
	}
	n := len(v.files)
	v.index = ((v.index+delta)%n + n) % n
	v.mu.Unlock()

	return v.resolve(ctx)
}

// resolve fetches a fresh signed URL for the current file. A result that
// arrives after another step or a Close is dropped.
func (v *Viewer) resolve(ctx context.Context) error {
	v.mu.Lock()
	if !v.open || len(v.files) == 0 {
		v.mu.Unlock()
		return nil
	}
	v.gen++
	gen := v.gen
	v.url = ""
	v.err = nil
	file := v.files[v.index]
	v.mu.Unlock()

	user, err := v.users.CurrentUser()
	if err == nil {
		var url string
		url, err = v.resolver.GetFileSignedURL(ctx, user, file.ID)
		if err == nil {
			v.mu.Lock()
			if gen == v.gen {
				v.url = url
			}
			v.mu.Unlock()
			return nil
		}
	}

	err = fmt.Errorf("resolve %s: %w", file.Name, err)
	v.logger.Error(ctx, "signed url failed", "file", file.ID, "error", err)
	v.mu.Lock()
	if gen == v.gen {
		v.err = err
	}
	v.mu.Unlock()
	return err
}

// ZoomIn increases the zoom by one step, up to MaxZoom.
func (v *Viewer) ZoomIn() float64 { return v.setZoom(func(z float64) float64 { return z + ZoomStep }) }

// ZoomOut decreases the zoom by one step, down to MinZoom.
func (v *Viewer) ZoomOut() float64 { return v.setZoom(func(z float64) float64 { return z - ZoomStep }) }

// ResetZoom restores DefaultZoom.
func (v *Viewer) ResetZoom() float64 { return v.setZoom(func(float64) float64 { return DefaultZoom }) }

func (v *Viewer) setZoom(f func(float64) float64) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.zoom = math.Max(MinZoom, math.Min(MaxZoom, f(v.zoom)))
	return v.zoom
}

// ToggleFullscreen flips fullscreen mode and returns the new value.
func (v *Viewer) ToggleFullscreen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fullscreen = !v.fullscreen
	return v.fullscreen
}

// HandleKey applies a key press. Keys are only honoured while the viewer is
// open; handled reports whether the key was consumed.
func (v *Viewer) HandleKey(ctx context.Context, key string) (handled bool, err error) {
	if !v.IsOpen() {
		return false, nil
	}
	switch key {
	case "right":
		return true, v.Next(ctx)
	case "left":
		return true, v.Prev(ctx)
	case "+", "=":
		v.ZoomIn()
	case "-":
		v.ZoomOut()
	case "0":
		v.ResetZoom()
	case "f":
		v.ToggleFullscreen()
	case "esc":
		v.Close()
	default:
		return false, nil
	}
	return true, nil
}

// IsOpen reports whether a document is shown.
func (v *Viewer) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.open
}

// State returns a snapshot of the viewer.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := State{
		Open:       v.open,
		Index:      v.index,
		Count:      len(v.files),
		Zoom:       v.zoom,
		Fullscreen: v.fullscreen,
		URL:        v.url,
		Err:        v.err,
	}
	if v.open && len(v.files) > 0 {
		s.File = v.files[v.index]
	}
	return s
}
