package explorer

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// DefaultPageSize is used when the controller is built with a non-positive page size.
const DefaultPageSize = 24

// FileService is the storage collaborator the controller drives.
type FileService interface {
	GetFiles(ctx context.Context, user models.User, folderID string, page, pageSize int, search string) (models.Page, error)
	GetBreadcrumbs(ctx context.Context, folderID string) ([]models.BreadcrumbItem, error)
	UploadFile(ctx context.Context, user models.User, draft models.FileDraft, orgID string) (*models.FileNode, error)
	CreateFolder(ctx context.Context, user models.User, parentID, name, orgID string) (*models.FileNode, error)
	DeleteFile(ctx context.Context, user models.User, ids []string) error
	RenameFile(ctx context.Context, user models.User, id, name string) error
	UpdateFile(ctx context.Context, user models.User, id string, patch models.FilePatch) error
}

// UserProvider supplies the acting user.
type UserProvider interface {
	CurrentUser() (models.User, error)
}

// State is a snapshot of the controller.
type State struct {
	CurrentFolderID string
	Page            int
	PageSize        int
	SearchTerm      string
	HasMore         bool
	Items           []models.FileNode
	Breadcrumbs     []models.BreadcrumbItem
	Loading         bool
	ViewMode        ViewMode
	// Err is the last user-facing error. It is cleared by the next
	// successful load or mutation.
	Err error
}

// SelectionFacts are the derived selection properties the view depends on.
type SelectionFacts struct {
	Count                     int
	IsSingleSelected          bool
	IsSingleNonFolderSelected bool
	Selected                  []models.FileNode
}

// Controller owns pagination, search, breadcrumbs and selection for one
// folder context.
type Controller struct {
	files     FileService
	users     UserProvider
	logger    logging.Logger
	selection *Selection

	mu       sync.Mutex
	state    State
	listGen  uint64
	crumbGen uint64
}

// NewController returns a controller positioned at the library root.
// Nothing is fetched until Navigate or FetchPage is called.
func NewController(files FileService, users UserProvider, logger logging.Logger, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		files:     files,
		users:     users,
		logger:    logger.With("module", "explorer"),
		selection: NewSelection(),
		state: State{
			CurrentFolderID: models.RootID,
			Page:            1,
			PageSize:        pageSize,
			HasMore:         true,
			Breadcrumbs:     []models.BreadcrumbItem{rootCrumb()},
		},
	}
}

func rootCrumb() models.BreadcrumbItem {
	return models.BreadcrumbItem{ID: models.RootID, Name: common.RootFolderName}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Items = append([]models.FileNode(nil), c.state.Items...)
	s.Breadcrumbs = append([]models.BreadcrumbItem(nil), c.state.Breadcrumbs...)
	return s
}

// Selection exposes the folder-scoped selection.
func (c *Controller) Selection() *Selection { return c.selection }

// FetchPage loads one page of folderID's direct children filtered by search.
// Page 1 replaces the cached items; later pages of the same folder and search
// are appended. The result is applied only when no newer listing request was
// issued in the meantime. On failure the state is left untouched apart from Err.
func (c *Controller) FetchPage(ctx context.Context, folderID string, page, pageSize int, search string) (models.Page, error) {
	if page < 1 || pageSize < 1 {
		return models.Page{}, fmt.Errorf("%w: page and page size must be positive", common.ErrorValidation)
	}
	c.mu.Lock()
	c.listGen++
	gen := c.listGen
	c.mu.Unlock()
	return c.fetchPage(ctx, gen, folderID, page, pageSize, search)
}

func (c *Controller) fetchPage(ctx context.Context, gen uint64, folderID string, page, pageSize int, search string) (models.Page, error) {
	user, err := c.users.CurrentUser()
	if err != nil {
		c.setErrIfCurrent(gen, err)
		return models.Page{}, err
	}

	res, err := c.files.GetFiles(ctx, user, folderID, page, pageSize, search)
	if err != nil {
		err = fmt.Errorf("load folder: %w", err)
		c.logger.Error(ctx, "listing failed", "folder", folderID, "page", page, "error", err)
		c.setErrIfCurrent(gen, err)
		return models.Page{}, err
	}
	if len(res.Items) > pageSize {
		res.Items = res.Items[:pageSize]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.listGen {
		c.logger.Debug(ctx, "discarding stale listing", "folder", folderID, "page", page)
		return res, nil
	}

	sameContext := folderID == c.state.CurrentFolderID && search == c.state.SearchTerm
	if page == 1 || !sameContext {
		c.state.Items = append([]models.FileNode(nil), res.Items...)
	} else {
		c.state.Items = append(c.state.Items, res.Items...)
	}
	c.state.CurrentFolderID = folderID
	c.state.SearchTerm = search
	c.state.Page = page
	c.state.PageSize = pageSize
	c.state.HasMore = res.HasMore
	c.state.Err = nil
	return res, nil
}

// FetchBreadcrumbs loads the root-to-folder path. The result always starts
// with the root entry.
func (c *Controller) FetchBreadcrumbs(ctx context.Context, folderID string) ([]models.BreadcrumbItem, error) {
	c.mu.Lock()
	c.crumbGen++
	gen := c.crumbGen
	c.mu.Unlock()

	crumbs, err := c.loadBreadcrumbs(ctx, folderID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.crumbGen {
		return crumbs, err
	}
	if err != nil {
		c.state.Err = err
		return nil, err
	}
	if folderID == c.state.CurrentFolderID {
		c.state.Breadcrumbs = crumbs
	}
	return crumbs, nil
}

// loadBreadcrumbs fetches the path without touching the state.
func (c *Controller) loadBreadcrumbs(ctx context.Context, folderID string) ([]models.BreadcrumbItem, error) {
	var crumbs []models.BreadcrumbItem
	if folderID != models.RootID {
		var err error
		crumbs, err = c.files.GetBreadcrumbs(ctx, folderID)
		if err != nil {
			err = fmt.Errorf("load breadcrumbs: %w", err)
			c.logger.Error(ctx, "breadcrumbs failed", "folder", folderID, "error", err)
			return nil, err
		}
	}
	if len(crumbs) == 0 || crumbs[0].ID != models.RootID {
		crumbs = append([]models.BreadcrumbItem{rootCrumb()}, crumbs...)
	}
	return crumbs, nil
}

// Navigate switches to folderID, fetching page 1 and the breadcrumbs
// together. Both must succeed before anything changes: then the selection
// and search are cleared and the listing and path are replaced. On failure
// only Err is set.
func (c *Controller) Navigate(ctx context.Context, folderID string) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return common.ErrBusy
	}
	pageSize := c.state.PageSize
	c.listGen++
	c.crumbGen++
	listGen, crumbGen := c.listGen, c.crumbGen
	c.mu.Unlock()

	c.logger.Debug(ctx, "navigate", "folder", folderID)

	user, err := c.users.CurrentUser()
	if err != nil {
		c.setErrIfCurrent(listGen, err)
		return err
	}

	var (
		page   models.Page
		crumbs []models.BreadcrumbItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := c.files.GetFiles(gctx, user, folderID, 1, pageSize, "")
		if err != nil {
			err = fmt.Errorf("load folder: %w", err)
			c.logger.Error(gctx, "listing failed", "folder", folderID, "page", 1, "error", err)
			return err
		}
		page = res
		return nil
	})
	g.Go(func() error {
		res, err := c.loadBreadcrumbs(gctx, folderID)
		crumbs = res
		return err
	})
	if err := g.Wait(); err != nil {
		c.setErrIfCurrent(listGen, err)
		return err
	}
	if len(page.Items) > pageSize {
		page.Items = page.Items[:pageSize]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if listGen != c.listGen || crumbGen != c.crumbGen {
		c.logger.Debug(ctx, "discarding stale navigation", "folder", folderID)
		return nil
	}
	c.selection.Clear()
	c.state.CurrentFolderID = folderID
	c.state.SearchTerm = ""
	c.state.Page = 1
	c.state.HasMore = page.HasMore
	c.state.Items = append([]models.FileNode(nil), page.Items...)
	c.state.Breadcrumbs = crumbs
	c.state.Err = nil
	return nil
}

// NavigateUp moves to the parent of the current folder. At the root it
// reloads the root.
func (c *Controller) NavigateUp(ctx context.Context) error {
	c.mu.Lock()
	parent := models.RootID
	if n := len(c.state.Breadcrumbs); n >= 2 {
		parent = c.state.Breadcrumbs[n-2].ID
	}
	c.mu.Unlock()
	return c.Navigate(ctx, parent)
}

// SetSearch filters the current folder by term, restarting at page 1.
func (c *Controller) SetSearch(ctx context.Context, term string) error {
	s := c.State()
	if s.Loading {
		return common.ErrBusy
	}
	_, err := c.FetchPage(ctx, s.CurrentFolderID, 1, s.PageSize, term)
	return err
}

// LoadMore appends the next page when there is one.
func (c *Controller) LoadMore(ctx context.Context) error {
	s := c.State()
	if s.Loading {
		return common.ErrBusy
	}
	if !s.HasMore {
		return nil
	}
	_, err := c.FetchPage(ctx, s.CurrentFolderID, s.Page+1, s.PageSize, s.SearchTerm)
	return err
}

// Refresh reloads page 1 of the current folder with the current search.
func (c *Controller) Refresh(ctx context.Context) error {
	s := c.State()
	_, err := c.FetchPage(ctx, s.CurrentFolderID, 1, s.PageSize, s.SearchTerm)
	return err
}

// Find refreshes the listing and returns the node with the given id.
// It returns common.ErrorNotFound when the fresh listing does not contain it.
func (c *Controller) Find(ctx context.Context, id string) (models.FileNode, error) {
	if err := c.Refresh(ctx); err != nil {
		return models.FileNode{}, err
	}
	if n, ok := c.item(id); ok {
		return n, nil
	}
	return models.FileNode{}, fmt.Errorf("file %s: %w", id, common.ErrorNotFound)
}

// Upload stores blob as a new document under parentID.
func (c *Controller) Upload(ctx context.Context, blob []byte, name, contentType, parentID string) error {
	if err := models.ValidateName(name); err != nil {
		c.setErr(err)
		return err
	}
	draft := NewDraft(blob, name, contentType, parentID)
	return c.mutate(ctx, "upload", true, func(ctx context.Context, user models.User) error {
		_, err := c.files.UploadFile(ctx, user, draft, user.OrganizationID)
		return err
	}, nil)
}

// CreateFolder creates a folder named name under parentID.
func (c *Controller) CreateFolder(ctx context.Context, name, parentID string) error {
	if err := models.ValidateName(name); err != nil {
		c.setErr(err)
		return err
	}
	return c.mutate(ctx, "create folder", true, func(ctx context.Context, user models.User) error {
		_, err := c.files.CreateFolder(ctx, user, parentID, name, user.OrganizationID)
		return err
	}, nil)
}

// Delete removes ids in one backend call. Any backend failure is reported
// as a single error and the cached listing is kept as is.
func (c *Controller) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	ids = append([]string(nil), ids...)
	return c.mutate(ctx, "delete", false, func(ctx context.Context, user models.User) error {
		return c.files.DeleteFile(ctx, user, ids)
	}, c.selection.Clear)
}

// DeleteSelected deletes the current selection.
func (c *Controller) DeleteSelected(ctx context.Context) error {
	return c.Delete(ctx, c.selection.IDs())
}

// Rename renames a single node.
func (c *Controller) Rename(ctx context.Context, id, newName string) error {
	if err := models.ValidateName(newName); err != nil {
		c.setErr(err)
		return err
	}
	return c.mutate(ctx, "rename", false, func(ctx context.Context, user models.User) error {
		return c.files.RenameFile(ctx, user, id, newName)
	}, nil)
}

// ToggleFavorite flips the favorite flag of a listed node.
func (c *Controller) ToggleFavorite(ctx context.Context, id string) error {
	n, ok := c.item(id)
	if !ok {
		err := fmt.Errorf("file %s: %w", id, common.ErrorNotFound)
		c.setErr(err)
		return err
	}
	fav := !n.IsFavorite
	return c.mutate(ctx, "favorite", false, func(ctx context.Context, user models.User) error {
		return c.files.UpdateFile(ctx, user, id, models.FilePatch{IsFavorite: &fav})
	}, nil)
}

// Toggle flips the selection of a listed node. IDs not in the current
// listing are ignored and reported as not selected.
func (c *Controller) Toggle(id string) bool {
	if _, ok := c.item(id); !ok {
		return false
	}
	return c.selection.Toggle(id)
}

// SelectionFacts derives the selection properties from the current listing.
func (c *Controller) SelectionFacts() SelectionFacts {
	ids := c.selection.IDs()

	c.mu.Lock()
	byID := make(map[string]models.FileNode, len(c.state.Items))
	for _, n := range c.state.Items {
		byID[n.ID] = n
	}
	c.mu.Unlock()

	f := SelectionFacts{Count: len(ids)}
	for _, id := range ids {
		if n, ok := byID[id]; ok {
			f.Selected = append(f.Selected, n)
		}
	}
	f.IsSingleSelected = f.Count == 1
	f.IsSingleNonFolderSelected = f.IsSingleSelected && len(f.Selected) == 1 && !f.Selected[0].IsFolder()
	return f
}

// ToggleViewMode switches between grid and list rendering.
func (c *Controller) ToggleViewMode() ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.ViewMode = c.state.ViewMode.Toggle()
	return c.state.ViewMode
}

// mutate runs fn with the loading flag held, then reloads page 1 of the
// current folder. needsOrg gates the call on the user's organization before
// any network traffic.
func (c *Controller) mutate(ctx context.Context, op string, needsOrg bool, fn func(context.Context, models.User) error, onSuccess func()) error {
	user, err := c.users.CurrentUser()
	if err != nil {
		c.setErr(err)
		return err
	}
	if needsOrg && !user.HasOrganization() {
		c.setErr(common.ErrNoOrganization)
		return common.ErrNoOrganization
	}

	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return common.ErrBusy
	}
	c.state.Loading = true
	c.state.Err = nil
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.state.Loading = false
		c.mu.Unlock()
	}()

	if err := fn(ctx, user); err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		c.logger.Error(ctx, "mutation failed", "op", op, "error", err)
		c.setErr(err)
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	c.logger.Info(ctx, "mutation completed", "op", op, "user", user.ID)

	return c.Refresh(ctx)
}

func (c *Controller) item(id string) (models.FileNode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.state.Items {
		if n.ID == id {
			return n, true
		}
	}
	return models.FileNode{}, false
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	c.state.Err = err
	c.mu.Unlock()
}

// setErrIfCurrent records err unless a newer listing was requested.
func (c *Controller) setErrIfCurrent(gen uint64, err error) {
	c.mu.Lock()
	if gen == c.listGen {
		c.state.Err = err
	}
	c.mu.Unlock()
}
