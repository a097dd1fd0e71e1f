package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/nodes"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/notifications"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/organizations"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeRepoManager struct {
	nodes         *fakeNodesRepo
	users         *fakeUsersRepo
	organizations *fakeOrgsRepo
	notifications *fakeNotificationsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		nodes:         &fakeNodesRepo{nodes: map[string]*srvmodels.StoredNode{}, favorites: map[string]bool{}},
		users:         &fakeUsersRepo{accounts: map[string]*srvmodels.Account{}},
		organizations: &fakeOrgsRepo{orgs: map[string]models.Organization{}},
		notifications: &fakeNotificationsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository { return m.users }
func (m *fakeRepoManager) Organizations(dbx.DBTX) organizations.Repository { return m.organizations }
func (m *fakeRepoManager) Nodes(dbx.DBTX) nodes.Repository { return m.nodes }
func (m *fakeRepoManager) Notifications(dbx.DBTX) notifications.Repository { return m.notifications }

// --- nodes ---

type fakeNodesRepo struct {
	mu        sync.Mutex
	nodes     map[string]*srvmodels.StoredNode
	favorites map[string]bool // user|node
	events    []models.InspectionEvent

	updateMetadataErr error
}

func (f *fakeNodesRepo) add(n models.FileNode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := n
	f.nodes[n.ID] = &srvmodels.StoredNode{FileNode: cp}
}

func (f *fakeNodesRepo) Insert(_ context.Context, n *srvmodels.StoredNode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	for _, o := range f.nodes {
		if o.ParentID == n.ParentID && strings.EqualFold(o.Name, n.Name) {
			return fmt.Errorf("insert node: %w", common.ErrorAlreadyExists)
		}
	}
	n.UpdatedAt = time.Now()
	cp := *n
	f.nodes[n.ID] = &cp
	return nil
}

func (f *fakeNodesRepo) Get(_ context.Context, id, viewerID string) (*models.FileNode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nodes[id]
	if !ok || n.UploadPending {
		return nil, fmt.Errorf("get node: %w", common.ErrorNotFound)
	}
	out := n.FileNode
	out.IsFavorite = f.favorites[viewerID+"|"+id]
	return &out, nil
}

func (f *fakeNodesRepo) GetPending(_ context.Context, id string) (*srvmodels.StoredNode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nodes[id]
	if !ok || !n.UploadPending {
		return nil, fmt.Errorf("get pending node: %w", common.ErrorNotFound)
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNodesRepo) MarkUploaded(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nodes[id]
	if !ok || !n.UploadPending {
		return fmt.Errorf("mark uploaded: %w", common.ErrorNotFound)
	}
	n.UploadPending = false
	return nil
}

func (f *fakeNodesRepo) List(_ context.Context, q srvmodels.NodeQuery) ([]models.FileNode, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.FileNode
	for _, n := range f.nodes {
		if n.UploadPending || n.ParentID != q.ParentID {
			continue
		}
		if q.OrganizationID != "" && n.OrganizationID != q.OrganizationID {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(n.Name), strings.ToLower(strings.TrimSpace(q.Search))) {
			continue
		}
		item := n.FileNode
		item.IsFavorite = f.favorites[q.ViewerID+"|"+n.ID]
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := len(all)
	if q.Offset >= total {
		return nil, total, nil
	}
	end := q.Offset + q.Limit
	if end > total {
		end = total
	}
	return all[q.Offset:end], total, nil
}

func (f *fakeNodesRepo) Ancestors(_ context.Context, id string) ([]models.BreadcrumbItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var path []models.BreadcrumbItem
	for cur := id; cur != models.RootID; {
		n, ok := f.nodes[cur]
		if !ok {
			return nil, fmt.Errorf("ancestors: %w", common.ErrorNotFound)
		}
		path = append([]models.BreadcrumbItem{{ID: n.ID, Name: n.Name}}, path...)
		cur = n.ParentID
	}
	return path, nil
}

func (f *fakeNodesRepo) Rename(_ context.Context, id, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.nodes[id]
	if !ok {
		return fmt.Errorf("rename node: %w", common.ErrorNotFound)
	}
	n.Name = name
	return nil
}

func (f *fakeNodesRepo) UpdateMetadata(_ context.Context, id string, meta *models.SteelBatchMetadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateMetadataErr != nil {
		return f.updateMetadataErr
	}
	n, ok := f.nodes[id]
	if !ok {
		return fmt.Errorf("update metadata: %w", common.ErrorNotFound)
	}
	cp := meta.Clone()
	n.Metadata = &cp
	return nil
}

func (f *fakeNodesRepo) InsertInspectionEvent(_ context.Context, e *models.InspectionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.CreatedAt = time.Now()
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeNodesRepo) ListInspectionEvents(_ context.Context, nodeID string) ([]models.InspectionEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.InspectionEvent
	for _, e := range f.events {
		if e.NodeID == nodeID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeNodesRepo) DeleteTree(_ context.Context, id string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.nodes[id]; !ok {
		return nil, fmt.Errorf("delete tree: %w", common.ErrorNotFound)
	}
	var paths []string
	var walk func(string)
	walk = func(cur string) {
		for cid, c := range f.nodes {
			if c.ParentID == cur {
				walk(cid)
			}
		}
		if p := f.nodes[cur].StoragePath; p != "" {
			paths = append(paths, p)
		}
		delete(f.nodes, cur)
	}
	walk(id)
	sort.Strings(paths)
	return paths, nil
}

func (f *fakeNodesRepo) SetFavorite(_ context.Context, userID, nodeID string, favorite bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites[userID+"|"+nodeID] = favorite
	return nil
}

func (f *fakeNodesRepo) exists(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.nodes[id]
	return ok
}

// --- users ---

type fakeUsersRepo struct {
	accounts map[string]*srvmodels.Account

	lastUpdateHash *string
	updates        int
}

func (f *fakeUsersRepo) Create(_ context.Context, a *srvmodels.Account) error {
	for _, o := range f.accounts {
		if strings.EqualFold(o.Email, a.Email) {
			return fmt.Errorf("create user: %w", common.ErrorAlreadyExists)
		}
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	cp := *a
	f.accounts[a.ID] = &cp
	return nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*srvmodels.Account, error) {
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", common.ErrorNotFound)
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", common.ErrorNotFound)
	}
	u := a.User
	return &u, nil
}

func (f *fakeUsersRepo) List(context.Context) ([]models.User, error) {
	var out []models.User
	for _, a := range f.accounts {
		out = append(out, a.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeUsersRepo) Update(_ context.Context, u *models.User, hash *string) error {
	a, ok := f.accounts[u.ID]
	if !ok {
		return fmt.Errorf("update user: %w", common.ErrorNotFound)
	}
	f.updates++
	f.lastUpdateHash = hash
	a.User = *u
	if hash != nil {
		a.PasswordHash = *hash
	}
	return nil
}

func (f *fakeUsersRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return fmt.Errorf("delete user: %w", common.ErrorNotFound)
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeUsersRepo) CountByRole(_ context.Context, role models.Role) (int, error) {
	n := 0
	for _, a := range f.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

// --- organizations ---

type fakeOrgsRepo struct {
	orgs map[string]models.Organization
}

func (f *fakeOrgsRepo) Create(_ context.Context, o *models.Organization) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	f.orgs[o.ID] = *o
	return nil
}

func (f *fakeOrgsRepo) Get(_ context.Context, id string) (*models.Organization, error) {
	o, ok := f.orgs[id]
	if !ok {
		return nil, fmt.Errorf("get organization: %w", common.ErrorNotFound)
	}
	return &o, nil
}

func (f *fakeOrgsRepo) List(context.Context) ([]models.Organization, error) {
	var out []models.Organization
	for _, o := range f.orgs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeOrgsRepo) Update(_ context.Context, o *models.Organization) error {
	if _, ok := f.orgs[o.ID]; !ok {
		return fmt.Errorf("update organization: %w", common.ErrorNotFound)
	}
	f.orgs[o.ID] = *o
	return nil
}

// --- notifications ---

type fakeNotificationsRepo struct {
	items []models.Notification
}

func (f *fakeNotificationsRepo) Insert(_ context.Context, n *models.Notification) error {
	n.ID = uuid.NewString()
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNotificationsRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.items {
		if n.UserID == userID && (!unreadOnly || !n.Read) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationsRepo) MarkRead(_ context.Context, id, userID string) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("mark notification read: %w", common.ErrorNotFound)
}

// --- blobs ---

type fakeBlobs struct {
	mu        sync.Mutex
	puts      []string
	deleted   []string
	deleteErr map[string]error
}

func (f *fakeBlobs) PresignPut(_ context.Context, key, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, key)
	return "https://blobs/put/" + key, nil
}

func (f *fakeBlobs) PresignGet(_ context.Context, key, filename string) (string, error) {
	return "https://blobs/get/" + key + "?name=" + filename, nil
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return f.deleteErr[key]
}
