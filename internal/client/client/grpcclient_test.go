package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oluccaa/qualidade-sub001/internal/client/admin"
	"github.com/oluccaa/qualidade-sub001/internal/client/cli"
	"github.com/oluccaa/qualidade-sub001/internal/client/session"
	"github.com/oluccaa/qualidade-sub001/internal/client/tui"
	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/explorer"
	"github.com/oluccaa/qualidade-sub001/internal/inspection"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	pb "github.com/oluccaa/qualidade-sub001/internal/proto"
	"github.com/oluccaa/qualidade-sub001/internal/rpc"
	"github.com/oluccaa/qualidade-sub001/internal/viewer"
)

var (
	_ explorer.FileService  = (*GRPCClient)(nil)
	_ inspection.Persister  = (*GRPCClient)(nil)
	_ inspection.Notifier   = (*GRPCClient)(nil)
	_ viewer.URLResolver    = (*GRPCClient)(nil)
	_ admin.Service         = (*GRPCClient)(nil)
	_ explorer.UserProvider = (*session.Session)(nil)
	_ cli.Backend           = (*GRPCClient)(nil)
	_ tui.Backend           = (*GRPCClient)(nil)
)

/*************
 * Fake portal server
 *************/

type fakePortal struct {
	pb.UnimplementedPortalServer

	mu         sync.Mutex
	tokens     []string
	uploadURL  string
	completed  string
	patch      models.FilePatch
	listErr    error
	expireNext bool
}

func (f *fakePortal) record(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, md.Get(common.AccessTokenHeaderName)...)
}

func (f *fakePortal) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (f *fakePortal) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	f.record(ctx)
	if req.GetPassword() != "pw" {
		return nil, rpc.ToStatus(common.ErrorUnauthorized)
	}
	return &pb.LoginResponse{
		AccessToken: "tok-1",
		User:        &pb.User{Id: "q1", Name: "Quinn", Role: string(models.RoleQuality)},
	}, nil
}

func (f *fakePortal) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {
	f.record(ctx)
	if f.expireNext {
		return nil, rpc.ToStatus(common.ErrTokenExpired)
	}
	if f.listErr != nil {
		return nil, rpc.ToStatus(f.listErr)
	}
	return &pb.ListFilesResponse{
		Items: []*pb.FileNode{{Id: "a", ParentId: req.GetFolderId(), Name: req.GetSearch(), Type: string(models.NodePDF)}},
		Total: req.GetPage() * req.GetPageSize(),
	}, nil
}

func (f *fakePortal) BeginUpload(ctx context.Context, req *pb.BeginUploadRequest) (*pb.BeginUploadResponse, error) {
	f.record(ctx)
	return &pb.BeginUploadResponse{
		Node:      &pb.FileNode{Id: "n-up", ParentId: req.GetParentId(), Name: req.GetName(), Type: req.GetType()},
		UploadUrl: f.uploadURL,
	}, nil
}

func (f *fakePortal) CompleteUpload(ctx context.Context, req *pb.IDRequest) (*pb.NodeResponse, error) {
	f.record(ctx)
	f.mu.Lock()
	f.completed = req.GetId()
	f.mu.Unlock()
	return &pb.NodeResponse{Node: &pb.FileNode{Id: req.GetId(), Name: "cert.pdf", Type: string(models.NodePDF)}}, nil
}

func (f *fakePortal) UpdateFile(ctx context.Context, req *pb.UpdateFileRequest) (*pb.Empty, error) {
	f.record(ctx)
	f.patch = rpc.PatchFromPB(req)
	return &pb.Empty{}, nil
}

func (f *fakePortal) SaveUser(ctx context.Context, req *pb.SaveUserRequest) (*pb.UserResponse, error) {
	f.record(ctx)
	return &pb.UserResponse{User: &pb.User{
		Id:             "u-new",
		Name:           req.GetName(),
		Email:          req.GetEmail(),
		Role:           req.GetRole(),
		OrganizationId: req.GetOrganizationId(),
	}}, nil
}

/*************
 * Helpers
 *************/

func newTestClient(t *testing.T, srv *fakePortal, opts ...Option) (*GRPCClient, *session.Session) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterPortalServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	sess := session.New()
	opts = append(opts, WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})))
	c, err := NewGRPCClient("passthrough:///bufnet", sess, 2*time.Second, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, sess
}

/*************
 * Tests
 *************/

func TestLogin_StoresSessionAndSendsToken(t *testing.T) {
	srv := &fakePortal{}
	c, sess := newTestClient(t, srv)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, err := c.Login(ctx, "q@steel.io", "bad")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, sess.SignedIn())

	u, err := c.Login(ctx, "q@steel.io", "pw")
	require.NoError(t, err)
	assert.Equal(t, "q1", u.ID)
	assert.Equal(t, "tok-1", sess.Token())

	page, err := c.GetFiles(ctx, u, "folder-1", 2, 10, "C-22")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "folder-1", page.Items[0].ParentID)
	assert.Equal(t, "C-22", page.Items[0].Name)
	assert.Equal(t, 20, page.Total)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Equal(t, []string{"tok-1"}, srv.tokens, "login must not carry a token, later calls must")
}

func TestErrorsMapToSentinels(t *testing.T) {
	srv := &fakePortal{listErr: common.ErrorForbidden}
	c, sess := newTestClient(t, srv)
	sess.SignIn(models.User{ID: "c1"}, "tok")

	_, err := c.GetFiles(context.Background(), models.User{}, "", 1, 10, "")
	require.ErrorIs(t, err, common.ErrorForbidden)

	srv.listErr = nil
	srv.expireNext = true
	_, err = c.GetFiles(context.Background(), models.User{}, "", 1, 10, "")
	require.ErrorIs(t, err, common.ErrTokenExpired)
	assert.False(t, sess.SignedIn(), "an expired token signs the session out")
}

func TestMapError_Unavailable(t *testing.T) {
	err := mapError(status.Error(codes.Unavailable, "connection refused"))
	require.ErrorIs(t, err, ErrUnavailable)

	err = mapError(status.Error(codes.DeadlineExceeded, "slow"))
	require.ErrorIs(t, err, ErrUnavailable)

	plain := errors.New("boom")
	assert.Same(t, plain, mapError(plain))
	assert.NoError(t, mapError(nil))
}

func TestUploadFile_ThreeSteps(t *testing.T) {
	var gotBody []byte
	var gotCT string
	blobs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer blobs.Close()

	srv := &fakePortal{uploadURL: blobs.URL + "/acme/cert.pdf"}
	c, sess := newTestClient(t, srv, WithHTTPClient(blobs.Client()))
	sess.SignIn(models.User{ID: "q1"}, "tok")

	draft := explorer.NewDraft([]byte("%PDF-1.7"), "cert.pdf", "", "folder-1")
	node, err := c.UploadFile(context.Background(), models.User{}, draft, "acme")
	require.NoError(t, err)

	assert.Equal(t, "n-up", node.ID)
	assert.Equal(t, "n-up", srv.completed)
	assert.Equal(t, "application/pdf", gotCT)
	assert.Equal(t, "%PDF-1.7", string(gotBody))
}

func TestUploadFile_FailedTransferIsNotCompleted(t *testing.T) {
	blobs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer blobs.Close()

	srv := &fakePortal{uploadURL: blobs.URL}
	c, sess := newTestClient(t, srv)
	sess.SignIn(models.User{ID: "q1"}, "tok")

	_, err := c.UploadFile(context.Background(), models.User{}, models.FileDraft{Name: "x.pdf", MimeType: "application/pdf"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload x.pdf")
	assert.Empty(t, srv.completed)
}

func TestUpdateFile_SendsPatch(t *testing.T) {
	srv := &fakePortal{}
	c, sess := newTestClient(t, srv)
	sess.SignIn(models.User{ID: "q1"}, "tok")

	name := "renamed.pdf"
	require.NoError(t, c.UpdateFile(context.Background(), models.User{}, "n1", models.FilePatch{Name: &name}))
	require.NotNil(t, srv.patch.Name)
	assert.Equal(t, "renamed.pdf", *srv.patch.Name)
	assert.Nil(t, srv.patch.Metadata)
}

func TestSaveUser_FromForm(t *testing.T) {
	srv := &fakePortal{}
	c, sess := newTestClient(t, srv)
	sess.SignIn(models.User{ID: "a1", Role: models.RoleAdmin}, "tok")

	u, err := c.SaveUser(context.Background(), models.User{}, admin.UserFormData{
		Name: "Carla", Email: "carla@acme.io", Password: "longenough", Role: models.RoleClient, OrganizationID: "acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-new", u.ID)
	assert.Equal(t, "acme", u.OrganizationID)
}
