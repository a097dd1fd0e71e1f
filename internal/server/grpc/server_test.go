package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	pb "github.com/oluccaa/qualidade-sub001/internal/proto"
	"github.com/oluccaa/qualidade-sub001/internal/rpc"
	"github.com/oluccaa/qualidade-sub001/internal/server/auth"
	"github.com/oluccaa/qualidade-sub001/internal/server/services"
)

const secret = "secret"

var carla = models.User{ID: "c1", Name: "Carla", Role: models.RoleClient, OrganizationID: "acme"}

// ---- fakes ----

type fakeFiles struct {
	FileService
	listUser models.User
	listErr  error
	patch    models.FilePatch
}

func (f *fakeFiles) List(_ context.Context, user models.User, folderID string, page, pageSize int, search string) (models.Page, error) {
	f.listUser = user
	if f.listErr != nil {
		return models.Page{}, f.listErr
	}
	return models.Page{
		Items:   []models.FileNode{{ID: "n1", ParentID: folderID, Name: "cert.pdf", Type: models.NodePDF}},
		HasMore: true,
		Total:   page*pageSize + 1,
	}, nil
}

func (f *fakeFiles) Update(_ context.Context, _ models.User, _ string, patch models.FilePatch) error {
	f.patch = patch
	return nil
}

type fakeUsers struct {
	UserService
}

func (fakeUsers) Login(_ context.Context, email, password string) (string, *models.User, error) {
	if email != "carla@acme.io" || password != "pw" {
		return "", nil, common.ErrorUnauthorized
	}
	token, err := auth.GenerateToken(carla, []byte(secret), time.Hour)
	if err != nil {
		return "", nil, err
	}
	u := carla
	return token, &u, nil
}

func (fakeUsers) SaveUser(_ context.Context, _ models.User, in services.UserInput) (*models.User, error) {
	if in.Role == models.RoleClient && in.OrganizationID == "" {
		return nil, common.ErrNoOrganization
	}
	return &models.User{ID: "new", Name: in.Name, Role: in.Role}, nil
}

type fakeNotifications struct {
	NotificationService
}

// ---- helpers ----

func startBufServer(t *testing.T, files *fakeFiles) (pb.PortalClient, *grpc.ClientConn) {
	t.Helper()

	s, err := NewGRPCServer("bufnet", logging.Nop(), files, fakeUsers{}, fakeNotifications{}, secret)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	lis := bufconn.Listen(1 << 20)
	srv := s.NewServer()
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewPortalClient(conn), conn
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}

// ---- tests ----

func TestRoundTrip_PublicAndAuthenticatedCalls(t *testing.T) {
	files := &fakeFiles{}
	client, _ := startBufServer(t, files)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := client.Ping(ctx, &pb.Empty{})
	if err != nil || pong.Status != "OK" {
		t.Fatalf("Ping: %v %+v", err, pong)
	}

	_, err = client.ListFiles(ctx, &pb.ListFilesRequest{Page: 1, PageSize: 10})
	if !errors.Is(rpc.FromStatus(err), common.ErrorUnauthorized) {
		t.Fatalf("expected unauthorized without token, got %v", err)
	}

	login, err := client.Login(ctx, &pb.LoginRequest{Email: "carla@acme.io", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.GetUser().GetId() != "c1" || login.GetAccessToken() == "" {
		t.Fatalf("unexpected login response: %+v", login)
	}

	resp, err := client.ListFiles(withToken(ctx, login.GetAccessToken()), &pb.ListFilesRequest{FolderId: "f1", Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	page := rpc.PageFromPB(resp)
	if len(page.Items) != 1 || page.Items[0].ParentID != "f1" || !page.HasMore || page.Total != 21 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if files.listUser.ID != "c1" || files.listUser.OrganizationID != "acme" {
		t.Fatalf("handler did not receive the token holder: %+v", files.listUser)
	}
}

func TestRoundTrip_PatchKeepsPresence(t *testing.T) {
	files := &fakeFiles{}
	client, _ := startBufServer(t, files)
	token, _ := auth.GenerateToken(carla, []byte(secret), time.Hour)
	ctx := withToken(context.Background(), token)

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	fav := true
	_, err := client.UpdateFile(ctx, rpc.PatchToPB("n1", models.FilePatch{
		IsFavorite: &fav,
		Metadata: &models.SteelBatchMetadata{
			Status: models.StatusApproved, InspectedAt: &at, InspectedBy: "Quinn",
			ChemicalComposition: map[string]float64{"C": 0.18},
		},
	}))
	if err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	if files.patch.Name != nil || files.patch.IsFavorite == nil || !*files.patch.IsFavorite {
		t.Fatalf("unexpected patch: %+v", files.patch)
	}
	if m := files.patch.Metadata; m == nil || !m.InspectedAt.Equal(at) || m.ChemicalComposition["C"] != 0.18 {
		t.Fatalf("metadata not decoded: %+v", files.patch.Metadata)
	}
}

func TestRoundTrip_ErrorMapping(t *testing.T) {
	files := &fakeFiles{}
	client, _ := startBufServer(t, files)
	token, _ := auth.GenerateToken(carla, []byte(secret), time.Hour)
	ctx := withToken(context.Background(), token)

	files.listErr = common.ErrNoOrganization
	_, err := client.ListFiles(ctx, &pb.ListFilesRequest{Page: 1, PageSize: 10})
	if status.Code(err) != codes.FailedPrecondition || !errors.Is(rpc.FromStatus(err), common.ErrNoOrganization) {
		t.Fatalf("expected no-organization, got %v", err)
	}

	files.listErr = errors.New("pq: connection reset")
	_, err = client.ListFiles(ctx, &pb.ListFilesRequest{Page: 1, PageSize: 10})
	if status.Code(err) != codes.Internal || status.Convert(err).Message() != common.ErrorInternal.Error() {
		t.Fatalf("expected opaque internal error, got %v", err)
	}

	_, err = client.SaveUser(ctx, &pb.SaveUserRequest{Name: "x", Role: string(models.RoleClient)})
	if !errors.Is(rpc.FromStatus(err), common.ErrNoOrganization) {
		t.Fatalf("expected no-organization from SaveUser, got %v", err)
	}

	_, err = client.Login(context.Background(), &pb.LoginRequest{Email: "carla@acme.io", Password: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestRoundTrip_ExpiredToken(t *testing.T) {
	client, _ := startBufServer(t, &fakeFiles{})
	token, _ := auth.GenerateToken(carla, []byte(secret), -time.Minute)

	_, err := client.WhoAmI(withToken(context.Background(), token), &pb.Empty{})
	if !errors.Is(rpc.FromStatus(err), common.ErrTokenExpired) {
		t.Fatalf("expected token expired, got %v", err)
	}
}

func TestHealthService(t *testing.T) {
	_, conn := startBufServer(t, &fakeFiles{})

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: rpc.ServiceName})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("unexpected health status: %v", resp.GetStatus())
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", logging.Nop(), &fakeFiles{}, fakeUsers{}, fakeNotifications{}, secret)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.Nop(), &fakeFiles{}, fakeUsers{}, fakeNotifications{}, secret)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
