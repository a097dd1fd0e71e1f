// Package grpc exposes the portal services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	pb "github.com/oluccaa/qualidade-sub001/internal/proto"
	"github.com/oluccaa/qualidade-sub001/internal/rpc"
	"github.com/oluccaa/qualidade-sub001/internal/server/services"
)

// FileService is the library tree as used by the handlers.
type FileService interface {
	List(ctx context.Context, user models.User, folderID string, page, pageSize int, search string) (models.Page, error)
	Breadcrumbs(ctx context.Context, user models.User, folderID string) ([]models.BreadcrumbItem, error)
	BeginUpload(ctx context.Context, user models.User, draft models.FileDraft, orgID string) (*models.FileNode, string, error)
	CompleteUpload(ctx context.Context, user models.User, id string) (*models.FileNode, error)
	CreateFolder(ctx context.Context, user models.User, parentID, name, orgID string) (*models.FileNode, error)
	Delete(ctx context.Context, user models.User, ids []string) error
	Rename(ctx context.Context, user models.User, id, name string) error
	Update(ctx context.Context, user models.User, id string, patch models.FilePatch) error
	SignedURL(ctx context.Context, user models.User, id string) (string, error)
	History(ctx context.Context, user models.User, id string) ([]models.InspectionEvent, error)
}

type UserService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	WhoAmI(ctx context.Context, user models.User) (*models.User, error)
	ListUsers(ctx context.Context, actor models.User) ([]models.User, error)
	SaveUser(ctx context.Context, actor models.User, in services.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, actor models.User, id string) error
	ListOrganizations(ctx context.Context, actor models.User) ([]models.Organization, error)
	SaveOrganization(ctx context.Context, actor models.User, in services.OrganizationInput) (*models.Organization, error)
}

type NotificationService interface {
	Add(ctx context.Context, sender models.User, target, title, body string, kind models.NotificationKind) (*models.Notification, error)
	List(ctx context.Context, user models.User, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, user models.User, id string) error
}

type GRPCServer struct {
	pb.UnimplementedPortalServer
	address       string
	files         FileService
	users         UserService
	notifications NotificationService
	logger        logging.Logger
	jwtSecret     []byte
	health        *health.Server
}

func NewGRPCServer(a string, l logging.Logger, fs FileService, us UserService, ns NotificationService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		files:         fs,
		users:         us,
		notifications: ns,
		jwtSecret:     []byte(secretKey),
		health:        health.NewServer(),
	}, nil
}

// NewServer builds a grpc.Server with the portal and health services
// registered behind the metrics, error-mapping and auth interceptors.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.errorInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterPortalServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(10 * time.Second):
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
