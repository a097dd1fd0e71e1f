package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/oluccaa/qualidade-sub001/internal/client/admin"
	"github.com/oluccaa/qualidade-sub001/internal/client/session"
	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/netx"
	pb "github.com/oluccaa/qualidade-sub001/internal/proto"
	"github.com/oluccaa/qualidade-sub001/internal/rpc"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	session     *session.Session
	logger      logging.Logger
	httpClient  *http.Client
	dialOptions []grpc.DialOption

	conn   *grpc.ClientConn
	client pb.PortalClient
}

// Option configures a GRPCClient.
type Option func(*GRPCClient)

// WithHTTPClient sets the client used for presigned uploads.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *GRPCClient) { c.httpClient = hc }
}

// WithDialOptions appends extra grpc dial options.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOptions = append(c.dialOptions, opts...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *GRPCClient) { c.logger = l }
}

// NewGRPCClient connects lazily to endpointURL. Every call is bounded by
// timeout and carries the access token currently held by sess.
func NewGRPCClient(endpointURL string, sess *session.Session, timeout time.Duration, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		timeout:     timeout,
		session:     sess,
		logger:      logging.Nop(),
		httpClient:  http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.With("module", "grpc_client")

	dial := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, c.dialOptions...)

	conn, err := grpc.NewClient(endpointURL, dial...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewPortalClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor applies the request timeout, attaches the session
// token and signs the session out when the server reports it expired.
func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if token := c.session.Token(); token != "" && !rpc.PublicMethods[method] {
		ctx = withAccessToken(ctx, token)
	}

	err := mapError(invoker(ctx, method, req, reply, cc, opts...))
	if errors.Is(err, common.ErrTokenExpired) {
		c.logger.Info(ctx, "session expired", "method", method)
		c.session.SignOut()
	}
	return err
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Login authenticates and stores the user and token in the session.
func (c *GRPCClient) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}
	user := rpc.UserFromPB(resp.GetUser())
	c.session.SignIn(user, resp.GetAccessToken())
	return user, nil
}

// Logout forgets the session. Tokens are stateless so the server is not
// involved.
func (c *GRPCClient) Logout() {
	c.session.SignOut()
}

func (c *GRPCClient) WhoAmI(ctx context.Context) (models.User, error) {
	resp, err := c.client.WhoAmI(ctx, &pb.Empty{})
	if err != nil {
		return models.User{}, err
	}
	return rpc.UserFromPB(resp.GetUser()), nil
}

// ---- files ----

func (c *GRPCClient) GetFiles(ctx context.Context, _ models.User, folderID string, page, pageSize int, search string) (models.Page, error) {
	resp, err := c.client.ListFiles(ctx, &pb.ListFilesRequest{
		FolderId: folderID,
		Page:     int32(page),
		PageSize: int32(pageSize),
		Search:   search,
	})
	if err != nil {
		return models.Page{}, err
	}
	return rpc.PageFromPB(resp), nil
}

func (c *GRPCClient) GetBreadcrumbs(ctx context.Context, folderID string) ([]models.BreadcrumbItem, error) {
	resp, err := c.client.Breadcrumbs(ctx, &pb.BreadcrumbsRequest{FolderId: folderID})
	if err != nil {
		return nil, err
	}
	return rpc.BreadcrumbsFromPB(resp.GetItems()), nil
}

// UploadFile registers the document, sends the blob to the presigned URL
// and confirms the upload. A failed transfer leaves a pending node that is
// never listed.
func (c *GRPCClient) UploadFile(ctx context.Context, _ models.User, draft models.FileDraft, orgID string) (*models.FileNode, error) {
	begin, err := c.client.BeginUpload(ctx, rpc.DraftToPB(draft, orgID))
	if err != nil {
		return nil, err
	}
	nodeID := begin.GetNode().GetId()

	putCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		putCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := netx.PutPresigned(putCtx, c.httpClient, begin.GetUploadUrl(), draft.MimeType, draft.Blob); err != nil {
		c.logger.Error(ctx, "blob upload failed", "node", nodeID, "error", err)
		return nil, fmt.Errorf("upload %s: %w", draft.Name, err)
	}

	done, err := c.client.CompleteUpload(ctx, &pb.IDRequest{Id: nodeID})
	if err != nil {
		return nil, err
	}
	node := rpc.NodeFromPB(done.GetNode())
	return &node, nil
}

func (c *GRPCClient) CreateFolder(ctx context.Context, _ models.User, parentID, name, orgID string) (*models.FileNode, error) {
	resp, err := c.client.CreateFolder(ctx, &pb.CreateFolderRequest{ParentId: parentID, Name: name, OrganizationId: orgID})
	if err != nil {
		return nil, err
	}
	node := rpc.NodeFromPB(resp.GetNode())
	return &node, nil
}

func (c *GRPCClient) DeleteFile(ctx context.Context, _ models.User, ids []string) error {
	_, err := c.client.DeleteFiles(ctx, &pb.DeleteFilesRequest{Ids: ids})
	return err
}

func (c *GRPCClient) RenameFile(ctx context.Context, _ models.User, id, name string) error {
	_, err := c.client.RenameFile(ctx, &pb.RenameFileRequest{Id: id, Name: name})
	return err
}

func (c *GRPCClient) UpdateFile(ctx context.Context, _ models.User, id string, patch models.FilePatch) error {
	_, err := c.client.UpdateFile(ctx, rpc.PatchToPB(id, patch))
	return err
}

func (c *GRPCClient) GetFileSignedURL(ctx context.Context, _ models.User, id string) (string, error) {
	resp, err := c.client.SignedURL(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return "", err
	}
	return resp.GetUrl(), nil
}

func (c *GRPCClient) History(ctx context.Context, id string) ([]models.InspectionEvent, error) {
	resp, err := c.client.History(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return rpc.EventsFromPB(resp.GetEvents()), nil
}

// ---- notifications ----

func (c *GRPCClient) AddNotification(ctx context.Context, _ models.User, targetUserID, title, body string, kind models.NotificationKind) error {
	_, err := c.client.AddNotification(ctx, &pb.AddNotificationRequest{
		UserId: targetUserID,
		Title:  title,
		Body:   body,
		Kind:   string(kind),
	})
	return err
}

func (c *GRPCClient) ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	resp, err := c.client.ListNotifications(ctx, &pb.ListNotificationsRequest{UnreadOnly: unreadOnly})
	if err != nil {
		return nil, err
	}
	return rpc.NotificationsFromPB(resp.GetItems()), nil
}

func (c *GRPCClient) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := c.client.MarkNotificationRead(ctx, &pb.IDRequest{Id: id})
	return err
}

// ---- admin ----

func (c *GRPCClient) ListUsers(ctx context.Context, _ models.User) ([]models.User, error) {
	resp, err := c.client.ListUsers(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return rpc.UsersFromPB(resp.GetUsers()), nil
}

func (c *GRPCClient) SaveUser(ctx context.Context, _ models.User, form admin.UserFormData) (models.User, error) {
	resp, err := c.client.SaveUser(ctx, &pb.SaveUserRequest{
		Id:             form.ID,
		Name:           form.Name,
		Email:          form.Email,
		Password:       form.Password,
		Role:           string(form.Role),
		OrganizationId: form.OrganizationID,
	})
	if err != nil {
		return models.User{}, err
	}
	return rpc.UserFromPB(resp.GetUser()), nil
}

func (c *GRPCClient) DeleteUser(ctx context.Context, _ models.User, id string) error {
	_, err := c.client.DeleteUser(ctx, &pb.IDRequest{Id: id})
	return err
}

func (c *GRPCClient) ListOrganizations(ctx context.Context, _ models.User) ([]models.Organization, error) {
	resp, err := c.client.ListOrganizations(ctx, &pb.Empty{})
	if err != nil {
		return nil, err
	}
	return rpc.OrganizationsFromPB(resp.GetOrganizations()), nil
}

func (c *GRPCClient) SaveOrganization(ctx context.Context, _ models.User, form admin.ClientFormData) (models.Organization, error) {
	resp, err := c.client.SaveOrganization(ctx, &pb.SaveOrganizationRequest{
		Id:     form.ID,
		Name:   form.Name,
		TaxId:  form.TaxID,
		Status: string(form.Status),
	})
	if err != nil {
		return models.Organization{}, err
	}
	return rpc.OrganizationFromPB(resp.GetOrganization()), nil
}
