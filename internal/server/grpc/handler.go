package grpc

import (
	"context"

	"github.com/oluccaa/qualidade-sub001/internal/models"
	pb "github.com/oluccaa/qualidade-sub001/internal/proto"
	"github.com/oluccaa/qualidade-sub001/internal/rpc"
	"github.com/oluccaa/qualidade-sub001/internal/server/auth"
	"github.com/oluccaa/qualidade-sub001/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, user, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		s.logger.Info(ctx, "login failed", "email", req.GetEmail())
		return nil, err
	}
	return &pb.LoginResponse{AccessToken: token, User: rpc.UserToPB(*user)}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.Empty) (*pb.UserResponse, error) {
	caller, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.WhoAmI(ctx, caller)
	if err != nil {
		return nil, err
	}
	return &pb.UserResponse{User: rpc.UserToPB(*user)}, nil
}

func (s *GRPCServer) ListFiles(ctx context.Context, req *pb.ListFilesRequest) (*pb.ListFilesResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	page, err := s.files.List(ctx, user, req.GetFolderId(), int(req.GetPage()), int(req.GetPageSize()), req.GetSearch())
	if err != nil {
		return nil, err
	}
	return rpc.PageToPB(page), nil
}

func (s *GRPCServer) Breadcrumbs(ctx context.Context, req *pb.BreadcrumbsRequest) (*pb.BreadcrumbsResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.files.Breadcrumbs(ctx, user, req.GetFolderId())
	if err != nil {
		return nil, err
	}
	return &pb.BreadcrumbsResponse{Items: rpc.BreadcrumbsToPB(items)}, nil
}

func (s *GRPCServer) BeginUpload(ctx context.Context, req *pb.BeginUploadRequest) (*pb.BeginUploadResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	draft, orgID := rpc.DraftFromPB(req)
	node, url, err := s.files.BeginUpload(ctx, user, draft, orgID)
	if err != nil {
		return nil, err
	}
	return &pb.BeginUploadResponse{Node: rpc.NodeToPB(*node), UploadUrl: url}, nil
}

func (s *GRPCServer) CompleteUpload(ctx context.Context, req *pb.IDRequest) (*pb.NodeResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	node, err := s.files.CompleteUpload(ctx, user, req.GetId())
	if err != nil {
		return nil, err
	}
	return &pb.NodeResponse{Node: rpc.NodeToPB(*node)}, nil
}

func (s *GRPCServer) CreateFolder(ctx context.Context, req *pb.CreateFolderRequest) (*pb.NodeResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	node, err := s.files.CreateFolder(ctx, user, req.GetParentId(), req.GetName(), req.GetOrganizationId())
	if err != nil {
		return nil, err
	}
	return &pb.NodeResponse{Node: rpc.NodeToPB(*node)}, nil
}

func (s *GRPCServer) DeleteFiles(ctx context.Context, req *pb.DeleteFilesRequest) (*pb.Empty, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.files.Delete(ctx, user, req.GetIds()); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "nodes deleted", "count", len(req.GetIds()), "by", user.ID)
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RenameFile(ctx context.Context, req *pb.RenameFileRequest) (*pb.Empty, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.files.Rename(ctx, user, req.GetId(), req.GetName()); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) UpdateFile(ctx context.Context, req *pb.UpdateFileRequest) (*pb.Empty, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.files.Update(ctx, user, req.GetId(), rpc.PatchFromPB(req)); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) SignedURL(ctx context.Context, req *pb.IDRequest) (*pb.SignedURLResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.files.SignedURL(ctx, user, req.GetId())
	if err != nil {
		return nil, err
	}
	return &pb.SignedURLResponse{Url: url}, nil
}

func (s *GRPCServer) History(ctx context.Context, req *pb.IDRequest) (*pb.HistoryResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.files.History(ctx, user, req.GetId())
	if err != nil {
		return nil, err
	}
	return &pb.HistoryResponse{Events: rpc.EventsToPB(events)}, nil
}

func (s *GRPCServer) AddNotification(ctx context.Context, req *pb.AddNotificationRequest) (*pb.Empty, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	kind := models.NotificationKind(req.GetKind())
	if _, err := s.notifications.Add(ctx, user, req.GetUserId(), req.GetTitle(), req.GetBody(), kind); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.notifications.List(ctx, user, req.GetUnreadOnly())
	if err != nil {
		return nil, err
	}
	return &pb.ListNotificationsResponse{Items: rpc.NotificationsToPB(items)}, nil
}

func (s *GRPCServer) MarkNotificationRead(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.notifications.MarkRead(ctx, user, req.GetId()); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *pb.Empty) (*pb.ListUsersResponse, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx, user)
	if err != nil {
		return nil, err
	}
	return &pb.ListUsersResponse{Users: rpc.UsersToPB(users)}, nil
}

func (s *GRPCServer) SaveUser(ctx context.Context, req *pb.SaveUserRequest) (*pb.UserResponse, error) {
	actor, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := s.users.SaveUser(ctx, actor, services.UserInput{
		ID:             req.GetId(),
		Name:           req.GetName(),
		Email:          req.GetEmail(),
		Password:       req.GetPassword(),
		Role:           models.Role(req.GetRole()),
		OrganizationID: req.GetOrganizationId(),
	})
	if err != nil {
		return nil, err
	}
	return &pb.UserResponse{User: rpc.UserToPB(*saved)}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	actor, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.DeleteUser(ctx, actor, req.GetId()); err != nil {
		return nil, err
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) ListOrganizations(ctx context.Context, _ *pb.Empty) (*pb.ListOrganizationsResponse, error) {
	actor, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	orgs, err := s.users.ListOrganizations(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &pb.ListOrganizationsResponse{Organizations: rpc.OrganizationsToPB(orgs)}, nil
}

func (s *GRPCServer) SaveOrganization(ctx context.Context, req *pb.SaveOrganizationRequest) (*pb.OrganizationResponse, error) {
	actor, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	org, err := s.users.SaveOrganization(ctx, actor, services.OrganizationInput{
		ID:     req.GetId(),
		Name:   req.GetName(),
		TaxID:  req.GetTaxId(),
		Status: models.OrganizationStatus(req.GetStatus()),
	})
	if err != nil {
		return nil, err
	}
	return &pb.OrganizationResponse{Organization: rpc.OrganizationToPB(*org)}, nil
}
