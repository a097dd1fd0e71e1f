package rpc

import (
	"sort"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oluccaa/qualidade-sub001/internal/models"
	pb "github.com/oluccaa/qualidade-sub001/internal/proto"
)

func mapSlice[A, B any](in []A, f func(A) B) []B {
	if in == nil {
		return nil
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func timeToPB(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func UserToPB(u models.User) *pb.User {
	return &pb.User{
		Id:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		OrganizationId: u.OrganizationID,
		Role:           string(u.Role),
		CreatedAt:      timeToPB(u.CreatedAt),
	}
}

func UserFromPB(u *pb.User) models.User {
	return models.User{
		ID:             u.GetId(),
		Name:           u.GetName(),
		Email:          u.GetEmail(),
		OrganizationID: u.GetOrganizationId(),
		Role:           models.Role(u.GetRole()),
		CreatedAt:      timeFromPB(u.GetCreatedAt()),
	}
}

func UsersToPB(in []models.User) []*pb.User   { return mapSlice(in, UserToPB) }
func UsersFromPB(in []*pb.User) []models.User { return mapSlice(in, UserFromPB) }

func OrganizationToPB(o models.Organization) *pb.Organization {
	return &pb.Organization{
		Id:        o.ID,
		Name:      o.Name,
		TaxId:     o.TaxID,
		Status:    string(o.Status),
		CreatedAt: timeToPB(o.CreatedAt),
	}
}

func OrganizationFromPB(o *pb.Organization) models.Organization {
	return models.Organization{
		ID:        o.GetId(),
		Name:      o.GetName(),
		TaxID:     o.GetTaxId(),
		Status:    models.OrganizationStatus(o.GetStatus()),
		CreatedAt: timeFromPB(o.GetCreatedAt()),
	}
}

func OrganizationsToPB(in []models.Organization) []*pb.Organization {
	return mapSlice(in, OrganizationToPB)
}

func OrganizationsFromPB(in []*pb.Organization) []models.Organization {
	return mapSlice(in, OrganizationFromPB)
}

// measurementsToPB orders the values by name so the encoding is stable.
func measurementsToPB(in map[string]float64) []*pb.Measurement {
	if len(in) == 0 {
		return nil
	}
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*pb.Measurement, len(names))
	for i, name := range names {
		out[i] = &pb.Measurement{Name: name, Value: in[name]}
	}
	return out
}

func measurementsFromPB(in []*pb.Measurement) map[string]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]float64, len(in))
	for _, m := range in {
		out[m.GetName()] = m.GetValue()
	}
	return out
}

// MetadataToPB returns nil for a nil record.
func MetadataToPB(m *models.SteelBatchMetadata) *pb.SteelBatchMetadata {
	if m == nil {
		return nil
	}
	out := &pb.SteelBatchMetadata{
		BatchNumber:          m.BatchNumber,
		Grade:                m.Grade,
		InvoiceNumber:        m.InvoiceNumber,
		Status:               string(m.Status),
		RejectionReason:      m.RejectionReason,
		InspectedBy:          m.InspectedBy,
		ChemicalComposition:  measurementsToPB(m.ChemicalComposition),
		MechanicalProperties: measurementsToPB(m.MechanicalProperties),
	}
	if m.InspectedAt != nil {
		out.InspectedAt = timestamppb.New(*m.InspectedAt)
	}
	return out
}

func MetadataFromPB(m *pb.SteelBatchMetadata) *models.SteelBatchMetadata {
	if m == nil {
		return nil
	}
	out := &models.SteelBatchMetadata{
		BatchNumber:          m.GetBatchNumber(),
		Grade:                m.GetGrade(),
		InvoiceNumber:        m.GetInvoiceNumber(),
		Status:               models.InspectionStatus(m.GetStatus()),
		RejectionReason:      m.GetRejectionReason(),
		InspectedBy:          m.GetInspectedBy(),
		ChemicalComposition:  measurementsFromPB(m.GetChemicalComposition()),
		MechanicalProperties: measurementsFromPB(m.GetMechanicalProperties()),
	}
	if ts := m.GetInspectedAt(); ts != nil {
		at := ts.AsTime()
		out.InspectedAt = &at
	}
	return out
}

func NodeToPB(n models.FileNode) *pb.FileNode {
	return &pb.FileNode{
		Id:             n.ID,
		ParentId:       n.ParentID,
		Name:           n.Name,
		Type:           string(n.Type),
		Size:           n.Size,
		MimeType:       n.MimeType,
		UpdatedAt:      timeToPB(n.UpdatedAt),
		OwnerId:        n.OwnerID,
		OrganizationId: n.OrganizationID,
		StoragePath:    n.StoragePath,
		IsFavorite:     n.IsFavorite,
		Metadata:       MetadataToPB(n.Metadata),
	}
}

func NodeFromPB(n *pb.FileNode) models.FileNode {
	return models.FileNode{
		ID:             n.GetId(),
		ParentID:       n.GetParentId(),
		Name:           n.GetName(),
		Type:           models.NodeType(n.GetType()),
		Size:           n.GetSize(),
		MimeType:       n.GetMimeType(),
		UpdatedAt:      timeFromPB(n.GetUpdatedAt()),
		OwnerID:        n.GetOwnerId(),
		OrganizationID: n.GetOrganizationId(),
		StoragePath:    n.GetStoragePath(),
		IsFavorite:     n.GetIsFavorite(),
		Metadata:       MetadataFromPB(n.GetMetadata()),
	}
}

func NodesToPB(in []models.FileNode) []*pb.FileNode   { return mapSlice(in, NodeToPB) }
func NodesFromPB(in []*pb.FileNode) []models.FileNode { return mapSlice(in, NodeFromPB) }

// PageToPB flattens a listing page into its response message.
func PageToPB(p models.Page) *pb.ListFilesResponse {
	return &pb.ListFilesResponse{Items: NodesToPB(p.Items), HasMore: p.HasMore, Total: int32(p.Total)}
}

func PageFromPB(r *pb.ListFilesResponse) models.Page {
	return models.Page{Items: NodesFromPB(r.GetItems()), HasMore: r.GetHasMore(), Total: int(r.GetTotal())}
}

func BreadcrumbsToPB(in []models.BreadcrumbItem) []*pb.BreadcrumbItem {
	return mapSlice(in, func(b models.BreadcrumbItem) *pb.BreadcrumbItem {
		return &pb.BreadcrumbItem{Id: b.ID, Name: b.Name}
	})
}

func BreadcrumbsFromPB(in []*pb.BreadcrumbItem) []models.BreadcrumbItem {
	return mapSlice(in, func(b *pb.BreadcrumbItem) models.BreadcrumbItem {
		return models.BreadcrumbItem{ID: b.GetId(), Name: b.GetName()}
	})
}

func EventsToPB(in []models.InspectionEvent) []*pb.InspectionEvent {
	return mapSlice(in, func(e models.InspectionEvent) *pb.InspectionEvent {
		return &pb.InspectionEvent{
			NodeId:          e.NodeID,
			FromStatus:      string(e.FromStatus),
			ToStatus:        string(e.ToStatus),
			RejectionReason: e.RejectionReason,
			ActorId:         e.ActorID,
			ActorName:       e.ActorName,
			CreatedAt:       timeToPB(e.CreatedAt),
		}
	})
}

func EventsFromPB(in []*pb.InspectionEvent) []models.InspectionEvent {
	return mapSlice(in, func(e *pb.InspectionEvent) models.InspectionEvent {
		return models.InspectionEvent{
			NodeID:          e.GetNodeId(),
			FromStatus:      models.InspectionStatus(e.GetFromStatus()),
			ToStatus:        models.InspectionStatus(e.GetToStatus()),
			RejectionReason: e.GetRejectionReason(),
			ActorID:         e.GetActorId(),
			ActorName:       e.GetActorName(),
			CreatedAt:       timeFromPB(e.GetCreatedAt()),
		}
	})
}

func NotificationsToPB(in []models.Notification) []*pb.Notification {
	return mapSlice(in, func(n models.Notification) *pb.Notification {
		return &pb.Notification{
			Id:        n.ID,
			UserId:    n.UserID,
			Title:     n.Title,
			Body:      n.Body,
			Kind:      string(n.Kind),
			Read:      n.Read,
			CreatedAt: timeToPB(n.CreatedAt),
		}
	})
}

func NotificationsFromPB(in []*pb.Notification) []models.Notification {
	return mapSlice(in, func(n *pb.Notification) models.Notification {
		return models.Notification{
			ID:        n.GetId(),
			UserID:    n.GetUserId(),
			Title:     n.GetTitle(),
			Body:      n.GetBody(),
			Kind:      models.NotificationKind(n.GetKind()),
			Read:      n.GetRead(),
			CreatedAt: timeFromPB(n.GetCreatedAt()),
		}
	})
}

// DraftToPB describes an upload. The blob itself travels over the presigned
// URL, never over gRPC.
func DraftToPB(d models.FileDraft, orgID string) *pb.BeginUploadRequest {
	return &pb.BeginUploadRequest{
		ParentId:       d.ParentID,
		Name:           d.Name,
		Type:           string(d.Type),
		MimeType:       d.MimeType,
		Size:           d.Size,
		OrganizationId: orgID,
	}
}

func DraftFromPB(r *pb.BeginUploadRequest) (models.FileDraft, string) {
	return models.FileDraft{
		ParentID: r.GetParentId(),
		Name:     r.GetName(),
		Type:     models.NodeType(r.GetType()),
		MimeType: r.GetMimeType(),
		Size:     r.GetSize(),
	}, r.GetOrganizationId()
}

// PatchToPB keeps unset patch fields unset on the wire.
func PatchToPB(id string, p models.FilePatch) *pb.UpdateFileRequest {
	return &pb.UpdateFileRequest{
		Id:         id,
		Name:       p.Name,
		IsFavorite: p.IsFavorite,
		Metadata:   MetadataToPB(p.Metadata),
	}
}

func PatchFromPB(r *pb.UpdateFileRequest) models.FilePatch {
	return models.FilePatch{
		Name:       r.Name,
		IsFavorite: r.IsFavorite,
		Metadata:   MetadataFromPB(r.GetMetadata()),
	}
}
