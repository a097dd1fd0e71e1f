package rpc

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oluccaa/qualidade-sub001/internal/common"
)

// ErrorDomain tags the ErrorInfo detail attached to portal status errors.
const ErrorDomain = "portal.qualidade"

type errorMapping struct {
	err    error
	code   codes.Code
	reason string
}

// errorTable is ordered from most to least specific.
var errorTable = []errorMapping{
	{common.ErrEmptyRejectionReason, codes.InvalidArgument, "EMPTY_REJECTION_REASON"},
	{common.ErrFolderMetadata, codes.InvalidArgument, "FOLDER_METADATA"},
	{common.ErrNoOrganization, codes.FailedPrecondition, "NO_ORGANIZATION"},
	{common.ErrInvalidTransition, codes.FailedPrecondition, "INVALID_TRANSITION"},
	{common.ErrorValidation, codes.InvalidArgument, "VALIDATION"},
	{common.ErrorNotFound, codes.NotFound, "NOT_FOUND"},
	{common.ErrorAlreadyExists, codes.AlreadyExists, "ALREADY_EXISTS"},
	{common.ErrTokenExpired, codes.Unauthenticated, "TOKEN_EXPIRED"},
	{common.ErrInvalidToken, codes.Unauthenticated, "INVALID_TOKEN"},
	{common.ErrorUnauthorized, codes.Unauthenticated, "UNAUTHORIZED"},
	{common.ErrorForbidden, codes.PermissionDenied, "FORBIDDEN"},
	{common.ErrBusy, codes.Unavailable, "BUSY"},
}

// ToStatus converts err into a gRPC status error. Known sentinels keep
// their message and carry an ErrorInfo reason so the client can restore
// them; anything else becomes an opaque Internal error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, m := range errorTable {
		if !errors.Is(err, m.err) {
			continue
		}
		st := status.New(m.code, err.Error())
		if withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: m.reason, Domain: ErrorDomain}); derr == nil {
			st = withInfo
		}
		return st.Err()
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

// FromStatus restores the sentinel behind a status error so callers can
// use errors.Is. Non-status errors are returned unchanged.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for _, m := range errorTable {
			if m.reason == info.GetReason() {
				return &statusError{sentinel: m.err, msg: st.Message()}
			}
		}
	}

	var sentinel error
	switch st.Code() {
	case codes.NotFound:
		sentinel = common.ErrorNotFound
	case codes.AlreadyExists:
		sentinel = common.ErrorAlreadyExists
	case codes.InvalidArgument:
		sentinel = common.ErrorValidation
	case codes.FailedPrecondition:
		sentinel = common.ErrInvalidTransition
	case codes.Unauthenticated:
		sentinel = common.ErrorUnauthorized
	case codes.PermissionDenied:
		sentinel = common.ErrorForbidden
	default:
		return err
	}
	return &statusError{sentinel: sentinel, msg: st.Message()}
}

// statusError keeps the server message while matching the sentinel.
type statusError struct {
	sentinel error
	msg      string
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.sentinel }
