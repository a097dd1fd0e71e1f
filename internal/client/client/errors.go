package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oluccaa/qualidade-sub001/internal/rpc"
)

var ErrUnavailable = errors.New("server unavailable")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded:
			return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
		}
	}
	return rpc.FromStatus(err)
}
