// Package inspection implements the approve / reject / revert workflow for
// steel batch certificates.
package inspection

import (
	"fmt"
	"strings"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// Normalize maps the zero status to PENDING. Documents that were never
// inspected are stored without a status.
func Normalize(s models.InspectionStatus) models.InspectionStatus {
	if s == "" {
		return models.StatusPending
	}
	return s
}

// CheckTransition reports whether a document may move from one status to
// another. Same-status moves are allowed and are no-ops; APPROVED and
// REJECTED only lead back to PENDING.
func CheckTransition(from, to models.InspectionStatus) error {
	from, to = Normalize(from), Normalize(to)
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: unknown status %q -> %q", common.ErrorValidation, from, to)
	}
	if from == to || from == models.StatusPending || to == models.StatusPending {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, from, to)
}

// Apply computes the metadata after moving cur to status to. It returns
// changed == false for same-status moves, in which case next equals cur.
// reason is only used for REJECTED and must not be blank there.
func Apply(cur models.SteelBatchMetadata, to models.InspectionStatus, reason, inspector string, at time.Time) (next models.SteelBatchMetadata, changed bool, err error) {
	from := Normalize(cur.Status)
	if err := CheckTransition(from, to); err != nil {
		return cur, false, err
	}

	reason = strings.TrimSpace(reason)
	if to == models.StatusRejected && reason == "" {
		return cur, false, common.ErrEmptyRejectionReason
	}
	if from == to {
		return cur, false, nil
	}

	next = cur.Clone()
	next.Status = to
	switch to {
	case models.StatusPending:
		next.RejectionReason = ""
		next.InspectedAt = nil
		next.InspectedBy = ""
	case models.StatusApproved:
		next.RejectionReason = ""
		next.InspectedAt = &at
		next.InspectedBy = inspector
	case models.StatusRejected:
		next.RejectionReason = reason
		next.InspectedAt = &at
		next.InspectedBy = inspector
	}
	if err := next.Validate(); err != nil {
		return cur, false, err
	}
	return next, true, nil
}
