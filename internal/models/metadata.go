package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/common"
)

// InspectionStatus is the quality verdict of a document.
type InspectionStatus string

const (
	StatusPending  InspectionStatus = "PENDING"
	StatusApproved InspectionStatus = "APPROVED"
	StatusRejected InspectionStatus = "REJECTED"
)

// Valid reports whether s is a known status.
func (s InspectionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// SteelBatchMetadata holds the inspection attributes of a certificate.
// Only leaf documents carry it.
type SteelBatchMetadata struct {
	BatchNumber          string             `json:"batch_number"`
	Grade                string             `json:"grade"`
	InvoiceNumber        string             `json:"invoice_number"`
	Status               InspectionStatus   `json:"status"`
	RejectionReason      string             `json:"rejection_reason,omitempty"`
	InspectedAt          *time.Time         `json:"inspected_at,omitempty"`
	InspectedBy          string             `json:"inspected_by,omitempty"`
	ChemicalComposition  map[string]float64 `json:"chemical_composition,omitempty"`
	MechanicalProperties map[string]float64 `json:"mechanical_properties,omitempty"`
}

// Validate enforces the inspection invariants:
//   - RejectionReason is set if and only if Status is REJECTED;
//   - InspectedAt and InspectedBy are set whenever Status is not PENDING,
//     and absent while it is.
func (m SteelBatchMetadata) Validate() error {
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, m.Status)
	}
	hasReason := strings.TrimSpace(m.RejectionReason) != ""
	if m.Status == StatusRejected && !hasReason {
		return common.ErrEmptyRejectionReason
	}
	if m.Status != StatusRejected && m.RejectionReason != "" {
		return fmt.Errorf("%w: rejection reason on %s document", common.ErrorValidation, m.Status)
	}
	inspected := m.InspectedAt != nil || m.InspectedBy != ""
	if m.Status == StatusPending && inspected {
		return fmt.Errorf("%w: pending document carries inspection attribution", common.ErrorValidation)
	}
	if m.Status != StatusPending && (m.InspectedAt == nil || m.InspectedBy == "") {
		return fmt.Errorf("%w: %s document lacks inspection attribution", common.ErrorValidation, m.Status)
	}
	return nil
}

// Clone returns a deep copy of m.
func (m SteelBatchMetadata) Clone() SteelBatchMetadata {
	out := m
	if m.InspectedAt != nil {
		t := *m.InspectedAt
		out.InspectedAt = &t
	}
	out.ChemicalComposition = cloneFloats(m.ChemicalComposition)
	out.MechanicalProperties = cloneFloats(m.MechanicalProperties)
	return out
}

func cloneFloats(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// InspectionEvent is one entry of a document's inspection history.
type InspectionEvent struct {
	NodeID          string           `json:"node_id"`
	FromStatus      InspectionStatus `json:"from_status"`
	ToStatus        InspectionStatus `json:"to_status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
	ActorID         string           `json:"actor_id,omitempty"`
	ActorName       string           `json:"actor_name"`
	CreatedAt       time.Time        `json:"created_at"`
}
