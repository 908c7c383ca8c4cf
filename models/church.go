package models

import (
	"fmt"
	"time"
)

type Church struct {
	Id        string
	DioceseId string

	Name         string
	Municipality string
	Barangay     string
	Description  string

	Status         ChurchStatus
	Classification HeritageClassification

	FoundingYear         int
	HistoricalBackground string
	Founders             string
	ArchitecturalStyle   string
	ReligiousOrder       string
	HeritageDeclaration  string
	HeritageValidation   *HeritageValidation

	MassSchedules  string
	ContactNumber  string
	Email          string
	OfficeHours    string
	FacebookPage   string
	Latitude       *float64
	Longitude      *float64
	VirtualTourUrl string
	CoverPhotoKey  string

	ReviewNotes     string
	UnpublishReason string

	// PendingChanges is only ever non-nil while the record is approved and
	// carries staged edits awaiting re-verification.
	PendingChanges *PendingChanges

	CreatedAt     time.Time
	UpdatedAt     time.Time
	SubmittedAt   *time.Time
	ApprovedAt    *time.Time
	ReviewedAt    *time.Time
	UnpublishedAt *time.Time

	CreatedBy          string
	ReviewedBy         *string
	ApprovedBy         *string
	HeritageReviewedBy *string
}

type ChurchStatus string

const (
	ChurchPending        ChurchStatus = "pending"
	ChurchUnderReview    ChurchStatus = "under_review"
	ChurchHeritageReview ChurchStatus = "heritage_review"
	ChurchApproved       ChurchStatus = "approved"
	ChurchDraft          ChurchStatus = "draft"
	ChurchUnknownStatus  ChurchStatus = "unknown"
)

func ChurchStatusFrom(s string) ChurchStatus {
	switch ChurchStatus(s) {
	case ChurchPending, ChurchUnderReview, ChurchHeritageReview, ChurchApproved, ChurchDraft:
		return ChurchStatus(s)
	default:
		return ChurchUnknownStatus
	}
}

// InReviewQueue reports whether the record currently sits in front of a
// reviewer (chancery or museum) and so does not need re-routing on a
// classification change.
func (s ChurchStatus) InReviewQueue() bool {
	return s == ChurchUnderReview || s == ChurchHeritageReview
}

type HeritageClassification string

const (
	ClassificationICP         HeritageClassification = "ICP"
	ClassificationNCT         HeritageClassification = "NCT"
	ClassificationNonHeritage HeritageClassification = "non_heritage"
)

func (c HeritageClassification) IsHeritage() bool {
	return c == ClassificationICP || c == ClassificationNCT
}

func ValidateClassification(s string) (HeritageClassification, error) {
	switch HeritageClassification(s) {
	case ClassificationICP, ClassificationNCT, ClassificationNonHeritage:
		return HeritageClassification(s), nil
	default:
		return "", fmt.Errorf("invalid classification: %s %w", s, BadParameterError)
	}
}

// PendingChanges holds staged edits to an approved record: the proposed field
// values keyed by form field name, plus the set of field names touched since
// the last heritage review. Merging is non-destructive, a second staged edit
// accumulates on top of the first.
type PendingChanges struct {
	Data          map[string]any `json:"data"`
	ChangedFields []string       `json:"changed_fields"`
	SubmittedAt   time.Time      `json:"submitted_at"`
	SubmittedBy   string         `json:"submitted_by"`
}

type HeritageValidation struct {
	Validated   bool       `json:"validated"`
	ValidatedBy string     `json:"validated_by,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
}

type CreateChurchAttributes struct {
	// Id may be pre-assigned to match the parish id, otherwise one is generated.
	Id        string
	DioceseId string
	Form      ChurchForm
	CreatedBy string
}

// UpdateChurchAttributes is a sparse storage-level update: only non-nil
// fields are written.
type UpdateChurchAttributes struct {
	Id string

	Name         *string
	Municipality *string
	Barangay     *string
	Description  *string

	Status         *ChurchStatus
	Classification *HeritageClassification

	FoundingYear         *int
	HistoricalBackground *string
	Founders             *string
	ArchitecturalStyle   *string
	ReligiousOrder       *string
	HeritageDeclaration  *string
	HeritageValidation   *HeritageValidation

	MassSchedules  *string
	ContactNumber  *string
	Email          *string
	OfficeHours    *string
	FacebookPage   *string
	Latitude       *float64
	Longitude      *float64
	VirtualTourUrl *string
	CoverPhotoKey  *string

	ReviewNotes     *string
	UnpublishReason *string

	SubmittedAt   *time.Time
	ApprovedAt    *time.Time
	ReviewedAt    *time.Time
	UnpublishedAt *time.Time

	ReviewedBy         *string
	ApprovedBy         *string
	HeritageReviewedBy *string
}

type ReviewAction string

const (
	ReviewActionApprove         ReviewAction = "approve"
	ReviewActionForwardToMuseum ReviewAction = "forward_to_museum"
)

type ReviewChurchAttributes struct {
	ChurchId string
	Action   ReviewAction
	Notes    string
}

// HeritageReviewAttributes is the restricted field set a museum researcher may
// touch. Nil fields are left untouched (partial-update semantics).
type HeritageReviewAttributes struct {
	ChurchId string

	HistoricalBackground *string
	FoundingYear         *int
	Founders             *string
	ArchitecturalStyle   *string
	ReligiousOrder       *string
	HeritageDeclaration  *string
	HeritageValidation   *HeritageValidation
	Classification       *HeritageClassification
	Status               *ChurchStatus
	ReviewNotes          *string
}

type ChurchFilters struct {
	DioceseId      string
	Statuses       []ChurchStatus
	Classification HeritageClassification
	Municipality   string
}

func ValidateChurchStatuses(statuses []string) ([]ChurchStatus, error) {
	sanitized := make([]ChurchStatus, len(statuses))
	for i, status := range statuses {
		sanitized[i] = ChurchStatusFrom(status)
		if sanitized[i] == ChurchUnknownStatus {
			return []ChurchStatus{}, fmt.Errorf("invalid status: %s %w", status, BadParameterError)
		}
	}
	return sanitized, nil
}

// ChurchWithLogos decorates a church with resolved (signed) logo URLs for the
// church cover photo and its diocese logo.
type ChurchWithLogos struct {
	Church
	CoverPhotoUrl  string
	DioceseLogoUrl string
}
