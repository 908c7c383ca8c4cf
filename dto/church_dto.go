package dto

import (
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

type APIChurch struct {
	Id        string `json:"id"`
	DioceseId string `json:"diocese_id"`

	Name         string `json:"name"`
	Municipality string `json:"municipality"`
	Barangay     string `json:"barangay,omitempty"`
	Description  string `json:"description"`

	Status         string `json:"status"`
	Classification string `json:"classification"`

	FoundingYear         int                        `json:"founding_year,omitempty"`
	HistoricalBackground string                     `json:"historical_background,omitempty"`
	Founders             string                     `json:"founders,omitempty"`
	ArchitecturalStyle   string                     `json:"architectural_style,omitempty"`
	ReligiousOrder       string                     `json:"religious_order,omitempty"`
	HeritageDeclaration  string                     `json:"heritage_declaration,omitempty"`
	HeritageValidation   *models.HeritageValidation `json:"heritage_validation,omitempty"`

	MassSchedules  string              `json:"mass_schedules,omitempty"`
	ContactNumber  string              `json:"contact_number,omitempty"`
	Email          string              `json:"email,omitempty"`
	OfficeHours    string              `json:"office_hours,omitempty"`
	FacebookPage   string              `json:"facebook_page,omitempty"`
	Coordinates    *models.Coordinates `json:"coordinates,omitempty"`
	VirtualTourUrl string              `json:"virtual_tour_url,omitempty"`
	CoverPhotoKey  string              `json:"cover_photo_key,omitempty"`

	ReviewNotes     string `json:"review_notes,omitempty"`
	UnpublishReason string `json:"unpublish_reason,omitempty"`

	PendingChanges *APIPendingChanges `json:"pending_changes,omitempty"`

	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	UnpublishedAt *time.Time `json:"unpublished_at,omitempty"`

	CreatedBy          string  `json:"created_by,omitempty"`
	ReviewedBy         *string `json:"reviewed_by,omitempty"`
	ApprovedBy         *string `json:"approved_by,omitempty"`
	HeritageReviewedBy *string `json:"heritage_reviewed_by,omitempty"`
}

type APIPendingChanges struct {
	Data          map[string]any `json:"data"`
	ChangedFields []string       `json:"changed_fields"`
	SubmittedAt   time.Time      `json:"submitted_at"`
	SubmittedBy   string         `json:"submitted_by"`
}

func AdaptChurchDto(church models.Church) APIChurch {
	out := APIChurch{
		Id:                   church.Id,
		DioceseId:            church.DioceseId,
		Name:                 church.Name,
		Municipality:         church.Municipality,
		Barangay:             church.Barangay,
		Description:          church.Description,
		Status:               string(church.Status),
		Classification:       string(church.Classification),
		FoundingYear:         church.FoundingYear,
		HistoricalBackground: church.HistoricalBackground,
		Founders:             church.Founders,
		ArchitecturalStyle:   church.ArchitecturalStyle,
		ReligiousOrder:       church.ReligiousOrder,
		HeritageDeclaration:  church.HeritageDeclaration,
		HeritageValidation:   church.HeritageValidation,
		MassSchedules:        church.MassSchedules,
		ContactNumber:        church.ContactNumber,
		Email:                church.Email,
		OfficeHours:          church.OfficeHours,
		FacebookPage:         church.FacebookPage,
		VirtualTourUrl:       church.VirtualTourUrl,
		CoverPhotoKey:        church.CoverPhotoKey,
		ReviewNotes:          church.ReviewNotes,
		UnpublishReason:      church.UnpublishReason,
		CreatedAt:            church.CreatedAt,
		UpdatedAt:            church.UpdatedAt,
		SubmittedAt:          church.SubmittedAt,
		ApprovedAt:           church.ApprovedAt,
		ReviewedAt:           church.ReviewedAt,
		UnpublishedAt:        church.UnpublishedAt,
		CreatedBy:            church.CreatedBy,
		ReviewedBy:           church.ReviewedBy,
		ApprovedBy:           church.ApprovedBy,
		HeritageReviewedBy:   church.HeritageReviewedBy,
	}
	if church.Latitude != nil && church.Longitude != nil {
		out.Coordinates = &models.Coordinates{Latitude: *church.Latitude, Longitude: *church.Longitude}
	}
	if church.PendingChanges != nil {
		out.PendingChanges = &APIPendingChanges{
			Data:          church.PendingChanges.Data,
			ChangedFields: church.PendingChanges.ChangedFields,
			SubmittedAt:   church.PendingChanges.SubmittedAt,
			SubmittedBy:   church.PendingChanges.SubmittedBy,
		}
	}
	return out
}

type APIChurchWithLogos struct {
	APIChurch
	CoverPhotoUrl  string `json:"cover_photo_url,omitempty"`
	DioceseLogoUrl string `json:"diocese_logo_url,omitempty"`
}

func AdaptChurchWithLogosDto(church models.ChurchWithLogos) APIChurchWithLogos {
	return APIChurchWithLogos{
		APIChurch:      AdaptChurchDto(church.Church),
		CoverPhotoUrl:  church.CoverPhotoUrl,
		DioceseLogoUrl: church.DioceseLogoUrl,
	}
}

// ChurchFormBody is the dashboard form payload for create and update.
type ChurchFormBody struct {
	Name         string `json:"name" binding:"required"`
	Municipality string `json:"municipality" binding:"required"`
	Barangay     string `json:"barangay"`
	Description  string `json:"description" binding:"required"`

	Classification string `json:"classification"`

	FoundingYear         int    `json:"founding_year"`
	HistoricalBackground string `json:"historical_background"`
	Founders             string `json:"founders"`
	ArchitecturalStyle   string `json:"architectural_style"`
	ReligiousOrder       string `json:"religious_order"`
	HeritageDeclaration  string `json:"heritage_declaration"`

	MassSchedules string              `json:"mass_schedules"`
	ContactNumber string              `json:"contact_number"`
	Email         string              `json:"email"`
	OfficeHours   string              `json:"office_hours"`
	FacebookPage  string              `json:"facebook_page"`
	Coordinates   *models.Coordinates `json:"coordinates"`
	VirtualTour   string              `json:"virtual_tour"`
	CoverPhotoKey string              `json:"cover_photo_key"`
}

func AdaptChurchForm(body ChurchFormBody) models.ChurchForm {
	return models.ChurchForm{
		Name:                 body.Name,
		Municipality:         body.Municipality,
		Barangay:             body.Barangay,
		Description:          body.Description,
		Classification:       models.HeritageClassification(body.Classification),
		FoundingYear:         body.FoundingYear,
		HistoricalBackground: body.HistoricalBackground,
		Founders:             body.Founders,
		ArchitecturalStyle:   body.ArchitecturalStyle,
		ReligiousOrder:       body.ReligiousOrder,
		HeritageDeclaration:  body.HeritageDeclaration,
		MassSchedules:        body.MassSchedules,
		ContactNumber:        body.ContactNumber,
		Email:                body.Email,
		OfficeHours:          body.OfficeHours,
		FacebookPage:         body.FacebookPage,
		Coordinates:          body.Coordinates,
		VirtualTour:          body.VirtualTour,
		CoverPhotoKey:        body.CoverPhotoKey,
	}
}

type CreateChurchBody struct {
	Id        string         `json:"id"`
	DioceseId string         `json:"diocese_id" binding:"required"`
	Form      ChurchFormBody `json:"form" binding:"required"`
}

type ReviewChurchBody struct {
	Action string `json:"action" binding:"required,oneof=approve forward_to_museum"`
	Notes  string `json:"notes"`
}

type HeritageReviewBody struct {
	HistoricalBackground *string                    `json:"historical_background"`
	FoundingYear         *int                       `json:"founding_year"`
	Founders             *string                    `json:"founders"`
	ArchitecturalStyle   *string                    `json:"architectural_style"`
	ReligiousOrder       *string                    `json:"religious_order"`
	HeritageDeclaration  *string                    `json:"heritage_declaration"`
	HeritageValidation   *models.HeritageValidation `json:"heritage_validation"`
	Classification       *string                    `json:"classification"`
	Status               *string                    `json:"status"`
	ReviewNotes          *string                    `json:"review_notes"`
}

type UnpublishChurchBody struct {
	Reason string `json:"reason" binding:"required"`
}

type StagedUpdateResultDto struct {
	DirectlyPublished []string `json:"directly_published"`
	StagedForReview   []string `json:"staged_for_review"`
	HasPendingChanges bool     `json:"has_pending_changes"`
}

func AdaptStagedUpdateResultDto(result models.StagedUpdateResult) StagedUpdateResultDto {
	out := StagedUpdateResultDto{
		DirectlyPublished: result.DirectlyPublished,
		StagedForReview:   result.StagedForReview,
		HasPendingChanges: result.HasPendingChanges,
	}
	if out.DirectlyPublished == nil {
		out.DirectlyPublished = []string{}
	}
	if out.StagedForReview == nil {
		out.StagedForReview = []string{}
	}
	return out
}
