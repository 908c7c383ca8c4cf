package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type DBChurch struct {
	Id        string `db:"id"`
	DioceseId string `db:"diocese_id"`

	Name         string `db:"name"`
	Municipality string `db:"municipality"`
	Barangay     string `db:"barangay"`
	Description  string `db:"description"`

	Status         string `db:"status"`
	Classification string `db:"classification"`

	FoundingYear         int             `db:"founding_year"`
	HistoricalBackground string          `db:"historical_background"`
	Founders             string          `db:"founders"`
	ArchitecturalStyle   string          `db:"architectural_style"`
	ReligiousOrder       string          `db:"religious_order"`
	HeritageDeclaration  string          `db:"heritage_declaration"`
	HeritageValidation   json.RawMessage `db:"heritage_validation"`

	MassSchedules  string   `db:"mass_schedules"`
	ContactNumber  string   `db:"contact_number"`
	Email          string   `db:"email"`
	OfficeHours    string   `db:"office_hours"`
	FacebookPage   string   `db:"facebook_page"`
	Latitude       *float64 `db:"latitude"`
	Longitude      *float64 `db:"longitude"`
	VirtualTourUrl string   `db:"virtual_tour_url"`
	CoverPhotoKey  string   `db:"cover_photo_key"`

	ReviewNotes     string `db:"review_notes"`
	UnpublishReason string `db:"unpublish_reason"`

	PendingChanges json.RawMessage `db:"pending_changes"`

	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	SubmittedAt   *time.Time `db:"submitted_at"`
	ApprovedAt    *time.Time `db:"approved_at"`
	ReviewedAt    *time.Time `db:"reviewed_at"`
	UnpublishedAt *time.Time `db:"unpublished_at"`

	CreatedBy          string  `db:"created_by"`
	ReviewedBy         *string `db:"reviewed_by"`
	ApprovedBy         *string `db:"approved_by"`
	HeritageReviewedBy *string `db:"heritage_reviewed_by"`
}

const TABLE_CHURCHES = "churches"

var SelectChurchColumns = utils.ColumnList[DBChurch]()

func AdaptChurch(db DBChurch) (models.Church, error) {
	church := models.Church{
		Id:                   db.Id,
		DioceseId:            db.DioceseId,
		Name:                 db.Name,
		Municipality:         db.Municipality,
		Barangay:             db.Barangay,
		Description:          db.Description,
		Status:               models.ChurchStatus(db.Status),
		Classification:       models.HeritageClassification(db.Classification),
		FoundingYear:         db.FoundingYear,
		HistoricalBackground: db.HistoricalBackground,
		Founders:             db.Founders,
		ArchitecturalStyle:   db.ArchitecturalStyle,
		ReligiousOrder:       db.ReligiousOrder,
		HeritageDeclaration:  db.HeritageDeclaration,
		MassSchedules:        db.MassSchedules,
		ContactNumber:        db.ContactNumber,
		Email:                db.Email,
		OfficeHours:          db.OfficeHours,
		FacebookPage:         db.FacebookPage,
		Latitude:             db.Latitude,
		Longitude:            db.Longitude,
		VirtualTourUrl:       db.VirtualTourUrl,
		CoverPhotoKey:        db.CoverPhotoKey,
		ReviewNotes:          db.ReviewNotes,
		UnpublishReason:      db.UnpublishReason,
		CreatedAt:            db.CreatedAt,
		UpdatedAt:            db.UpdatedAt,
		SubmittedAt:          db.SubmittedAt,
		ApprovedAt:           db.ApprovedAt,
		ReviewedAt:           db.ReviewedAt,
		UnpublishedAt:        db.UnpublishedAt,
		CreatedBy:            db.CreatedBy,
		ReviewedBy:           db.ReviewedBy,
		ApprovedBy:           db.ApprovedBy,
		HeritageReviewedBy:   db.HeritageReviewedBy,
	}

	if len(db.PendingChanges) > 0 {
		var pendingChanges models.PendingChanges
		if err := json.Unmarshal(db.PendingChanges, &pendingChanges); err != nil {
			return models.Church{}, errors.Wrap(err, "failed to unmarshal pending changes")
		}
		church.PendingChanges = &pendingChanges
	}

	if len(db.HeritageValidation) > 0 {
		var validation models.HeritageValidation
		if err := json.Unmarshal(db.HeritageValidation, &validation); err != nil {
			return models.Church{}, errors.Wrap(err, "failed to unmarshal heritage validation")
		}
		church.HeritageValidation = &validation
	}

	return church, nil
}
