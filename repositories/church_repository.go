package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories/dbmodels"
)

func (repo *VisitaDbRepository) GetChurchById(ctx context.Context, exec Executor, churchId string) (models.Church, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectChurchColumns...).
		From(dbmodels.TABLE_CHURCHES).
		Where(squirrel.Eq{"id": churchId})

	church, err := SqlToModel(ctx, exec, query, dbmodels.AdaptChurch)
	if errors.Is(err, models.NotFoundError) {
		return models.Church{}, errors.WithDetail(models.ErrChurchNotFound, churchId)
	}
	return church, err
}

func (repo *VisitaDbRepository) ListChurches(ctx context.Context, exec Executor,
	filters models.ChurchFilters,
) ([]models.Church, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectChurchColumns...).
		From(dbmodels.TABLE_CHURCHES).
		OrderBy("created_at DESC")

	if filters.DioceseId != "" {
		query = query.Where(squirrel.Eq{"diocese_id": filters.DioceseId})
	}
	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.Classification != "" {
		query = query.Where(squirrel.Eq{"classification": filters.Classification})
	}
	if filters.Municipality != "" {
		query = query.Where(squirrel.Eq{"municipality": filters.Municipality})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptChurch)
}

// GetChurchByNameAndMunicipality runs the duplicate pre-check. excludeId skips
// the record's own row when re-checking on rename. The check is not
// transactional with the subsequent write: a race can admit two duplicates.
func (repo *VisitaDbRepository) GetChurchByNameAndMunicipality(ctx context.Context, exec Executor,
	dioceseId, name, municipality, excludeId string,
) (*models.Church, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectChurchColumns...).
		From(dbmodels.TABLE_CHURCHES).
		Where(squirrel.Eq{"diocese_id": dioceseId}).
		Where(squirrel.Expr("lower(name) = lower(?)", name)).
		Where(squirrel.Expr("lower(municipality) = lower(?)", municipality)).
		Limit(1)

	if excludeId != "" {
		query = query.Where(squirrel.NotEq{"id": excludeId})
	}

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptChurch)
}

func (repo *VisitaDbRepository) CreateChurch(ctx context.Context, exec Executor,
	attrs models.CreateChurchAttributes, newChurchId string,
) error {
	form := attrs.Form
	classification := form.Classification
	if classification == "" {
		classification = models.ClassificationNonHeritage
	}

	var latitude, longitude *float64
	if form.Coordinates != nil {
		latitude = &form.Coordinates.Latitude
		longitude = &form.Coordinates.Longitude
	}

	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CHURCHES).
			Columns(
				"id",
				"diocese_id",
				"name",
				"municipality",
				"barangay",
				"description",
				"status",
				"classification",
				"founding_year",
				"historical_background",
				"founders",
				"architectural_style",
				"religious_order",
				"heritage_declaration",
				"mass_schedules",
				"contact_number",
				"email",
				"office_hours",
				"facebook_page",
				"latitude",
				"longitude",
				"virtual_tour_url",
				"cover_photo_key",
				"created_by",
				"submitted_at",
			).
			Values(
				newChurchId,
				attrs.DioceseId,
				form.Name,
				form.Municipality,
				form.Barangay,
				form.Description,
				models.ChurchPending,
				classification,
				form.FoundingYear,
				form.HistoricalBackground,
				form.Founders,
				form.ArchitecturalStyle,
				form.ReligiousOrder,
				form.HeritageDeclaration,
				form.MassSchedules,
				form.ContactNumber,
				form.Email,
				form.OfficeHours,
				form.FacebookPage,
				latitude,
				longitude,
				form.VirtualTour,
				form.CoverPhotoKey,
				attrs.CreatedBy,
				squirrel.Expr("NOW()"),
			),
	)
}

func (repo *VisitaDbRepository) UpdateChurch(ctx context.Context, exec Executor,
	attrs models.UpdateChurchAttributes,
) error {
	sql := NewQueryBuilder().Update(dbmodels.TABLE_CHURCHES).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": attrs.Id})

	if attrs.Name != nil {
		sql = sql.Set("name", *attrs.Name)
	}
	if attrs.Municipality != nil {
		sql = sql.Set("municipality", *attrs.Municipality)
	}
	if attrs.Barangay != nil {
		sql = sql.Set("barangay", *attrs.Barangay)
	}
	if attrs.Description != nil {
		sql = sql.Set("description", *attrs.Description)
	}
	if attrs.Status != nil {
		sql = sql.Set("status", *attrs.Status)
	}
	if attrs.Classification != nil {
		sql = sql.Set("classification", *attrs.Classification)
	}
	if attrs.FoundingYear != nil {
		sql = sql.Set("founding_year", *attrs.FoundingYear)
	}
	if attrs.HistoricalBackground != nil {
		sql = sql.Set("historical_background", *attrs.HistoricalBackground)
	}
	if attrs.Founders != nil {
		sql = sql.Set("founders", *attrs.Founders)
	}
	if attrs.ArchitecturalStyle != nil {
		sql = sql.Set("architectural_style", *attrs.ArchitecturalStyle)
	}
	if attrs.ReligiousOrder != nil {
		sql = sql.Set("religious_order", *attrs.ReligiousOrder)
	}
	if attrs.HeritageDeclaration != nil {
		sql = sql.Set("heritage_declaration", *attrs.HeritageDeclaration)
	}
	if attrs.HeritageValidation != nil {
		serialized, err := json.Marshal(attrs.HeritageValidation)
		if err != nil {
			return errors.Wrap(err, "failed to marshal heritage validation")
		}
		sql = sql.Set("heritage_validation", serialized)
	}
	if attrs.MassSchedules != nil {
		sql = sql.Set("mass_schedules", *attrs.MassSchedules)
	}
	if attrs.ContactNumber != nil {
		sql = sql.Set("contact_number", *attrs.ContactNumber)
	}
	if attrs.Email != nil {
		sql = sql.Set("email", *attrs.Email)
	}
	if attrs.OfficeHours != nil {
		sql = sql.Set("office_hours", *attrs.OfficeHours)
	}
	if attrs.FacebookPage != nil {
		sql = sql.Set("facebook_page", *attrs.FacebookPage)
	}
	if attrs.Latitude != nil {
		sql = sql.Set("latitude", *attrs.Latitude)
	}
	if attrs.Longitude != nil {
		sql = sql.Set("longitude", *attrs.Longitude)
	}
	if attrs.VirtualTourUrl != nil {
		sql = sql.Set("virtual_tour_url", *attrs.VirtualTourUrl)
	}
	if attrs.CoverPhotoKey != nil {
		sql = sql.Set("cover_photo_key", *attrs.CoverPhotoKey)
	}
	if attrs.ReviewNotes != nil {
		sql = sql.Set("review_notes", *attrs.ReviewNotes)
	}
	if attrs.UnpublishReason != nil {
		sql = sql.Set("unpublish_reason", *attrs.UnpublishReason)
	}
	if attrs.SubmittedAt != nil {
		sql = sql.Set("submitted_at", *attrs.SubmittedAt)
	}
	if attrs.ApprovedAt != nil {
		sql = sql.Set("approved_at", *attrs.ApprovedAt)
	}
	if attrs.ReviewedAt != nil {
		sql = sql.Set("reviewed_at", *attrs.ReviewedAt)
	}
	if attrs.UnpublishedAt != nil {
		sql = sql.Set("unpublished_at", *attrs.UnpublishedAt)
	}
	if attrs.ReviewedBy != nil {
		sql = sql.Set("reviewed_by", *attrs.ReviewedBy)
	}
	if attrs.ApprovedBy != nil {
		sql = sql.Set("approved_by", *attrs.ApprovedBy)
	}
	if attrs.HeritageReviewedBy != nil {
		sql = sql.Set("heritage_reviewed_by", *attrs.HeritageReviewedBy)
	}

	return ExecBuilder(ctx, exec, sql)
}

// UpdateChurchPendingChanges writes the staged-change payload, nil clears it.
func (repo *VisitaDbRepository) UpdateChurchPendingChanges(ctx context.Context, exec Executor,
	churchId string, pendingChanges *models.PendingChanges,
) error {
	var serialized any
	if pendingChanges != nil {
		marshalled, err := json.Marshal(pendingChanges)
		if err != nil {
			return errors.Wrap(err, "failed to marshal pending changes")
		}
		serialized = marshalled
	}

	return ExecBuilder(ctx, exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CHURCHES).
			Set("pending_changes", serialized).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": churchId}),
	)
}
