package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/pure_utils"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type ChurchWorkflowRepository interface {
	GetChurchById(ctx context.Context, exec repositories.Executor, churchId string) (models.Church, error)
	ListChurches(ctx context.Context, exec repositories.Executor, filters models.ChurchFilters) ([]models.Church, error)
	GetChurchByNameAndMunicipality(ctx context.Context, exec repositories.Executor,
		dioceseId, name, municipality, excludeId string) (*models.Church, error)
	CreateChurch(ctx context.Context, exec repositories.Executor,
		attrs models.CreateChurchAttributes, newChurchId string) error
	UpdateChurch(ctx context.Context, exec repositories.Executor,
		attrs models.UpdateChurchAttributes) error
	UpdateChurchPendingChanges(ctx context.Context, exec repositories.Executor,
		churchId string, pendingChanges *models.PendingChanges) error
	GetDioceseById(ctx context.Context, exec repositories.Executor, dioceseId string) (models.Diocese, error)
}

type ChurchWorkflowUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      ChurchWorkflowRepository
	blobRepository  repositories.BlobRepository
	auditLogger     AuditLogger
	credentials     models.Credentials
	mediaBucketUrl  string
}

func (uc ChurchWorkflowUsecase) GetChurch(ctx context.Context, churchId string) (models.Church, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return models.Church{}, err
	}
	if err := uc.enforceSecurity.ReadChurch(church); err != nil {
		return models.Church{}, err
	}
	return church, nil
}

func (uc ChurchWorkflowUsecase) ListChurches(ctx context.Context, filters models.ChurchFilters) ([]models.Church, error) {
	dioceseId, err := uc.dioceseScope(filters.DioceseId)
	if err != nil {
		return nil, err
	}
	filters.DioceseId = dioceseId

	exec := uc.executorFactory.NewExecutor()
	churches, err := uc.repository.ListChurches(ctx, exec, filters)
	return churches, wrapUnexpected(ctx, err, "failed to list church records")
}

// ListPublishedChurches serves the public visitor site: approved records
// only, no authentication.
func (uc ChurchWorkflowUsecase) ListPublishedChurches(ctx context.Context, dioceseId, municipality string) ([]models.Church, error) {
	filters := models.ChurchFilters{
		DioceseId:    dioceseId,
		Statuses:     []models.ChurchStatus{models.ChurchApproved},
		Municipality: municipality,
	}
	churches, err := uc.repository.ListChurches(ctx, uc.executorFactory.NewExecutor(), filters)
	return churches, wrapUnexpected(ctx, err, "failed to list published church records")
}

// GetChurchWithLogos resolves the signed media URLs for the cover photo and
// the diocese logo concurrently with the profile fetch.
func (uc ChurchWorkflowUsecase) GetChurchWithLogos(ctx context.Context, churchId string) (models.ChurchWithLogos, error) {
	church, err := uc.GetChurch(ctx, churchId)
	if err != nil {
		return models.ChurchWithLogos{}, err
	}

	out := models.ChurchWithLogos{Church: church}
	group, groupCtx := errgroup.WithContext(ctx)
	if church.CoverPhotoKey != "" {
		group.Go(func() error {
			url, err := uc.blobRepository.GenerateSignedUrl(groupCtx, uc.mediaBucketUrl, church.CoverPhotoKey)
			out.CoverPhotoUrl = url
			return err
		})
	}
	group.Go(func() error {
		diocese, err := uc.repository.GetDioceseById(groupCtx, uc.executorFactory.NewExecutor(), church.DioceseId)
		if err != nil || diocese.LogoKey == "" {
			return err
		}
		url, err := uc.blobRepository.GenerateSignedUrl(groupCtx, uc.mediaBucketUrl, diocese.LogoKey)
		out.DioceseLogoUrl = url
		return err
	})
	if err := group.Wait(); err != nil {
		return models.ChurchWithLogos{}, wrapUnexpected(ctx, err, "failed to resolve church media urls")
	}
	return out, nil
}

func (uc ChurchWorkflowUsecase) CreateChurch(ctx context.Context, attrs models.CreateChurchAttributes) (models.Church, error) {
	if err := uc.enforceSecurity.CreateChurch(attrs.DioceseId); err != nil {
		return models.Church{}, err
	}
	if err := attrs.Form.Validate(); err != nil {
		return models.Church{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	if err := uc.checkDuplicate(ctx, exec, attrs.DioceseId, attrs.Form.Name, attrs.Form.Municipality, ""); err != nil {
		return models.Church{}, err
	}

	newChurchId := attrs.Id
	if newChurchId == "" {
		newChurchId = uuid.NewString()
	}
	attrs.CreatedBy = uc.credentials.ActorId

	if err := uc.repository.CreateChurch(ctx, exec, attrs, newChurchId); err != nil {
		// A lost duplicate-check race surfaces here through the unique index.
		if repositories.IsUniqueViolationError(err) {
			return models.Church{}, fmt.Errorf("%s already exists in %s: %w",
				attrs.Form.Name, attrs.Form.Municipality, models.ConflictError)
		}
		return models.Church{}, wrapUnexpected(ctx, err, "failed to create church record")
	}

	church, err := uc.repository.GetChurchById(ctx, exec, newChurchId)
	if err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to read back created church record")
	}

	uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
		Actor:        uc.credentials.AuditActor(),
		Action:       models.AuditChurchCreated,
		ResourceType: models.AuditResourceChurch,
		ResourceId:   church.Id,
		ResourceName: church.Name,
		Changes: []models.FieldChange{
			{Field: "status", OldValue: "", NewValue: string(models.ChurchPending)},
		},
	})
	return church, nil
}

// UpdateChurch overwrites the mutable profile fields in place. Depending on
// the classification transition and the record's current status it may also
// re-route the record into the pending queue.
func (uc ChurchWorkflowUsecase) UpdateChurch(ctx context.Context, churchId string, form models.ChurchForm) (models.Church, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return models.Church{}, err
	}
	if err := uc.enforceSecurity.UpdateChurch(church); err != nil {
		return models.Church{}, err
	}
	if err := form.Validate(); err != nil {
		return models.Church{}, err
	}

	changes := models.DiffChurchForms(church.Form(), form)
	if renamed(changes) {
		if err := uc.checkDuplicate(ctx, exec, church.DioceseId, form.Name, form.Municipality, church.Id); err != nil {
			return models.Church{}, err
		}
	}

	attrs := models.UpdateChurchAttributes{Id: church.Id}
	models.ApplyFormFields(&attrs, form, models.FieldNames(changes))

	auditChanges := fieldChanges(changes)
	if newStatus, ok := uc.statusAfterStandardUpdate(church, form.Classification); ok {
		attrs.Status = &newStatus
		now := time.Now()
		attrs.SubmittedAt = &now
		auditChanges = append(auditChanges, models.FieldChange{
			Field:    "status",
			OldValue: string(church.Status),
			NewValue: string(newStatus),
		})
	}

	if len(auditChanges) == 0 {
		return church, nil
	}

	if err := uc.repository.UpdateChurch(ctx, exec, attrs); err != nil {
		if repositories.IsUniqueViolationError(err) {
			return models.Church{}, fmt.Errorf("%s already exists in %s: %w",
				form.Name, form.Municipality, models.ConflictError)
		}
		return models.Church{}, wrapUnexpected(ctx, err, "failed to update church record")
	}
	if err := uc.discardStagedChanges(ctx, exec, church, attrs.Status); err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to discard staged changes")
	}

	updated, err := uc.repository.GetChurchById(ctx, exec, church.Id)
	if err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to read back updated church record")
	}

	uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
		Actor:        uc.credentials.AuditActor(),
		Action:       models.AuditChurchUpdated,
		ResourceType: models.AuditResourceChurch,
		ResourceId:   updated.Id,
		ResourceName: updated.Name,
		Changes:      auditChanges,
	})
	return updated, nil
}

// statusAfterStandardUpdate decides whether a standard update re-routes the
// record. A record gaining heritage classification re-enters the pending
// queue unless it already sits in front of a reviewer, a record losing it
// while under review likewise returns to pending. Resubmitting an unpublished
// draft also moves it back to pending.
func (uc ChurchWorkflowUsecase) statusAfterStandardUpdate(
	church models.Church, newClassification models.HeritageClassification,
) (models.ChurchStatus, bool) {
	if church.Status == models.ChurchDraft {
		return models.ChurchPending, true
	}
	if newClassification == "" || newClassification == church.Classification {
		return "", false
	}
	becameHeritage := newClassification.IsHeritage() && !church.Classification.IsHeritage()
	lostHeritage := !newClassification.IsHeritage() && church.Classification.IsHeritage()
	if becameHeritage && !church.Status.InReviewQueue() {
		return models.ChurchPending, true
	}
	if lostHeritage && church.Status.InReviewQueue() {
		return models.ChurchPending, true
	}
	return "", false
}

// UpdateChurchWithStaging is the write path for approved records: edits to
// operational fields go live immediately, edits to historical fields are
// staged in PendingChanges until the next heritage review. Records in any
// other status fall through to the plain update.
func (uc ChurchWorkflowUsecase) UpdateChurchWithStaging(
	ctx context.Context, churchId string, form models.ChurchForm,
) (models.StagedUpdateResult, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return models.StagedUpdateResult{}, err
	}
	if err := uc.enforceSecurity.UpdateChurch(church); err != nil {
		return models.StagedUpdateResult{}, err
	}

	if church.Status != models.ChurchApproved {
		updated, err := uc.UpdateChurch(ctx, churchId, form)
		if err != nil {
			return models.StagedUpdateResult{}, err
		}
		changes := models.DiffChurchForms(church.Form(), form)
		return models.StagedUpdateResult{
			DirectlyPublished: models.FieldNames(changes),
			HasPendingChanges: updated.PendingChanges != nil,
		}, nil
	}

	if err := form.Validate(); err != nil {
		return models.StagedUpdateResult{}, err
	}

	changes := models.DiffChurchForms(church.Form(), form)
	categorized := models.CategorizeChanges(changes)

	if len(categorized.DirectPublish) > 0 {
		attrs := models.UpdateChurchAttributes{Id: church.Id}
		models.ApplyFormFields(&attrs, form, models.FieldNames(categorized.DirectPublish))
		if err := uc.repository.UpdateChurch(ctx, exec, attrs); err != nil {
			return models.StagedUpdateResult{}, wrapUnexpected(ctx, err, "failed to publish direct church edits")
		}
	}

	pendingChanges := church.PendingChanges
	if len(categorized.ReverificationRequired) > 0 {
		pendingChanges = models.MergePendingChanges(
			church.PendingChanges, categorized.ReverificationRequired,
			uc.credentials.ActorId, time.Now())
		if err := uc.repository.UpdateChurchPendingChanges(ctx, exec, church.Id, pendingChanges); err != nil {
			return models.StagedUpdateResult{}, wrapUnexpected(ctx, err, "failed to stage church edits")
		}
	}

	result := models.StagedUpdateResult{
		DirectlyPublished: models.FieldNames(categorized.DirectPublish),
		StagedForReview:   models.FieldNames(categorized.ReverificationRequired),
		HasPendingChanges: pendingChanges != nil,
	}

	if len(changes) > 0 {
		uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
			Actor:        uc.credentials.AuditActor(),
			Action:       models.AuditChurchUpdated,
			ResourceType: models.AuditResourceChurch,
			ResourceId:   church.Id,
			ResourceName: church.Name,
			Changes:      fieldChanges(changes),
			Metadata: map[string]any{
				"directly_published": result.DirectlyPublished,
				"staged_for_review":  result.StagedForReview,
			},
		})
	}
	return result, nil
}

// ReviewChurch is the chancery reviewer's verdict on a record in the pending
// or under_review queue: approve it for publication, or forward it to the
// museum researcher for heritage review.
func (uc ChurchWorkflowUsecase) ReviewChurch(ctx context.Context, attrs models.ReviewChurchAttributes) (models.Church, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, attrs.ChurchId)
	if err != nil {
		return models.Church{}, err
	}
	if err := uc.enforceSecurity.ReviewChurch(church); err != nil {
		return models.Church{}, err
	}

	now := time.Now()
	update := models.UpdateChurchAttributes{
		Id:          church.Id,
		ReviewedAt:  &now,
		ReviewedBy:  &uc.credentials.ActorId,
		ReviewNotes: &attrs.Notes,
	}

	var newStatus models.ChurchStatus
	var action models.AuditAction
	switch attrs.Action {
	case models.ReviewActionApprove:
		newStatus = models.ChurchApproved
		action = models.AuditChurchApproved
		update.ApprovedAt = &now
		update.ApprovedBy = &uc.credentials.ActorId
	case models.ReviewActionForwardToMuseum:
		newStatus = models.ChurchHeritageReview
		action = models.AuditChurchForwardHeritage
	default:
		return models.Church{}, fmt.Errorf("%w: %s", models.ErrInvalidReviewAction, attrs.Action)
	}
	update.Status = &newStatus

	if err := uc.repository.UpdateChurch(ctx, exec, update); err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to record review verdict")
	}
	updated, err := uc.repository.GetChurchById(ctx, exec, church.Id)
	if err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to read back reviewed church record")
	}

	metadata := map[string]any{}
	if attrs.Notes != "" {
		metadata["notes"] = attrs.Notes
	}
	uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
		Actor:        uc.credentials.AuditActor(),
		Action:       action,
		ResourceType: models.AuditResourceChurch,
		ResourceId:   updated.Id,
		ResourceName: updated.Name,
		Changes: []models.FieldChange{
			{Field: "status", OldValue: string(church.Status), NewValue: string(newStatus)},
		},
		Metadata: metadata,
	})
	return updated, nil
}

// ReviewHeritage applies the museum researcher's verdict: corrections to the
// historical fields, an optional status decision, and possibly a
// reclassification. Reclassifying to non_heritage overrides any status the
// researcher asked for and sends the record back to the standard pending
// queue.
func (uc ChurchWorkflowUsecase) ReviewHeritage(ctx context.Context, attrs models.HeritageReviewAttributes) (models.Church, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, attrs.ChurchId)
	if err != nil {
		return models.Church{}, err
	}
	if err := uc.enforceSecurity.HeritageReview(church); err != nil {
		return models.Church{}, err
	}

	now := time.Now()
	update := models.UpdateChurchAttributes{
		Id:                   church.Id,
		HistoricalBackground: attrs.HistoricalBackground,
		FoundingYear:         attrs.FoundingYear,
		Founders:             attrs.Founders,
		ArchitecturalStyle:   attrs.ArchitecturalStyle,
		ReligiousOrder:       attrs.ReligiousOrder,
		HeritageDeclaration:  attrs.HeritageDeclaration,
		HeritageValidation:   attrs.HeritageValidation,
		Classification:       attrs.Classification,
		Status:               attrs.Status,
		ReviewNotes:          attrs.ReviewNotes,
		ReviewedAt:           &now,
		HeritageReviewedBy:   &uc.credentials.ActorId,
	}

	reclassified := attrs.Classification != nil &&
		*attrs.Classification == models.ClassificationNonHeritage &&
		church.Classification.IsHeritage()
	if reclassified {
		update.Status = pure_utils.Ptr(models.ChurchPending)
		update.ReviewNotes = pure_utils.Ptr(pure_utils.PtrValueOrDefault(attrs.ReviewNotes,
			"Reclassified as non-heritage; returned to the standard review queue."))
	}

	auditChanges := heritageReviewChanges(church, update)
	if len(auditChanges) == 0 {
		auditChanges = []models.FieldChange{{Field: "heritage_review", NewValue: "reviewed"}}
	}

	if err := uc.repository.UpdateChurch(ctx, exec, update); err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to record heritage review")
	}
	if err := uc.discardStagedChanges(ctx, exec, church, update.Status); err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to discard staged changes")
	}
	updated, err := uc.repository.GetChurchById(ctx, exec, church.Id)
	if err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to read back heritage-reviewed church record")
	}

	action := models.AuditChurchHeritageUpdated
	if reclassified {
		action = models.AuditChurchReclassified
	} else if update.Status != nil && *update.Status == models.ChurchApproved && church.Status != models.ChurchApproved {
		action = models.AuditChurchApproved
	}
	uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
		Actor:        uc.credentials.AuditActor(),
		Action:       action,
		ResourceType: models.AuditResourceChurch,
		ResourceId:   updated.Id,
		ResourceName: updated.Name,
		Changes:      auditChanges,
	})
	return updated, nil
}

// UnpublishChurch pulls an approved record from the public site. The record
// keeps its content and moves to draft; resubmitting it later goes back
// through the standard queue.
func (uc ChurchWorkflowUsecase) UnpublishChurch(ctx context.Context, churchId, reason string) (models.Church, error) {
	exec := uc.executorFactory.NewExecutor()
	church, err := uc.repository.GetChurchById(ctx, exec, churchId)
	if err != nil {
		return models.Church{}, err
	}
	if err := uc.enforceSecurity.ReviewChurch(church); err != nil {
		return models.Church{}, err
	}
	if church.Status != models.ChurchApproved {
		return models.Church{}, fmt.Errorf(
			"only approved records can be unpublished, got status %s: %w",
			church.Status, models.BadParameterError)
	}

	now := time.Now()
	draft := models.ChurchDraft
	update := models.UpdateChurchAttributes{
		Id:              church.Id,
		Status:          &draft,
		UnpublishedAt:   &now,
		UnpublishReason: &reason,
	}
	if err := uc.repository.UpdateChurch(ctx, exec, update); err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to unpublish church record")
	}
	if err := uc.discardStagedChanges(ctx, exec, church, update.Status); err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to discard staged changes")
	}
	updated, err := uc.repository.GetChurchById(ctx, exec, church.Id)
	if err != nil {
		return models.Church{}, wrapUnexpected(ctx, err, "failed to read back unpublished church record")
	}

	uc.auditLogger.Log(ctx, models.CreateAuditLogEntryAttributes{
		Actor:        uc.credentials.AuditActor(),
		Action:       models.AuditChurchUnpublished,
		ResourceType: models.AuditResourceChurch,
		ResourceId:   updated.Id,
		ResourceName: updated.Name,
		Changes: []models.FieldChange{
			{Field: "status", OldValue: string(church.Status), NewValue: string(models.ChurchDraft)},
		},
		Metadata: map[string]any{"reason": reason},
	})
	return updated, nil
}

// discardStagedChanges drops the staged-edit payload when a record leaves the
// approved status. Staged edits only exist on published records; carrying
// them into draft or pending would resurface stale data on re-approval.
func (uc ChurchWorkflowUsecase) discardStagedChanges(ctx context.Context, exec repositories.Executor,
	church models.Church, newStatus *models.ChurchStatus,
) error {
	if church.PendingChanges == nil || church.Status != models.ChurchApproved {
		return nil
	}
	if newStatus == nil || *newStatus == models.ChurchApproved {
		return nil
	}
	return uc.repository.UpdateChurchPendingChanges(ctx, exec, church.Id, nil)
}

func (uc ChurchWorkflowUsecase) checkDuplicate(ctx context.Context, exec repositories.Executor,
	dioceseId, name, municipality, excludeId string,
) error {
	existing, err := uc.repository.GetChurchByNameAndMunicipality(ctx, exec, dioceseId, name, municipality, excludeId)
	if err != nil {
		return wrapUnexpected(ctx, err, "failed to check for duplicate church record")
	}
	if existing != nil {
		return fmt.Errorf("%s already exists in %s: %w", name, municipality, models.ConflictError)
	}
	return nil
}

func (uc ChurchWorkflowUsecase) dioceseScope(requested string) (string, error) {
	if uc.credentials.Role == models.ADMIN {
		return requested, nil
	}
	if requested != "" && requested != uc.credentials.DioceseId {
		return "", fmt.Errorf("actor does not belong to diocese %s: %w", requested, models.ForbiddenError)
	}
	return uc.credentials.DioceseId, nil
}

func renamed(changes []models.FormFieldChange) bool {
	for _, change := range changes {
		if change.Field == models.FieldName || change.Field == models.FieldMunicipality {
			return true
		}
	}
	return false
}

func fieldChanges(changes []models.FormFieldChange) []models.FieldChange {
	out := make([]models.FieldChange, len(changes))
	for i, change := range changes {
		out[i] = models.FieldChange{
			Field:    change.Field,
			OldValue: change.OldValue,
			NewValue: change.NewValue,
		}
	}
	return out
}

func heritageReviewChanges(church models.Church, update models.UpdateChurchAttributes) []models.FieldChange {
	var out []models.FieldChange
	add := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			out = append(out, models.FieldChange{Field: field, OldValue: oldValue, NewValue: newValue})
		}
	}
	if update.HistoricalBackground != nil {
		add(models.FieldHistoricalBackground, church.HistoricalBackground, *update.HistoricalBackground)
	}
	if update.FoundingYear != nil {
		add(models.FieldFoundingYear, fmt.Sprintf("%d", church.FoundingYear), fmt.Sprintf("%d", *update.FoundingYear))
	}
	if update.Founders != nil {
		add(models.FieldFounders, church.Founders, *update.Founders)
	}
	if update.ArchitecturalStyle != nil {
		add(models.FieldArchitecturalStyle, church.ArchitecturalStyle, *update.ArchitecturalStyle)
	}
	if update.ReligiousOrder != nil {
		add(models.FieldReligiousOrder, church.ReligiousOrder, *update.ReligiousOrder)
	}
	if update.HeritageDeclaration != nil {
		add(models.FieldHeritageDeclaration, church.HeritageDeclaration, *update.HeritageDeclaration)
	}
	if update.Classification != nil {
		add(models.FieldClassification, string(church.Classification), string(*update.Classification))
	}
	if update.Status != nil {
		add("status", string(church.Status), string(*update.Status))
	}
	return out
}
