package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories/dbmodels"
)

func (repo *VisitaDbRepository) GetAuditLogEntry(ctx context.Context, exec Executor, id string) (models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditLogColumns...).
		From(dbmodels.TABLE_AUDIT_LOG).
		Where(squirrel.Eq{"id": id})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptAuditLogEntry)
}

// CreateAuditLogEntry appends one entry. The table is append-only: nothing in
// the codebase updates or deletes rows of it.
func (repo *VisitaDbRepository) CreateAuditLogEntry(ctx context.Context, exec Executor,
	attrs models.CreateAuditLogEntryAttributes,
) (string, error) {
	actor, err := json.Marshal(attrs.Actor)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal audit actor")
	}

	var changes any
	if len(attrs.Changes) > 0 {
		serialized, err := json.Marshal(attrs.Changes)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal audit changes")
		}
		changes = serialized
	}

	var metadata any
	if len(attrs.Metadata) > 0 {
		serialized, err := json.Marshal(attrs.Metadata)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal audit metadata")
		}
		metadata = serialized
	}

	entryId := uuid.NewString()
	err = ExecBuilder(ctx, exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_AUDIT_LOG).
			Columns(
				"id",
				"actor",
				"action",
				"resource_type",
				"resource_id",
				"resource_name",
				"changes",
				"metadata",
				"session_id",
			).
			Values(
				entryId,
				actor,
				attrs.Action,
				attrs.ResourceType,
				attrs.ResourceId,
				attrs.ResourceName,
				changes,
				metadata,
				attrs.SessionId,
			),
	)
	return entryId, err
}

func (repo *VisitaDbRepository) ListAuditLogEntries(ctx context.Context, exec Executor,
	filters models.AuditLogFilters, limit int, offsetId string,
) ([]models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditLogColumns...).
		From(dbmodels.TABLE_AUDIT_LOG).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit))

	if filters.DioceseId != "" {
		query = query.Where("actor->>'diocese_id' = ?", filters.DioceseId)
	}
	if offsetId != "" {
		cursor, err := repo.GetAuditLogEntry(ctx, exec, offsetId)
		if err != nil {
			return nil, errors.Wrap(err, "could not retrieve cursor entry")
		}
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.Id)
	}
	if filters.ActorId != "" {
		query = query.Where("actor->>'id' = ?", filters.ActorId)
	}
	if filters.Action != "" {
		query = query.Where(squirrel.Eq{"action": filters.Action})
	}
	if filters.ResourceType != "" {
		query = query.Where(squirrel.Eq{"resource_type": filters.ResourceType})
	}
	if filters.ResourceId != "" {
		query = query.Where(squirrel.Eq{"resource_id": filters.ResourceId})
	}
	if filters.From != nil {
		query = query.Where("created_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("created_at <= ?", *filters.To)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditLogEntry)
}
