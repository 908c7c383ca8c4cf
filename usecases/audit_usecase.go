package usecases

import (
	"context"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/usecases/security"
)

type AuditLogListRepository interface {
	ListAuditLogEntries(ctx context.Context, exec repositories.Executor,
		filters models.AuditLogFilters, limit int, offsetId string) ([]models.AuditLogEntry, error)
	GetAuditLogEntry(ctx context.Context, exec repositories.Executor, id string) (models.AuditLogEntry, error)
}

type AuditUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      AuditLogListRepository
	credentials     models.Credentials
}

const defaultAuditPageSize = 50

func (uc AuditUsecase) ListAuditLog(ctx context.Context, filters models.AuditLogFilters,
	limit int, offsetId string,
) ([]models.AuditLogEntry, error) {
	if filters.DioceseId == "" {
		filters.DioceseId = uc.credentials.DioceseId
	}
	if err := uc.enforceSecurity.ReadAuditLog(filters.DioceseId); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = defaultAuditPageSize
	}
	entries, err := uc.repository.ListAuditLogEntries(ctx, uc.executorFactory.NewExecutor(), filters, limit, offsetId)
	return entries, wrapUnexpected(ctx, err, "failed to list audit log entries")
}

func (uc AuditUsecase) GetAuditLogEntry(ctx context.Context, entryId string) (models.AuditLogEntry, error) {
	entry, err := uc.repository.GetAuditLogEntry(ctx, uc.executorFactory.NewExecutor(), entryId)
	if err != nil {
		return models.AuditLogEntry{}, wrapUnexpected(ctx, err, "failed to get audit log entry")
	}
	if err := uc.enforceSecurity.ReadAuditLog(entry.Actor.DioceseId); err != nil {
		return models.AuditLogEntry{}, err
	}
	return entry, nil
}
