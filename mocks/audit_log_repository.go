package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

type AuditLogRepository struct {
	mock.Mock
}

func (r *AuditLogRepository) ListAuditLogEntries(ctx context.Context, exec repositories.Executor,
	filters models.AuditLogFilters, limit int, offsetId string,
) ([]models.AuditLogEntry, error) {
	args := r.Called(ctx, exec, filters, limit, offsetId)
	return args.Get(0).([]models.AuditLogEntry), args.Error(1)
}

func (r *AuditLogRepository) GetAuditLogEntry(ctx context.Context, exec repositories.Executor,
	id string,
) (models.AuditLogEntry, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.AuditLogEntry), args.Error(1)
}
