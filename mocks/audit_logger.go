package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/keej24/visita-bohol-system-sub001/models"
)

// AuditLogger is synchronous so tests can assert on the entries as soon as
// the operation returns.
type AuditLogger struct {
	mock.Mock
	Entries []models.CreateAuditLogEntryAttributes
}

func (l *AuditLogger) Log(ctx context.Context, attrs models.CreateAuditLogEntryAttributes) {
	l.Called(ctx, attrs)
	l.Entries = append(l.Entries, attrs)
}
