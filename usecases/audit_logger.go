package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/repositories"
	"github.com/keej24/visita-bohol-system-sub001/usecases/executor_factory"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

const auditWriteTimeout = 5 * time.Second

type auditLogRepository interface {
	CreateAuditLogEntry(
		ctx context.Context,
		exec repositories.Executor,
		attrs models.CreateAuditLogEntryAttributes,
	) (string, error)
}

// AuditLogger appends an entry to the audit trail. Implementations must not
// fail the caller: a lost entry is logged and swallowed, never propagated.
type AuditLogger interface {
	Log(ctx context.Context, attrs models.CreateAuditLogEntryAttributes)
}

// BestEffortAuditLogger writes entries asynchronously on a detached context so
// that a slow or failing audit insert cannot block or roll back the primary
// write it describes.
type BestEffortAuditLogger struct {
	executorFactory executor_factory.ExecutorFactory
	repository      auditLogRepository
}

func NewBestEffortAuditLogger(
	executorFactory executor_factory.ExecutorFactory,
	repository auditLogRepository,
) BestEffortAuditLogger {
	return BestEffortAuditLogger{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (l BestEffortAuditLogger) Log(ctx context.Context, attrs models.CreateAuditLogEntryAttributes) {
	logger := utils.LoggerFromContext(ctx)
	detachedCtx := context.WithoutCancel(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(detachedCtx,
					fmt.Sprintf("recovered from panic while writing audit entry %s: %v", attrs.Action, r))
			}
		}()

		writeCtx, cancel := context.WithTimeout(detachedCtx, auditWriteTimeout)
		defer cancel()

		_, err := l.repository.CreateAuditLogEntry(writeCtx, l.executorFactory.NewExecutor(), attrs)
		if err != nil {
			logger.ErrorContext(writeCtx,
				fmt.Sprintf("failed to write audit entry %s on %s %s: %v",
					attrs.Action, attrs.ResourceType, attrs.ResourceId, err))
		}
	}()
}
