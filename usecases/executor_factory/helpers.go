package executor_factory

import (
	"context"

	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

// helper for transactions whose callback returns a value and an error
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory ExecutorFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
