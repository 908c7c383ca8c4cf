package executor_factory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/keej24/visita-bohol-system-sub001/repositories"
)

// ExecutorFactoryStub backs usecase tests with a pgxmock pool instead of a
// live database.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub PgExecutorStub) RawTx() pgx.Tx {
	return nil
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{stub.Mock}
}

func (stub ExecutorFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	return fn(PgExecutorStub{stub.Mock})
}
