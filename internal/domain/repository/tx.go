package repository

import "context"

// TxManager runs a function inside one database transaction. Repository
// calls made with the context passed to fn share that transaction, so the
// multi-statement settlement sequence commits or rolls back as a unit.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
