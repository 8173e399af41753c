package corvusclient

import "github.com/pkg/errors"

// ErrTransactionResolved is returned when Execute, Commit or Rollback is
// called on a transaction that has already been committed or rolled back.
var ErrTransactionResolved = errors.New("transaction is already resolved")

// IsTransactionResolvedError checks whether an error is an
// ErrTransactionResolved.
func IsTransactionResolvedError(err error) bool {
	return errors.Is(err, ErrTransactionResolved)
}
