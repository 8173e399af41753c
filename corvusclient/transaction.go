package corvusclient

import (
	"context"

	"github.com/pkg/errors"
)

// Transaction is an interactive database transaction.
//
// A transaction is opened with Begin, which issues BEGIN on the server,
// and stays open until exactly one of Commit or Rollback has been called.
// Both mark the transaction resolved the moment they are invoked, whether
// or not the server call succeeds, so a failed commit cannot be retried
// through the same handle; start a new transaction instead.
//
// A failed Execute does NOT resolve the transaction: the server-side
// transaction stays open and the caller must still commit or roll back
// explicitly.
//
// A transaction that is discarded without being resolved performs no
// cleanup; the server-side transaction remains open until the underlying
// connection is reused or closed. Use RollbackUnlessResolved in a defer
// when best-effort cleanup is wanted.
//
// A transaction is meant for single-owner sequential use over a client
// that carries no other concurrent transaction. It performs no internal
// locking, and interleaving two open transactions over one client
// produces undefined server-side semantics.
type Transaction struct {
	client DatabaseClient

	isResolved bool
}

// Begin starts a new interactive transaction by sending a single-element
// BEGIN batch through the given client. The batch form keeps BEGIN on the
// same pipelining path as any other client-side batches. If the batch
// call fails, the client's error is returned unchanged and no transaction
// is created.
//
// The client is borrowed, not owned: the transaction never closes it, and
// it must stay usable for as long as the transaction is open.
func Begin(ctx context.Context, client DatabaseClient) (*Transaction, error) {
	err := client.RawBatch(ctx, []Statement{NewStatement("BEGIN")})
	if err != nil {
		return nil, err
	}
	return &Transaction{client: client}, nil
}

// Execute executes a statement within the transaction and returns its
// result set. The statement is forwarded to the client verbatim and any
// client error is returned unchanged. On failure the transaction remains
// open — no automatic rollback is issued.
func (tx *Transaction) Execute(ctx context.Context, statement Statement) (*ResultSet, error) {
	if tx.isResolved {
		return nil, errors.Wrap(ErrTransactionResolved, "cannot execute in a resolved transaction")
	}
	return tx.client.Execute(ctx, statement)
}

// Commit commits the transaction by sending the literal COMMIT statement.
// The transaction is resolved unconditionally, even when the COMMIT call
// fails or is cancelled mid-flight, in which case the server-side outcome
// is ambiguous and the client's error is returned unchanged.
func (tx *Transaction) Commit(ctx context.Context) error {
	if tx.isResolved {
		return errors.Wrap(ErrTransactionResolved, "cannot commit a resolved transaction")
	}
	tx.isResolved = true

	_, err := tx.client.Execute(ctx, NewStatement("COMMIT"))
	return err
}

// Rollback rolls back the transaction by sending the literal ROLLBACK
// statement, cancelling any of its side effects. It carries the same
// resolve-unconditionally contract as Commit.
func (tx *Transaction) Rollback(ctx context.Context) error {
	if tx.isResolved {
		return errors.Wrap(ErrTransactionResolved, "cannot rollback a resolved transaction")
	}
	tx.isResolved = true

	_, err := tx.client.Execute(ctx, NewStatement("ROLLBACK"))
	return err
}

// RollbackUnlessResolved rolls back the transaction, unless it had
// already been resolved using either Commit or Rollback.
func (tx *Transaction) RollbackUnlessResolved(ctx context.Context) error {
	if tx.isResolved {
		return nil
	}
	return tx.Rollback(ctx)
}
