package main

import (
	"context"
	"strings"
	"time"
	"testing"

	"github.com/corvusdb/corvus-client-go/corvusclient"
)

type fakeClient struct {
	calls []string
}

func (c *fakeClient) Execute(_ context.Context, statement corvusclient.Statement) (
	*corvusclient.ResultSet, error) {

	c.calls = append(c.calls, "execute:"+statement.SQL)
	return &corvusclient.ResultSet{}, nil
}

func (c *fakeClient) RawBatch(_ context.Context, statements []corvusclient.Statement) error {
	sqls := make([]string, len(statements))
	for i, statement := range statements {
		sqls[i] = statement.SQL
	}
	c.calls = append(c.calls, "rawBatch:"+strings.Join(sqls, ","))
	return nil
}

func TestShellTransactionCommands(t *testing.T) {
	client := &fakeClient{}
	s := newShell(client, time.Second)

	lines := []string{
		"begin",
		"INSERT INTO users (name) VALUES ('John')",
		"commit",
		"SELECT 1",
	}
	for _, line := range lines {
		err := s.handleLine(line)
		if err != nil {
			t.Fatalf("TestShellTransactionCommands: handleLine(%q) unexpectedly "+
				"failed: %s", line, err)
		}
	}
	if s.tx != nil {
		t.Fatalf("TestShellTransactionCommands: expected no open transaction after commit")
	}

	expectedCalls := []string{
		"rawBatch:BEGIN",
		"execute:INSERT INTO users (name) VALUES ('John')",
		"execute:COMMIT",
		"execute:SELECT 1",
	}
	if len(client.calls) != len(expectedCalls) {
		t.Fatalf("TestShellTransactionCommands: expected %d client calls but got %d: %v",
			len(expectedCalls), len(client.calls), client.calls)
	}
	for i, call := range client.calls {
		if call != expectedCalls[i] {
			t.Fatalf("TestShellTransactionCommands: unexpected client call at index %d. "+
				"Want: %s, got: %s", i, expectedCalls[i], call)
		}
	}
}

func TestShellRejectsDanglingTransactionCommands(t *testing.T) {
	s := newShell(&fakeClient{}, time.Second)

	if err := s.commit(); err == nil {
		t.Fatalf("TestShellRejectsDanglingTransactionCommands: expected commit " +
			"without an open transaction to fail")
	}
	if err := s.rollback(); err == nil {
		t.Fatalf("TestShellRejectsDanglingTransactionCommands: expected rollback " +
			"without an open transaction to fail")
	}

	if err := s.begin(); err != nil {
		t.Fatalf("TestShellRejectsDanglingTransactionCommands: begin unexpectedly "+
			"failed: %s", err)
	}
	if err := s.begin(); err == nil {
		t.Fatalf("TestShellRejectsDanglingTransactionCommands: expected a second " +
			"begin to fail while a transaction is open")
	}
}
