package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/corvusdb/corvus-client-go/corvusclient"
)

// shell is the interactive statement loop. Statements typed outside a
// transaction go straight through the client; `begin` opens an
// interactive transaction and routes subsequent statements through it
// until `commit` or `rollback`.
type shell struct {
	client  corvusclient.DatabaseClient
	timeout time.Duration

	tx *corvusclient.Transaction
}

func newShell(client corvusclient.DatabaseClient, timeout time.Duration) *shell {
	return &shell{client: client, timeout: timeout}
}

func (s *shell) run(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	for {
		fmt.Print(s.prompt())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" || line == ".exit" {
			break
		}

		err := s.handleLine(line)
		if err != nil {
			// Statement failures don't end the shell, and they don't
			// resolve an open transaction either; the user decides
			// whether to commit or roll back.
			fmt.Printf("error: %s\n", err)
		}
	}
	if s.tx != nil {
		fmt.Println("warning: exiting with an open transaction; " +
			"its fate is up to the server")
	}
	return scanner.Err()
}

func (s *shell) executeOnce(statement string) error {
	ctx, cancel := s.statementContext()
	defer cancel()

	resultSet, err := s.client.Execute(ctx, corvusclient.NewStatement(statement))
	if err != nil {
		return err
	}
	s.printResultSet(resultSet)
	return nil
}

func (s *shell) handleLine(line string) error {
	switch strings.ToLower(line) {
	case "begin":
		return s.begin()
	case "commit":
		return s.commit()
	case "rollback":
		return s.rollback()
	}

	ctx, cancel := s.statementContext()
	defer cancel()

	var resultSet *corvusclient.ResultSet
	var err error
	if s.tx != nil {
		resultSet, err = s.tx.Execute(ctx, corvusclient.NewStatement(line))
	} else {
		resultSet, err = s.client.Execute(ctx, corvusclient.NewStatement(line))
	}
	if err != nil {
		return err
	}
	s.printResultSet(resultSet)
	return nil
}

func (s *shell) begin() error {
	if s.tx != nil {
		return errors.New("a transaction is already open")
	}

	ctx, cancel := s.statementContext()
	defer cancel()

	tx, err := corvusclient.Begin(ctx, s.client)
	if err != nil {
		return err
	}
	s.tx = tx
	log.Debugf("Transaction opened")
	return nil
}

func (s *shell) commit() error {
	if s.tx == nil {
		return errors.New("no open transaction")
	}

	ctx, cancel := s.statementContext()
	defer cancel()

	// The transaction is resolved no matter how Commit fares, so the
	// shell drops its handle either way.
	err := s.tx.Commit(ctx)
	s.tx = nil
	if err != nil {
		return err
	}
	log.Debugf("Transaction committed")
	return nil
}

func (s *shell) rollback() error {
	if s.tx == nil {
		return errors.New("no open transaction")
	}

	ctx, cancel := s.statementContext()
	defer cancel()

	err := s.tx.Rollback(ctx)
	s.tx = nil
	if err != nil {
		return err
	}
	log.Debugf("Transaction rolled back")
	return nil
}

func (s *shell) statementContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *shell) prompt() string {
	if s.tx != nil {
		return "corvus*> "
	}
	return "corvus> "
}

func (s *shell) printResultSet(resultSet *corvusclient.ResultSet) {
	log.Debugf("Result set: %s", spew.Sdump(resultSet))

	if len(resultSet.Columns) == 0 {
		if resultSet.RowsAffected > 0 {
			fmt.Printf("%d row(s) affected\n", resultSet.RowsAffected)
		} else {
			fmt.Println("ok")
		}
		return
	}

	fmt.Println(strings.Join(resultSet.Columns, " | "))
	for _, row := range resultSet.Rows {
		values := make([]string, len(row.Values))
		for i, value := range row.Values {
			values[i] = fmt.Sprintf("%v", value)
		}
		fmt.Println(strings.Join(values, " | "))
	}
	fmt.Printf("(%d row(s))\n", len(resultSet.Rows))
}
