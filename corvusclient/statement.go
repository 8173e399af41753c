package corvusclient

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Statement is a unit of SQL text optionally paired with positional or
// named arguments. Statements are opaque to the transaction layer, which
// forwards them to the underlying DatabaseClient unmodified.
type Statement struct {
	// SQL is the statement text. Parameter placeholders are `?` for
	// positional arguments and `:name`/`@name`/`$name` for named ones.
	SQL string

	// Args holds positional arguments, in placeholder order. Mutually
	// exclusive with NamedArgs.
	Args []interface{}

	// NamedArgs holds named arguments keyed by parameter name, without
	// the leading sigil. Mutually exclusive with Args.
	NamedArgs map[string]interface{}
}

// NewStatement creates a statement from bare SQL text.
func NewStatement(sql string) Statement {
	return Statement{SQL: sql}
}

// NewStatementWithArgs creates a statement from SQL text and positional
// arguments.
func NewStatementWithArgs(sql string, args ...interface{}) Statement {
	return Statement{SQL: sql, Args: args}
}

// NewStatementWithNamedArgs creates a statement from SQL text and named
// arguments.
func NewStatementWithNamedArgs(sql string, args map[string]interface{}) Statement {
	return Statement{SQL: sql, NamedArgs: args}
}

// String returns the statement's SQL text.
func (s Statement) String() string {
	return s.SQL
}

// statement wire forms:
//	"SELECT 1"                                  — no arguments
//	{"q": "… ?", "params": [1, "two"]}          — positional arguments
//	{"q": "… :a", "params": {"a": 1}}           — named arguments
type parameterizedStatement struct {
	Query  string      `json:"q"`
	Params interface{} `json:"params"`
}

// MarshalJSON implements json.Marshaler. A statement without arguments is
// encoded as a bare JSON string, matching the server's batch protocol.
func (s Statement) MarshalJSON() ([]byte, error) {
	if len(s.Args) != 0 && len(s.NamedArgs) != 0 {
		return nil, errors.Errorf("statement %q has both positional and named arguments", s.SQL)
	}
	switch {
	case len(s.Args) != 0:
		return json.Marshal(parameterizedStatement{Query: s.SQL, Params: s.Args})
	case len(s.NamedArgs) != 0:
		return json.Marshal(parameterizedStatement{Query: s.SQL, Params: s.NamedArgs})
	default:
		return json.Marshal(s.SQL)
	}
}
