package corvusclient_test

import (
	"encoding/json"
	"testing"

	"github.com/corvusdb/corvus-client-go/corvusclient"
)

func TestStatementMarshalJSON(t *testing.T) {
	tests := []struct {
		name         string
		statement    corvusclient.Statement
		expectedJSON string
	}{
		{
			name:         "bare SQL marshals as a plain string",
			statement:    corvusclient.NewStatement("SELECT * FROM users"),
			expectedJSON: `"SELECT * FROM users"`,
		},
		{
			name: "positional arguments marshal as an array",
			statement: corvusclient.NewStatementWithArgs(
				"INSERT INTO users (name, age) VALUES (?, ?)", "John", 42),
			expectedJSON: `{"q":"INSERT INTO users (name, age) VALUES (?, ?)","params":["John",42]}`,
		},
		{
			name: "named arguments marshal as an object",
			statement: corvusclient.NewStatementWithNamedArgs(
				"DELETE FROM users WHERE name = :name",
				map[string]interface{}{"name": "Jane"}),
			expectedJSON: `{"q":"DELETE FROM users WHERE name = :name","params":{"name":"Jane"}}`,
		},
	}

	for _, test := range tests {
		marshaled, err := json.Marshal(test.statement)
		if err != nil {
			t.Fatalf("TestStatementMarshalJSON: %s: Marshal unexpectedly failed: %s",
				test.name, err)
		}
		if string(marshaled) != test.expectedJSON {
			t.Fatalf("TestStatementMarshalJSON: %s: unexpected JSON. Want: %s, got: %s",
				test.name, test.expectedJSON, marshaled)
		}
	}
}

func TestStatementMarshalJSONRejectsMixedArguments(t *testing.T) {
	statement := corvusclient.Statement{
		SQL:       "SELECT ?",
		Args:      []interface{}{1},
		NamedArgs: map[string]interface{}{"a": 1},
	}
	_, err := json.Marshal(statement)
	if err == nil {
		t.Fatalf("TestStatementMarshalJSONRejectsMixedArguments: expected marshaling " +
			"a statement with both positional and named arguments to fail")
	}
}
