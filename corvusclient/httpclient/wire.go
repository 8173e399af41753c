package httpclient

import (
	"encoding/json"

	"github.com/corvusdb/corvus-client-go/corvusclient"
	"github.com/pkg/errors"
)

// The server's batch endpoint accepts a POST body of the form
//	{"statements": ["SELECT 1", {"q": "SELECT ?", "params": [1]}]}
// and answers with a JSON array holding one entry per statement, each
// either a result set or a statement-level error:
//	[{"results": {"columns": […], "rows": [[…]], …}}, {"error": {"message": "…"}}]

type batchRequest struct {
	Statements []corvusclient.Statement `json:"statements"`
}

type statementResponse struct {
	Results *wireResultSet `json:"results"`
	Error   *wireError     `json:"error"`
}

type wireError struct {
	Message string `json:"message"`
}

type wireResultSet struct {
	Columns         []string        `json:"columns"`
	Rows            [][]interface{} `json:"rows"`
	RowsAffected    uint64          `json:"rows_affected"`
	LastInsertRowID int64           `json:"last_insert_rowid"`
}

// parseBatchResponse decodes the server's response body for a batch of
// expectedLength statements into result sets, converting any
// statement-level error into a client error.
func parseBatchResponse(body []byte, expectedLength int) ([]*corvusclient.ResultSet, error) {
	var responses []statementResponse
	err := json.Unmarshal(body, &responses)
	if err != nil {
		return nil, errors.Wrap(err, "malformed server response")
	}
	if len(responses) != expectedLength {
		return nil, errors.Errorf("expected %d statement results in the server "+
			"response but got %d", expectedLength, len(responses))
	}

	resultSets := make([]*corvusclient.ResultSet, len(responses))
	for i, response := range responses {
		if response.Error != nil {
			return nil, convertServerError(response.Error)
		}
		if response.Results == nil {
			return nil, errors.Errorf("statement %d in the server response carries "+
				"neither results nor an error", i)
		}
		resultSets[i] = convertResultSet(response.Results)
	}
	return resultSets, nil
}

func convertResultSet(wire *wireResultSet) *corvusclient.ResultSet {
	rows := make([]corvusclient.Row, len(wire.Rows))
	for i, values := range wire.Rows {
		rows[i] = corvusclient.Row{Values: values}
	}
	return &corvusclient.ResultSet{
		Columns:         wire.Columns,
		Rows:            rows,
		RowsAffected:    wire.RowsAffected,
		LastInsertRowID: wire.LastInsertRowID,
	}
}
