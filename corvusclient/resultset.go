package corvusclient

// ResultSet is the structured output of executing one statement.
type ResultSet struct {
	// Columns holds the result column names, in select-list order.
	Columns []string

	// Rows holds the result rows, in the order the server produced them.
	Rows []Row

	// RowsAffected is the number of rows changed by an
	// INSERT/UPDATE/DELETE statement, 0 otherwise.
	RowsAffected uint64

	// LastInsertRowID is the rowid of the most recently inserted row, if
	// the server reported one.
	LastInsertRowID int64
}

// Row is a single result row. Values appear in the same order as the
// result set's Columns.
type Row struct {
	Values []interface{}
}
