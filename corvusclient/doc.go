// Package corvusclient defines the client-side abstraction for executing
// statements against a Corvus database, and the interactive Transaction
// that sequences BEGIN/COMMIT/ROLLBACK over it. Concrete drivers live in
// subpackages; see httpclient for the JSON-over-HTTP one.
package corvusclient
