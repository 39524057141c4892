// Package matches exposes the reconciliation engine over HTTP.
//
// A run loads the Alma holdings export, the FileMaker export and the
// tracking sheet (from storage, or from the Digital Labs database when a
// connection is configured), reconciles them and publishes one CSV per
// result table to the storage bucket. The latest report is kept in memory
// for fast summary and table queries, and a scalar summary of every run
// is persisted to the reconciliation_runs table when a database is available.
//
// # HTTP Endpoints
//
//   - POST /matches/run : Runs a full reconciliation.
//   - GET /matches/summary : Returns the latest run summary.
//   - GET /matches/tables/{name} : Returns one result table of the latest run.
//   - GET /matches/history : Returns persisted run history.
package matches
