// Package querylog keeps a durable, append-only log of translated queries in
// SQLite.
//
// Each query text is content-addressed: its ID is a domain-separated SHA-256
// of the NFC-normalized text, so writing the same text twice stores it once.
// Records are stamped with a logical sequence number that resumes from the
// highest stored value when a log is reopened. Reads order by seq, then by ID
// in binary collation, so listings are stable across runs.
package querylog
