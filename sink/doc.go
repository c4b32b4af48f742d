// Package sink writes collected generation output to durable destinations.
//
// Sinks consume rowgen.Tables, whose iteration order guarantees a parent
// table before any table that only ever depended on it, so SQL inserts are
// foreign-key safe without sorting.
//
// Available sinks: CSV files, JSON-lines files, and any database/sql
// driver. The sqlite driver is wired up by cmd/synthgen; library users
// bring their own.
package sink
