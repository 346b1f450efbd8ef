// Package sink delivers translated query texts to an output.
//
// A Printer receives one record per query as a start/print/end triple and
// names its destination through OutputID. QueryWriter drives a Printer with
// one record per Handle call. Printers are not safe for concurrent use; the
// caller serializes records.
package sink
