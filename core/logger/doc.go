// Package logger provides slog attribute helpers shared across the module's
// packages. Helpers return an empty slog.Attr for nil or zero input, so call
// sites never need explicit nil checks:
//
//	log.Error("cart save failed", logger.Error(err), logger.Component("cart"))
//
// Structured logging here is observability for the client kit's own
// operations (API calls, storage adapters); nothing in this package carries
// business meaning.
package logger
