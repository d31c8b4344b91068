/*
Package observability provides Prometheus metrics for the FieldQuote engine.

Metrics are bound through domain.ConversationHooks, so the engine core stays
free of any metrics dependency. The serve command exposes them at /metrics.
*/
package observability
