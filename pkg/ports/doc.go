/*
Package ports defines the driven ports (interfaces) for the FieldQuote engine.

These interfaces decouple the core conversation logic from external
implementations, allowing the engine to work with various tradecraft sources
and catalog backends.

# Key Interfaces

  - TradecraftStore: Resolves a job type (or free-text keywords) to its
    tradecraft document (scoping questions + materials checklist).
  - CatalogSearcher: Full-text product search consumed on entry to the
    products phase. Only its request/response contract is specified here;
    the implementation is an external collaborator.
*/
package ports
