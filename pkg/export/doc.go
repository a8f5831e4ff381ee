// Package export converts collections between the native v2.1 format,
// Insomnia v4 exports, and OpenAPI 3.0 documents, and implements the
// export, validate, and import operations built on those conversions.
//
// Conversions are pure: the input collection is never mutated, and every
// converter produces a freshly built document. Converters that need
// identifiers or timestamps take them through ConvertOptions so exports
// can be made deterministic in tests.
package export
