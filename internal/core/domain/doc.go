// Package domain contains the core entities for chart review: questions,
// patients, documents with highlight spans, text fragments and timeline
// projections. Entities are constructed from upstream payloads, held in
// transient view state and never mutated in place; every transform produces
// new derived values.
package domain
