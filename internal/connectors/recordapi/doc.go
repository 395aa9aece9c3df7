// Package recordapi is the HTTP client for the upstream record API that
// serves batch dashboards and per-patient document payloads. The payloads
// are treated as untrusted external data: optional fields default rather
// than propagating junk into the engine, and a 404 on the patient endpoint
// maps to domain.ErrNotFound so callers can tell "confirmed absent" from a
// transport failure.
package recordapi
