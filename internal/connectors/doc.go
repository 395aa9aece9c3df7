// Package connectors holds clients for external record backends. Each
// connector fetches raw payloads from one upstream and resolves them into
// domain types, defaulting any untrusted fields it cannot interpret.
package connectors
