// Package driving defines the driving (inbound) ports: the service
// interfaces consumed by the CLI, TUI and MCP adapters.
package driving
