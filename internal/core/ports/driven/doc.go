// Package driven defines the driven (outbound) ports: interfaces the core
// services use to reach infrastructure such as the record API, the milestone
// source and the config store. Adapters implement these interfaces.
package driven
