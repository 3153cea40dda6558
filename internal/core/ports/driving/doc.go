// Package driving defines the inbound ports of the pipeline core:
// the services the CLI and TUI adapters call into.
package driving
