// Package driving defines the interfaces through which callers drive the
// core (primary/inbound ports). The CLI and TUI adapters depend on these
// interfaces; core services implement them.
package driving
