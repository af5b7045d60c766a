// Package cli defines the Cobra command tree for the right CLI. Each file
// in this package registers one top-level command (init, identity, doctor,
// config, version) with the root command. Commands capture the host
// environment once and hand explicit directories to the internal packages,
// which do the actual work.
package cli
