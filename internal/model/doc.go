// Package model defines the domain types and value objects for the
// devlaunch CLI.
//
// This package contains pure data structures with no external dependencies:
// the ServiceTarget enumeration (which dev server to launch), the
// ServiceState lifecycle values used by the status command, and the
// CLIError type that carries process exit codes from domain code up to
// the CLI layer.
package model
