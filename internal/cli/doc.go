// Package cli defines the Cobra command tree for the mkbpf CLI. The root
// command scaffolds a new application; subcommands inspect the embedded
// template set, manage user config, and report the build version. Commands
// only handle flag parsing and output formatting; the work is done by the
// scaffold and config packages.
package cli
