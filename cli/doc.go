// Package cli contains the command-line interface for superini.
//
// # Usage
//
//	superini input.sini output.ini
//	superini input.sini --dump
//	superini - --dump < input.sini
//
// # Compiler
//
// The CLI drives the lang package's compile pipeline directly: it has no
// subcommands, since Super INI is a one-shot batch compiler rather than an
// interactive tool. lang.Compile does the work; this package parses flags,
// configures logging, and decides where the compiled output goes.
//
// # Configuration
//
// A YAML config file (resolve) and a JSON config file (kong's built-in
// loader) are both consulted for flag defaults, in
// "$XDG_CONFIG_HOME/superini/config.{yaml,json}". Command-line flags
// always override file-sourced defaults.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-pretty: Enable colorized pretty console output
//   - --log-caller: Include caller information in log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o superini .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
