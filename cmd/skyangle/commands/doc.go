// Package commands defines the skyangle CLI.
//
// Commands
//
//   - convert   Re-express numeric values from one unit in another
//   - worker    Serve ConvertAnglesWorkflow on a Temporal task queue
//
// # Configuration
//
// The root command loads configuration from SKYANGLE_* environment variables
// and then applies flags, so flags win. Logs go to stderr; command output
// goes to stdout.
package commands
