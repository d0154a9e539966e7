// Package commands provides the command implementations behind the snaparch CLI.
//
// Each command takes an *Env, which bundles the loaded configuration with the
// normalizer, rule catalog and classifier built from it, and returns a value
// from the ui/views package ready to be rendered. The CLI layer only parses
// arguments and picks a renderer.
package commands
