// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigFile: JSON, TOML or YAML option document with atomic replace
//   - Watcher: fsnotify-based change notification for the option document
package file
