// Package driving defines interfaces that external actors (CLI, TUI, file
// watcher) use to interact with core services. These are the "driving" ports
// in hexagonal architecture terminology - they drive the application.
//
// ConfigPersistence moves option values between the store and the config
// file; OptionService edits individual values. Implementations live in
// internal/core/services.
package driving
