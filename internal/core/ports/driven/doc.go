// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - OptionStore: In-memory option values (host registry)
//   - ConfigFile: The option document on disk
//
// # Optional Interfaces
//
// These can be nil:
//
//   - CacheInvalidator: Clears host caches before each save
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
