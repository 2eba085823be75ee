// Package services implements the driving port interfaces.
// Services contain the option persistence logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Outcomes are reported through
// the internal logger.
package services
