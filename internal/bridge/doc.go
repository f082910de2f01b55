// Package bridge provides the domain model and rules engine for the bridge
// crossing game. This package is UI-agnostic and deterministic: randomness
// enters only through the NumberGenerator handed to the Maker, and nothing
// here reads input, prints or logs.
package bridge
