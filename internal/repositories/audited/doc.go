// Package audited decorates repositories so that every tagged write has its
// audit fields filled from the request context before it reaches storage.
// Reads and untagged writes pass straight through to the wrapped repository.
package audited
