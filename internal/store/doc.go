// Package store defines the task persistence contract and the errors shared by
// every implementation. The contract is storage-agnostic; the in-memory
// implementation lives in internal/platform/memory.
package store
