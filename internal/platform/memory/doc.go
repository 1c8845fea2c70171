// Package memory provides process-local implementations of the store
// interfaces. Nothing here survives a restart.
//
// MemoryTaskStore owns the task collection: an ordered slice guarded by a
// read/write mutex. It returns copies, so callers can never mutate stored
// tasks through a returned value.
package memory
