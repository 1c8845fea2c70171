// Package service contains the task use cases consumed by the delivery
// layers (HTTP API and CLI).
//
// The access path is layered: TaskRepository → TaskDataSource →
// store.TaskStore. Both layers are pass-through; the data source normalises
// Delete to a boolean, and the repository publishes a TaskChangedEvent after
// each successful mutation so caches such as PageCache can drop stale pages.
// Errors from the store are returned as the same value, so errors.Is keeps
// working at the outer layers.
//
// Authentication lives in the auth subpackage.
package service
