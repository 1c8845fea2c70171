// Package events lets the task services announce mutations without knowing
// who listens.
//
// The primary components are:
// - TaskChangedEvent: published after a task is created, updated or deleted
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
