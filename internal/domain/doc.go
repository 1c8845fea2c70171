// Package domain contains the core business entities and value objects of the
// task board: tasks, partial task updates, and the static credential records
// used at login. It is independent of any storage or delivery mechanism.
package domain
