// Package client is a Go client for the taskboard HTTP API.
//
// Every call goes through a small fetch loop: a failed request is attempted
// again while retry.Decide allows it, and the bearer token is read from the
// TokenSource before each attempt, so a session refreshed between attempts
// is picked up without restarting the call.
package client
