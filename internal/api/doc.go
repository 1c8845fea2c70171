// Package api handles incoming HTTP requests, request validation, and
// response formatting. It adapts HTTP to the task repository, the page cache
// and the auth gate: handlers decode and validate input, call the service
// layer, and translate results and errors into JSON responses.
package api
