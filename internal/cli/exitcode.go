package cli

// Exit codes returned by Dispatcher.Run.
const (
	// ExitSuccess indicates successful completion.
	ExitSuccess = 0

	// ExitUserError indicates a user error (bad args, invalid input, not found).
	ExitUserError = 1

	// ExitAuthError indicates a missing or rejected session.
	ExitAuthError = 2

	// ExitBackendError indicates an API or network failure.
	ExitBackendError = 3
)
