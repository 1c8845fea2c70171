package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/client"
)

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrNotAuthenticated), client.IsStatus(err, http.StatusUnauthorized):
		fmt.Fprintln(errOut, "error: session rejected (run: taskctl login)")
		return ExitAuthError
	case client.IsStatus(err, http.StatusNotFound):
		fmt.Fprintln(errOut, "error: task not found")
		return ExitUserError
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		fmt.Fprintf(errOut, "error: %s\n", apiErr.Message)
		return ExitUserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return ExitBackendError
	}
}
