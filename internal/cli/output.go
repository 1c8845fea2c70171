package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/pagination"
)

// formatTask writes one task line: "[x] ID  TITLE".
func formatTask(w io.Writer, task domain.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "[%s] %-36s  %s\n", mark, task.ID, normalizeTitle(task.Title))
}

// formatTaskDetail writes every field of a task.
func formatTaskDetail(w io.Writer, task domain.Task) {
	fmt.Fprintf(w, "id:          %s\n", task.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "description: %s\n", task.Description)
	fmt.Fprintf(w, "completed:   %t\n", task.Completed)
}

// formatPage writes the tasks of a page followed by a footer with the totals.
func formatPage(w io.Writer, page *pagination.Page[domain.Task]) {
	for _, task := range page.Data {
		formatTask(w, task)
	}
	if len(page.Data) == 0 {
		fmt.Fprintln(w, "no tasks on this page")
	}
	fmt.Fprintf(w, "page %d/%d (%d tasks)\n", page.Page, page.TotalPages, page.Total)
}

// normalizeTitle keeps a title on one line; blank titles become "(untitled)".
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
