package memory

import "github.com/phrazzld/taskboard-api/internal/domain"

// SeedTasks returns the initial task collection, ids "1" through "25" in order.
// Each call returns a fresh slice.
func SeedTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Learn React", Completed: true, Description: "Learn how to use React"},
		{ID: "2", Title: "Build Tasks App", Completed: true, Description: "Build a simple tasks app using React"},
		{ID: "3", Title: "Setup Vite", Completed: true, Description: "Set up Vite for React development"},
		{ID: "4", Title: "Add Tailwind", Completed: true, Description: "Add Tailwind CSS to the project"},
		{ID: "5", Title: "Write Tests", Completed: true, Description: "Write unit tests for the app"},
		{ID: "6", Title: "Configure ESLint", Completed: true, Description: "Configure ESLint for code quality"},
		{ID: "7", Title: "Setup Prettier", Completed: false, Description: "Add Prettier for code formatting"},
		{ID: "8", Title: "Create Task Model", Completed: true, Description: "Define Task interface and types"},
		{ID: "9", Title: "Implement Task List", Completed: false, Description: "Render list of tasks in UI"},
		{ID: "10", Title: "Add Task Form", Completed: true, Description: "Create form to add new tasks"},
		{ID: "11", Title: "Edit Task Feature", Completed: false, Description: "Allow users to edit tasks"},
		{ID: "12", Title: "Delete Task Feature", Completed: true, Description: "Implement task deletion"},
		{ID: "13", Title: "Toggle Task Status", Completed: false, Description: "Mark tasks as completed or pending"},
		{ID: "14", Title: "Persist Tasks", Completed: true, Description: "Store tasks in localStorage"},
		{ID: "15", Title: "Filter Tasks", Completed: false, Description: "Filter tasks by status"},
		{ID: "16", Title: "Sort Tasks", Completed: true, Description: "Sort tasks by title or status"},
		{ID: "17", Title: "Add Loading State", Completed: false, Description: "Show loading indicator"},
		{ID: "18", Title: "Handle Errors", Completed: true, Description: "Handle and display errors gracefully"},
		{ID: "19", Title: "Responsive Design", Completed: false, Description: "Make UI responsive for all screens"},
		{ID: "20", Title: "Improve Accessibility", Completed: true, Description: "Add ARIA labels and keyboard support"},
		{ID: "21", Title: "Mock API", Completed: false, Description: "Mock backend API using MSW"},
		{ID: "22", Title: "Integrate React Query", Completed: true, Description: "Use React Query for data fetching"},
		{ID: "23", Title: "Add Authentication", Completed: false, Description: "Simulate JWT authentication"},
		{ID: "24", Title: "Protect Routes", Completed: true, Description: "Restrict access to authenticated users"},
		{ID: "25", Title: "Deploy App", Completed: false, Description: "Deploy application to production"},
	}
}
