package components

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/pthm/compkit"
)

// Todo is a single task shown on the example page.
type Todo struct {
	ID       int
	Title    string
	Done     bool
	Priority string
}

// TodoList renders todos as a list with a count badge appended.
func TodoList(todos []Todo, compact bool) (templ.Component, error) {
	items := make([]templ.Component, 0, len(todos))
	for _, todo := range todos {
		item, err := TodoItem(todo)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	badge, err := C.Badge.Render(compkit.Call{Content: compkit.Text(fmt.Sprintf("%d open", open(todos)))})
	if err != nil {
		return nil, err
	}

	call := compkit.Call{
		Content: compkit.Fragment(items...),
		Options: compkit.Options{compkit.KeyAppend: badge},
	}
	if compact {
		call.Variants = []string{"compact"}
	}
	return C.TodoList.Render(call)
}

// TodoItem renders one todo with its state as option classes.
func TodoItem(todo Todo) (templ.Component, error) {
	opts := compkit.Options{
		"done":    todo.Done,
		"id":      fmt.Sprintf("todo-%d", todo.ID),
		"data-id": todo.ID,
	}
	if todo.Priority != "" {
		opts["priority"] = todo.Priority
	}
	return C.TodoItem.Render(compkit.Call{Content: compkit.Text(todo.Title), Options: opts})
}

func open(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Done {
			n++
		}
	}
	return n
}
