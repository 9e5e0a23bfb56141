// Package task defines the work item drained by the pqueue command: a named
// task with an integer priority, read from a YAML list.
package task

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTask = errors.New("task: invalid task")

// Task is a unit of work ordered by Priority. Lower values are served first.
type Task struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Priority int    `yaml:"priority" json:"priority"`
}

// Load decodes a YAML sequence of tasks from r. Tasks without an id are given
// a random UUID. An empty document yields no tasks.
func Load(r io.Reader) ([]Task, error) {
	var tasks []Task
	if err := yaml.NewDecoder(r).Decode(&tasks); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidTask, i)
		}
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
	}
	return tasks, nil
}

// ByPriority orders tasks by ascending priority.
func ByPriority(a, b Task) int {
	return cmp.Compare(a.Priority, b.Priority)
}

// ByPriorityDesc orders tasks by descending priority.
func ByPriorityDesc(a, b Task) int {
	return cmp.Compare(b.Priority, a.Priority)
}
