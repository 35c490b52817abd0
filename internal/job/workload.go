// Package job loads task sets and enforces the caller-side contract the
// scheduler engine relies on.
package job

import (
	"errors"
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"

	"rqsim/internal/sched"
)

// Workload is a task set plus the algorithm to run it with.
type Workload struct {
	Algorithm string       `yaml:"algorithm" json:"algorithm"`
	Tasks     []sched.Task `yaml:"tasks" json:"tasks"`
}

// LoadFile reads a workload from a YAML or JSON file.
func LoadFile(path string) (Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Workload{}, fmt.Errorf("read workload: %w", err)
	}
	w, err := Parse(data)
	if err != nil {
		return Workload{}, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Parse decodes a workload. JSON input is accepted as YAML.
func Parse(data []byte) (Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Workload{}, fmt.Errorf("parse workload: %w", err)
	}
	return w, nil
}

// Validate checks every task and reports all problems at once. The
// returned error matches sched.ErrInvalidInput.
func Validate(tasks []sched.Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: no tasks", sched.ErrInvalidInput)
	}

	var errs []error
	seen := make(map[sched.TaskID]int, len(tasks))
	for i, t := range tasks {
		name := string(t.ID)
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			errs = append(errs, fmt.Errorf("task %s: id is required", name))
		}
		if t.Arrival < 0 {
			errs = append(errs, fmt.Errorf("task %s: arrival must be >= 0, got %d", name, t.Arrival))
		}
		if t.Burst < 1 {
			errs = append(errs, fmt.Errorf("task %s: burst must be >= 1, got %d", name, t.Burst))
		}
		if t.Priority < 1 {
			errs = append(errs, fmt.Errorf("task %s: priority must be >= 1, got %d", name, t.Priority))
		}
		if t.ID != "" {
			if first, dup := seen[t.ID]; dup {
				errs = append(errs, fmt.Errorf("task %s: duplicate id (first seen at #%d)", name, first+1))
			} else {
				seen[t.ID] = i
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", sched.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// Resolve picks the workload's algorithm, falling back to def when the
// workload names none.
func (w Workload) Resolve(def string) (sched.Algorithm, error) {
	token := w.Algorithm
	if token == "" {
		token = def
	}
	return sched.ParseAlgorithm(token)
}
