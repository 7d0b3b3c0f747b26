// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// registrySchema constrains the registry document itself: every activity must
// carry an id, a task type, and a category, and task types follow kebab-case.
const registrySchema = `{
  "type": "object",
  "required": ["version", "activities"],
  "properties": {
    "version": {"type": "string"},
    "lastUpdated": {"type": "string"},
    "activities": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "taskType", "category"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "taskType": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
          "category": {"type": "string", "minLength": 1},
          "errorCodes": {
            "type": "array",
            "items": {"type": "string", "pattern": "^[A-Z0-9_]+$"}
          },
          "retries": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

// Load reads and validates the activity registry document at path.
func Load(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates a registry document against the registry schema and
// unmarshals it. Duplicate task types are rejected.
func Parse(data []byte) (*ActivityRegistry, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(registrySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("invalid registry document: %s", result.Errors()[0].String())
	}

	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("unmarshal registry: %w", err)
	}

	seen := make(map[string]bool, len(reg.Activities))
	for _, a := range reg.Activities {
		if seen[a.TaskType] {
			return nil, fmt.Errorf("duplicate task type %q in registry", a.TaskType)
		}
		seen[a.TaskType] = true
	}

	return &reg, nil
}

// ByTaskType returns the activity registered for the given task type.
func (r *ActivityRegistry) ByTaskType(taskType string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.TaskType == taskType {
			return a, true
		}
	}
	return Activity{}, false
}

// TaskTypes lists every registered task type in document order.
func (r *ActivityRegistry) TaskTypes() []string {
	out := make([]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		out = append(out, a.TaskType)
	}
	return out
}

// ByCategory returns all activities in the given category, in document order.
func (r *ActivityRegistry) ByCategory(category string) []Activity {
	var out []Activity
	for _, a := range r.Activities {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}
