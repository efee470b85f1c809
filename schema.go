package taskline

import "github.com/santhosh-tekuri/jsonschema/v5"

// rawTasksSchema describes the persisted task file: an object keyed by
// decimal task id, each value a full task record. Anything else is
// treated as corruption by Load.
const rawTasksSchema = `{
  "type": "object",
  "patternProperties": {
    "^[0-9]+$": {
      "type": "object",
      "required": ["id", "description", "status", "createdAt", "updatedAt"],
      "properties": {
        "id": {"type": "integer", "minimum": 1},
        "description": {"type": "string"},
        "status": {"enum": ["todo", "in-progress", "done"]},
        "createdAt": {"type": "string"},
        "updatedAt": {"type": "string"}
      }
    }
  },
  "additionalProperties": false
}`

var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", rawTasksSchema)
