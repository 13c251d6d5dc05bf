package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/amara-obi/course-gen/constants"
)

// BuildCourseJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// expected generation result. We validate decoded model output against it
// locally; violations are logged for review, they do not fail the job
// beyond the parser's own rules.
func BuildCourseJSONSchema() map[string]any {
	lessonProps := map[string]any{
		"title":             map[string]any{"type": "string", "minLength": 1},
		"duration_minutes":  map[string]any{"type": "number", "minimum": 0},
		"content":           map[string]any{"type": "string"},
		"video_url":         map[string]any{"type": "string"},
		"resources":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"sort_order":        map[string]any{"type": "number"},
		"tutor_instruction": map[string]any{"type": []string{"string", "null"}},
		"tutor_prompt":      map[string]any{"type": []string{"string", "null"}},
		"quiz_type":         map[string]any{"type": "string", "enum": constants.QuizTypes()},
		"question":          map[string]any{"type": "string"},
		"answers": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"maxItems": constants.MaxQuizAnswers,
		},
		"correct_answer":  map[string]any{"type": "number", "minimum": 1},
		"correct_answers": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
	}

	courseProps := map[string]any{
		"title":            map[string]any{"type": "string", "minLength": 1},
		"description":      map[string]any{"type": "string"},
		"difficulty":       map[string]any{"type": "string"},
		"duration_minutes": map[string]any{"type": "number", "minimum": 0},
		"prerequisites":    map[string]any{"type": "string"},
		"tags":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"image":            map[string]any{"type": "string"},
		"status":           map[string]any{"type": "string"},
		"featured":         map[string]any{"type": "boolean"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"course": map[string]any{
				"type":       "object",
				"properties": courseProps,
				"required":   []string{"title"},
			},
			"lessons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":       "object",
					"properties": lessonProps,
					"required":   []string{"title", "content"},
				},
			},
		},
		"required": []string{"course", "lessons"},
	}
}

var (
	courseSchemaOnce sync.Once
	courseSchema     *jsonschema.Schema
	courseSchemaErr  error
)

func compiledCourseSchema() (*jsonschema.Schema, error) {
	courseSchemaOnce.Do(func() {
		b, err := json.Marshal(BuildCourseJSONSchema())
		if err != nil {
			courseSchemaErr = fmt.Errorf("marshal course schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("course_graph.json", bytes.NewReader(b)); err != nil {
			courseSchemaErr = fmt.Errorf("add course schema: %w", err)
			return
		}
		courseSchema, courseSchemaErr = compiler.Compile("course_graph.json")
	})
	return courseSchema, courseSchemaErr
}

// ValidateCourseGraphJSON checks serialized model output against the course
// schema. The schema compiles once per process.
func ValidateCourseGraphJSON(data []byte) error {
	schema, err := compiledCourseSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode for validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("course graph does not match schema: %w", err)
	}
	return nil
}
