// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AppSetting is the predicate function for appsetting builders.
type AppSetting func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// CourseEditor is the predicate function for courseeditor builders.
type CourseEditor func(*sql.Selector)

// GenerationJob is the predicate function for generationjob builders.
type GenerationJob func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)
