// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/amara-obi/course-gen/db/ent/schema"
	"github.com/amara-obi/course-gen/gen/ent/appsetting"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/gen/ent/courseeditor"
	"github.com/amara-obi/course-gen/gen/ent/generationjob"
	"github.com/amara-obi/course-gen/gen/ent/lesson"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appsettingFields := schema.AppSetting{}.Fields()
	_ = appsettingFields
	// appsettingDescKey is the schema descriptor for key field.
	appsettingDescKey := appsettingFields[0].Descriptor()
	// appsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	appsetting.KeyValidator = appsettingDescKey.Validators[0].(func(string) error)
	// appsettingDescUpdatedAt is the schema descriptor for updated_at field.
	appsettingDescUpdatedAt := appsettingFields[2].Descriptor()
	// appsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appsetting.DefaultUpdatedAt = appsettingDescUpdatedAt.Default.(func() time.Time)
	// appsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appsetting.UpdateDefaultUpdatedAt = appsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[1].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[2].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	// courseDescDifficulty is the schema descriptor for difficulty field.
	courseDescDifficulty := courseFields[3].Descriptor()
	// course.DefaultDifficulty holds the default value on creation for the difficulty field.
	course.DefaultDifficulty = courseDescDifficulty.Default.(string)
	// course.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	course.DifficultyValidator = courseDescDifficulty.Validators[0].(func(string) error)
	// courseDescDurationMinutes is the schema descriptor for duration_minutes field.
	courseDescDurationMinutes := courseFields[4].Descriptor()
	// course.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	course.DefaultDurationMinutes = courseDescDurationMinutes.Default.(int)
	// course.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	course.DurationMinutesValidator = courseDescDurationMinutes.Validators[0].(func(int) error)
	// courseDescStatus is the schema descriptor for status field.
	courseDescStatus := courseFields[8].Descriptor()
	// course.DefaultStatus holds the default value on creation for the status field.
	course.DefaultStatus = courseDescStatus.Default.(string)
	// courseDescSortOrder is the schema descriptor for sort_order field.
	courseDescSortOrder := courseFields[9].Descriptor()
	// course.DefaultSortOrder holds the default value on creation for the sort_order field.
	course.DefaultSortOrder = courseDescSortOrder.Default.(int)
	// courseDescFeatured is the schema descriptor for featured field.
	courseDescFeatured := courseFields[10].Descriptor()
	// course.DefaultFeatured holds the default value on creation for the featured field.
	course.DefaultFeatured = courseDescFeatured.Default.(bool)
	// courseDescOrganizationDomain is the schema descriptor for organization_domain field.
	courseDescOrganizationDomain := courseFields[12].Descriptor()
	// course.DefaultOrganizationDomain holds the default value on creation for the organization_domain field.
	course.DefaultOrganizationDomain = courseDescOrganizationDomain.Default.(string)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[13].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescUpdatedAt is the schema descriptor for updated_at field.
	courseDescUpdatedAt := courseFields[14].Descriptor()
	// course.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	course.DefaultUpdatedAt = courseDescUpdatedAt.Default.(func() time.Time)
	// course.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	course.UpdateDefaultUpdatedAt = courseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.DefaultID holds the default value on creation for the id field.
	course.DefaultID = courseDescID.Default.(func() uuid.UUID)
	courseeditorFields := schema.CourseEditor{}.Fields()
	_ = courseeditorFields
	// courseeditorDescRole is the schema descriptor for role field.
	courseeditorDescRole := courseeditorFields[3].Descriptor()
	// courseeditor.DefaultRole holds the default value on creation for the role field.
	courseeditor.DefaultRole = courseeditorDescRole.Default.(string)
	// courseeditorDescCreatedAt is the schema descriptor for created_at field.
	courseeditorDescCreatedAt := courseeditorFields[4].Descriptor()
	// courseeditor.DefaultCreatedAt holds the default value on creation for the created_at field.
	courseeditor.DefaultCreatedAt = courseeditorDescCreatedAt.Default.(func() time.Time)
	// courseeditorDescID is the schema descriptor for id field.
	courseeditorDescID := courseeditorFields[0].Descriptor()
	// courseeditor.DefaultID holds the default value on creation for the id field.
	courseeditor.DefaultID = courseeditorDescID.Default.(func() uuid.UUID)
	generationjobFields := schema.GenerationJob{}.Fields()
	_ = generationjobFields
	// generationjobDescCourseName is the schema descriptor for course_name field.
	generationjobDescCourseName := generationjobFields[1].Descriptor()
	// generationjob.CourseNameValidator is a validator for the "course_name" field. It is called by the builders before save.
	generationjob.CourseNameValidator = generationjobDescCourseName.Validators[0].(func(string) error)
	// generationjobDescDifficultyLevel is the schema descriptor for difficulty_level field.
	generationjobDescDifficultyLevel := generationjobFields[3].Descriptor()
	// generationjob.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	generationjob.DefaultDifficultyLevel = generationjobDescDifficultyLevel.Default.(string)
	// generationjob.DifficultyLevelValidator is a validator for the "difficulty_level" field. It is called by the builders before save.
	generationjob.DifficultyLevelValidator = generationjobDescDifficultyLevel.Validators[0].(func(string) error)
	// generationjobDescLessonCount is the schema descriptor for lesson_count field.
	generationjobDescLessonCount := generationjobFields[4].Descriptor()
	// generationjob.LessonCountValidator is a validator for the "lesson_count" field. It is called by the builders before save.
	generationjob.LessonCountValidator = generationjobDescLessonCount.Validators[0].(func(int) error)
	// generationjobDescIncludeQuiz is the schema descriptor for include_quiz field.
	generationjobDescIncludeQuiz := generationjobFields[5].Descriptor()
	// generationjob.DefaultIncludeQuiz holds the default value on creation for the include_quiz field.
	generationjob.DefaultIncludeQuiz = generationjobDescIncludeQuiz.Default.(bool)
	// generationjobDescIncludeAiTutor is the schema descriptor for include_ai_tutor field.
	generationjobDescIncludeAiTutor := generationjobFields[6].Descriptor()
	// generationjob.DefaultIncludeAiTutor holds the default value on creation for the include_ai_tutor field.
	generationjob.DefaultIncludeAiTutor = generationjobDescIncludeAiTutor.Default.(bool)
	// generationjobDescIncludeVideoLinks is the schema descriptor for include_video_links field.
	generationjobDescIncludeVideoLinks := generationjobFields[7].Descriptor()
	// generationjob.DefaultIncludeVideoLinks holds the default value on creation for the include_video_links field.
	generationjob.DefaultIncludeVideoLinks = generationjobDescIncludeVideoLinks.Default.(bool)
	// generationjobDescOrganizationDomain is the schema descriptor for organization_domain field.
	generationjobDescOrganizationDomain := generationjobFields[9].Descriptor()
	// generationjob.DefaultOrganizationDomain holds the default value on creation for the organization_domain field.
	generationjob.DefaultOrganizationDomain = generationjobDescOrganizationDomain.Default.(string)
	// generationjobDescStatus is the schema descriptor for status field.
	generationjobDescStatus := generationjobFields[10].Descriptor()
	// generationjob.DefaultStatus holds the default value on creation for the status field.
	generationjob.DefaultStatus = generationjobDescStatus.Default.(string)
	// generationjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	generationjob.StatusValidator = generationjobDescStatus.Validators[0].(func(string) error)
	// generationjobDescProgressPercent is the schema descriptor for progress_percent field.
	generationjobDescProgressPercent := generationjobFields[11].Descriptor()
	// generationjob.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	generationjob.DefaultProgressPercent = generationjobDescProgressPercent.Default.(int)
	// generationjob.ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	generationjob.ProgressPercentValidator = func() func(int) error {
		validators := generationjobDescProgressPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress_percent int) error {
			for _, fn := range fns {
				if err := fn(progress_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generationjobDescProgressMessage is the schema descriptor for progress_message field.
	generationjobDescProgressMessage := generationjobFields[12].Descriptor()
	// generationjob.DefaultProgressMessage holds the default value on creation for the progress_message field.
	generationjob.DefaultProgressMessage = generationjobDescProgressMessage.Default.(string)
	// generationjobDescCreatedAt is the schema descriptor for created_at field.
	generationjobDescCreatedAt := generationjobFields[16].Descriptor()
	// generationjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationjob.DefaultCreatedAt = generationjobDescCreatedAt.Default.(func() time.Time)
	// generationjobDescID is the schema descriptor for id field.
	generationjobDescID := generationjobFields[0].Descriptor()
	// generationjob.DefaultID holds the default value on creation for the id field.
	generationjob.DefaultID = generationjobDescID.Default.(func() uuid.UUID)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescDurationMinutes is the schema descriptor for duration_minutes field.
	lessonDescDurationMinutes := lessonFields[3].Descriptor()
	// lesson.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	lesson.DefaultDurationMinutes = lessonDescDurationMinutes.Default.(int)
	// lesson.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	lesson.DurationMinutesValidator = lessonDescDurationMinutes.Validators[0].(func(int) error)
	// lessonDescContent is the schema descriptor for content field.
	lessonDescContent := lessonFields[4].Descriptor()
	// lesson.DefaultContent holds the default value on creation for the content field.
	lesson.DefaultContent = lessonDescContent.Default.(string)
	// lessonDescSortOrder is the schema descriptor for sort_order field.
	lessonDescSortOrder := lessonFields[7].Descriptor()
	// lesson.DefaultSortOrder holds the default value on creation for the sort_order field.
	lesson.DefaultSortOrder = lessonDescSortOrder.Default.(int)
	// lessonDescStatus is the schema descriptor for status field.
	lessonDescStatus := lessonFields[8].Descriptor()
	// lesson.DefaultStatus holds the default value on creation for the status field.
	lesson.DefaultStatus = lessonDescStatus.Default.(string)
	// lessonDescQuizType is the schema descriptor for quiz_type field.
	lessonDescQuizType := lessonFields[11].Descriptor()
	// lesson.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	lesson.QuizTypeValidator = lessonDescQuizType.Validators[0].(func(string) error)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[16].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.DefaultID holds the default value on creation for the id field.
	lesson.DefaultID = lessonDescID.Default.(func() uuid.UUID)
}
