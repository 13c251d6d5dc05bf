// Code generated by ent, DO NOT EDIT.

package generationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/amara-obi/course-gen/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldID, id))
}

// CourseName applies equality check predicate on the "course_name" field. It's identical to CourseNameEQ.
func CourseName(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCourseName, v))
}

// CourseDescription applies equality check predicate on the "course_description" field. It's identical to CourseDescriptionEQ.
func CourseDescription(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCourseDescription, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldDifficultyLevel, v))
}

// LessonCount applies equality check predicate on the "lesson_count" field. It's identical to LessonCountEQ.
func LessonCount(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldLessonCount, v))
}

// IncludeQuiz applies equality check predicate on the "include_quiz" field. It's identical to IncludeQuizEQ.
func IncludeQuiz(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldIncludeQuiz, v))
}

// IncludeAiTutor applies equality check predicate on the "include_ai_tutor" field. It's identical to IncludeAiTutorEQ.
func IncludeAiTutor(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldIncludeAiTutor, v))
}

// IncludeVideoLinks applies equality check predicate on the "include_video_links" field. It's identical to IncludeVideoLinksEQ.
func IncludeVideoLinks(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldIncludeVideoLinks, v))
}

// RequesterID applies equality check predicate on the "requester_id" field. It's identical to RequesterIDEQ.
func RequesterID(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldRequesterID, v))
}

// OrganizationDomain applies equality check predicate on the "organization_domain" field. It's identical to OrganizationDomainEQ.
func OrganizationDomain(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldOrganizationDomain, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStatus, v))
}

// ProgressPercent applies equality check predicate on the "progress_percent" field. It's identical to ProgressPercentEQ.
func ProgressPercent(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldProgressPercent, v))
}

// ProgressMessage applies equality check predicate on the "progress_message" field. It's identical to ProgressMessageEQ.
func ProgressMessage(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldProgressMessage, v))
}

// ResultCourseID applies equality check predicate on the "result_course_id" field. It's identical to ResultCourseIDEQ.
func ResultCourseID(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldResultCourseID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CourseNameEQ applies the EQ predicate on the "course_name" field.
func CourseNameEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCourseName, v))
}

// CourseNameNEQ applies the NEQ predicate on the "course_name" field.
func CourseNameNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCourseName, v))
}

// CourseNameIn applies the In predicate on the "course_name" field.
func CourseNameIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCourseName, vs...))
}

// CourseNameNotIn applies the NotIn predicate on the "course_name" field.
func CourseNameNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCourseName, vs...))
}

// CourseNameGT applies the GT predicate on the "course_name" field.
func CourseNameGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCourseName, v))
}

// CourseNameGTE applies the GTE predicate on the "course_name" field.
func CourseNameGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCourseName, v))
}

// CourseNameLT applies the LT predicate on the "course_name" field.
func CourseNameLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCourseName, v))
}

// CourseNameLTE applies the LTE predicate on the "course_name" field.
func CourseNameLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCourseName, v))
}

// CourseNameContains applies the Contains predicate on the "course_name" field.
func CourseNameContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldCourseName, v))
}

// CourseNameHasPrefix applies the HasPrefix predicate on the "course_name" field.
func CourseNameHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldCourseName, v))
}

// CourseNameHasSuffix applies the HasSuffix predicate on the "course_name" field.
func CourseNameHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldCourseName, v))
}

// CourseNameEqualFold applies the EqualFold predicate on the "course_name" field.
func CourseNameEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldCourseName, v))
}

// CourseNameContainsFold applies the ContainsFold predicate on the "course_name" field.
func CourseNameContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldCourseName, v))
}

// CourseDescriptionEQ applies the EQ predicate on the "course_description" field.
func CourseDescriptionEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCourseDescription, v))
}

// CourseDescriptionNEQ applies the NEQ predicate on the "course_description" field.
func CourseDescriptionNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCourseDescription, v))
}

// CourseDescriptionIn applies the In predicate on the "course_description" field.
func CourseDescriptionIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCourseDescription, vs...))
}

// CourseDescriptionNotIn applies the NotIn predicate on the "course_description" field.
func CourseDescriptionNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCourseDescription, vs...))
}

// CourseDescriptionGT applies the GT predicate on the "course_description" field.
func CourseDescriptionGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCourseDescription, v))
}

// CourseDescriptionGTE applies the GTE predicate on the "course_description" field.
func CourseDescriptionGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCourseDescription, v))
}

// CourseDescriptionLT applies the LT predicate on the "course_description" field.
func CourseDescriptionLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCourseDescription, v))
}

// CourseDescriptionLTE applies the LTE predicate on the "course_description" field.
func CourseDescriptionLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCourseDescription, v))
}

// CourseDescriptionContains applies the Contains predicate on the "course_description" field.
func CourseDescriptionContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldCourseDescription, v))
}

// CourseDescriptionHasPrefix applies the HasPrefix predicate on the "course_description" field.
func CourseDescriptionHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldCourseDescription, v))
}

// CourseDescriptionHasSuffix applies the HasSuffix predicate on the "course_description" field.
func CourseDescriptionHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldCourseDescription, v))
}

// CourseDescriptionEqualFold applies the EqualFold predicate on the "course_description" field.
func CourseDescriptionEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldCourseDescription, v))
}

// CourseDescriptionContainsFold applies the ContainsFold predicate on the "course_description" field.
func CourseDescriptionContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldCourseDescription, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldDifficultyLevel, v))
}

// DifficultyLevelContains applies the Contains predicate on the "difficulty_level" field.
func DifficultyLevelContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldDifficultyLevel, v))
}

// DifficultyLevelHasPrefix applies the HasPrefix predicate on the "difficulty_level" field.
func DifficultyLevelHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldDifficultyLevel, v))
}

// DifficultyLevelHasSuffix applies the HasSuffix predicate on the "difficulty_level" field.
func DifficultyLevelHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldDifficultyLevel, v))
}

// DifficultyLevelEqualFold applies the EqualFold predicate on the "difficulty_level" field.
func DifficultyLevelEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldDifficultyLevel, v))
}

// DifficultyLevelContainsFold applies the ContainsFold predicate on the "difficulty_level" field.
func DifficultyLevelContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldDifficultyLevel, v))
}

// LessonCountEQ applies the EQ predicate on the "lesson_count" field.
func LessonCountEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldLessonCount, v))
}

// LessonCountNEQ applies the NEQ predicate on the "lesson_count" field.
func LessonCountNEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldLessonCount, v))
}

// LessonCountIn applies the In predicate on the "lesson_count" field.
func LessonCountIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldLessonCount, vs...))
}

// LessonCountNotIn applies the NotIn predicate on the "lesson_count" field.
func LessonCountNotIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldLessonCount, vs...))
}

// LessonCountGT applies the GT predicate on the "lesson_count" field.
func LessonCountGT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldLessonCount, v))
}

// LessonCountGTE applies the GTE predicate on the "lesson_count" field.
func LessonCountGTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldLessonCount, v))
}

// LessonCountLT applies the LT predicate on the "lesson_count" field.
func LessonCountLT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldLessonCount, v))
}

// LessonCountLTE applies the LTE predicate on the "lesson_count" field.
func LessonCountLTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldLessonCount, v))
}

// IncludeQuizEQ applies the EQ predicate on the "include_quiz" field.
func IncludeQuizEQ(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldIncludeQuiz, v))
}

// IncludeQuizNEQ applies the NEQ predicate on the "include_quiz" field.
func IncludeQuizNEQ(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldIncludeQuiz, v))
}

// IncludeAiTutorEQ applies the EQ predicate on the "include_ai_tutor" field.
func IncludeAiTutorEQ(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldIncludeAiTutor, v))
}

// IncludeAiTutorNEQ applies the NEQ predicate on the "include_ai_tutor" field.
func IncludeAiTutorNEQ(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldIncludeAiTutor, v))
}

// IncludeVideoLinksEQ applies the EQ predicate on the "include_video_links" field.
func IncludeVideoLinksEQ(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldIncludeVideoLinks, v))
}

// IncludeVideoLinksNEQ applies the NEQ predicate on the "include_video_links" field.
func IncludeVideoLinksNEQ(v bool) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldIncludeVideoLinks, v))
}

// RequesterIDEQ applies the EQ predicate on the "requester_id" field.
func RequesterIDEQ(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterIDNEQ applies the NEQ predicate on the "requester_id" field.
func RequesterIDNEQ(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldRequesterID, v))
}

// RequesterIDIn applies the In predicate on the "requester_id" field.
func RequesterIDIn(vs ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldRequesterID, vs...))
}

// RequesterIDNotIn applies the NotIn predicate on the "requester_id" field.
func RequesterIDNotIn(vs ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldRequesterID, vs...))
}

// RequesterIDGT applies the GT predicate on the "requester_id" field.
func RequesterIDGT(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldRequesterID, v))
}

// RequesterIDGTE applies the GTE predicate on the "requester_id" field.
func RequesterIDGTE(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldRequesterID, v))
}

// RequesterIDLT applies the LT predicate on the "requester_id" field.
func RequesterIDLT(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldRequesterID, v))
}

// RequesterIDLTE applies the LTE predicate on the "requester_id" field.
func RequesterIDLTE(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldRequesterID, v))
}

// OrganizationDomainEQ applies the EQ predicate on the "organization_domain" field.
func OrganizationDomainEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldOrganizationDomain, v))
}

// OrganizationDomainNEQ applies the NEQ predicate on the "organization_domain" field.
func OrganizationDomainNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldOrganizationDomain, v))
}

// OrganizationDomainIn applies the In predicate on the "organization_domain" field.
func OrganizationDomainIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldOrganizationDomain, vs...))
}

// OrganizationDomainNotIn applies the NotIn predicate on the "organization_domain" field.
func OrganizationDomainNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldOrganizationDomain, vs...))
}

// OrganizationDomainGT applies the GT predicate on the "organization_domain" field.
func OrganizationDomainGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldOrganizationDomain, v))
}

// OrganizationDomainGTE applies the GTE predicate on the "organization_domain" field.
func OrganizationDomainGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldOrganizationDomain, v))
}

// OrganizationDomainLT applies the LT predicate on the "organization_domain" field.
func OrganizationDomainLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldOrganizationDomain, v))
}

// OrganizationDomainLTE applies the LTE predicate on the "organization_domain" field.
func OrganizationDomainLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldOrganizationDomain, v))
}

// OrganizationDomainContains applies the Contains predicate on the "organization_domain" field.
func OrganizationDomainContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldOrganizationDomain, v))
}

// OrganizationDomainHasPrefix applies the HasPrefix predicate on the "organization_domain" field.
func OrganizationDomainHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldOrganizationDomain, v))
}

// OrganizationDomainHasSuffix applies the HasSuffix predicate on the "organization_domain" field.
func OrganizationDomainHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldOrganizationDomain, v))
}

// OrganizationDomainEqualFold applies the EqualFold predicate on the "organization_domain" field.
func OrganizationDomainEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldOrganizationDomain, v))
}

// OrganizationDomainContainsFold applies the ContainsFold predicate on the "organization_domain" field.
func OrganizationDomainContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldOrganizationDomain, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldStatus, v))
}

// ProgressPercentEQ applies the EQ predicate on the "progress_percent" field.
func ProgressPercentEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldProgressPercent, v))
}

// ProgressPercentNEQ applies the NEQ predicate on the "progress_percent" field.
func ProgressPercentNEQ(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldProgressPercent, v))
}

// ProgressPercentIn applies the In predicate on the "progress_percent" field.
func ProgressPercentIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldProgressPercent, vs...))
}

// ProgressPercentNotIn applies the NotIn predicate on the "progress_percent" field.
func ProgressPercentNotIn(vs ...int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldProgressPercent, vs...))
}

// ProgressPercentGT applies the GT predicate on the "progress_percent" field.
func ProgressPercentGT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldProgressPercent, v))
}

// ProgressPercentGTE applies the GTE predicate on the "progress_percent" field.
func ProgressPercentGTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldProgressPercent, v))
}

// ProgressPercentLT applies the LT predicate on the "progress_percent" field.
func ProgressPercentLT(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldProgressPercent, v))
}

// ProgressPercentLTE applies the LTE predicate on the "progress_percent" field.
func ProgressPercentLTE(v int) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldProgressPercent, v))
}

// ProgressMessageEQ applies the EQ predicate on the "progress_message" field.
func ProgressMessageEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldProgressMessage, v))
}

// ProgressMessageNEQ applies the NEQ predicate on the "progress_message" field.
func ProgressMessageNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldProgressMessage, v))
}

// ProgressMessageIn applies the In predicate on the "progress_message" field.
func ProgressMessageIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldProgressMessage, vs...))
}

// ProgressMessageNotIn applies the NotIn predicate on the "progress_message" field.
func ProgressMessageNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldProgressMessage, vs...))
}

// ProgressMessageGT applies the GT predicate on the "progress_message" field.
func ProgressMessageGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldProgressMessage, v))
}

// ProgressMessageGTE applies the GTE predicate on the "progress_message" field.
func ProgressMessageGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldProgressMessage, v))
}

// ProgressMessageLT applies the LT predicate on the "progress_message" field.
func ProgressMessageLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldProgressMessage, v))
}

// ProgressMessageLTE applies the LTE predicate on the "progress_message" field.
func ProgressMessageLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldProgressMessage, v))
}

// ProgressMessageContains applies the Contains predicate on the "progress_message" field.
func ProgressMessageContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldProgressMessage, v))
}

// ProgressMessageHasPrefix applies the HasPrefix predicate on the "progress_message" field.
func ProgressMessageHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldProgressMessage, v))
}

// ProgressMessageHasSuffix applies the HasSuffix predicate on the "progress_message" field.
func ProgressMessageHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldProgressMessage, v))
}

// ProgressMessageEqualFold applies the EqualFold predicate on the "progress_message" field.
func ProgressMessageEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldProgressMessage, v))
}

// ProgressMessageContainsFold applies the ContainsFold predicate on the "progress_message" field.
func ProgressMessageContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldProgressMessage, v))
}

// GeneratedPayloadIsNil applies the IsNil predicate on the "generated_payload" field.
func GeneratedPayloadIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldGeneratedPayload))
}

// GeneratedPayloadNotNil applies the NotNil predicate on the "generated_payload" field.
func GeneratedPayloadNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldGeneratedPayload))
}

// ResultCourseIDEQ applies the EQ predicate on the "result_course_id" field.
func ResultCourseIDEQ(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldResultCourseID, v))
}

// ResultCourseIDNEQ applies the NEQ predicate on the "result_course_id" field.
func ResultCourseIDNEQ(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldResultCourseID, v))
}

// ResultCourseIDIn applies the In predicate on the "result_course_id" field.
func ResultCourseIDIn(vs ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldResultCourseID, vs...))
}

// ResultCourseIDNotIn applies the NotIn predicate on the "result_course_id" field.
func ResultCourseIDNotIn(vs ...uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldResultCourseID, vs...))
}

// ResultCourseIDGT applies the GT predicate on the "result_course_id" field.
func ResultCourseIDGT(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldResultCourseID, v))
}

// ResultCourseIDGTE applies the GTE predicate on the "result_course_id" field.
func ResultCourseIDGTE(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldResultCourseID, v))
}

// ResultCourseIDLT applies the LT predicate on the "result_course_id" field.
func ResultCourseIDLT(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldResultCourseID, v))
}

// ResultCourseIDLTE applies the LTE predicate on the "result_course_id" field.
func ResultCourseIDLTE(v uuid.UUID) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldResultCourseID, v))
}

// ResultCourseIDIsNil applies the IsNil predicate on the "result_course_id" field.
func ResultCourseIDIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldResultCourseID))
}

// ResultCourseIDNotNil applies the NotNil predicate on the "result_course_id" field.
func ResultCourseIDNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldResultCourseID))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.GenerationJob {
	return predicate.GenerationJob(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationJob) predicate.GenerationJob {
	return predicate.GenerationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationJob) predicate.GenerationJob {
	return predicate.GenerationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationJob) predicate.GenerationJob {
	return predicate.GenerationJob(sql.NotPredicates(p))
}
