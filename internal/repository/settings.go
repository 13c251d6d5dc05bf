package repository

import (
	"context"
	"log/slog"

	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/gen/ent/appsetting"
)

// PromptTemplateKey is the app_settings row holding the operator override
// for the generation system prompt.
const PromptTemplateKey = "course_prompt_template"

type SettingsRepository interface {
	// PromptTemplate returns the stored template override, or "" when no
	// override exists (callers fall back to the built-in default).
	PromptTemplate(ctx context.Context) (string, error)
	Set(ctx context.Context, key, value string) error
}

type settingsRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSettingsRepository(entc *ent.Client, log *slog.Logger) SettingsRepository {
	return &settingsRepo{ent: entc, log: log}
}

func (r *settingsRepo) PromptTemplate(ctx context.Context) (string, error) {
	row, err := r.ent.AppSetting.Query().
		Where(appsetting.Key(PromptTemplateKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return row.Value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	err := r.ent.AppSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(appsetting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("app_setting upsert failed", "key", key, "err", err)
	}
	return err
}
