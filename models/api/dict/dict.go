package dictapimodels

import (
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
)

// Все справочники устроены одинаково: ид + название.

type DictItemData struct {
	Name string `json:"name"`
}

func (d DictItemData) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название")
	}
	return nil
}

type DictItemView struct {
	DictItemData
	ID string `json:"id"`
}

func newView(id, name string) DictItemView {
	return DictItemView{
		DictItemData: DictItemData{Name: name},
		ID:           id,
	}
}

func SkillConvert(rec dbmodels.Skill) DictItemView {
	return newView(rec.ID, rec.Name)
}

func EducationLevelConvert(rec dbmodels.EducationLevel) DictItemView {
	return newView(rec.ID, rec.Name)
}

func ScheduleConvert(rec dbmodels.Schedule) DictItemView {
	return newView(rec.ID, rec.Name)
}

func SpecializationConvert(rec dbmodels.Specialization) DictItemView {
	return newView(rec.ID, rec.Name)
}

func LocationConvert(rec dbmodels.Location) DictItemView {
	return newView(rec.ID, rec.Name)
}

func CourseConvert(rec dbmodels.Course) DictItemView {
	return newView(rec.ID, rec.Name)
}
