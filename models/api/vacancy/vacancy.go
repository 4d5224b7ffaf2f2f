package vacancyapimodels

import (
	"time"

	apimodels "careerhub-backend/models/api"
	dictapimodels "careerhub-backend/models/api/dict"
	userapimodels "careerhub-backend/models/api/users"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
)

type VacancyData struct {
	Name            string   `json:"name"`
	LocationID      string   `json:"location"`
	Text            string   `json:"text"`
	Salary          string   `json:"salary"`
	RequiredSkills  []string `json:"required_skills"`
	EducationLevels []string `json:"required_education_level"`
	Schedules       []string `json:"schedule"`
	Specializations []string `json:"specialization"`
}

func (r VacancyData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название вакансии")
	}
	if r.Text == "" {
		return errors.New("не указано описание вакансии")
	}
	return nil
}

// Запрос на изменение: PUT и PATCH работают одинаково, затрагиваются
// только переданные поля; автор и дата публикации не меняются.
// Переданный набор связей заменяется целиком.
type VacancyUpdateData struct {
	Name            *string   `json:"name"`
	LocationID      *string   `json:"location"`
	Text            *string   `json:"text"`
	Salary          *string   `json:"salary"`
	RequiredSkills  *[]string `json:"required_skills"`
	EducationLevels *[]string `json:"required_education_level"`
	Schedules       *[]string `json:"schedule"`
	Specializations *[]string `json:"specialization"`
}

type VacancyView struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	Author          *userapimodels.UserView      `json:"author,omitempty"`
	Location        *dictapimodels.DictItemView  `json:"location,omitempty"`
	Text            string                       `json:"text"`
	Salary          string                       `json:"salary"`
	PubDate         time.Time                    `json:"pub_date"`
	Specializations []dictapimodels.DictItemView `json:"specialization"`
	Schedules       []dictapimodels.DictItemView `json:"schedule"`
	EducationLevels []dictapimodels.DictItemView `json:"required_education_level"`
	RequiredSkills  []dictapimodels.DictItemView `json:"required_skills"`
}

type VacancyFilter struct {
	apimodels.Pagination
	Search     string `json:"search" query:"search"`
	AuthorID   string `json:"author" query:"author"`
	LocationID string `json:"location" query:"location"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	view := VacancyView{
		ID:              rec.ID,
		Name:            rec.Name,
		Text:            rec.Text,
		Salary:          rec.Salary,
		PubDate:         rec.PubDate,
		Specializations: make([]dictapimodels.DictItemView, 0, len(rec.Specializations)),
		Schedules:       make([]dictapimodels.DictItemView, 0, len(rec.Schedules)),
		EducationLevels: make([]dictapimodels.DictItemView, 0, len(rec.RequiredEducationLevels)),
		RequiredSkills:  make([]dictapimodels.DictItemView, 0, len(rec.RequiredSkills)),
	}
	if rec.Author != nil {
		author := userapimodels.UserConvert(*rec.Author)
		view.Author = &author
	}
	if rec.Location != nil {
		location := dictapimodels.LocationConvert(*rec.Location)
		view.Location = &location
	}
	for _, specialization := range rec.Specializations {
		view.Specializations = append(view.Specializations, dictapimodels.SpecializationConvert(specialization))
	}
	for _, schedule := range rec.Schedules {
		view.Schedules = append(view.Schedules, dictapimodels.ScheduleConvert(schedule))
	}
	for _, level := range rec.RequiredEducationLevels {
		view.EducationLevels = append(view.EducationLevels, dictapimodels.EducationLevelConvert(level))
	}
	for _, skill := range rec.RequiredSkills {
		view.RequiredSkills = append(view.RequiredSkills, dictapimodels.SkillConvert(skill))
	}
	return view
}
