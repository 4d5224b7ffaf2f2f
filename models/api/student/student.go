package studentapimodels

import (
	apimodels "careerhub-backend/models/api"
	dictapimodels "careerhub-backend/models/api/dict"
	dbmodels "careerhub-backend/models/db"

	"net/mail"

	"github.com/pkg/errors"
)

type StudentView struct {
	ID        string                       `json:"id"`
	AvatarURL string                       `json:"avatar,omitempty"`
	LastName  string                       `json:"last_name"`
	FirstName string                       `json:"first_name"`
	Email     string                       `json:"email"`
	Location  *dictapimodels.DictItemView  `json:"location,omitempty"`
	Telegram  string                       `json:"telegram,omitempty"`
	Schedules []dictapimodels.DictItemView `json:"schedule"`
	Skills    []dictapimodels.DictItemView `json:"skills"`
}

type StudentDetailView struct {
	StudentView
	Sex            string                      `json:"sex,omitempty"`
	Age            int                         `json:"age,omitempty"`
	PhoneNumber    string                      `json:"phone_number,omitempty"`
	Portfolio      string                      `json:"portfolio,omitempty"`
	Experience     string                      `json:"experience,omitempty"`
	Specialization *dictapimodels.DictItemView `json:"specialization,omitempty"`
	Course         *dictapimodels.DictItemView `json:"course,omitempty"`
	EducationLevel *dictapimodels.DictItemView `json:"education_level,omitempty"`
}

type StudentData struct {
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Email            string   `json:"email"`
	Sex              string   `json:"sex"`
	Age              int      `json:"age"`
	Telegram         string   `json:"telegram"`
	PhoneNumber      string   `json:"phone_number"`
	Portfolio        string   `json:"portfolio"`
	Experience       string   `json:"experience"`
	AvatarURL        string   `json:"avatar"`
	LocationID       string   `json:"location"`
	SpecializationID string   `json:"specialization"`
	EducationLevelID string   `json:"education_level"`
	CourseID         string   `json:"course"`
	SkillIDs         []string `json:"skills"`
	ScheduleIDs      []string `json:"schedule"`
}

func (r StudentData) Validate() error {
	if r.FirstName == "" {
		return errors.New("не указано имя студента")
	}
	if r.LastName == "" {
		return errors.New("не указана фамилия студента")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	return nil
}

// Запрос на изменение: затрагиваются только переданные поля,
// переданный набор скиллов/графиков заменяется целиком.
type StudentUpdateData struct {
	FirstName        *string   `json:"first_name"`
	LastName         *string   `json:"last_name"`
	Sex              *string   `json:"sex"`
	Age              *int      `json:"age"`
	Telegram         *string   `json:"telegram"`
	PhoneNumber      *string   `json:"phone_number"`
	Portfolio        *string   `json:"portfolio"`
	Experience       *string   `json:"experience"`
	AvatarURL        *string   `json:"avatar"`
	LocationID       *string   `json:"location"`
	SpecializationID *string   `json:"specialization"`
	EducationLevelID *string   `json:"education_level"`
	CourseID         *string   `json:"course"`
	SkillIDs         *[]string `json:"skills"`
	ScheduleIDs      *[]string `json:"schedule"`
}

type StudentFilter struct {
	apimodels.Pagination
	Search           string `json:"search" query:"search"`
	LocationID       string `json:"location" query:"location"`
	EducationLevelID string `json:"education_level" query:"education_level"`
	ScheduleID       string `json:"schedule" query:"schedule"`
}

func StudentConvert(rec dbmodels.Student) StudentView {
	view := StudentView{
		ID:        rec.ID,
		AvatarURL: rec.AvatarURL,
		LastName:  rec.LastName,
		FirstName: rec.FirstName,
		Email:     rec.Email,
		Telegram:  rec.Telegram,
		Schedules: make([]dictapimodels.DictItemView, 0, len(rec.Schedules)),
		Skills:    make([]dictapimodels.DictItemView, 0, len(rec.Skills)),
	}
	if rec.Location != nil {
		location := dictapimodels.LocationConvert(*rec.Location)
		view.Location = &location
	}
	for _, schedule := range rec.Schedules {
		view.Schedules = append(view.Schedules, dictapimodels.ScheduleConvert(schedule))
	}
	for _, skill := range rec.Skills {
		view.Skills = append(view.Skills, dictapimodels.SkillConvert(skill))
	}
	return view
}

func StudentConvertDetail(rec dbmodels.Student) StudentDetailView {
	view := StudentDetailView{
		StudentView: StudentConvert(rec),
		Sex:         rec.Sex.ToHuman(),
		Age:         rec.Age,
		PhoneNumber: rec.PhoneNumber,
		Portfolio:   rec.Portfolio,
		Experience:  rec.Experience,
	}
	if rec.Specialization != nil {
		specialization := dictapimodels.SpecializationConvert(*rec.Specialization)
		view.Specialization = &specialization
	}
	if rec.Course != nil {
		course := dictapimodels.CourseConvert(*rec.Course)
		view.Course = &course
	}
	if rec.EducationLevel != nil {
		level := dictapimodels.EducationLevelConvert(*rec.EducationLevel)
		view.EducationLevel = &level
	}
	return view
}
