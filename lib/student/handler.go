package studenthandler

import (
	"fmt"

	"careerhub-backend/db"
	coursestore "careerhub-backend/lib/dicts/course/store"
	educationlevelstore "careerhub-backend/lib/dicts/education-level/store"
	locationstore "careerhub-backend/lib/dicts/location/store"
	schedulestore "careerhub-backend/lib/dicts/schedule/store"
	skillstore "careerhub-backend/lib/dicts/skill/store"
	specializationstore "careerhub-backend/lib/dicts/specialization/store"
	studentstore "careerhub-backend/lib/student/store"
	initchecker "careerhub-backend/lib/utils/init-checker"
	"careerhub-backend/models"
	apimodels "careerhub-backend/models/api"
	studentapimodels "careerhub-backend/models/api/student"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStudentNotFound = errors.New("Студент не найден")
	ErrEmailExists     = errors.New("студент с такой почтой уже существует")
)

type Provider interface {
	Create(data studentapimodels.StudentData) (student studentapimodels.StudentDetailView, err error)
	Update(studentID string, data studentapimodels.StudentUpdateData) (student studentapimodels.StudentDetailView, err error)
	Delete(studentID string) error
	Get(studentID string) (student studentapimodels.StudentDetailView, err error)
	List(filter studentapimodels.StudentFilter) (list []studentapimodels.StudentView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:               studentstore.NewInstance(db.DB),
		skillStore:          skillstore.NewInstance(db.DB),
		scheduleStore:       schedulestore.NewInstance(db.DB),
		locationStore:       locationstore.NewInstance(db.DB),
		specializationStore: specializationstore.NewInstance(db.DB),
		educationLevelStore: educationlevelstore.NewInstance(db.DB),
		courseStore:         coursestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"skillStore", instance.skillStore,
		"scheduleStore", instance.scheduleStore,
	)
	Instance = instance
}

type impl struct {
	store               studentstore.Provider
	skillStore          skillstore.Provider
	scheduleStore       schedulestore.Provider
	locationStore       locationstore.Provider
	specializationStore specializationstore.Provider
	educationLevelStore educationlevelstore.Provider
	courseStore         coursestore.Provider
}

func (i impl) Create(data studentapimodels.StudentData) (student studentapimodels.StudentDetailView, err error) {
	exist, err := i.store.ExistByEmail(data.Email, "")
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	if exist {
		return studentapimodels.StudentDetailView{}, ErrEmailExists
	}
	skills, err := i.resolveSkills(data.SkillIDs)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	schedules, err := i.resolveSchedules(data.ScheduleIDs)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	rec := dbmodels.Student{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Sex:         models.Sex(data.Sex),
		Age:         data.Age,
		Telegram:    data.Telegram,
		PhoneNumber: data.PhoneNumber,
		Portfolio:   data.Portfolio,
		Experience:  data.Experience,
		AvatarURL:   data.AvatarURL,
		Skills:      skills,
		Schedules:   schedules,
	}
	rec.LocationID, err = i.resolveLocation(data.LocationID)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	rec.SpecializationID, err = i.resolveSpecialization(data.SpecializationID)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	rec.EducationLevelID, err = i.resolveEducationLevel(data.EducationLevelID)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	rec.CourseID, err = i.resolveCourse(data.CourseID)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	studentID, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("email", data.Email).
			WithError(err).
			Error("ошибка создания студента")
		return studentapimodels.StudentDetailView{}, err
	}
	return i.Get(studentID)
}

func (i impl) Update(studentID string, data studentapimodels.StudentUpdateData) (student studentapimodels.StudentDetailView, err error) {
	rec, err := i.store.GetByID(studentID)
	if err != nil {
		return studentapimodels.StudentDetailView{}, err
	}
	if rec == nil {
		return studentapimodels.StudentDetailView{}, ErrStudentNotFound
	}
	updMap := map[string]interface{}{}
	if data.FirstName != nil {
		updMap["first_name"] = *data.FirstName
	}
	if data.LastName != nil {
		updMap["last_name"] = *data.LastName
	}
	if data.Sex != nil {
		updMap["sex"] = *data.Sex
	}
	if data.Age != nil {
		updMap["age"] = *data.Age
	}
	if data.Telegram != nil {
		updMap["telegram"] = *data.Telegram
	}
	if data.PhoneNumber != nil {
		updMap["phone_number"] = *data.PhoneNumber
	}
	if data.Portfolio != nil {
		updMap["portfolio"] = *data.Portfolio
	}
	if data.Experience != nil {
		updMap["experience"] = *data.Experience
	}
	if data.AvatarURL != nil {
		updMap["avatar_url"] = *data.AvatarURL
	}
	if data.LocationID != nil {
		id, err := i.resolveLocation(*data.LocationID)
		if err != nil {
			return studentapimodels.StudentDetailView{}, err
		}
		updMap["location_id"] = id
	}
	if data.SpecializationID != nil {
		id, err := i.resolveSpecialization(*data.SpecializationID)
		if err != nil {
			return studentapimodels.StudentDetailView{}, err
		}
		updMap["specialization_id"] = id
	}
	if data.EducationLevelID != nil {
		id, err := i.resolveEducationLevel(*data.EducationLevelID)
		if err != nil {
			return studentapimodels.StudentDetailView{}, err
		}
		updMap["education_level_id"] = id
	}
	if data.CourseID != nil {
		id, err := i.resolveCourse(*data.CourseID)
		if err != nil {
			return studentapimodels.StudentDetailView{}, err
		}
		updMap["course_id"] = id
	}
	var skills []dbmodels.Skill
	if data.SkillIDs != nil {
		skills, err = i.resolveSkills(*data.SkillIDs)
		if err != nil {
			return studentapimodels.StudentDetailView{}, err
		}
	}
	var schedules []dbmodels.Schedule
	if data.ScheduleIDs != nil {
		schedules, err = i.resolveSchedules(*data.ScheduleIDs)
		if err != nil {
			return studentapimodels.StudentDetailView{}, err
		}
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := studentstore.NewInstance(tx)
		if len(updMap) != 0 {
			if err := txStore.Update(studentID, updMap); err != nil {
				return err
			}
		}
		if data.SkillIDs != nil {
			if err := txStore.ReplaceSkills(studentID, skills); err != nil {
				return err
			}
		}
		if data.ScheduleIDs != nil {
			if err := txStore.ReplaceSchedules(studentID, schedules); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.
			WithField("student_id", studentID).
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("ошибка обновления студента")
		return studentapimodels.StudentDetailView{}, err
	}
	return i.Get(studentID)
}

func (i impl) Delete(studentID string) error {
	rec, err := i.store.GetByID(studentID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrStudentNotFound
	}
	err = i.store.Delete(studentID)
	if err != nil {
		log.
			WithField("student_id", studentID).
			WithError(err).
			Error("ошибка удаления студента")
		return err
	}
	return nil
}

func (i impl) Get(studentID string) (student studentapimodels.StudentDetailView, err error) {
	rec, err := i.store.GetByID(studentID)
	if err != nil {
		log.
			WithField("student_id", studentID).
			WithError(err).
			Error("ошибка поиска студента")
		return studentapimodels.StudentDetailView{}, err
	}
	if rec == nil {
		return studentapimodels.StudentDetailView{}, ErrStudentNotFound
	}
	return studentapimodels.StudentConvertDetail(*rec), nil
}

func (i impl) List(filter studentapimodels.StudentFilter) (list []studentapimodels.StudentView, rowCount int64, err error) {
	recList, rowCount, err := i.store.GetList(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка студентов")
		return nil, 0, err
	}
	list = make([]studentapimodels.StudentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, studentapimodels.StudentConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) resolveSkills(ids []string) ([]dbmodels.Skill, error) {
	result := make([]dbmodels.Skill, 0, len(ids))
	for _, id := range ids {
		rec, err := i.skillStore.GetByID(id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, apimodels.NewValidationError("skills", "Скилла с ID %s не существует.", id)
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (i impl) resolveSchedules(ids []string) ([]dbmodels.Schedule, error) {
	result := make([]dbmodels.Schedule, 0, len(ids))
	for _, id := range ids {
		rec, err := i.scheduleStore.GetByID(id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, apimodels.NewValidationError("schedule", "Графика работы с ID %s не существует.", id)
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (i impl) resolveLocation(id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := i.locationStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewValidationError("location", "Локации с ID %s не существует.", id)
	}
	return &rec.ID, nil
}

func (i impl) resolveSpecialization(id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := i.specializationStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewValidationError("specialization", "Специализации с ID %s не существует.", id)
	}
	return &rec.ID, nil
}

func (i impl) resolveEducationLevel(id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := i.educationLevelStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewValidationError("education_level", "Грейда с ID %s не существует.", id)
	}
	return &rec.ID, nil
}

func (i impl) resolveCourse(id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	rec, err := i.courseStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apimodels.NewValidationError("course", "Курса с ID %s не существует.", id)
	}
	return &rec.ID, nil
}
