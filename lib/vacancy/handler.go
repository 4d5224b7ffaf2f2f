package vacancyhandler

import (
	"fmt"
	"time"

	"careerhub-backend/db"
	educationlevelstore "careerhub-backend/lib/dicts/education-level/store"
	locationstore "careerhub-backend/lib/dicts/location/store"
	schedulestore "careerhub-backend/lib/dicts/schedule/store"
	skillstore "careerhub-backend/lib/dicts/skill/store"
	specializationstore "careerhub-backend/lib/dicts/specialization/store"
	initchecker "careerhub-backend/lib/utils/init-checker"
	vacancystore "careerhub-backend/lib/vacancy/store"
	apimodels "careerhub-backend/models/api"
	vacancyapimodels "careerhub-backend/models/api/vacancy"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrVacancyNotFound = errors.New("Вакансия не найдена")

type Provider interface {
	Create(authorID string, data vacancyapimodels.VacancyData) (vacancy vacancyapimodels.VacancyView, err error)
	Update(vacancyID string, data vacancyapimodels.VacancyUpdateData) (vacancy vacancyapimodels.VacancyView, err error)
	Delete(vacancyID string) error
	Get(vacancyID string) (vacancy vacancyapimodels.VacancyView, err error)
	List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error)
	GetAuthorID(vacancyID string) (authorID string, found bool, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:               vacancystore.NewInstance(db.DB),
		skillStore:          skillstore.NewInstance(db.DB),
		scheduleStore:       schedulestore.NewInstance(db.DB),
		locationStore:       locationstore.NewInstance(db.DB),
		specializationStore: specializationstore.NewInstance(db.DB),
		educationLevelStore: educationlevelstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"skillStore", instance.skillStore,
	)
	Instance = instance
}

type impl struct {
	store               vacancystore.Provider
	skillStore          skillstore.Provider
	scheduleStore       schedulestore.Provider
	locationStore       locationstore.Provider
	specializationStore specializationstore.Provider
	educationLevelStore educationlevelstore.Provider
}

func (i impl) Create(authorID string, data vacancyapimodels.VacancyData) (vacancy vacancyapimodels.VacancyView, err error) {
	skills, err := i.resolveSkills(data.RequiredSkills)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	levels, err := i.resolveEducationLevels(data.EducationLevels)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	schedules, err := i.resolveSchedules(data.Schedules)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	specializations, err := i.resolveSpecializations(data.Specializations)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	locationID, err := i.resolveLocation(data.LocationID)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	rec := dbmodels.Vacancy{
		Name:                    data.Name,
		AuthorID:                authorID,
		LocationID:              locationID,
		Text:                    data.Text,
		Salary:                  data.Salary,
		PubDate:                 time.Now(),
		RequiredSkills:          skills,
		RequiredEducationLevels: levels,
		Schedules:               schedules,
		Specializations:         specializations,
	}
	vacancyID, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("author_id", authorID).
			WithError(err).
			Error("ошибка создания вакансии")
		return vacancyapimodels.VacancyView{}, err
	}
	return i.Get(vacancyID)
}

func (i impl) Update(vacancyID string, data vacancyapimodels.VacancyUpdateData) (vacancy vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, ErrVacancyNotFound
	}
	updMap := map[string]interface{}{}
	if data.Name != nil {
		updMap["name"] = *data.Name
	}
	if data.Text != nil {
		updMap["text"] = *data.Text
	}
	if data.Salary != nil {
		updMap["salary"] = *data.Salary
	}
	if data.LocationID != nil {
		id, err := i.resolveLocation(*data.LocationID)
		if err != nil {
			return vacancyapimodels.VacancyView{}, err
		}
		updMap["location_id"] = id
	}
	var skills []dbmodels.Skill
	if data.RequiredSkills != nil {
		skills, err = i.resolveSkills(*data.RequiredSkills)
		if err != nil {
			return vacancyapimodels.VacancyView{}, err
		}
	}
	var levels []dbmodels.EducationLevel
	if data.EducationLevels != nil {
		levels, err = i.resolveEducationLevels(*data.EducationLevels)
		if err != nil {
			return vacancyapimodels.VacancyView{}, err
		}
	}
	var schedules []dbmodels.Schedule
	if data.Schedules != nil {
		schedules, err = i.resolveSchedules(*data.Schedules)
		if err != nil {
			return vacancyapimodels.VacancyView{}, err
		}
	}
	var specializations []dbmodels.Specialization
	if data.Specializations != nil {
		specializations, err = i.resolveSpecializations(*data.Specializations)
		if err != nil {
			return vacancyapimodels.VacancyView{}, err
		}
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := vacancystore.NewInstance(tx)
		if len(updMap) != 0 {
			if err := txStore.Update(vacancyID, updMap); err != nil {
				return err
			}
		}
		if data.RequiredSkills != nil {
			if err := txStore.ReplaceSkills(vacancyID, skills); err != nil {
				return err
			}
		}
		if data.EducationLevels != nil {
			if err := txStore.ReplaceEducationLevels(vacancyID, levels); err != nil {
				return err
			}
		}
		if data.Schedules != nil {
			if err := txStore.ReplaceSchedules(vacancyID, schedules); err != nil {
				return err
			}
		}
		if data.Specializations != nil {
			if err := txStore.ReplaceSpecializations(vacancyID, specializations); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("ошибка обновления вакансии")
		return vacancyapimodels.VacancyView{}, err
	}
	return i.Get(vacancyID)
}

func (i impl) Delete(vacancyID string) error {
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrVacancyNotFound
	}
	err = i.store.Delete(vacancyID)
	if err != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("ошибка удаления вакансии")
		return err
	}
	return nil
}

func (i impl) Get(vacancyID string) (vacancy vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		log.
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("ошибка поиска вакансии")
		return vacancyapimodels.VacancyView{}, err
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, ErrVacancyNotFound
	}
	return vacancyapimodels.VacancyConvert(*rec), nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error) {
	recList, rowCount, err := i.store.GetList(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, 0, err
	}
	list = make([]vacancyapimodels.VacancyView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, vacancyapimodels.VacancyConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) GetAuthorID(vacancyID string) (authorID string, found bool, err error) {
	return i.store.GetAuthorID(vacancyID)
}

func (i impl) resolveSkills(ids []string) ([]dbmodels.Skill, error) {
	result := make([]dbmodels.Skill, 0, len(ids))
	for _, id := range ids {
		rec, err := i.skillStore.GetByID(id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, apimodels.NewValidationError("required_skills", "Скилла с ID %s не существует.", id)
		}
		result = append(result, *rec)
	}
	return result, nil
}

func (i impl) resolveEducationLevels(ids []string) ([]dbmodels.EducationLevel, error) {
	result := make([]dbmodels.EducationLevel, 0, len(ids))
	for _, id := range ids {
		rec, err := i.educationLevelStore.GetByID(id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, apimodels.NewValidationError("required_education_level", "Грейда с ID %s не существует.", id)
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

func (i impl) resolveSpecializations(ids []string) ([]dbmodels.Specialization, error) {
	result := make([]dbmodels.Specialization, 0, len(ids))
	for _, id := range ids {
		rec, err := i.specializationStore.GetByID(id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, apimodels.NewValidationError("specialization", "Специализации с ID %s не существует.", id)
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
