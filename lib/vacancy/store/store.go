package vacancystore

import (
	"strings"

	vacancyapimodels "careerhub-backend/models/api/vacancy"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (string, error)
	Update(vacancyID string, updMap map[string]interface{}) error
	ReplaceSkills(vacancyID string, skills []dbmodels.Skill) error
	ReplaceEducationLevels(vacancyID string, levels []dbmodels.EducationLevel) error
	ReplaceSchedules(vacancyID string, schedules []dbmodels.Schedule) error
	ReplaceSpecializations(vacancyID string, specializations []dbmodels.Specialization) error
	Delete(vacancyID string) error
	GetByID(vacancyID string) (rec *dbmodels.Vacancy, err error)
	GetAuthorID(vacancyID string) (authorID string, found bool, err error)
	GetList(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания вакансии")
	}
	return rec.ID, nil
}

func (i impl) Update(vacancyID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", vacancyID).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления вакансии")
	}
	return nil
}

func (i impl) ReplaceSkills(vacancyID string, skills []dbmodels.Skill) error {
	rec := dbmodels.Vacancy{BaseModel: dbmodels.BaseModel{ID: vacancyID}}
	err := i.db.
		Model(&rec).
		Association("RequiredSkills").
		Replace(skills)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления скиллов вакансии")
	}
	return nil
}

func (i impl) ReplaceEducationLevels(vacancyID string, levels []dbmodels.EducationLevel) error {
	rec := dbmodels.Vacancy{BaseModel: dbmodels.BaseModel{ID: vacancyID}}
	err := i.db.
		Model(&rec).
		Association("RequiredEducationLevels").
		Replace(levels)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления грейдов вакансии")
	}
	return nil
}

func (i impl) ReplaceSchedules(vacancyID string, schedules []dbmodels.Schedule) error {
	rec := dbmodels.Vacancy{BaseModel: dbmodels.BaseModel{ID: vacancyID}}
	err := i.db.
		Model(&rec).
		Association("Schedules").
		Replace(schedules)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления графиков работы вакансии")
	}
	return nil
}

func (i impl) ReplaceSpecializations(vacancyID string, specializations []dbmodels.Specialization) error {
	rec := dbmodels.Vacancy{BaseModel: dbmodels.BaseModel{ID: vacancyID}}
	err := i.db.
		Model(&rec).
		Association("Specializations").
		Replace(specializations)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления специализаций вакансии")
	}
	return nil
}

func (i impl) Delete(vacancyID string) error {
	rec, err := i.GetByID(vacancyID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	return i.db.
		Delete(rec).
		Error
}

func (i impl) GetByID(vacancyID string) (rec *dbmodels.Vacancy, err error) {
	err = i.db.Model(dbmodels.Vacancy{}).
		Where("id = ?", vacancyID).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetAuthorID(vacancyID string) (authorID string, found bool, err error) {
	rec := dbmodels.Vacancy{}
	err = i.db.Model(dbmodels.Vacancy{}).
		Select("author_id").
		Where("id = ?", vacancyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.AuthorID, true, nil
}

func (i impl) GetList(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Vacancy{})
	if filter.Search != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.AuthorID != "" {
		tx.Where("author_id = ?", filter.AuthorID)
	}
	if filter.LocationID != "" {
		tx.Where("location_id = ?", filter.LocationID)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.
		Limit(limit).
		Offset(offset).
		Order("pub_date desc").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	return list, rowCount, nil
}
