package studentstore

import (
	"strings"

	matchingapimodels "careerhub-backend/models/api/matching"
	studentapimodels "careerhub-backend/models/api/student"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Student) (string, error)
	Update(studentID string, updMap map[string]interface{}) error
	ReplaceSkills(studentID string, skills []dbmodels.Skill) error
	ReplaceSchedules(studentID string, schedules []dbmodels.Schedule) error
	Delete(studentID string) error
	GetByID(studentID string) (rec *dbmodels.Student, err error)
	ExistByEmail(email, excludeID string) (bool, error)
	GetList(filter studentapimodels.StudentFilter) (list []dbmodels.Student, rowCount int64, err error)
	ListWithAnySkill(skillIDs []string, filter matchingapimodels.MatchingFilter) (list []dbmodels.Student, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Student) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка создания студента")
	}
	return rec.ID, nil
}

func (i impl) Update(studentID string, updMap map[string]interface{}) error {
	err := i.db.
		Model(&dbmodels.Student{}).
		Where("id = ?", studentID).
		Updates(updMap).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления студента")
	}
	return nil
}

func (i impl) ReplaceSkills(studentID string, skills []dbmodels.Skill) error {
	rec := dbmodels.Student{BaseModel: dbmodels.BaseModel{ID: studentID}}
	err := i.db.
		Model(&rec).
		Association("Skills").
		Replace(skills)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления скиллов студента")
	}
	return nil
}

func (i impl) ReplaceSchedules(studentID string, schedules []dbmodels.Schedule) error {
	rec := dbmodels.Student{BaseModel: dbmodels.BaseModel{ID: studentID}}
	err := i.db.
		Model(&rec).
		Association("Schedules").
		Replace(schedules)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления графиков работы студента")
	}
	return nil
}

func (i impl) Delete(studentID string) error {
	rec, err := i.GetByID(studentID)
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

func (i impl) GetByID(studentID string) (rec *dbmodels.Student, err error) {
	err = i.db.Model(dbmodels.Student{}).
		Where("id = ?", studentID).
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

func (i impl) ExistByEmail(email, excludeID string) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Student{}).
		Where("email = ?", email)
	if excludeID != "" {
		tx.Where("id <> ?", excludeID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки почты студента")
	}
	return rowCount > 0, nil
}

func (i impl) GetList(filter studentapimodels.StudentFilter) (list []dbmodels.Student, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Student{})
	applyFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка студентов")
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.
		Limit(limit).
		Offset(offset).
		Order("last_name, first_name").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка студентов")
	}
	return list, rowCount, nil
}

func (i impl) ListWithAnySkill(skillIDs []string, filter matchingapimodels.MatchingFilter) (list []dbmodels.Student, err error) {
	if len(skillIDs) == 0 {
		return nil, nil
	}
	tx := i.db.Model(dbmodels.Student{}).
		Where("id in (select student_id from student_skills where skill_id in ?)", skillIDs)
	if filter.LocationID != "" {
		tx.Where("location_id = ?", filter.LocationID)
	}
	if filter.EducationLevelID != "" {
		tx.Where("education_level_id = ?", filter.EducationLevelID)
	}
	if filter.ScheduleID != "" {
		tx.Where("id in (select student_id from student_schedules where schedule_id = ?)", filter.ScheduleID)
	}
	err = tx.
		Order("last_name, first_name").
		Preload(clause.Associations).
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения кандидатов для подбора")
	}
	return list, nil
}

func applyFilter(tx *gorm.DB, filter studentapimodels.StudentFilter) {
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(last_name || ' ' || first_name) like ? OR LOWER(email) like ?", search, search)
	}
	if filter.LocationID != "" {
		tx.Where("location_id = ?", filter.LocationID)
	}
	if filter.EducationLevelID != "" {
		tx.Where("education_level_id = ?", filter.EducationLevelID)
	}
	if filter.ScheduleID != "" {
		tx.Where("id in (select student_id from student_schedules where schedule_id = ?)", filter.ScheduleID)
	}
}
