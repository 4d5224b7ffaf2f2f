package dbmodels

import (
	"time"

	"gorm.io/gorm"
)

type Vacancy struct {
	BaseModel
	Name       string `gorm:"index;type:varchar(255)"`
	AuthorID   string `gorm:"type:varchar(36);index"`
	Author     *User  `gorm:"foreignKey:AuthorID"`
	LocationID *string `gorm:"type:varchar(36)"`
	Location   *Location
	Text       string
	Salary     string `gorm:"type:varchar(255)"`
	// дата публикации, выставляется один раз при создании
	PubDate                 time.Time
	RequiredSkills          []Skill          `gorm:"many2many:vacancy_skills"`
	RequiredEducationLevels []EducationLevel `gorm:"many2many:vacancy_education_levels"`
	Schedules               []Schedule       `gorm:"many2many:vacancy_schedules"`
	Specializations         []Specialization `gorm:"many2many:vacancy_specializations"`
}

// связи вакансии со справочниками, пара уникальна
type VacancySkill struct {
	VacancyID string `gorm:"primaryKey;type:varchar(36)"`
	SkillID   string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time
}

type VacancyEducationLevel struct {
	VacancyID        string `gorm:"primaryKey;type:varchar(36)"`
	EducationLevelID string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt        time.Time
}

type VacancySchedule struct {
	VacancyID  string `gorm:"primaryKey;type:varchar(36)"`
	ScheduleID string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt  time.Time
}

type VacancySpecialization struct {
	VacancyID        string `gorm:"primaryKey;type:varchar(36)"`
	SpecializationID string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt        time.Time
}

func (v *Vacancy) AfterDelete(tx *gorm.DB) (err error) {
	if v.ID == "" {
		return nil
	}
	if err = tx.Where("vacancy_id = ?", v.ID).Delete(&VacancySkill{}).Error; err != nil {
		return err
	}
	if err = tx.Where("vacancy_id = ?", v.ID).Delete(&VacancyEducationLevel{}).Error; err != nil {
		return err
	}
	if err = tx.Where("vacancy_id = ?", v.ID).Delete(&VacancySchedule{}).Error; err != nil {
		return err
	}
	return tx.Where("vacancy_id = ?", v.ID).Delete(&VacancySpecialization{}).Error
}
