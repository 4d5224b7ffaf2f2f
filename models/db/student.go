package dbmodels

import (
	"time"

	"careerhub-backend/models"

	"gorm.io/gorm"
)

type Student struct {
	BaseModel
	FirstName        string     `gorm:"type:varchar(150)"`
	LastName         string     `gorm:"type:varchar(150)"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex"`
	Sex              models.Sex `gorm:"type:varchar(1)"`
	Age              int
	Telegram         string `gorm:"type:varchar(255)"`
	PhoneNumber      string `gorm:"type:varchar(20)"`
	Portfolio        string `gorm:"type:varchar(255)"`
	Experience       string
	AvatarURL        string  `gorm:"type:varchar(255)"`
	LocationID       *string `gorm:"type:varchar(36)"`
	Location         *Location
	SpecializationID *string `gorm:"type:varchar(36)"`
	Specialization   *Specialization
	EducationLevelID *string `gorm:"type:varchar(36)"`
	EducationLevel   *EducationLevel
	CourseID         *string `gorm:"type:varchar(36)"`
	Course           *Course
	Skills           []Skill    `gorm:"many2many:student_skills"`
	Schedules        []Schedule `gorm:"many2many:student_schedules"`
}

func (r Student) GetFullName() string {
	return r.LastName + " " + r.FirstName
}

// связи студента со справочниками, пара уникальна
type StudentSkill struct {
	StudentID string `gorm:"primaryKey;type:varchar(36)"`
	SkillID   string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time
}

type StudentSchedule struct {
	StudentID  string `gorm:"primaryKey;type:varchar(36)"`
	ScheduleID string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt  time.Time
}

func (r *Student) AfterDelete(tx *gorm.DB) (err error) {
	if r.ID == "" {
		return nil
	}
	if err = tx.Where("student_id = ?", r.ID).Delete(&StudentSkill{}).Error; err != nil {
		return err
	}
	if err = tx.Where("student_id = ?", r.ID).Delete(&StudentSchedule{}).Error; err != nil {
		return err
	}
	if err = tx.Where("student_id = ?", r.ID).Delete(&FavoriteStudent{}).Error; err != nil {
		return err
	}
	return tx.Where("student_id = ?", r.ID).Delete(&CompareStudent{}).Error
}
