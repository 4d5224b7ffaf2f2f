package dbmodels

import (
	"fmt"

	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Telegram    string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	Company     string `gorm:"type:varchar(255)"`
	AvatarURL   string `gorm:"type:varchar(255)"`
	IsAdmin     bool
	IsActive    bool
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

// удаление пользователя удаляет его вакансии и его списки студентов
func (r *User) AfterDelete(tx *gorm.DB) (err error) {
	if r.ID == "" {
		return nil
	}
	var vacancyIDs []string
	err = tx.Model(&Vacancy{}).
		Where("author_id = ?", r.ID).
		Pluck("id", &vacancyIDs).
		Error
	if err != nil {
		return err
	}
	for _, vacancyID := range vacancyIDs {
		rec := Vacancy{BaseModel: BaseModel{ID: vacancyID}}
		if err = tx.Delete(&rec).Error; err != nil {
			return err
		}
	}
	if err = tx.Where("user_id = ?", r.ID).Delete(&FavoriteStudent{}).Error; err != nil {
		return err
	}
	return tx.Where("user_id = ?", r.ID).Delete(&CompareStudent{}).Error
}
