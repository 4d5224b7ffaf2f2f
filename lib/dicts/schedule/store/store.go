package schedulestore

import (
	"strings"

	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrDuplicate = errors.New("график работы уже существует")

type Provider interface {
	List(name string) ([]dbmodels.Schedule, error)
	Add(rec dbmodels.Schedule, skipDuplicate bool) error
	GetByID(id string) (*dbmodels.Schedule, error)
	Update(id, name string) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(name string) ([]dbmodels.Schedule, error) {
	var result []dbmodels.Schedule
	tx := i.db.Model(dbmodels.Schedule{})
	if name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	err := tx.Order("name").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка графиков работы")
	}
	return result, nil
}

func (i impl) Add(rec dbmodels.Schedule, skipDuplicate bool) error {
	unique, err := i.isUnique(rec.ID, rec.Name)
	if err != nil {
		return err
	}
	if !unique {
		if skipDuplicate {
			return nil
		}
		return ErrDuplicate
	}
	tx := i.db.Save(&rec)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "ошибка добавления графика работы")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Schedule, error) {
	rec := dbmodels.Schedule{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id, name string) error {
	unique, err := i.isUnique(id, name)
	if err != nil {
		return err
	}
	if !unique {
		return ErrDuplicate
	}
	err = i.db.
		Model(&dbmodels.Schedule{}).
		Where("id = ?", id).
		Update("name", name).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления графика работы")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Schedule{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления графика работы")
	}
	return nil
}

func (i impl) isUnique(selfID, name string) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Schedule{})
	tx.Where("LOWER(name) = ?", strings.ToLower(name))
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки уникальности графика работы")
	}
	return rowCount == 0, nil
}
