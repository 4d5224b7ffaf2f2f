package locationstore

import (
	"strings"

	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrDuplicate = errors.New("локация уже существует")

type Provider interface {
	List(name string) ([]dbmodels.Location, error)
	Add(rec dbmodels.Location, skipDuplicate bool) error
	GetByID(id string) (*dbmodels.Location, error)
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

func (i impl) List(name string) ([]dbmodels.Location, error) {
	var result []dbmodels.Location
	tx := i.db.Model(dbmodels.Location{})
	if name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	err := tx.Order("name").Find(&result).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка локаций")
	}
	return result, nil
}

func (i impl) Add(rec dbmodels.Location, skipDuplicate bool) error {
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
		return errors.Wrap(tx.Error, "ошибка добавления локации")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Location, error) {
	rec := dbmodels.Location{BaseModel: dbmodels.BaseModel{ID: id}}
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
		Model(&dbmodels.Location{}).
		Where("id = ?", id).
		Update("name", name).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления локации")
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Location{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления локации")
	}
	return nil
}

func (i impl) isUnique(selfID, name string) (bool, error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Location{})
	tx.Where("LOWER(name) = ?", strings.ToLower(name))
	if selfID != "" {
		tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки уникальности локации")
	}
	return rowCount == 0, nil
}
