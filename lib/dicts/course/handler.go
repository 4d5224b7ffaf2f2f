package courseprovider

import (
	"careerhub-backend/db"
	store "careerhub-backend/lib/dicts/course/store"
	initchecker "careerhub-backend/lib/utils/init-checker"
	dictapimodels "careerhub-backend/models/api/dict"
	dbmodels "careerhub-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("курс не найден")

type Provider interface {
	Create(data dictapimodels.DictItemData) (item dictapimodels.DictItemView, err error)
	Update(id string, data dictapimodels.DictItemData) (item dictapimodels.DictItemView, err error)
	Delete(id string) error
	Get(id string) (item dictapimodels.DictItemView, err error)
	List(name string) (list []dictapimodels.DictItemView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(data dictapimodels.DictItemData) (item dictapimodels.DictItemView, err error) {
	rec := dbmodels.Course{
		BaseModel: dbmodels.BaseModel{ID: uuid.New().String()},
		Name:      data.Name,
	}
	err = i.store.Add(rec, false)
	if err != nil {
		return dictapimodels.DictItemView{}, err
	}
	return dictapimodels.CourseConvert(rec), nil
}

func (i impl) Update(id string, data dictapimodels.DictItemData) (item dictapimodels.DictItemView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DictItemView{}, err
	}
	if rec == nil {
		return dictapimodels.DictItemView{}, ErrNotFound
	}
	err = i.store.Update(id, data.Name)
	if err != nil {
		return dictapimodels.DictItemView{}, err
	}
	rec.Name = data.Name
	return dictapimodels.CourseConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.store.Delete(id)
}

func (i impl) Get(id string) (item dictapimodels.DictItemView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DictItemView{}, err
	}
	if rec == nil {
		return dictapimodels.DictItemView{}, ErrNotFound
	}
	return dictapimodels.CourseConvert(*rec), nil
}

func (i impl) List(name string) (list []dictapimodels.DictItemView, err error) {
	recList, err := i.store.List(name)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DictItemView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.CourseConvert(rec))
	}
	return result, nil
}
