package studentlisthandler

import (
	"careerhub-backend/db"
	studentliststore "careerhub-backend/lib/student-list/store"
	studentstore "careerhub-backend/lib/student/store"
	initchecker "careerhub-backend/lib/utils/init-checker"
	"careerhub-backend/models"
	studentapimodels "careerhub-backend/models/api/student"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrStudentNotFound = errors.New("Студент не найден")
	ErrAlreadyInList   = errors.New("студент уже в списке")
	ErrNotInList       = errors.New("студент не найден в списке")
)

type Provider interface {
	Add(kind models.ListKind, userID, studentID string) error
	Remove(kind models.ListKind, userID, studentID string) error
	List(kind models.ListKind, userID string) (list []studentapimodels.StudentView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:        studentliststore.NewInstance(db.DB),
		studentStore: studentstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"studentStore", instance.studentStore,
	)
	Instance = instance
}

type impl struct {
	store        studentliststore.Provider
	studentStore studentstore.Provider
}

func (i impl) Add(kind models.ListKind, userID, studentID string) error {
	student, err := i.studentStore.GetByID(studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}
	created, err := i.store.Create(kind, userID, studentID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("student_id", studentID).
			WithError(err).
			Errorf("ошибка добавления студента в список %s", kind.ToHuman())
		return err
	}
	if !created {
		return ErrAlreadyInList
	}
	return nil
}

func (i impl) Remove(kind models.ListKind, userID, studentID string) error {
	student, err := i.studentStore.GetByID(studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}
	deleted, err := i.store.Delete(kind, userID, studentID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("student_id", studentID).
			WithError(err).
			Errorf("ошибка удаления студента из списка %s", kind.ToHuman())
		return err
	}
	if !deleted {
		return ErrNotInList
	}
	return nil
}

func (i impl) List(kind models.ListKind, userID string) (list []studentapimodels.StudentView, err error) {
	recList, err := i.store.ListStudents(kind, userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Errorf("ошибка получения списка %s", kind.ToHuman())
		return nil, err
	}
	list = make([]studentapimodels.StudentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, studentapimodels.StudentConvert(rec))
	}
	return list, nil
}
