package studentliststore

import (
	"strings"

	"careerhub-backend/models"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(kind models.ListKind, userID, studentID string) (created bool, err error)
	Delete(kind models.ListKind, userID, studentID string) (deleted bool, err error)
	ListStudents(kind models.ListKind, userID string) (list []dbmodels.Student, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(kind models.ListKind, userID, studentID string) (created bool, err error) {
	var rec interface{}
	switch kind {
	case models.ListKindCompare:
		rec = &dbmodels.CompareStudent{UserID: userID, StudentID: studentID}
	default:
		rec = &dbmodels.FavoriteStudent{UserID: userID, StudentID: studentID}
	}
	err = i.db.Create(rec).Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return false, nil
		}
		return false, errors.Wrapf(err, "ошибка добавления студента в список %s", kind.ToHuman())
	}
	return true, nil
}

func (i impl) Delete(kind models.ListKind, userID, studentID string) (deleted bool, err error) {
	var rec interface{}
	switch kind {
	case models.ListKindCompare:
		rec = &dbmodels.CompareStudent{}
	default:
		rec = &dbmodels.FavoriteStudent{}
	}
	tx := i.db.
		Where("user_id = ?", userID).
		Where("student_id = ?", studentID).
		Delete(rec)
	if tx.Error != nil {
		return false, errors.Wrapf(tx.Error, "ошибка удаления студента из списка %s", kind.ToHuman())
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListStudents(kind models.ListKind, userID string) (list []dbmodels.Student, err error) {
	var studentIDs []string
	var tx *gorm.DB
	switch kind {
	case models.ListKindCompare:
		tx = i.db.Model(dbmodels.CompareStudent{})
	default:
		tx = i.db.Model(dbmodels.FavoriteStudent{})
	}
	err = tx.
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("student_id", &studentIDs).
		Error
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения списка %s", kind.ToHuman())
	}
	if len(studentIDs) == 0 {
		return nil, nil
	}
	var students []dbmodels.Student
	err = i.db.Model(dbmodels.Student{}).
		Where("id in ?", studentIDs).
		Preload("Location").
		Preload("Skills").
		Preload("Schedules").
		Find(&students).
		Error
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка получения списка %s", kind.ToHuman())
	}
	// сохраняем порядок добавления
	byID := make(map[string]dbmodels.Student, len(students))
	for _, student := range students {
		byID[student.ID] = student
	}
	list = make([]dbmodels.Student, 0, len(studentIDs))
	for _, id := range studentIDs {
		if student, exist := byID[id]; exist {
			list = append(list, student)
		}
	}
	return list, nil
}
