package studentlisthandler

import (
	"testing"

	"careerhub-backend/models"
	matchingapimodels "careerhub-backend/models/api/matching"
	studentapimodels "careerhub-backend/models/api/student"
	dbmodels "careerhub-backend/models/db"

	"github.com/stretchr/testify/require"
)

type listKey struct {
	kind      models.ListKind
	userID    string
	studentID string
}

type fakeListStore struct {
	rows map[listKey]bool
}

func newFakeListStore() *fakeListStore {
	return &fakeListStore{rows: map[listKey]bool{}}
}

func (f *fakeListStore) Create(kind models.ListKind, userID, studentID string) (bool, error) {
	key := listKey{kind: kind, userID: userID, studentID: studentID}
	if f.rows[key] {
		return false, nil
	}
	f.rows[key] = true
	return true, nil
}

func (f *fakeListStore) Delete(kind models.ListKind, userID, studentID string) (bool, error) {
	key := listKey{kind: kind, userID: userID, studentID: studentID}
	if !f.rows[key] {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}

func (f *fakeListStore) ListStudents(kind models.ListKind, userID string) ([]dbmodels.Student, error) {
	var list []dbmodels.Student
	for key := range f.rows {
		if key.kind == kind && key.userID == userID {
			list = append(list, dbmodels.Student{BaseModel: dbmodels.BaseModel{ID: key.studentID}})
		}
	}
	return list, nil
}

type fakeStudentStore struct {
	students map[string]dbmodels.Student
}

func (f *fakeStudentStore) Create(rec dbmodels.Student) (string, error) {
	return rec.ID, nil
}

func (f *fakeStudentStore) Update(studentID string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeStudentStore) ReplaceSkills(studentID string, skills []dbmodels.Skill) error {
	return nil
}

func (f *fakeStudentStore) ReplaceSchedules(studentID string, schedules []dbmodels.Schedule) error {
	return nil
}

func (f *fakeStudentStore) Delete(studentID string) error {
	return nil
}

func (f *fakeStudentStore) GetByID(studentID string) (*dbmodels.Student, error) {
	rec, exist := f.students[studentID]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStudentStore) ExistByEmail(email, excludeID string) (bool, error) {
	return false, nil
}

func (f *fakeStudentStore) GetList(filter studentapimodels.StudentFilter) ([]dbmodels.Student, int64, error) {
	return nil, 0, nil
}

func (f *fakeStudentStore) ListWithAnySkill(skillIDs []string, filter matchingapimodels.MatchingFilter) ([]dbmodels.Student, error) {
	return nil, nil
}

func newTestHandler() (impl, *fakeListStore) {
	listStore := newFakeListStore()
	studentStore := &fakeStudentStore{
		students: map[string]dbmodels.Student{
			"student1": {BaseModel: dbmodels.BaseModel{ID: "student1"}},
		},
	}
	return impl{store: listStore, studentStore: studentStore}, listStore
}

func TestStudentList(t *testing.T) {
	t.Run(`add and list check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		err := handler.Add(models.ListKindFavorite, "user1", "student1")
		require.Nil(t, err)

		list, err := handler.List(models.ListKindFavorite, "user1")
		require.Nil(t, err)
		require.Equal(t, 1, len(list))
		require.Equal(t, "student1", list[0].ID)

		// списки раздельные по виду и по пользователю
		list, err = handler.List(models.ListKindCompare, "user1")
		require.Nil(t, err)
		require.Equal(t, 0, len(list))
		list, err = handler.List(models.ListKindFavorite, "user2")
		require.Nil(t, err)
		require.Equal(t, 0, len(list))
	})

	t.Run(`duplicate add check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		err := handler.Add(models.ListKindCompare, "user1", "student1")
		require.Nil(t, err)
		err = handler.Add(models.ListKindCompare, "user1", "student1")
		require.ErrorIs(t, err, ErrAlreadyInList)
	})

	t.Run(`add missing student check`, func(t *testing.T) {
		handler, listStore := newTestHandler()
		err := handler.Add(models.ListKindFavorite, "user1", "unknown")
		require.ErrorIs(t, err, ErrStudentNotFound)
		require.Equal(t, 0, len(listStore.rows))
	})

	t.Run(`remove unknown student check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		// несуществующий студент отличим от отсутствия в списке
		err := handler.Remove(models.ListKindFavorite, "user1", "unknown")
		require.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run(`remove check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		err := handler.Add(models.ListKindFavorite, "user1", "student1")
		require.Nil(t, err)
		err = handler.Remove(models.ListKindFavorite, "user1", "student1")
		require.Nil(t, err)
		err = handler.Remove(models.ListKindFavorite, "user1", "student1")
		require.ErrorIs(t, err, ErrNotInList)
	})
}
