package vacancyhandler

import (
	"testing"

	apimodels "careerhub-backend/models/api"
	dbmodels "careerhub-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeSkillStore struct {
	skills map[string]dbmodels.Skill
}

func (f *fakeSkillStore) List(name string) ([]dbmodels.Skill, error) { return nil, nil }

func (f *fakeSkillStore) Add(rec dbmodels.Skill, skipDuplicate bool) error { return nil }

func (f *fakeSkillStore) GetByID(id string) (*dbmodels.Skill, error) {
	rec, exist := f.skills[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeSkillStore) Update(id, name string) error { return nil }

func (f *fakeSkillStore) Delete(id string) error { return nil }

type fakeLocationStore struct {
	locations map[string]dbmodels.Location
}

func (f *fakeLocationStore) List(name string) ([]dbmodels.Location, error) { return nil, nil }

func (f *fakeLocationStore) Add(rec dbmodels.Location, skipDuplicate bool) error { return nil }

func (f *fakeLocationStore) GetByID(id string) (*dbmodels.Location, error) {
	rec, exist := f.locations[id]
	if !exist {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeLocationStore) Update(id, name string) error { return nil }

func (f *fakeLocationStore) Delete(id string) error { return nil }

func TestResolveDictIDs(t *testing.T) {
	handler := impl{
		skillStore: &fakeSkillStore{
			skills: map[string]dbmodels.Skill{
				"s1": {BaseModel: dbmodels.BaseModel{ID: "s1"}, Name: "Go"},
				"s2": {BaseModel: dbmodels.BaseModel{ID: "s2"}, Name: "SQL"},
			},
		},
		locationStore: &fakeLocationStore{
			locations: map[string]dbmodels.Location{
				"loc1": {BaseModel: dbmodels.BaseModel{ID: "loc1"}, Name: "Москва"},
			},
		},
	}

	t.Run(`resolveSkills check`, func(t *testing.T) {
		skills, err := handler.resolveSkills([]string{"s1", "s2"})
		require.Nil(t, err)
		require.Equal(t, 2, len(skills))
		require.Equal(t, "Go", skills[0].Name)
		require.Equal(t, "SQL", skills[1].Name)
	})

	t.Run(`resolveSkills unknown id check`, func(t *testing.T) {
		_, err := handler.resolveSkills([]string{"s1", "unknown"})
		require.NotNil(t, err)
		var validationErr apimodels.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "required_skills", validationErr.Field)
		require.Equal(t, "Скилла с ID unknown не существует.", validationErr.Message)
	})

	t.Run(`resolveLocation check`, func(t *testing.T) {
		id, err := handler.resolveLocation("loc1")
		require.Nil(t, err)
		require.NotNil(t, id)
		require.Equal(t, "loc1", *id)
	})

	t.Run(`resolveLocation empty id check`, func(t *testing.T) {
		id, err := handler.resolveLocation("")
		require.Nil(t, err)
		require.Nil(t, id)
	})

	t.Run(`resolveLocation unknown id check`, func(t *testing.T) {
		_, err := handler.resolveLocation("unknown")
		require.NotNil(t, err)
		var validationErr apimodels.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "location", validationErr.Field)
	})
}
