package matchinghandler

import (
	"testing"

	dbmodels "careerhub-backend/models/db"

	"github.com/stretchr/testify/require"
)

func candidate(id string, skillIDs ...string) dbmodels.Student {
	rec := dbmodels.Student{BaseModel: dbmodels.BaseModel{ID: id}}
	for _, skillID := range skillIDs {
		rec.Skills = append(rec.Skills, dbmodels.Skill{BaseModel: dbmodels.BaseModel{ID: skillID}})
	}
	return rec
}

func TestRankStudents(t *testing.T) {
	t.Run(`ranking check`, func(t *testing.T) {
		required := []string{"s1", "s2"}
		candidates := []dbmodels.Student{
			candidate("A", "s1"),
			candidate("B", "s1", "s2"),
			candidate("C", "s3"),
		}
		list := rankStudents(required, candidates)
		require.Equal(t, 2, len(list))
		require.Equal(t, "B", list[0].ID)
		require.Equal(t, 2, list[0].Score)
		require.Equal(t, 100, list[0].MatchingPercentage)
		require.Equal(t, "A", list[1].ID)
		require.Equal(t, 1, list[1].Score)
		require.Equal(t, 50, list[1].MatchingPercentage)
	})

	t.Run(`equal score keeps candidate order check`, func(t *testing.T) {
		required := []string{"s1", "s2"}
		candidates := []dbmodels.Student{
			candidate("X", "s1"),
			candidate("Y", "s2"),
			candidate("Z", "s1"),
		}
		list := rankStudents(required, candidates)
		require.Equal(t, 3, len(list))
		require.Equal(t, "X", list[0].ID)
		require.Equal(t, "Y", list[1].ID)
		require.Equal(t, "Z", list[2].ID)
	})

	t.Run(`percentage truncation check`, func(t *testing.T) {
		required := []string{"s1", "s2", "s3"}
		candidates := []dbmodels.Student{
			candidate("A", "s1", "s2"),
		}
		list := rankStudents(required, candidates)
		require.Equal(t, 1, len(list))
		require.Equal(t, 2, list[0].Score)
		require.Equal(t, 66, list[0].MatchingPercentage)
	})

	t.Run(`extra skills do not affect score check`, func(t *testing.T) {
		required := []string{"s1"}
		candidates := []dbmodels.Student{
			candidate("A", "s1", "s4", "s5"),
		}
		list := rankStudents(required, candidates)
		require.Equal(t, 1, len(list))
		require.Equal(t, 1, list[0].Score)
		require.Equal(t, 100, list[0].MatchingPercentage)
	})

	t.Run(`no required skills check`, func(t *testing.T) {
		candidates := []dbmodels.Student{
			candidate("A", "s1"),
		}
		list := rankStudents(nil, candidates)
		require.Equal(t, 0, len(list))
	})
}
