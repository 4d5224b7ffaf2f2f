package authz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthz(t *testing.T) {
	t.Run(`anonymous actor check`, func(t *testing.T) {
		anonymous := Actor{}
		require.Equal(t, true, anonymous.IsAnonymous())
		require.Equal(t, false, OwnerOrAdmin(anonymous, "user1"))
		require.Equal(t, false, AdminOnly(anonymous))
		require.Equal(t, false, VacancyAuthorForMatching(anonymous, "user1"))

		anonymousAdmin := Actor{IsAdmin: true}
		require.Equal(t, false, OwnerOrAdmin(anonymousAdmin, "user1"))
		require.Equal(t, false, AdminOnly(anonymousAdmin))
		require.Equal(t, false, VacancyAuthorForMatching(anonymousAdmin, "user1"))
	})

	t.Run(`OwnerOrAdmin check`, func(t *testing.T) {
		owner := Actor{ID: "user1"}
		other := Actor{ID: "user2"}
		admin := Actor{ID: "user3", IsAdmin: true}
		require.Equal(t, true, OwnerOrAdmin(owner, "user1"))
		require.Equal(t, false, OwnerOrAdmin(other, "user1"))
		require.Equal(t, true, OwnerOrAdmin(admin, "user1"))
	})

	t.Run(`AdminOnly check`, func(t *testing.T) {
		require.Equal(t, false, AdminOnly(Actor{ID: "user1"}))
		require.Equal(t, true, AdminOnly(Actor{ID: "user1", IsAdmin: true}))
	})

	t.Run(`VacancyAuthorForMatching check`, func(t *testing.T) {
		author := Actor{ID: "user1"}
		other := Actor{ID: "user2"}
		admin := Actor{ID: "user3", IsAdmin: true}
		require.Equal(t, true, VacancyAuthorForMatching(author, "user1"))
		require.Equal(t, false, VacancyAuthorForMatching(other, "user1"))
		require.Equal(t, true, VacancyAuthorForMatching(admin, "user1"))

		// вакансии нет: пустой автор запрещает всех, кроме администратора
		require.Equal(t, false, VacancyAuthorForMatching(author, ""))
		require.Equal(t, true, VacancyAuthorForMatching(admin, ""))
	})
}
