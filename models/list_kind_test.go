package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListKind(t *testing.T) {
	t.Run(`case forms check`, func(t *testing.T) {
		require.Equal(t, "избранное", ListKindFavorite.ToHuman())
		require.Equal(t, "в избранное", ListKindFavorite.ToAccusative())
		require.Equal(t, "в избранном", ListKindFavorite.ToPrepositional())

		require.Equal(t, "сравнение", ListKindCompare.ToHuman())
		require.Equal(t, "в сравнение", ListKindCompare.ToAccusative())
		require.Equal(t, "в сравнении", ListKindCompare.ToPrepositional())
	})

	t.Run(`unknown kind fallback check`, func(t *testing.T) {
		unknown := ListKind("shortlist")
		require.Equal(t, "shortlist", unknown.ToHuman())
		require.Equal(t, "shortlist", unknown.ToAccusative())
	})
}
