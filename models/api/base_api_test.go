package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPagination(t *testing.T) {
	t.Run(`defaults check`, func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
	})

	t.Run(`limit clamp check`, func(t *testing.T) {
		page, limit := Pagination{Page: 3, Limit: 500}.GetPage()
		require.Equal(t, 3, page)
		require.Equal(t, 100, limit)
	})

	t.Run(`negative values check`, func(t *testing.T) {
		page, limit := Pagination{Page: -1, Limit: -5}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 10, limit)
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("skills", "Скилла с ID %s не существует.", "abc")
	require.Equal(t, "skills", err.Field)
	require.Equal(t, "Скилла с ID abc не существует.", err.Message)
	require.Equal(t, "skills: Скилла с ID abc не существует.", err.Error())
}
