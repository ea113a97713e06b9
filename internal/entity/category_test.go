package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCategoriesAcceptsRecognizedSet(t *testing.T) {
	err := ValidateCategories([]string{
		CategoryWhitelist,
		CategoryBlacklist,
		CategorySafe,
		CategoryMalicious,
		CategoryUndefined,
	})
	require.NoError(t, err)
}

func TestValidateCategoriesAcceptsEmptyList(t *testing.T) {
	require.NoError(t, ValidateCategories(nil))
	require.NoError(t, ValidateCategories([]string{}))
}

func TestValidateCategoriesRejectsUnknownValue(t *testing.T) {
	err := ValidateCategories([]string{CategorySafe, "Suspicious", CategoryBlacklist})
	require.ErrorIs(t, err, ErrInvalidCategory)
	require.Contains(t, err.Error(), "Suspicious")
}

func TestValidateCategoriesIsCaseSensitive(t *testing.T) {
	err := ValidateCategories([]string{"whitelist"})
	require.ErrorIs(t, err, ErrInvalidCategory)
	require.Contains(t, err.Error(), "whitelist")
}

func TestValidateCategoriesReportsFirstInvalidEntry(t *testing.T) {
	err := ValidateCategories([]string{"foo", "bar"})
	require.ErrorIs(t, err, ErrInvalidCategory)
	require.Contains(t, err.Error(), "foo")
	require.NotContains(t, err.Error(), "bar")
}
