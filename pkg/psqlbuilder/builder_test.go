package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("bookings").
		Where(squirrel.Eq{"booking_date": "2024-06-10"}).
		Where(squirrel.Eq{"status": []string{"pending", "confirmed"}}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE booking_date = $1 AND status IN ($2,$3)", query)
	assert.Len(t, args, 3)
}
