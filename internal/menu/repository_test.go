package menu

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menuCols = []string{"id", "name", "location", "items", "is_active", "created_at", "updated_at"}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM menus WHERE location = \\$1 AND is_active = TRUE ORDER BY location, name, id").
		WithArgs("header").
		WillReturnRows(sqlmock.NewRows(menuCols).
			AddRow(1, "Main", "header", []byte(`[{"label":"Home","url":"/","children":[{"label":"Deals","url":"/deals"}]}]`), true, now, now))

	menus, err := NewRepository(db).List(context.Background(), ListFilter{Location: LocationHeader, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, menus, 1)
	require.Len(t, menus[0].Items, 1)
	assert.Equal(t, "Deals", menus[0].Items[0].Children[0].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("INSERT INTO menus").
		WithArgs("Footer", "footer", []byte(`[]`), true).
		WillReturnRows(sqlmock.NewRows(menuCols).AddRow(2, "Footer", "footer", []byte(`[]`), true, now, now))

	m, err := NewRepository(db).Create(context.Background(), &Menu{Name: "Footer", Location: LocationFooter, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), m.ID)
	assert.Empty(t, m.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM menus WHERE id = \\$1").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(menuCols))

	m, err := NewRepository(db).GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM menus WHERE id = \\$1").
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := NewRepository(db).Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
