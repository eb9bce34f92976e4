package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryCols = []string{
	"id", "name", "slug", "description", "image_url",
	"sort_order", "is_active", "product_count", "created_at", "updated_at",
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("WithFilters", func(t *testing.T) {
		rows := sqlmock.NewRows(categoryCols).
			AddRow(1, "Fruits", "fruits", "", "", 0, true, 4, now, now)

		mock.ExpectQuery("SELECT .* FROM categories c WHERE c.name ILIKE \\$1 AND c.is_active = TRUE ORDER BY c.sort_order").
			WithArgs("%fru%").
			WillReturnRows(rows)

		res, err := repo.List(context.Background(), ListFilter{Search: "fru", ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, 4, res[0].ProductCount)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM categories c").
			WillReturnError(errors.New("db error"))

		_, err := repo.List(context.Background(), ListFilter{})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	in := &Category{Name: "Dairy", Slug: "dairy", IsActive: true}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Dairy", "dairy", "", "", 0, true).
			WillReturnRows(sqlmock.NewRows(categoryCols).AddRow(5, "Dairy", "dairy", "", "", 0, true, 0, now, now))

		c, err := repo.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(5), c.ID)
	})

	t.Run("DuplicateSlug", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM categories WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(2)).
		WillReturnError(&pq.Error{Code: "23503"})
	_, err = repo.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	mock.ExpectExec("DELETE FROM categories").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
