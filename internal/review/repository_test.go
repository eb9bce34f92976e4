package review

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewCols = []string{"id", "product_id", "name", "customer_name", "rating", "comment", "is_approved", "created_at"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO reviews").
			WithArgs(4, "Rina", 5, "fresh").
			WillReturnRows(sqlmock.NewRows(reviewCols).AddRow(1, 4, "Apple", "Rina", 5, "fresh", false, time.Now()))

		rv, err := NewRepository(db).Create(context.Background(), &Review{ProductID: 4, CustomerName: "Rina", Rating: 5, Comment: "fresh"})
		require.NoError(t, err)
		assert.Equal(t, "Apple", rv.ProductName)
		assert.False(t, rv.IsApproved)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO reviews").
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := NewRepository(db).Create(context.Background(), &Review{ProductID: 99, CustomerName: "x", Rating: 1})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	approved := true

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews r WHERE r.product_id = \\$1 AND r.is_approved = \\$2").
		WithArgs(4, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .* FROM reviews r JOIN products p .* LIMIT \\$3 OFFSET \\$4").
		WithArgs(4, true, 20, 0).
		WillReturnRows(sqlmock.NewRows(reviewCols).AddRow(2, 4, "Apple", "Budi", 4, "", true, time.Now()))

	rs, total, err := NewRepository(db).List(context.Background(), ListFilter{ProductID: 4, Approved: &approved, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rs, 1)
	assert.Equal(t, "Budi", rs[0].CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Rating(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), AVG\\(rating\\) FROM reviews").
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg"}).AddRow(3, 4.333333))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\), AVG\\(rating\\) FROM reviews").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg"}).AddRow(0, nil))

	repo := NewRepository(db)
	pr, err := repo.Rating(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, ProductRating{Count: 3, Average: 4.3}, *pr)

	pr, err = repo.Rating(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, ProductRating{}, *pr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Approve_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE reviews r SET is_approved = TRUE").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(reviewCols))

	rv, err := NewRepository(db).Approve(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, rv)
	assert.NoError(t, mock.ExpectationsWereMet())
}
