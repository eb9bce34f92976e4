package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Items(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"product_id", "quantity", "name", "price", "image_url", "stock", "is_active", "created_at"}).
		AddRow(1, 2, "Egg", 12.0, "", 30, true, time.Now())

	mock.ExpectQuery("SELECT .* FROM cart_items ci JOIN products p .* WHERE ci.session_id = \\$1").
		WithArgs(session).
		WillReturnRows(rows)

	items, err := NewRepository(db).Items(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Egg", items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO carts").WithArgs(session).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO cart_items .* ON CONFLICT \\(session_id, product_id\\)").
			WithArgs(session, int64(1), 2).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.AddItem(context.Background(), session, 1, 2))
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO carts").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO cart_items").WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		assert.Error(t, repo.AddItem(context.Background(), session, 99, 1))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RemoveItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM cart_items WHERE session_id = \\$1 AND product_id = \\$2").
		WithArgs(session, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := NewRepository(db).RemoveItem(context.Background(), session, 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
