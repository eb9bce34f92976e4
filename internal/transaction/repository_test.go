package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txCols = []string{"id", "type", "category", "amount", "description", "date", "created_at"}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM transactions WHERE type = \\$1 AND category = \\$2").
		WithArgs("expense", "Rent").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .* FROM transactions WHERE .* LIMIT \\$3 OFFSET \\$4").
		WithArgs("expense", "Rent", 20, 0).
		WillReturnRows(sqlmock.NewRows(txCols).AddRow(1, "expense", "Rent", 500.0, "", now, now))

	ts, total, err := NewRepository(db).List(context.Background(), ListFilter{
		Type: "expense", Category: "Rent", Page: 1, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, ts, 1)
	assert.Equal(t, TypeExpense, ts[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Between(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM transactions WHERE date >= \\$1 ORDER BY date, id").
		WithArgs(from).
		WillReturnRows(sqlmock.NewRows(txCols))

	ts, err := NewRepository(db).Between(context.Background(), &from, nil)
	require.NoError(t, err)
	assert.Empty(t, ts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(TypeIncome, "Sales", 99.5, "", now).
		WillReturnRows(sqlmock.NewRows(txCols).AddRow(3, "income", "Sales", 99.5, "", now, now))

	tx, err := NewRepository(db).Create(context.Background(), &Transaction{
		Type: TypeIncome, Category: "Sales", Amount: 99.5, Date: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
