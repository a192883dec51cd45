package accountrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/auctionhouse/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Existing account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "currency_balance", "xp_balance", "staged_currency_delta", "staged_xp_delta", "updated_at"}).
						AddRow(1, int64(500), int64(20), int64(-120), int64(50), now))
			},
			result: &domain.Account{
				UserID:              1,
				CurrencyBalance:     500,
				XPBalance:           20,
				StagedCurrencyDelta: -120,
				StagedXPDelta:       50,
				UpdatedAt:           now,
			},
		},
		{
			name: "Unknown account returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Stage(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Single upsert increments both deltas",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET staged_currency_delta = accounts.staged_currency_delta + EXCLUDED.staged_currency_delta, staged_xp_delta = accounts.staged_xp_delta + EXCLUDED.staged_xp_delta`)).
					WithArgs(3, int64(-120), int64(50), now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
					WithArgs(3, int64(-120), int64(50), now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Stage(context.Background(), 3, -120, 50, now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListStaged(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE staged_currency_delta <> 0 OR staged_xp_delta <> 0 ORDER BY updated_at LIMIT $1`)).
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(2))

	ids, err := repo.ListStaged(context.Background(), 100)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Flush(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now().UTC()
	cols := []string{"user_id", "currency_balance", "xp_balance", "staged_currency_delta", "staged_xp_delta", "currency_balance", "xp_balance"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.FlushedAccount
	}{
		{
			name: "Clamps at zero",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET currency_balance = GREATEST(0, a.currency_balance + a.staged_currency_delta)`)).
					WithArgs(1, now).
					WillReturnRows(pgxmock.NewRows(cols).AddRow(1, int64(50), int64(0), int64(-80), int64(10), int64(0), int64(10)))
			},
			result: &domain.FlushedAccount{
				UserID:          1,
				PrevCurrency:    50,
				StagedCurrency:  -80,
				StagedXP:        10,
				CurrencyBalance: 0,
				XPBalance:       10,
			},
		},
		{
			name: "Nothing staged returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(1, now).
					WillReturnRows(pgxmock.NewRows(cols))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE accounts a`)).
					WithArgs(1, now).
					WillReturnError(errors.New("deadlock detected"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Flush(context.Background(), 1, now)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
