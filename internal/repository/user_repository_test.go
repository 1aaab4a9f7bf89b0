package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-hosting-server/config"
	"video-hosting-server/internal/repository"
)

func newMockRepo(t *testing.T) (*repository.UserRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repository.NewUserRepository(&config.Database{DB: sqlxDB}), mock
}

// 1. Ротация проходит, когда сохранённый токен совпал с предъявленным
func TestRotateRefreshToken_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET refresh_token = \$3 WHERE uuid = \$1 AND refresh_token = \$2`).
		WithArgs("u1", "old-token", "new-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RotateRefreshToken(context.Background(), "u1", "old-token", "new-token")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 2. Условный UPDATE никого не обновил: предъявленный токен устарел.
// Так выглядит проигравший из двух конкурентных refresh
func TestRotateRefreshToken_Mismatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET refresh_token = \$3 WHERE uuid = \$1 AND refresh_token = \$2`).
		WithArgs("u1", "stale-token", "new-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RotateRefreshToken(context.Background(), "u1", "stale-token", "new-token")

	assert.ErrorIs(t, err, repository.ErrRefreshTokenMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 3. Логин перезаписывает указатель безусловно
func TestUpdateRefreshToken_Overwrite(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET refresh_token = \$2 WHERE uuid = \$1`).
		WithArgs("u1", "fresh-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRefreshToken(context.Background(), "u1", "fresh-token")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 4. Запись токена несуществующему пользователю — ошибка
func TestUpdateRefreshToken_UserNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET refresh_token = \$2 WHERE uuid = \$1`).
		WithArgs("ghost", "token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRefreshToken(context.Background(), "ghost", "token")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 5. Logout сбрасывает указатель в NULL
func TestClearRefreshToken(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users SET refresh_token = NULL WHERE uuid = \$1`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearRefreshToken(context.Background(), "u1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
