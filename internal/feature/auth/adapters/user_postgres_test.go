package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_insight/internal/feature/auth/domain/entity"
	"stock_insight/internal/feature/auth/usecase"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
// TranslateErrorを有効にして、ユニーク制約違反がgorm.ErrDuplicatedKeyに
// 変換されるようにします（本番のPostgresではエラーコード23505に相当）。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Userテーブルを作成
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("creates a user and assigns an ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		u := &entity.User{Username: "alice", PasswordHash: "hash"}
		err := repo.Create(context.Background(), u)

		require.NoError(t, err)
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate username maps to ErrUsernameAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "hash"}))

		err := repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "other"})
		assert.ErrorIs(t, err, usecase.ErrUsernameAlreadyExists)
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	t.Run("returns the stored user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)
		ctx := context.Background()

		require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "hash"}))

		u, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("missing user maps to ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	t.Run("returns the stored user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)
		ctx := context.Background()

		u := &entity.User{Username: "alice", PasswordHash: "hash"}
		require.NoError(t, repo.Create(ctx, u))

		found, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Username, found.Username)
	})

	t.Run("missing user maps to ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		_, err := repo.FindByID(context.Background(), 9999)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

// ErrDuplicatedKeyがどの経路で返ってもusecaseのエラーに正規化されることを確認
func TestUserRepository_CreateTranslatedError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "hash"}))
	err := repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "hash"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, gorm.ErrDuplicatedKey), "raw gorm error should not leak")
}
