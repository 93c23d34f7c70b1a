package usecase

import (
	"context"
	"errors"
	"testing"

	"stock_insight/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByUsernameFunc is called when the FindByUsername method is invoked.
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
	// createCalls counts Create invocations.
	createCalls int
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(userID uint, username string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, username string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, username)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByUsername is the mock implementation of the FindByUsername method.
func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	// Default: return user not found error
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default: return user not found error
	return nil, ErrUserNotFound
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.PasswordHash) == 0 || user.PasswordHash == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return nil
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		err := uc.Signup(context.Background(), "Tester", "password123", "password123")

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("username is stored lowercase", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				if user.Username != "tester" {
					t.Errorf("expected username 'tester', got: '%s'", user.Username)
				}
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		if err := uc.Signup(context.Background(), "TeStEr", "password123", "password123"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		mockRepo := &mockUserRepository{}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		err := uc.Signup(context.Background(), "tester", "password123", "password124")

		if !errors.Is(err, ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got: %v", err)
		}
		if mockRepo.createCalls != 0 {
			t.Errorf("expected no create, got %d", mockRepo.createCalls)
		}
	})

	t.Run("weak passwords are rejected", func(t *testing.T) {
		weak := []struct {
			name     string
			password string
		}{
			{name: "too short", password: "a1b2c"},
			{name: "letters only", password: "password"},
			{name: "digits only", password: "12345678"},
			{name: "empty", password: ""},
		}

		for _, tt := range weak {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := &mockUserRepository{}
				uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

				err := uc.Signup(context.Background(), "tester", tt.password, tt.password)

				if !errors.Is(err, ErrWeakPassword) {
					t.Errorf("expected ErrWeakPassword, got: %v", err)
				}
				if mockRepo.createCalls != 0 {
					t.Errorf("expected no create, got %d", mockRepo.createCalls)
				}
			})
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUsernameAlreadyExists
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		err := uc.Signup(context.Background(), "tester", "password123", "password123")

		if !errors.Is(err, ErrUsernameAlreadyExists) {
			t.Errorf("expected ErrUsernameAlreadyExists, got: %v", err)
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		err := uc.Signup(context.Background(), "tester", "password123", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:           1,
		Username:     "tester",
		PasswordHash: string(hashedPassword),
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				if username == testUser.Username {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, username string) (string, error) {
				if userID != testUser.ID || username != testUser.Username {
					t.Errorf("unexpected userID or username: got userID=%d, username=%s", userID, username)
				}
				return "mock-jwt-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, err := uc.Login(context.Background(), "tester", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if token != "mock-jwt-token" {
			t.Errorf("expected token 'mock-jwt-token', got: '%s'", token)
		}
	})

	t.Run("username lookup is case-insensitive", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				if username != "tester" {
					t.Errorf("expected lowercase lookup, got: '%s'", username)
				}
				return testUser, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		if _, err := uc.Login(context.Background(), "TESTER", "password123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("user not found yields a generic error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, err := uc.Login(context.Background(), "nobody", "password123")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("incorrect password yields the same generic error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, err := uc.Login(context.Background(), "tester", "wrong-password")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("JWT generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, username string) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Login(context.Background(), "tester", "password123")

		if err == nil {
			t.Fatal("expected error but got nil")
		}

		expectedErrMsg := "failed to generate token: failed to sign token"
		if err.Error() != expectedErrMsg {
			t.Errorf("expected error message '%s', got: '%s'", expectedErrMsg, err.Error())
		}
	})
}
