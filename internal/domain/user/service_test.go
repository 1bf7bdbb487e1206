package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	args := m.Called(ctx, username, email, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewPresenceValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	password := "testpassword123"

	// хэш заранее неизвестен, проверяем что он не равен паролю и проходит проверку
	mockRepo.On("Create", mock.Anything, "reader", "reader@example.com", mock.MatchedBy(func(hash string) bool {
		return hash != password && bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	})).Return(123, nil)

	userID, err := service.Register(context.Background(), "reader", "reader@example.com", password)
	assert.NoError(t, err)
	assert.Equal(t, 123, userID)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_HashCost(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	var stored string
	mockRepo.On("Create", mock.Anything, "reader", "reader@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { stored = args.String(3) }).
		Return(1, nil)

	_, err := service.Register(context.Background(), "reader", "reader@example.com", "pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(stored))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "reader", "taken@example.com", mock.AnythingOfType("string")).
		Return(0, ErrDuplicateEmail)

	_, err := service.Register(context.Background(), "reader", "taken@example.com", "pw")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "reader", "reader@example.com", mock.AnythingOfType("string")).
		Return(0, errors.New("database error"))

	_, err := service.Register(context.Background(), "reader", "reader@example.com", "pw")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	assert.NotErrorIs(t, err, ErrDuplicateEmail)

	mockRepo.AssertExpectations(t)
}

func TestService_FindByEmail_Miss(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	u, err := service.FindByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestService_RegisterThenVerify(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	password := "correct horse"
	var stored string
	mockRepo.On("Create", mock.Anything, "reader", "reader@example.com", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { stored = args.String(3) }).
		Return(7, nil)

	id, err := service.Register(context.Background(), "reader", "reader@example.com", password)
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "reader@example.com").
		Return(&User{ID: id, Username: "reader", Email: "reader@example.com", Password: stored}, nil)

	u, err := service.FindByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, 7, u.ID)
	assert.NotEqual(t, password, u.Password)
	assert.True(t, service.VerifyPassword(password, u.Password))
	assert.False(t, service.VerifyPassword("wrong", u.Password))
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	password := "testpassword123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &User{ID: 123, Username: "reader", Email: "reader@example.com", Password: string(hash)}
	mockRepo.On("FindByEmail", mock.Anything, "reader@example.com").Return(user, nil)

	authUser, err := service.Authenticate(context.Background(), "reader@example.com", password)
	assert.NoError(t, err)
	assert.Equal(t, user, authUser)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, err := service.Authenticate(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_InvalidPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte("correctpassword"), bcrypt.MinCost)
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "reader@example.com").
		Return(&User{ID: 123, Email: "reader@example.com", Password: string(hash)}, nil)

	_, err = service.Authenticate(context.Background(), "reader@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_InvalidHash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "reader@example.com").
		Return(&User{ID: 123, Email: "reader@example.com", Password: "invalidhash"}, nil)

	_, err := service.Authenticate(context.Background(), "reader@example.com", "testpassword123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Authenticate_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "reader@example.com").Return(nil, errors.New("connection reset"))

	_, err := service.Authenticate(context.Background(), "reader@example.com", "pw")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// Test table-driven tests for edge cases
func TestService_Register_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		expectError error
	}{
		{
			name:        "Empty username",
			username:    "",
			email:       "reader@example.com",
			password:    "password123",
			expectError: ErrInvalidInput,
		},
		{
			name:        "Empty email",
			username:    "reader",
			email:       "",
			password:    "password123",
			expectError: ErrInvalidInput,
		},
		{
			name:        "Empty password",
			username:    "reader",
			email:       "reader@example.com",
			password:    "",
			expectError: ErrInvalidInput,
		},
		{
			name:     "Short password",
			username: "reader",
			email:    "reader@example.com",
			password: "1",
		},
		{
			name:     "Password at bcrypt limit (72 bytes)",
			username: "reader",
			email:    "reader@example.com",
			password: strings.Repeat("p", 72),
		},
		{
			name:        "Password over bcrypt limit (100 bytes)",
			username:    "reader",
			email:       "reader@example.com",
			password:    strings.Repeat("p", 100),
			expectError: bcrypt.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			if tt.expectError == nil {
				mockRepo.On("Create", mock.Anything, tt.username, tt.email, mock.AnythingOfType("string")).Return(123, nil)
			}

			_, err := service.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				mockRepo.AssertExpectations(t)
			}
		})
	}
}
