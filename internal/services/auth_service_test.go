package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fumio65/Thrift-Clothing/internal/models"
	"github.com/fumio65/Thrift-Clothing/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id uint, hash string) error {
	args := m.Called(id, hash)
	return args.Error(0)
}

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, services.NewTokenService(testSecret))
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	user := &models.User{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana@example.com",
		Password:  "Str0ng!Pass",
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.User)
		created.ID = 1
	}).Return(nil).Once()

	token, err := service.Register(user)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// The plaintext password must be gone before the repo sees the row.
	assert.NotEqual(t, "Str0ng!Pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Str0ng!Pass")))

	// The returned token must verify and carry the new user's identity.
	tokens := services.NewTokenService(testSecret)
	userID, err := tokens.ExtractUserID(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), userID)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("failed to create user: %w", gorm.ErrDuplicatedKey)).Once()

	_, err := service.Register(&models.User{Email: "dup@example.com", Password: "password123"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{ID: 3, Email: "ana@example.com", FirstName: "Ana", Password: string(hashed)}

	mockRepo.On("GetByEmail", "ana@example.com").Return(stored, nil).Once()

	user, token, err := service.Login("ana@example.com", "correct-horse")
	assert.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)
	assert.NotEmpty(t, token)

	claims, err := services.NewTokenService(testSecret).Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims["email"])

	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newAuthService(mockRepo)

	// Unknown email.
	mockRepo.On("GetByEmail", "ghost@example.com").
		Return(nil, fmt.Errorf("failed to get user by email: %w", gorm.ErrRecordNotFound)).Once()
	_, _, errUnknown := service.Login("ghost@example.com", "whatever")
	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)

	// Known email, wrong password.
	hashed, _ := bcrypt.GenerateFromPassword([]byte("the-real-one"), bcrypt.DefaultCost)
	mockRepo.On("GetByEmail", "ana@example.com").
		Return(&models.User{ID: 3, Email: "ana@example.com", Password: string(hashed)}, nil).Once()
	_, _, errWrong := service.Login("ana@example.com", "not-the-one")
	assert.ErrorIs(t, errWrong, services.ErrInvalidCredentials)

	// Both failures carry the identical error, no user enumeration.
	assert.Equal(t, errUnknown, errWrong)
	mockRepo.AssertExpectations(t)
}
