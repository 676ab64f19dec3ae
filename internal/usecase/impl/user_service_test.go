package impl

import (
	"context"
	"testing"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	"hauspet/internal/domain/service"
	mockRepo "hauspet/internal/mocks/repository"
	mockSvc "hauspet/internal/mocks/service"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewUserService(UserServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       discardLogger(),
	})

	return fx
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	factory := expectTransaction(t, fx.txManager)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "a@b.com" && u.PasswordHash == "hashed" && u.Role == entity.RoleUser && u.FirstName == "Ann"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 12 }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(uint(12)).Return("jwt-token", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@b.com", Password: "s3cret", FirstName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, uint(12), out.User.ID)
}

func TestUserService_Register_MissingCredentials(t *testing.T) {
	fx := createTestUserService(t)

	for _, input := range []*usecase.RegisterInput{
		{Email: "", Password: "pw"},
		{Email: "   ", Password: "pw"},
		{Email: "a@b.com", Password: ""},
	} {
		_, err := fx.service.Register(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	factory := expectTransaction(t, fx.txManager)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@b.com", Password: "pw"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost too high"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login(t *testing.T) {
	stored := &entity.User{ID: 3, Email: "a@b.com", PasswordHash: "hashed"}

	tests := []struct {
		name    string
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name: "success",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
				fx.tokenService.EXPECT().GenerateToken(uint(3)).Return("jwt-token", nil)
			},
		},
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "a@b.com").Return(stored, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com", Password: "pw"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt-token", out.Token)
			assert.Same(t, stored, out.User)
		})
	}
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: 9}
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 9}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, uint(9)).Return(user, nil)

		got, err := fx.service.Authenticate(context.Background(), "tok")
		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(nil, domainerrors.ErrTokenInvalid.WrapMessage("expired"))

		_, err := fx.service.Authenticate(context.Background(), "tok")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 9}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(context.Background(), "tok")
		assert.ErrorIs(t, err, domainerrors.ErrTokenUserNotFound)
	})

	t.Run("lookup failure is not an auth error", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: 9}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, errors.New("connection reset"))

		_, err := fx.service.Authenticate(context.Background(), "tok")
		require.Error(t, err)

		var appErr domainerrors.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestUserService_Profile(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.EXPECT().FindByID(mock.Anything, uint(4)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Profile(context.Background(), 4)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
