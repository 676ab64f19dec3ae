package impl

import (
	"context"
	"testing"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/repository"
	mockRepo "hauspet/internal/mocks/repository"
	mockSvc "hauspet/internal/mocks/service"
	"hauspet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type petServiceFixtures struct {
	service   usecase.PetUsecase
	petRepo   *mockRepo.MockPetRepository
	qrCodeSvc *mockSvc.MockQRCodeService
}

func createTestPetService(t *testing.T) petServiceFixtures {
	fx := petServiceFixtures{
		petRepo:   mockRepo.NewMockPetRepository(t),
		qrCodeSvc: mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewPetService(PetServiceParams{
		PetRepo:   fx.petRepo,
		QRCodeSvc: fx.qrCodeSvc,
		Logger:    discardLogger(),
	})

	return fx
}

func TestPetService_AddPet(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()

	fx.petRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Pet) bool {
			return p.UserID == 7 && p.Name == "Oscar" && p.Species == "dog" && *p.Age == 3
		})).
		Run(func(_ context.Context, p *entity.Pet) { p.ID = 21 }).
		Return(nil)

	pet, err := fx.service.AddPet(ctx, 7, &usecase.AddPetInput{Name: " Oscar ", Species: "dog", Age: ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, uint(21), pet.ID)
	assert.Equal(t, "Oscar", pet.Name)
}

func TestPetService_AddPet_Validation(t *testing.T) {
	fx := createTestPetService(t)

	for _, input := range []*usecase.AddPetInput{
		{Name: "", Species: "dog"},
		{Name: "Oscar", Species: "  "},
	} {
		_, err := fx.service.AddPet(context.Background(), 7, input)
		assert.ErrorIs(t, err, domainerrors.ErrPetValidation)
	}
}

func TestPetService_AddPet_StorageFailure(t *testing.T) {
	fx := createTestPetService(t)
	fx.petRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.AddPet(context.Background(), 7, &usecase.AddPetInput{Name: "Oscar", Species: "dog"})
	assert.ErrorIs(t, err, domainerrors.ErrPetSaveFailed)
}

func TestPetService_ListPets(t *testing.T) {
	t.Run("empty list is not nil", func(t *testing.T) {
		fx := createTestPetService(t)
		fx.petRepo.EXPECT().FindByOwner(mock.Anything, uint(7)).Return(nil, nil)

		pets, err := fx.service.ListPets(context.Background(), 7)
		require.NoError(t, err)
		assert.NotNil(t, pets)
		assert.Empty(t, pets)
	})

	t.Run("storage failure surfaces as 500", func(t *testing.T) {
		fx := createTestPetService(t)
		fx.petRepo.EXPECT().FindByOwner(mock.Anything, uint(7)).Return(nil, errors.New("timeout"))

		_, err := fx.service.ListPets(context.Background(), 7)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPCode())
	})
}

func TestPetService_GetPet_ForeignPetIsNotFound(t *testing.T) {
	fx := createTestPetService(t)
	fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(99)).Return(nil, repository.ErrPetNotFound)

	_, err := fx.service.GetPet(context.Background(), 7, 99)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestPetService_UpdatePet(t *testing.T) {
	fx := createTestPetService(t)
	existing := &entity.Pet{ID: 21, UserID: 7, Name: "Oscar", Species: "dog", Age: ptr(3)}

	fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(21)).Return(existing, nil)
	fx.petRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Pet) bool {
			return p.Name == "Oscar" && *p.Age == 4 && *p.Weight == 66.5
		})).
		Return(nil)

	pet, err := fx.service.UpdatePet(context.Background(), 7, 21, entity.PetPatch{Age: ptr(4), Weight: ptr(66.5)})
	require.NoError(t, err)
	assert.Equal(t, 4, *pet.Age)
}

func TestPetService_UpdatePet_BlankName(t *testing.T) {
	fx := createTestPetService(t)

	_, err := fx.service.UpdatePet(context.Background(), 7, 21, entity.PetPatch{Name: ptr(" ")})
	assert.ErrorIs(t, err, domainerrors.ErrPetValidation)
}

func TestPetService_DeletePet(t *testing.T) {
	fx := createTestPetService(t)
	fx.petRepo.EXPECT().Delete(mock.Anything, uint(7), uint(21)).Return(nil).Once()
	fx.petRepo.EXPECT().Delete(mock.Anything, uint(7), uint(22)).Return(repository.ErrPetNotFound).Once()

	require.NoError(t, fx.service.DeletePet(context.Background(), 7, 21))
	assert.ErrorIs(t, fx.service.DeletePet(context.Background(), 7, 22), domainerrors.ErrPetNotFound)
}

func TestPetService_PetTag(t *testing.T) {
	fx := createTestPetService(t)
	pet := &entity.Pet{ID: 21, UserID: 7, Name: "Oscar", Species: "dog"}

	fx.petRepo.EXPECT().FindOwned(mock.Anything, uint(7), uint(21)).Return(pet, nil)
	fx.qrCodeSvc.EXPECT().GeneratePetTag(pet).Return([]byte("png"), nil)

	png, err := fx.service.PetTag(context.Background(), 7, 21)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
