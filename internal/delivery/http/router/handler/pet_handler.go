package handler

import (
	"log/slog"
	"net/http"

	"hauspet/internal/delivery/http/response"
	"hauspet/internal/domain/entity"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler serves the owner-scoped pet endpoints.
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// AddPetRequest is the body of POST /api/v1/pets.
type AddPetRequest struct {
	Name    string   `json:"name"`
	Species string   `json:"species"`
	Breed   *string  `json:"breed"`
	Age     *int     `json:"age"`
	Weight  *float64 `json:"weight"`
}

// UpdatePetRequest is the body of PUT /api/v1/pets/:id. Omitted fields are unchanged.
type UpdatePetRequest struct {
	Name    *string  `json:"name"`
	Species *string  `json:"species"`
	Breed   *string  `json:"breed"`
	Age     *int     `json:"age"`
	Weight  *float64 `json:"weight"`
}

// AddPet registers a pet for the signed-in owner.
func (h *PetHandler) AddPet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req AddPetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.petUC.AddPet(c.Request().Context(), user.ID, &usecase.AddPetInput{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, petMessageResponse{
		Message: "Pet added successfully",
		Pet:     toPetResponse(pet),
	})
}

// ListPets returns every pet of the signed-in owner.
func (h *PetHandler) ListPets(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	pets, err := h.petUC.ListPets(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]*petResponse, 0, len(pets))
	for _, pet := range pets {
		body = append(body, toPetResponse(pet))
	}

	return c.JSON(http.StatusOK, body)
}

// GetPet returns one owned pet.
func (h *PetHandler) GetPet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), user.ID, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toPetResponse(pet))
}

// UpdatePet applies a partial update to an owned pet.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	var req UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), user.ID, petID, entity.PetPatch{
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age,
		Weight:  req.Weight,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, petMessageResponse{
		Message: "Pet updated successfully",
		Pet:     toPetResponse(pet),
	})
}

// DeletePet removes an owned pet.
func (h *PetHandler) DeletePet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	if err := h.petUC.DeletePet(c.Request().Context(), user.ID, petID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Pet deleted successfully")
}

// GetPetTag returns the QR code PNG for an owned pet.
func (h *PetHandler) GetPetTag(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	petID, err := petIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.petUC.PetTag(c.Request().Context(), user.ID, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
