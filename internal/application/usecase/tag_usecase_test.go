package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-inventory-api/internal/application/dto"
	"github.com/jhoicas/product-inventory-api/internal/application/usecase"
	"github.com/jhoicas/product-inventory-api/internal/domain"
)

// Crear tag: recorta espacios y exige nombre no vacío.
func TestTagCreate_NormalizaNombre(t *testing.T) {
	uc := usecase.NewTagUseCase(newMemTagRepo())

	out, err := uc.Create(dto.CreateTagRequest{Name: "  Electronics  "})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", out.Name)
	assert.NotZero(t, out.ID)

	_, err = uc.Create(dto.CreateTagRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Nombre duplicado propaga ErrDuplicate (el handler responde 409).
func TestTagCreate_Duplicado(t *testing.T) {
	uc := usecase.NewTagUseCase(newMemTagRepo())

	_, err := uc.Create(dto.CreateTagRequest{Name: "Electronics"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateTagRequest{Name: "Electronics"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}
