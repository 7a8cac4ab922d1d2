package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type patchDTO struct {
	Name     *string  `json:"name"`
	Prix     *float64 `json:"prix"`
	Quantite *int     `json:"quantite"`
	Ignored  *string  `json:"-"`
}

func TestUpdatesFromPtrDTOPicksOnlyPresentFields(t *testing.T) {
	name := "Widget"
	prix := 19.99

	updates := UpdatesFromPtrDTO(&patchDTO{Name: &name, Prix: &prix}, nil)

	assert.Equal(t, map[string]any{"name": "Widget", "prix": 19.99}, updates)
}

func TestUpdatesFromPtrDTOEmptyWhenNothingSet(t *testing.T) {
	assert.Empty(t, UpdatesFromPtrDTO(&patchDTO{}, nil))
}

func TestUpdatesFromPtrDTORenames(t *testing.T) {
	n := 7
	updates := UpdatesFromPtrDTO(&patchDTO{Quantite: &n}, map[string]string{"quantite": "qty"})
	assert.Equal(t, map[string]any{"qty": 7}, updates)
}

func TestUpdatesFromPtrDTONonPointerInput(t *testing.T) {
	assert.Empty(t, UpdatesFromPtrDTO(patchDTO{}, nil))
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 2, ParseIntDefault("2", 1))
	assert.Equal(t, 2, ParseIntDefault(" 2 ", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 1, ParseIntDefault("abc", 1))
	assert.Equal(t, 1, ParseIntDefault("-3", 1))
}

func TestNormalizePtrDTO(t *testing.T) {
	name := "  Widget  "
	prix := 19.999
	dto := patchDTO{Name: &name, Prix: &prix}

	NormalizePtrDTO(&dto)

	assert.Equal(t, "Widget", *dto.Name)
	assert.Equal(t, 20.0, *dto.Prix)
	assert.Nil(t, dto.Quantite)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.99, Round2(19.994))
	assert.Equal(t, 20.0, Round2(19.995))
	assert.Equal(t, 0.0, Round2(0))
}
