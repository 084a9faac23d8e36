package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCanonicalDivideApellidos(t *testing.T) {
	r := HermanoLegacyRequest{
		Nombre:    "Antonio",
		Apellidos: "García Moreno",
		FechaAlta: "2020-05-01",
		Activo:    true,
	}

	c := r.ToCanonical()

	assert.Equal(t, "Antonio", c.Nombre)
	assert.Equal(t, "García", c.PrimerApellido)
	require.NotNil(t, c.SegundoApellido)
	assert.Equal(t, "Moreno", *c.SegundoApellido)
	assert.True(t, c.Activo)
}

func TestToCanonicalApellidoUnico(t *testing.T) {
	r := HermanoLegacyRequest{Nombre: "María", Apellidos: "López", FechaAlta: "2021-01-15"}

	c := r.ToCanonical()

	assert.Equal(t, "López", c.PrimerApellido)
	assert.Nil(t, c.SegundoApellido)
}

func TestToCanonicalApellidosCompuestos(t *testing.T) {
	// Solo se divide por el primer espacio; el resto queda entero
	r := HermanoLegacyRequest{Nombre: "José", Apellidos: "Romero de la Cruz", FechaAlta: "2019-09-30"}

	c := r.ToCanonical()

	assert.Equal(t, "Romero", c.PrimerApellido)
	require.NotNil(t, c.SegundoApellido)
	assert.Equal(t, "de la Cruz", *c.SegundoApellido)
}

func TestToCanonicalRecortaEspacios(t *testing.T) {
	r := HermanoLegacyRequest{Nombre: "Ana", Apellidos: "  Ruiz  ", FechaAlta: "2022-03-10"}

	c := r.ToCanonical()

	assert.Equal(t, "Ruiz", c.PrimerApellido)
	assert.Nil(t, c.SegundoApellido)
}

func TestToModelNormalizaOpcionalesEnBlanco(t *testing.T) {
	blanco := "   "
	dni := "12345678Z"
	r := HermanoRequest{
		Nombre:         "Antonio",
		PrimerApellido: "García",
		FechaAlta:      "2020-05-01",
		DNI:            &dni,
		Telefono:       &blanco,
		Email:          nil,
		Activo:         true,
	}

	mo := r.ToModel()

	require.NotNil(t, mo.DNI)
	assert.Equal(t, "12345678Z", *mo.DNI)
	assert.Nil(t, mo.Telefono)
	assert.Nil(t, mo.Email)
}
