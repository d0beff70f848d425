package excel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFecha_NumeroDeSerie(t *testing.T) {
	// 45658 = 2025-01-01 en el calendario de Excel.
	f := ParseFecha("45658")
	require.NotNil(t, f)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f)
}

func TestParseFecha_SerieConFraccionDeDia(t *testing.T) {
	f := ParseFecha("45658.75")
	require.NotNil(t, f)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f,
		"la hora se descarta, solo importa el día")
}

func TestParseFecha_TextoISO(t *testing.T) {
	f := ParseFecha("2025-03-15")
	require.NotNil(t, f)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *f)
}

func TestParseFecha_TextoConHora(t *testing.T) {
	f := ParseFecha("2025-03-15 18:30:00")
	require.NotNil(t, f)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *f)
}

func TestParseFecha_FormatoChileno(t *testing.T) {
	f := ParseFecha("15/03/2025")
	require.NotNil(t, f)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), *f)
}

func TestParseFecha_Invalida(t *testing.T) {
	assert.Nil(t, ParseFecha(""))
	assert.Nil(t, ParseFecha("   "))
	assert.Nil(t, ParseFecha("sin fecha"))
}
