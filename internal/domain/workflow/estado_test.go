package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidar_FlujoNominalCompleto(t *testing.T) {
	camino := []Estado{
		SinReposicion, NecesitaReposicion, CotizacionPedida, Cotizado,
		EnAnalisis, CompraAprobada, CompraConfirmada, Fabricado, Embarcado,
	}
	for i := 0; i < len(camino)-1; i++ {
		assert.NoError(t, Validar(camino[i], camino[i+1]),
			"%s → %s debería ser válida", camino[i], camino[i+1])
	}
}

func TestValidar_RamaDeRechazo(t *testing.T) {
	assert.NoError(t, Validar(EnAnalisis, CotizacionRechazada))
	assert.NoError(t, Validar(CotizacionRechazada, Cotizado))
}

func TestValidar_TransicionInvalidaNombraAmbosEstados(t *testing.T) {
	err := Validar(Embarcado, NecesitaReposicion)
	require.Error(t, err)

	var te *ErrorTransicion
	require.ErrorAs(t, err, &te)
	assert.Equal(t, Embarcado, te.Actual)
	assert.Equal(t, NecesitaReposicion, te.Solicitado)
	assert.Contains(t, err.Error(), string(Embarcado))
	assert.Contains(t, err.Error(), string(NecesitaReposicion))
}

func TestValidar_SinSaltosNiRetrocesos(t *testing.T) {
	casos := []struct{ desde, hacia Estado }{
		{NecesitaReposicion, Cotizado},
		{Cotizado, CompraAprobada},
		{CompraConfirmada, Embarcado},
		{Cotizado, CotizacionPedida},
		{Embarcado, CotizacionRechazada},
		{CompraAprobada, EnAnalisis},
	}
	for _, c := range casos {
		assert.Error(t, Validar(c.desde, c.hacia), "%s → %s", c.desde, c.hacia)
	}
}

func TestValidar_EstadoDesconocido(t *testing.T) {
	assert.Error(t, Validar(Estado("FOO"), Cotizado))
}

func TestEsValido(t *testing.T) {
	for _, e := range Orden {
		assert.True(t, EsValido(string(e)), "%s", e)
	}
	assert.False(t, EsValido("PENDING"))
	assert.False(t, EsValido(""))
}
