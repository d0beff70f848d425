package carga

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type almacenFake struct {
	subidaRuta        string
	subidaTamano      int64
	subidaContentType string
	subidaCuerpo      string
	errSubir          error
}

func (a *almacenFake) Subir(_ context.Context, ruta string, r io.Reader, tamano int64, contentType string) (string, error) {
	if a.errSubir != nil {
		return "", a.errSubir
	}
	cuerpo, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	a.subidaRuta = ruta
	a.subidaTamano = tamano
	a.subidaContentType = contentType
	a.subidaCuerpo = string(cuerpo)
	return ruta, nil
}

func (a *almacenFake) Descargar(context.Context, string) (io.ReadCloser, error) { return nil, nil }
func (a *almacenFake) Eliminar(context.Context, string) error                   { return nil }

func TestSubir_GuardaBajoCargasConNombreUnico(t *testing.T) {
	almacen := &almacenFake{}
	uc := NewUsecase(almacen, nil, nil, nil, func() time.Time { return ahoraCarga }, nil)

	ruta, err := uc.Subir(context.Background(), "consolidado junio.xlsx", strings.NewReader("libro"), 5)

	require.NoError(t, err)
	assert.Equal(t, ruta, almacen.subidaRuta)
	assert.True(t, strings.HasPrefix(ruta, "cargas/"), "la ruta devuelta fue %q", ruta)
	assert.True(t, strings.HasSuffix(ruta, "-consolidado junio.xlsx"), "la ruta devuelta fue %q", ruta)
	assert.Equal(t, int64(5), almacen.subidaTamano)
	assert.Equal(t, "libro", almacen.subidaCuerpo)
	assert.Equal(t, contentTypeXLSX, almacen.subidaContentType)
}

func TestSubir_DescartaDirectoriosDelNombre(t *testing.T) {
	almacen := &almacenFake{}
	uc := NewUsecase(almacen, nil, nil, nil, func() time.Time { return ahoraCarga }, nil)

	ruta, err := uc.Subir(context.Background(), "../../etc/consolidado.xlsx", strings.NewReader("libro"), 5)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ruta, "-consolidado.xlsx"), "la ruta devuelta fue %q", ruta)
	assert.NotContains(t, ruta, "..")
}

func TestSubir_NombreVacioUsaUnoPorDefecto(t *testing.T) {
	almacen := &almacenFake{}
	uc := NewUsecase(almacen, nil, nil, nil, func() time.Time { return ahoraCarga }, nil)

	ruta, err := uc.Subir(context.Background(), "  ", strings.NewReader("libro"), 5)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ruta, "-carga.xlsx"), "la ruta devuelta fue %q", ruta)
}

func TestSubir_PropagaElErrorDelBucket(t *testing.T) {
	almacen := &almacenFake{errSubir: errors.New("bucket caído")}
	uc := NewUsecase(almacen, nil, nil, nil, func() time.Time { return ahoraCarga }, nil)

	_, err := uc.Subir(context.Background(), "consolidado.xlsx", strings.NewReader("libro"), 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket caído")
}
