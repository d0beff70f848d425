package usecase

import (
	"errors"
	"time"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

// ConfiguracionUseCase administra la fila única de configuración del negocio.
type ConfiguracionUseCase struct {
	repo repository.ConfiguracionRepository
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(repo repository.ConfiguracionRepository) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{repo: repo}
}

// Get devuelve la configuración vigente. Si aún no existe la siembra con los
// valores por defecto, de modo que el resto del sistema siempre encuentre
// una fila.
func (uc *ConfiguracionUseCase) Get() (*entity.Configuracion, error) {
	cfg, err := uc.repo.Get()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, domain.ErrConfigNoCargada) {
		return nil, err
	}
	inicial := entity.ConfiguracionPorDefecto()
	inicial.UpdatedAt = time.Now()
	if err := uc.repo.Save(&inicial); err != nil {
		return nil, err
	}
	return &inicial, nil
}

// Update reemplaza la configuración completa. El panel siempre envía el
// documento entero, así que no hay merge parcial.
func (uc *ConfiguracionUseCase) Update(cfg entity.Configuracion) (*entity.Configuracion, error) {
	if cfg.TiempoEntrega < 0 || cfg.StockSaludableMinDias < 0 ||
		cfg.StockSaludableMaxDias < cfg.StockSaludableMinDias {
		return nil, domain.ErrInvalidInput
	}
	if cfg.RmbToUsd.IsNegative() || cfg.UsdToClp.IsNegative() || cfg.ContainerCBM.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	cfg.UpdatedAt = time.Now()
	if err := uc.repo.Save(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Reset vuelve a los valores por defecto.
func (uc *ConfiguracionUseCase) Reset() (*entity.Configuracion, error) {
	inicial := entity.ConfiguracionPorDefecto()
	inicial.UpdatedAt = time.Now()
	if err := uc.repo.Save(&inicial); err != nil {
		return nil, err
	}
	return &inicial, nil
}
