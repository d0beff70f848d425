package workflow

import "fmt"

// Estado es el estado de un producto dentro del flujo de reposición.
// El flujo nominal es lineal; QUOTE_REJECTED es la única rama lateral
// (rechazo durante el análisis, con re-cotización posterior).
type Estado string

const (
	SinReposicion       Estado = "NO_REPLENISHMENT_NEEDED"
	NecesitaReposicion  Estado = "NEEDS_REPLENISHMENT"
	CotizacionPedida    Estado = "QUOTE_REQUESTED"
	Cotizado            Estado = "QUOTED"
	EnAnalisis          Estado = "ANALYZING"
	CompraAprobada      Estado = "PURCHASE_APPROVED"
	CompraConfirmada    Estado = "PURCHASE_CONFIRMED"
	Fabricado           Estado = "MANUFACTURED"
	Embarcado           Estado = "SHIPPED"
	CotizacionRechazada Estado = "QUOTE_REJECTED"
)

// Orden del flujo nominal, usado para listados y para la UI.
var Orden = []Estado{
	SinReposicion, NecesitaReposicion, CotizacionPedida, Cotizado, EnAnalisis,
	CompraAprobada, CompraConfirmada, Fabricado, Embarcado,
	CotizacionRechazada,
}

// transiciones es la tabla cerrada de transiciones permitidas.
// Cada estado lista el conjunto de estados siguientes válidos; cualquier
// otra solicitud se rechaza con ErrorTransicion.
var transiciones = map[Estado][]Estado{
	SinReposicion:       {NecesitaReposicion},
	NecesitaReposicion:  {CotizacionPedida},
	CotizacionPedida:    {Cotizado},
	Cotizado:            {EnAnalisis},
	EnAnalisis:          {CompraAprobada, CotizacionRechazada},
	CompraAprobada:      {CompraConfirmada},
	CompraConfirmada:    {Fabricado},
	Fabricado:           {Embarcado},
	Embarcado:           {},
	CotizacionRechazada: {Cotizado},
}

// ErrorTransicion identifica el estado actual y el solicitado cuando la
// transición no está permitida.
type ErrorTransicion struct {
	Actual     Estado
	Solicitado Estado
}

func (e *ErrorTransicion) Error() string {
	return fmt.Sprintf("transición de estado no válida: %s → %s", e.Actual, e.Solicitado)
}

// EsValido indica si el string corresponde a un estado conocido.
func EsValido(s string) bool {
	_, ok := transiciones[Estado(s)]
	return ok
}

// Validar verifica que la transición actual → siguiente esté permitida por
// la tabla. Devuelve *ErrorTransicion con ambos estados si no lo está.
func Validar(actual, siguiente Estado) error {
	permitidos, ok := transiciones[actual]
	if !ok {
		return &ErrorTransicion{Actual: actual, Solicitado: siguiente}
	}
	for _, e := range permitidos {
		if e == siguiente {
			return nil
		}
	}
	return &ErrorTransicion{Actual: actual, Solicitado: siguiente}
}
