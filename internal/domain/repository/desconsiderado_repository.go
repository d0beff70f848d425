package repository

// DesconsideradoRepository define el puerto para los SKU excluidos del
// análisis de reposición (DIP). La carga masiva reemplaza la lista completa;
// además se puede excluir o reincorporar un SKU a mano desde el panel.
type DesconsideradoRepository interface {
	ReplaceAll(skus []string) error
	List() ([]string, error)
	Add(sku string) error
	Remove(sku string) error
	Contains(sku string) (bool, error)
}
