package dashboard

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// ContainsFold búsqueda por subcadena sin distinguir mayúsculas (incluye acentuadas: "CAFÉ" ~ "café").
// Una consulta vacía coincide con todo.
func ContainsFold(text, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(text), fold.String(query))
}

// FilterProducts productos cuyo nombre contiene search.
func FilterProducts(list []*entity.Product, search string) []*entity.Product {
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if ContainsFold(p.Name, search) {
			out = append(out, p)
		}
	}
	return out
}

// FilterExpenses gastos cuyo concepto contiene search.
func FilterExpenses(list []*entity.Expense, search string) []*entity.Expense {
	out := make([]*entity.Expense, 0, len(list))
	for _, e := range list {
		if ContainsFold(e.Concept, search) {
			out = append(out, e)
		}
	}
	return out
}

// Sellable productos con stock mayor a cero, los únicos que ofrece el formulario de venta.
func Sellable(list []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if p.Quantity > 0 {
			out = append(out, p)
		}
	}
	return out
}
