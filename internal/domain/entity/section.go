package entity

// Section identifica una vista del panel. Cualquier sección es alcanzable desde cualquier otra.
type Section string

const (
	SectionInventory    Section = "inventario"
	SectionSales        Section = "ventas"
	SectionExpenses     Section = "gastos"
	SectionReinvestment Section = "reinversion"
	SectionCashCut      Section = "corte"
)

// Sections lista las secciones en el orden del menú.
var Sections = []Section{SectionInventory, SectionSales, SectionExpenses, SectionReinvestment, SectionCashCut}

// ParseSection valida el nombre de una sección.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}
