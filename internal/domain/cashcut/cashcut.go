// Package cashcut calcula los agregados del corte de caja a partir de las
// colecciones ya cargadas en memoria. No hace I/O: todas las funciones son puras.
package cashcut

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

const (
	DefaultLowStockThreshold = 5 // productos con cantidad <= 5 se reportan como stock bajo
	DefaultTopSellers        = 5
)

// DailyTotal suma y cuenta los registros de un día.
type DailyTotal struct {
	Total decimal.Decimal
	Count int
}

// SellerRank unidades vendidas acumuladas por nombre de producto.
type SellerRank struct {
	ProductName string
	Quantity    int
}

// Options parámetros del corte; valores <= 0 usan los defaults.
type Options struct {
	LowStockThreshold int
	TopSellers        int
}

func (o Options) withDefaults() Options {
	if o.LowStockThreshold <= 0 {
		o.LowStockThreshold = DefaultLowStockThreshold
	}
	if o.TopSellers <= 0 {
		o.TopSellers = DefaultTopSellers
	}
	return o
}

// Summary corte de caja: fotografía financiera del negocio en un instante.
type Summary struct {
	GeneratedAt        time.Time
	CashBalance        decimal.Decimal
	GrossProfit        decimal.Decimal
	NetProfit          decimal.Decimal
	TotalExpenses      decimal.Decimal
	TotalReinvestments decimal.Decimal
	SalesToday         DailyTotal
	ExpensesToday      DailyTotal
	ReinvestmentsToday DailyTotal
	TopSellers         []SellerRank
	LowStock           []*entity.Product
}

// Input colecciones sobre las que se calcula el corte.
type Input struct {
	Products      []*entity.Product
	Sales         []*entity.Sale
	Expenses      []*entity.Expense
	Reinvestments []*entity.Reinvestment
	CashBalance   decimal.Decimal
}

// Summarize arma el corte completo. now define el "hoy" en su propia zona horaria.
func Summarize(in Input, now time.Time, opts Options) Summary {
	opts = opts.withDefaults()
	gross := GrossProfit(in.Products, in.Sales)
	return Summary{
		GeneratedAt:        now,
		CashBalance:        in.CashBalance,
		GrossProfit:        gross,
		NetProfit:          NetProfit(gross, in.Expenses),
		TotalExpenses:      TotalExpenses(in.Expenses),
		TotalReinvestments: TotalReinvestments(in.Reinvestments),
		SalesToday:         DailySales(in.Sales, now),
		ExpensesToday:      DailyExpenses(in.Expenses, now),
		ReinvestmentsToday: DailyReinvestments(in.Reinvestments, now),
		TopSellers:         TopSellers(in.Sales, opts.TopSellers),
		LowStock:           LowStock(in.Products, opts.LowStockThreshold),
	}
}

// SameDay indica si t cae en el mismo día calendario que now, medido en la zona de now.
func SameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DailySales total vendido hoy.
func DailySales(sales []*entity.Sale, now time.Time) DailyTotal {
	var out DailyTotal
	for _, s := range sales {
		if SameDay(s.CreatedAt, now) {
			out.Total = out.Total.Add(s.Total)
			out.Count++
		}
	}
	return out
}

// DailyExpenses total gastado hoy.
func DailyExpenses(expenses []*entity.Expense, now time.Time) DailyTotal {
	var out DailyTotal
	for _, e := range expenses {
		if SameDay(e.CreatedAt, now) {
			out.Total = out.Total.Add(e.Amount)
			out.Count++
		}
	}
	return out
}

// DailyReinvestments total reinvertido hoy.
func DailyReinvestments(items []*entity.Reinvestment, now time.Time) DailyTotal {
	var out DailyTotal
	for _, r := range items {
		if SameDay(r.CreatedAt, now) {
			out.Total = out.Total.Add(r.TotalCost)
			out.Count++
		}
	}
	return out
}

// GrossProfit = Σ (precioUnitario - precioCompra actual) * cantidad.
// Las ventas cuyo producto ya fue eliminado no aportan nada.
func GrossProfit(products []*entity.Product, sales []*entity.Sale) decimal.Decimal {
	byID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	total := decimal.Zero
	for _, s := range sales {
		p, ok := byID[s.ProductID]
		if !ok {
			continue
		}
		margin := s.UnitPrice.Sub(p.PurchaseCost)
		total = total.Add(margin.Mul(decimal.NewFromInt(int64(s.Quantity))))
	}
	return total
}

// NetProfit ganancia bruta menos todos los gastos cargados (no solo los de hoy).
func NetProfit(gross decimal.Decimal, expenses []*entity.Expense) decimal.Decimal {
	return gross.Sub(TotalExpenses(expenses))
}

// TotalExpenses suma de todos los gastos.
func TotalExpenses(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalReinvestments suma del costo de todas las reinversiones.
func TotalReinvestments(items []*entity.Reinvestment) decimal.Decimal {
	total := decimal.Zero
	for _, r := range items {
		total = total.Add(r.TotalCost)
	}
	return total
}

// TopSellers agrupa por nombre de producto, suma cantidades y devuelve los n primeros.
// Los empates conservan el orden en que el nombre apareció por primera vez.
func TopSellers(sales []*entity.Sale, n int) []SellerRank {
	index := make(map[string]int)
	ranks := make([]SellerRank, 0)
	for _, s := range sales {
		i, ok := index[s.ProductName]
		if !ok {
			index[s.ProductName] = len(ranks)
			ranks = append(ranks, SellerRank{ProductName: s.ProductName, Quantity: s.Quantity})
			continue
		}
		ranks[i].Quantity += s.Quantity
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Quantity > ranks[j].Quantity
	})
	if n >= 0 && len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// LowStock productos con cantidad <= threshold, en el orden recibido.
func LowStock(products []*entity.Product, threshold int) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	return out
}
