// Package analyst implements the query and aggregation engine over a sales
// engine. Every operation is a pure function of the engine's current state,
// recomputed per call; the analyst never mutates entities. Merchant-keyed
// aggregations always include every merchant, even those contributing zero,
// because the statistical denominators depend on the full merchant count.
package analyst

import (
	"sort"
	"time"

	"github.com/NoahZinter/black-thursday/internal/domain/invoice"
	"github.com/NoahZinter/black-thursday/internal/domain/item"
	"github.com/NoahZinter/black-thursday/internal/domain/merchant"
	"github.com/NoahZinter/black-thursday/internal/engine"
	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/NoahZinter/black-thursday/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SalesAnalyst answers analytic queries over a sales engine. It holds a
// non-owning reference to the engine and carries no state of its own.
type SalesAnalyst struct {
	engine *engine.SalesEngine
}

// New creates a SalesAnalyst over the given engine
func New(e *engine.SalesEngine) *SalesAnalyst {
	return &SalesAnalyst{engine: e}
}

// MerchantCount pairs a merchant with a per-merchant count
type MerchantCount struct {
	Merchant *merchant.Merchant
	Count    int
}

// MerchantRevenue pairs a merchant with its total revenue
type MerchantRevenue struct {
	Merchant *merchant.Merchant
	Revenue  decimal.Decimal
}

// MerchantInvoices pairs a merchant with all invoices addressed to it
type MerchantInvoices struct {
	Merchant *merchant.Merchant
	Invoices []*invoice.Invoice
}

// ItemsPerMerchant maps every merchant, in insertion order, to the number of
// items it owns. Merchants with no items appear with count 0.
func (a *SalesAnalyst) ItemsPerMerchant() []MerchantCount {
	return lo.Map(a.engine.AllMerchants(), func(m *merchant.Merchant, _ int) MerchantCount {
		return MerchantCount{
			Merchant: m,
			Count:    len(a.engine.Items.FindAllByMerchantID(m.ID)),
		}
	})
}

// InvoicesPerMerchant maps every merchant, in insertion order, to the number
// of invoices addressed to it. Merchants with no invoices appear with
// count 0.
func (a *SalesAnalyst) InvoicesPerMerchant() []MerchantCount {
	return lo.Map(a.engine.AllMerchants(), func(m *merchant.Merchant, _ int) MerchantCount {
		return MerchantCount{
			Merchant: m,
			Count:    len(a.engine.Invoices.FindAllByMerchantID(m.ID)),
		}
	})
}

// InvoicesByMerchant groups all invoices under their merchant, in merchant
// insertion order. Merchants with no invoices appear with an empty slice.
func (a *SalesAnalyst) InvoicesByMerchant() []MerchantInvoices {
	return lo.Map(a.engine.AllMerchants(), func(m *merchant.Merchant, _ int) MerchantInvoices {
		return MerchantInvoices{
			Merchant: m,
			Invoices: a.engine.Invoices.FindAllByMerchantID(m.ID),
		}
	})
}

func countValues(counts []MerchantCount) []float64 {
	return lo.Map(counts, func(c MerchantCount, _ int) float64 {
		return float64(c.Count)
	})
}

// AverageItemsPerMerchant returns the mean item count across all merchants,
// rounded to 2 places
func (a *SalesAnalyst) AverageItemsPerMerchant() (float64, error) {
	mean, err := Mean(countValues(a.ItemsPerMerchant()))
	if err != nil {
		return 0, err
	}
	return Round2(mean), nil
}

// AverageItemsPerMerchantStdDev returns the sample standard deviation of
// item counts across all merchants, rounded to 2 places
func (a *SalesAnalyst) AverageItemsPerMerchantStdDev() (float64, error) {
	stddev, err := SampleStdDev(countValues(a.ItemsPerMerchant()))
	if err != nil {
		return 0, err
	}
	return Round2(stddev), nil
}

// AverageInvoicesPerMerchant returns the mean invoice count across all
// merchants, rounded to 2 places
func (a *SalesAnalyst) AverageInvoicesPerMerchant() (float64, error) {
	mean, err := Mean(countValues(a.InvoicesPerMerchant()))
	if err != nil {
		return 0, err
	}
	return Round2(mean), nil
}

// AverageInvoicesPerMerchantStdDev returns the sample standard deviation of
// invoice counts across all merchants, rounded to 2 places
func (a *SalesAnalyst) AverageInvoicesPerMerchantStdDev() (float64, error) {
	stddev, err := SampleStdDev(countValues(a.InvoicesPerMerchant()))
	if err != nil {
		return 0, err
	}
	return Round2(stddev), nil
}

// merchantsAboveCountThreshold selects merchants whose count strictly
// exceeds mean + deviations*stddev
func merchantsAboveCountThreshold(counts []MerchantCount, deviations float64) ([]*merchant.Merchant, error) {
	values := countValues(counts)
	mean, err := Mean(values)
	if err != nil {
		return nil, err
	}
	stddev, err := SampleStdDev(values)
	if err != nil {
		return nil, err
	}
	threshold := StandardDeviationsOfMean(Round2(mean), Round2(stddev), deviations)

	selected := lo.Filter(counts, func(c MerchantCount, _ int) bool {
		return float64(c.Count) > threshold
	})
	return lo.Map(selected, func(c MerchantCount, _ int) *merchant.Merchant {
		return c.Merchant
	}), nil
}

// merchantsBelowCountThreshold selects merchants whose count is strictly
// below mean - deviations*stddev
func merchantsBelowCountThreshold(counts []MerchantCount, deviations float64) ([]*merchant.Merchant, error) {
	values := countValues(counts)
	mean, err := Mean(values)
	if err != nil {
		return nil, err
	}
	stddev, err := SampleStdDev(values)
	if err != nil {
		return nil, err
	}
	threshold := StandardDeviationsOfMean(Round2(mean), Round2(stddev), -deviations)

	selected := lo.Filter(counts, func(c MerchantCount, _ int) bool {
		return float64(c.Count) < threshold
	})
	return lo.Map(selected, func(c MerchantCount, _ int) *merchant.Merchant {
		return c.Merchant
	}), nil
}

// MerchantsWithHighItemCount returns merchants whose item count is more than
// one standard deviation above the mean
func (a *SalesAnalyst) MerchantsWithHighItemCount() ([]*merchant.Merchant, error) {
	return merchantsAboveCountThreshold(a.ItemsPerMerchant(), 1)
}

// TopMerchantsByInvoiceCount returns merchants whose invoice count is more
// than two standard deviations above the mean
func (a *SalesAnalyst) TopMerchantsByInvoiceCount() ([]*merchant.Merchant, error) {
	return merchantsAboveCountThreshold(a.InvoicesPerMerchant(), 2)
}

// BottomMerchantsByInvoiceCount returns merchants whose invoice count is
// more than two standard deviations below the mean
func (a *SalesAnalyst) BottomMerchantsByInvoiceCount() ([]*merchant.Merchant, error) {
	return merchantsBelowCountThreshold(a.InvoicesPerMerchant(), 2)
}

// MerchantsWithOnlyOneItem returns merchants owning exactly one item, in
// merchant insertion order
func (a *SalesAnalyst) MerchantsWithOnlyOneItem() []*merchant.Merchant {
	singles := lo.Filter(a.ItemsPerMerchant(), func(c MerchantCount, _ int) bool {
		return c.Count == 1
	})
	return lo.Map(singles, func(c MerchantCount, _ int) *merchant.Merchant {
		return c.Merchant
	})
}

// MerchantsWithOnlyOneItemRegisteredInMonth returns merchants owning exactly
// one item whose creation month matches the given English month name
// (case-sensitive, e.g. "July"). Only month-of-year is compared; the year is
// ignored.
func (a *SalesAnalyst) MerchantsWithOnlyOneItemRegisteredInMonth(month string) []*merchant.Merchant {
	return lo.Filter(a.MerchantsWithOnlyOneItem(), func(m *merchant.Merchant, _ int) bool {
		items := a.engine.Items.FindAllByMerchantID(m.ID)
		return len(items) == 1 && items[0].CreatedAt.Month().String() == month
	})
}

// AverageItemPriceForMerchant returns the mean unit price of the merchant's
// items, rounded to 2 places. A merchant with no items has no defined
// average; the call returns an invalid operation error rather than dividing
// by zero.
func (a *SalesAnalyst) AverageItemPriceForMerchant(merchantID int) (decimal.Decimal, error) {
	items := a.engine.Items.FindAllByMerchantID(merchantID)
	if len(items) == 0 {
		return decimal.Zero, ierr.NewErrorf("merchant %d has no items", merchantID).
			WithHint("average item price is undefined for merchants with no items").
			Mark(ierr.ErrInvalidOperation)
	}

	sum := decimal.Zero
	for _, i := range items {
		sum = sum.Add(i.UnitPrice)
	}
	return types.RoundMoney(sum.Div(decimal.NewFromInt(int64(len(items))))), nil
}

// AverageAveragePricePerMerchant returns the mean of the per-merchant
// average item prices, rounded to 2 places. Merchants with no items carry no
// defined average and are excluded from both numerator and denominator.
func (a *SalesAnalyst) AverageAveragePricePerMerchant() (decimal.Decimal, error) {
	sum := decimal.Zero
	merchantsWithItems := 0
	for _, m := range a.engine.AllMerchants() {
		avg, err := a.AverageItemPriceForMerchant(m.ID)
		if err != nil {
			if ierr.IsInvalidOperation(err) {
				continue
			}
			return decimal.Zero, err
		}
		sum = sum.Add(avg)
		merchantsWithItems++
	}

	if merchantsWithItems == 0 {
		return decimal.Zero, ierr.NewError("no merchant has any items").
			Mark(ierr.ErrInvalidOperation)
	}
	return types.RoundMoney(sum.Div(decimal.NewFromInt(int64(merchantsWithItems)))), nil
}

// GoldenItems returns items priced more than two standard deviations above
// the mean item price
func (a *SalesAnalyst) GoldenItems() ([]*item.Item, error) {
	items := a.engine.AllItems()
	prices := lo.Map(items, func(i *item.Item, _ int) float64 {
		return i.UnitPriceToDollars()
	})

	mean, err := Mean(prices)
	if err != nil {
		return nil, err
	}
	stddev, err := SampleStdDev(prices)
	if err != nil {
		return nil, err
	}
	threshold := StandardDeviationsOfMean(Round2(mean), Round2(stddev), 2)

	return lo.Filter(items, func(i *item.Item, _ int) bool {
		return i.UnitPriceToDollars() > threshold
	}), nil
}

// InvoicePaidInFull reports whether the invoice has at least one successful
// transaction. An invoice with no transactions is not paid.
func (a *SalesAnalyst) InvoicePaidInFull(invoiceID int) bool {
	return a.engine.Transactions.AnySuccess(invoiceID)
}

// InvoiceTotal returns the sum of quantity times unit price over the
// invoice's line items
func (a *SalesAnalyst) InvoiceTotal(invoiceID int) decimal.Decimal {
	return a.engine.InvoiceItems.TotalForInvoice(invoiceID)
}

// TotalRevenueByDate returns the summed totals of all paid-in-full invoices
// created on the given calendar day. Comparison is by day, not timestamp.
func (a *SalesAnalyst) TotalRevenueByDate(date time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range a.engine.AllInvoices() {
		if !sameCalendarDay(inv.CreatedAt, date) {
			continue
		}
		if !a.InvoicePaidInFull(inv.ID) {
			continue
		}
		total = total.Add(a.InvoiceTotal(inv.ID))
	}
	return total
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// merchantRevenues computes per-merchant revenue over paid-in-full invoices,
// in merchant insertion order
func (a *SalesAnalyst) merchantRevenues() []MerchantRevenue {
	return lo.Map(a.InvoicesByMerchant(), func(mi MerchantInvoices, _ int) MerchantRevenue {
		revenue := decimal.Zero
		for _, inv := range mi.Invoices {
			if a.InvoicePaidInFull(inv.ID) {
				revenue = revenue.Add(a.InvoiceTotal(inv.ID))
			}
		}
		return MerchantRevenue{Merchant: mi.Merchant, Revenue: revenue}
	})
}

// RevenueByMerchant maps every merchant to its total revenue across
// paid-in-full invoices, sorted descending by revenue. Ties keep merchant
// insertion order. Merchants with no revenue appear with zero.
func (a *SalesAnalyst) RevenueByMerchant() []MerchantRevenue {
	revenues := a.merchantRevenues()
	sort.SliceStable(revenues, func(i, j int) bool {
		return revenues[i].Revenue.GreaterThan(revenues[j].Revenue)
	})
	return revenues
}

// TopRevenueEarners returns the n merchants with the highest revenue. When n
// exceeds the merchant count, every merchant is returned.
func (a *SalesAnalyst) TopRevenueEarners(n int) []MerchantRevenue {
	ranked := a.RevenueByMerchant()
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}

// BottomRevenueEarners returns the n merchants with the lowest revenue,
// lowest first. Ties keep merchant insertion order.
func (a *SalesAnalyst) BottomRevenueEarners(n int) []MerchantRevenue {
	ranked := a.merchantRevenues()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.LessThan(ranked[j].Revenue)
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}

// weekdays is the fixed Sunday-first reference ordering used by the weekday
// aggregations
var weekdays = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// InvoiceCreatedAtByWeekday returns the English weekday name of every
// invoice's creation timestamp, mirroring invoice order
func (a *SalesAnalyst) InvoiceCreatedAtByWeekday() []string {
	return lo.Map(a.engine.AllInvoices(), func(inv *invoice.Invoice, _ int) string {
		return inv.CreatedAt.Weekday().String()
	})
}

// TopDaysByInvoiceCount returns the weekdays whose invoice count is more
// than one standard deviation above the mean daily count, in Sunday-first
// order
func (a *SalesAnalyst) TopDaysByInvoiceCount() ([]string, error) {
	byDay := lo.CountValues(a.InvoiceCreatedAtByWeekday())

	values := lo.Map(weekdays, func(d time.Weekday, _ int) float64 {
		return float64(byDay[d.String()])
	})
	mean, err := Mean(values)
	if err != nil {
		return nil, err
	}
	stddev, err := SampleStdDev(values)
	if err != nil {
		return nil, err
	}
	threshold := StandardDeviationsOfMean(Round2(mean), Round2(stddev), 1)

	top := lo.Filter(weekdays, func(d time.Weekday, _ int) bool {
		return float64(byDay[d.String()]) > threshold
	})
	return lo.Map(top, func(d time.Weekday, _ int) string {
		return d.String()
	}), nil
}

// MerchantsWithPendingInvoices returns merchants having at least one invoice
// that is not paid in full, in merchant insertion order. Pending here means
// unpaid, regardless of the invoice's fulfillment status.
func (a *SalesAnalyst) MerchantsWithPendingInvoices() []*merchant.Merchant {
	pending := lo.Filter(a.InvoicesByMerchant(), func(mi MerchantInvoices, _ int) bool {
		return lo.SomeBy(mi.Invoices, func(inv *invoice.Invoice) bool {
			return !a.InvoicePaidInFull(inv.ID)
		})
	})
	return lo.Map(pending, func(mi MerchantInvoices, _ int) *merchant.Merchant {
		return mi.Merchant
	})
}
