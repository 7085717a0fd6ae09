// Package testutil generates deterministic mock record sources for tests.
// The generators mirror the shape of the real CSV record sources; all
// randomness is seeded so fixtures are reproducible run to run.
package testutil

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/NoahZinter/black-thursday/internal/loader"
)

const mockSeed = 1

// FixedDate is the date stamped on records generated with RandomDates off
const FixedDate = "2019-12-01"

// IDRange is an inclusive range of ids to draw references from. A zero
// range means "any id within the generated count".
type IDRange struct {
	Min int
	Max int
}

func (r IDRange) pick(rng *rand.Rand, fallbackMax int) int {
	if r.Min == 0 && r.Max == 0 {
		return rng.Intn(fallbackMax) + 1
	}
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func mockDate(rng *rand.Rand, random bool) string {
	if !random {
		return FixedDate
	}
	start := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start.AddDate(0, 0, rng.Intn(365)).Format("2006-01-02")
}

// MerchantOptions controls merchant record generation
type MerchantOptions struct {
	Count int
}

// MerchantRecords generates merchant records with ids 1..Count
func MerchantRecords(opts MerchantOptions) []loader.Record {
	records := make([]loader.Record, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		records = append(records, loader.Record{
			"id":   strconv.Itoa(i),
			"name": fmt.Sprintf("Merchant %d", i),
		})
	}
	return records
}

// ItemOptions controls item record generation
type ItemOptions struct {
	Count           int
	MerchantIDRange IDRange
	UnitPriceCents  int64 // 0 means a random price
	RandomDates     bool
}

// ItemRecords generates item records with ids 1..Count
func ItemRecords(opts ItemOptions) []loader.Record {
	rng := rand.New(rand.NewSource(mockSeed))
	records := make([]loader.Record, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		cents := opts.UnitPriceCents
		if cents == 0 {
			cents = int64(rng.Intn(10000) + 1)
		}
		date := mockDate(rng, opts.RandomDates)
		records = append(records, loader.Record{
			"id":          strconv.Itoa(i),
			"name":        fmt.Sprintf("Item %d", i),
			"description": fmt.Sprintf("Description of item %d", i),
			"unit_price":  strconv.FormatInt(cents, 10),
			"merchant_id": strconv.Itoa(opts.MerchantIDRange.pick(rng, opts.Count)),
			"created_at":  date,
			"updated_at":  date,
		})
	}
	return records
}

// InvoiceOptions controls invoice record generation
type InvoiceOptions struct {
	Count           int
	CustomerIDRange IDRange
	MerchantIDRange IDRange
	Status          string // empty means a random valid status
	RandomDates     bool
}

var invoiceStatuses = []string{"pending", "shipped", "returned"}

// InvoiceRecords generates invoice records with ids 1..Count
func InvoiceRecords(opts InvoiceOptions) []loader.Record {
	rng := rand.New(rand.NewSource(mockSeed))
	records := make([]loader.Record, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		status := opts.Status
		if status == "" {
			status = invoiceStatuses[rng.Intn(len(invoiceStatuses))]
		}
		date := mockDate(rng, opts.RandomDates)
		records = append(records, loader.Record{
			"id":          strconv.Itoa(i),
			"customer_id": strconv.Itoa(opts.CustomerIDRange.pick(rng, opts.Count)),
			"merchant_id": strconv.Itoa(opts.MerchantIDRange.pick(rng, opts.Count)),
			"status":      status,
			"created_at":  date,
			"updated_at":  date,
		})
	}
	return records
}

// InvoiceItemOptions controls invoice line item record generation
type InvoiceItemOptions struct {
	Count          int
	ItemIDRange    IDRange
	InvoiceIDRange IDRange
	Quantity       int   // 0 means a random quantity
	UnitPriceCents int64 // 0 means a random price
	RandomDates    bool
}

// InvoiceItemRecords generates invoice line item records with ids 1..Count
func InvoiceItemRecords(opts InvoiceItemOptions) []loader.Record {
	rng := rand.New(rand.NewSource(mockSeed))
	records := make([]loader.Record, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		quantity := opts.Quantity
		if quantity == 0 {
			quantity = rng.Intn(9) + 1
		}
		cents := opts.UnitPriceCents
		if cents == 0 {
			cents = int64(rng.Intn(10000) + 1)
		}
		date := mockDate(rng, opts.RandomDates)
		records = append(records, loader.Record{
			"id":         strconv.Itoa(i),
			"item_id":    strconv.Itoa(opts.ItemIDRange.pick(rng, opts.Count)),
			"invoice_id": strconv.Itoa(opts.InvoiceIDRange.pick(rng, opts.Count)),
			"quantity":   strconv.Itoa(quantity),
			"unit_price": strconv.FormatInt(cents, 10),
			"created_at": date,
			"updated_at": date,
		})
	}
	return records
}

// TransactionOptions controls transaction record generation
type TransactionOptions struct {
	Count          int
	InvoiceIDRange IDRange
	Result         string // empty means a random result
	RandomDates    bool
}

var transactionResults = []string{"success", "failed"}

// TransactionRecords generates transaction records with ids 1..Count
func TransactionRecords(opts TransactionOptions) []loader.Record {
	rng := rand.New(rand.NewSource(mockSeed))
	records := make([]loader.Record, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		result := opts.Result
		if result == "" {
			result = transactionResults[rng.Intn(len(transactionResults))]
		}
		date := mockDate(rng, opts.RandomDates)
		records = append(records, loader.Record{
			"id":                          strconv.Itoa(i),
			"invoice_id":                  strconv.Itoa(opts.InvoiceIDRange.pick(rng, opts.Count)),
			"credit_card_number":          fmt.Sprintf("40922066234%05d", i),
			"credit_card_expiration_date": "0225",
			"result":                      result,
			"created_at":                  date,
			"updated_at":                  date,
		})
	}
	return records
}

// CustomerOptions controls customer record generation
type CustomerOptions struct {
	Count       int
	RandomDates bool
}

// CustomerRecords generates customer records with ids 1..Count
func CustomerRecords(opts CustomerOptions) []loader.Record {
	rng := rand.New(rand.NewSource(mockSeed))
	records := make([]loader.Record, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		date := mockDate(rng, opts.RandomDates)
		records = append(records, loader.Record{
			"id":         strconv.Itoa(i),
			"first_name": fmt.Sprintf("First%d", i),
			"last_name":  fmt.Sprintf("Last%d", i),
			"created_at": date,
			"updated_at": date,
		})
	}
	return records
}
