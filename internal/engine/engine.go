// Package engine wires the six entity repositories into one sales engine.
// Construction is all-or-nothing: a single malformed record aborts the whole
// load and no partial engine is ever observable.
package engine

import (
	"github.com/NoahZinter/black-thursday/internal/config"
	"github.com/NoahZinter/black-thursday/internal/domain/customer"
	"github.com/NoahZinter/black-thursday/internal/domain/invoice"
	"github.com/NoahZinter/black-thursday/internal/domain/item"
	"github.com/NoahZinter/black-thursday/internal/domain/merchant"
	"github.com/NoahZinter/black-thursday/internal/domain/transaction"
	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/NoahZinter/black-thursday/internal/loader"
	"github.com/NoahZinter/black-thursday/internal/logger"
)

// Records carries the six parsed record sources the engine is built from
type Records struct {
	Merchants    []loader.Record
	Items        []loader.Record
	Invoices     []loader.Record
	InvoiceItems []loader.Record
	Transactions []loader.Record
	Customers    []loader.Record
}

// SalesEngine owns one repository per entity type. It is built once and then
// queried; callers must serialize access, there is no internal locking.
type SalesEngine struct {
	Merchants    *merchant.Repository
	Items        *item.Repository
	Invoices     *invoice.Repository
	InvoiceItems *invoice.LineItemRepository
	Transactions *transaction.Repository
	Customers    *customer.Repository
}

// New builds a SalesEngine from parsed record sources
func New(src Records) (*SalesEngine, error) {
	merchants, err := merchant.NewRepositoryFromRecords(src.Merchants)
	if err != nil {
		return nil, loadError(err, "merchants")
	}
	items, err := item.NewRepositoryFromRecords(src.Items)
	if err != nil {
		return nil, loadError(err, "items")
	}
	invoices, err := invoice.NewRepositoryFromRecords(src.Invoices)
	if err != nil {
		return nil, loadError(err, "invoices")
	}
	invoiceItems, err := invoice.NewLineItemRepositoryFromRecords(src.InvoiceItems)
	if err != nil {
		return nil, loadError(err, "invoice_items")
	}
	transactions, err := transaction.NewRepositoryFromRecords(src.Transactions)
	if err != nil {
		return nil, loadError(err, "transactions")
	}
	customers, err := customer.NewRepositoryFromRecords(src.Customers)
	if err != nil {
		return nil, loadError(err, "customers")
	}

	return &SalesEngine{
		Merchants:    merchants,
		Items:        items,
		Invoices:     invoices,
		InvoiceItems: invoiceItems,
		Transactions: transactions,
		Customers:    customers,
	}, nil
}

// FromCSV reads the six CSV record sources named by the configuration and
// builds the engine from them
func FromCSV(cfg *config.Configuration, log *logger.Logger) (*SalesEngine, error) {
	type source struct {
		name string
		path string
		dst  *[]loader.Record
	}

	var src Records
	sources := []source{
		{"merchants", cfg.Data.Merchants, &src.Merchants},
		{"items", cfg.Data.Items, &src.Items},
		{"invoices", cfg.Data.Invoices, &src.Invoices},
		{"invoice_items", cfg.Data.InvoiceItems, &src.InvoiceItems},
		{"transactions", cfg.Data.Transactions, &src.Transactions},
		{"customers", cfg.Data.Customers, &src.Customers},
	}

	for _, s := range sources {
		records, err := loader.ReadFile(s.path)
		if err != nil {
			return nil, err
		}
		log.Debugw("loaded record source", "source", s.name, "records", len(records))
		*s.dst = records
	}

	return New(src)
}

func loadError(err error, source string) error {
	return ierr.WithError(err).
		WithHintf("failed to load %s record source", source).
		Mark(ierr.ErrValidation)
}

// Convenience accessors mirroring the repository all() calls

func (e *SalesEngine) AllMerchants() []*merchant.Merchant {
	return e.Merchants.All()
}

func (e *SalesEngine) AllItems() []*item.Item {
	return e.Items.All()
}

func (e *SalesEngine) AllInvoices() []*invoice.Invoice {
	return e.Invoices.All()
}

func (e *SalesEngine) AllInvoiceItems() []*invoice.LineItem {
	return e.InvoiceItems.All()
}

func (e *SalesEngine) AllTransactions() []*transaction.Transaction {
	return e.Transactions.All()
}

func (e *SalesEngine) AllCustomers() []*customer.Customer {
	return e.Customers.All()
}
