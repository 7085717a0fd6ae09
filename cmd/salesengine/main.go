package main

import (
	"fmt"
	"log"

	"github.com/NoahZinter/black-thursday/internal/analyst"
	"github.com/NoahZinter/black-thursday/internal/config"
	"github.com/NoahZinter/black-thursday/internal/engine"
	"github.com/NoahZinter/black-thursday/internal/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("loading sales engine",
		"merchants", cfg.Data.Merchants,
		"items", cfg.Data.Items,
		"invoices", cfg.Data.Invoices,
	)

	eng, err := engine.FromCSV(cfg, logger)
	if err != nil {
		logger.Fatalw("failed to build sales engine", "error", err)
	}

	a := analyst.New(eng)

	fmt.Printf("merchants: %d\n", eng.Merchants.Len())
	fmt.Printf("items:     %d\n", eng.Items.Len())
	fmt.Printf("invoices:  %d\n", eng.Invoices.Len())
	fmt.Printf("customers: %d\n", eng.Customers.Len())

	if avg, err := a.AverageItemsPerMerchant(); err == nil {
		fmt.Printf("average items per merchant: %.2f\n", avg)
	}
	if avg, err := a.AverageInvoicesPerMerchant(); err == nil {
		fmt.Printf("average invoices per merchant: %.2f\n", avg)
	}
	if golden, err := a.GoldenItems(); err == nil {
		fmt.Printf("golden items: %d\n", len(golden))
	}

	fmt.Println("top revenue earners:")
	for _, mr := range a.TopRevenueEarners(5) {
		fmt.Printf("  %-30s %s\n", mr.Merchant.Name, mr.Revenue.StringFixed(2))
	}

	fmt.Println("merchants with pending invoices:")
	for _, m := range a.MerchantsWithPendingInvoices() {
		fmt.Printf("  %s\n", m.Name)
	}
}
