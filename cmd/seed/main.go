// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"freshstock/internal/core/apperror"
	"freshstock/internal/core/clock"
	"freshstock/internal/core/types"
	"freshstock/internal/domain"
	"freshstock/internal/domain/batches"
	"freshstock/internal/domain/catalogs/buyer"
	"freshstock/internal/domain/catalogs/product"
	"freshstock/internal/domain/catalogs/section"
	"freshstock/internal/domain/catalogs/seller"
	"freshstock/internal/domain/catalogs/warehouse"
	"freshstock/internal/infrastructure/storage/postgres"
	"freshstock/internal/infrastructure/storage/postgres/catalog_repo"
	"freshstock/internal/infrastructure/storage/postgres/register_repo"
	"freshstock/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedDemoData(ctx, pool, log); err != nil {
		log.Fatalw("seeding failed", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	txManager := postgres.NewTxManager(pool)

	sellerRepo := catalog_repo.NewSellerRepo(txManager)
	buyerRepo := catalog_repo.NewBuyerRepo(txManager)
	warehouseRepo := catalog_repo.NewWarehouseRepo(txManager)
	sectionRepo := catalog_repo.NewSectionRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	batchRepo := register_repo.NewBatchStockRepo(txManager)

	sellerService := seller.NewService(sellerRepo, txManager)
	buyerService := buyer.NewService(buyerRepo, txManager)
	warehouseService := warehouse.NewService(warehouseRepo, txManager)
	sectionService := section.NewService(sectionRepo, warehouseRepo, txManager)
	productService := product.NewService(productRepo, sellerRepo, txManager)
	batchService := batches.NewService(batchRepo, productService, sectionService, txManager, clock.System{}, nil)

	// Idempotency guard: if the demo seller is already there, skip.
	if _, err := sellerService.GetByCode(ctx, "SLR-001"); err == nil {
		log.Info("demo data already seeded, skipping")
		return nil
	} else if !apperror.IsNotFound(err) {
		return err
	}

	demoSeller := seller.NewSeller("SLR-001", "Nordmark Foods", "5401234567")
	if err := sellerService.Create(ctx, demoSeller); err != nil {
		return fmt.Errorf("seed seller: %w", err)
	}

	demoBuyer := buyer.NewBuyer("BYR-001", "Greengrocer Chain", "7809876543")
	if err := buyerService.Create(ctx, demoBuyer); err != nil {
		return fmt.Errorf("seed buyer: %w", err)
	}

	demoWarehouse := warehouse.NewWarehouse("WH-001", "Central Distribution Hub")
	if err := warehouseService.Create(ctx, demoWarehouse); err != nil {
		return fmt.Errorf("seed warehouse: %w", err)
	}

	chilled := section.NewSection("SEC-CHILL", "Chilled Hall A", domain.CategoryRefrigerated,
		types.MustVolume("500"), demoWarehouse.ID)
	chilled.Temperature = decimal.NewFromInt(4)
	if err := sectionService.Create(ctx, chilled); err != nil {
		return fmt.Errorf("seed chilled section: %w", err)
	}

	frozen := section.NewSection("SEC-FRZ", "Freezer Hall B", domain.CategoryFrozen,
		types.MustVolume("300"), demoWarehouse.ID)
	frozen.Temperature = decimal.NewFromInt(-18)
	if err := sectionService.Create(ctx, frozen); err != nil {
		return fmt.Errorf("seed frozen section: %w", err)
	}

	milk := product.NewProduct("PRD-MILK", "Whole Milk 1L", domain.CategoryRefrigerated,
		types.MustVolume("0.001"), types.MustMoney("1.20"), demoSeller.ID)
	if err := productService.Create(ctx, milk); err != nil {
		return fmt.Errorf("seed milk: %w", err)
	}

	peas := product.NewProduct("PRD-PEAS", "Frozen Peas 400g", domain.CategoryFrozen,
		types.MustVolume("0.0005"), types.MustMoney("2.35"), demoSeller.ID)
	if err := productService.Create(ctx, peas); err != nil {
		return fmt.Errorf("seed peas: %w", err)
	}

	now := time.Now().UTC()
	lots := []*batches.BatchStock{
		batches.NewBatchStock("LOT-2024-001", milk.ID, chilled.ID, 500,
			now.Add(-24*time.Hour), now.Add(30*24*time.Hour)),
		batches.NewBatchStock("LOT-2024-002", milk.ID, chilled.ID, 250,
			now.Add(-12*time.Hour), now.Add(45*24*time.Hour)),
		batches.NewBatchStock("LOT-2024-003", peas.ID, frozen.ID, 1000,
			now.Add(-72*time.Hour), now.Add(180*24*time.Hour)),
	}
	lots[0].CurrentTemperature = decimal.NewFromInt(4)
	lots[1].CurrentTemperature = decimal.NewFromInt(4)
	lots[2].CurrentTemperature = decimal.NewFromInt(-18)
	for _, lot := range lots {
		if err := batchService.Admit(ctx, lot); err != nil {
			return fmt.Errorf("seed batch %s: %w", lot.BatchNumber, err)
		}
	}

	log.Infow("demo data seeded",
		"sellers", 1, "buyers", 1, "warehouses", 1, "sections", 2, "products", 2, "batches", len(lots))
	return nil
}
