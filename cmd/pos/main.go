package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/pos-ventas/internal/application/analytics"
	"github.com/jhoicas/pos-ventas/internal/application/backup"
	"github.com/jhoicas/pos-ventas/internal/application/inventory"
	"github.com/jhoicas/pos-ventas/internal/application/sales"
	"github.com/jhoicas/pos-ventas/internal/application/state"
	"github.com/jhoicas/pos-ventas/internal/application/usecase"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/bolt"
	infrapdf "github.com/jhoicas/pos-ventas/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-ventas/pkg/config"
	"github.com/jhoicas/pos-ventas/pkg/logger"
	"github.com/jhoicas/pos-ventas/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_path", cfg.Store.Path).
		Msg("iniciando aplicación")

	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el store de datos")
	}
	defer store.Close()

	if cfg.Store.SeedDemo {
		empty, err := store.Empty()
		if err != nil {
			log.Fatal().Err(err).Msg("inspeccionar el store")
		}
		if empty {
			if err := bolt.Seed(store); err != nil {
				log.Fatal().Err(err).Msg("sembrar catálogo de demostración")
			}
			log.Info().Msg("catálogo de demostración sembrado")
		}
	}

	productRepo := bolt.NewProductRepository(store)
	saleRepo := bolt.NewSaleRepository(store)
	logRepo := bolt.NewInventoryLogRepository(store)
	customerRepo := bolt.NewCustomerRepository(store)
	employeeRepo := bolt.NewEmployeeRepository(store)
	expCatRepo := bolt.NewExpenseCategoryRepository(store)
	incCatRepo := bolt.NewIncomeCategoryRepository(store)
	expenseRepo := bolt.NewExpenseRepository(store)
	incomeRepo := bolt.NewIncomeRepository(store)
	txRunner := bolt.NewTxRunner(store)

	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo, employeeRepo, log)
	adjustUC := inventory.NewAdjustUseCase(txRunner, logRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	expCatUC := usecase.NewCategoryUseCase(expCatRepo)
	incCatUC := usecase.NewCategoryUseCase(incCatRepo)
	financeUC := usecase.NewFinanceUseCase(expenseRepo, incomeRepo, expCatRepo, incCatRepo)
	reportUC := analytics.NewReportUseCase(saleRepo, productRepo, expenseRepo)
	backupUC := backup.NewBackupUseCase(store, log)

	formatter := money.NewFormatter(cfg.App.Currency)
	receiptUC := sales.NewReceiptUseCase(saleRepo, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name, formatter))

	ctx := context.Background()

	// Subcomandos utilitarios: pos export <archivo> | pos import <archivo> |
	// pos receipt <venta> <archivo.pdf>. Sin argumentos corre el modo servicio.
	if len(os.Args) > 1 {
		if err := runCommand(ctx, os.Args[1:], backupUC, receiptUC); err != nil {
			log.Fatal().Err(err).Str("command", os.Args[1]).Msg("comando fallido")
		}
		log.Info().Str("command", os.Args[1]).Msg("comando ejecutado")
		return
	}
	app, err := state.NewApp(ctx, state.Deps{
		SaleUC:     saleUC,
		AdjustUC:   adjustUC,
		ProductUC:  productUC,
		CustomerUC: customerUC,
		EmployeeUC: employeeUC,
		ExpCatUC:   expCatUC,
		IncCatUC:   incCatUC,
		FinanceUC:  financeUC,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}

	snap := app.Snapshot()
	dashboard, err := reportUC.Dashboard(ctx, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("calcular dashboard")
	}
	log.Info().
		Int("products", len(snap.Products)).
		Int("sales", len(snap.Sales)).
		Int("pending_sales", dashboard.PendingSales).
		Str("today_revenue", formatter.Format(dashboard.TodayRevenue)).
		Int("low_stock", len(dashboard.LowStock)).
		Msg("estado cargado")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando store...")
	log.Info().Msg("aplicación detenida")
}

// runCommand despacha los subcomandos utilitarios.
func runCommand(ctx context.Context, args []string, backupUC *backup.BackupUseCase, receiptUC *sales.ReceiptUseCase) error {
	switch args[0] {
	case "export":
		if len(args) != 2 {
			return errors.New("uso: pos export <archivo>")
		}
		data, err := backupUC.Export(ctx)
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], data, 0o600)
	case "import":
		if len(args) != 2 {
			return errors.New("uso: pos import <archivo>")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		return backupUC.Import(ctx, data)
	case "receipt":
		if len(args) != 3 {
			return errors.New("uso: pos receipt <venta> <archivo.pdf>")
		}
		pdfBytes, _, err := receiptUC.DownloadReceiptPDF(ctx, args[1])
		if err != nil {
			return err
		}
		return os.WriteFile(args[2], pdfBytes, 0o600)
	default:
		return fmt.Errorf("comando desconocido %q", args[0])
	}
}
