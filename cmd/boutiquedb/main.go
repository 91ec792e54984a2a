package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"boutique/internal/config"
	applog "boutique/internal/log"
	"boutique/internal/repos"
	"boutique/internal/services"
)

// boutiquedb is the maintenance tool for the boutique database: it creates
// the schema, optionally seeds demo data, retires expired coupons and
// prints a catalog/order report.
//
//	boutiquedb            # migrate + report
//	boutiquedb seed       # migrate + insert demo data
//	boutiquedb sweep      # deactivate expired coupons
func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	cmd := "report"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	couponRepo := repos.NewCouponRepo(db)

	switch cmd {
	case "seed":
		if err := repos.Seed(db); err != nil {
			log.Fatal(err)
		}
		applog.Audit("seed.done", nil)

	case "sweep":
		n, err := couponRepo.DeactivateExpired(time.Now())
		if err != nil {
			log.Fatal(err)
		}
		applog.Audit("coupons.sweep", map[string]any{"deactivated": n})

	case "report":
		if cfg.SeedDemo {
			if err := repos.Seed(db); err != nil {
				log.Fatal(err)
			}
		}
		report(prodRepo, orderRepo)

	default:
		log.Fatalf("unknown command %q (want seed, sweep or report)", cmd)
	}
}

func report(prodRepo *repos.ProductRepo, orderRepo *repos.OrderRepo) {
	catalog := services.NewCatalogService(prodRepo)

	products, err := catalog.Search("", "", "", 1, 100)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%-14s %-24s %-12s %10s %6s\n", "ID", "NOMBRE", "CATEGORIA", "PRECIO", "STOCK")
	for _, p := range products {
		fmt.Printf("%-14s %-24s %-12s %10s %6d\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock)
	}

	orders, err := orderRepo.ListLatest(20)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n%-6s %-12s %-20s %-36s\n", "PEDIDO", "ESTADO", "FECHA", "USUARIO")
	for _, o := range orders {
		fmt.Printf("%-6d %-12s %-20s %-36s\n", o.ID, o.Status, o.CreatedAt, o.UserID)
	}
}
