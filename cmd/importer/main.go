package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/Bhargavikambam/GreenBag/internal/config"
	"github.com/Bhargavikambam/GreenBag/internal/db"
	"github.com/Bhargavikambam/GreenBag/internal/importer"
	categoryrepo "github.com/Bhargavikambam/GreenBag/internal/repository/category"
	productrepo "github.com/Bhargavikambam/GreenBag/internal/repository/product"
)

func main() {
	path := flag.String("file", "", "path to catalog CSV")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if *path == "" {
		logger.Fatal("usage: importer -file catalog.csv")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	imp := importer.NewCSVImporter(f, productrepo.NewPostgres(pool, logger), categoryrepo.NewPostgres(pool))
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}
	logger.Printf("imported %d products", count)
}
