package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Bhargavikambam/GreenBag/internal/config"
	"github.com/Bhargavikambam/GreenBag/internal/db"
	"github.com/Bhargavikambam/GreenBag/internal/httpserver"
	cartrepo "github.com/Bhargavikambam/GreenBag/internal/repository/cart"
	categoryrepo "github.com/Bhargavikambam/GreenBag/internal/repository/category"
	favoriterepo "github.com/Bhargavikambam/GreenBag/internal/repository/favorite"
	orderrepo "github.com/Bhargavikambam/GreenBag/internal/repository/order"
	paymentrepo "github.com/Bhargavikambam/GreenBag/internal/repository/payment"
	productrepo "github.com/Bhargavikambam/GreenBag/internal/repository/product"
	tokenrepo "github.com/Bhargavikambam/GreenBag/internal/repository/token"
	userrepo "github.com/Bhargavikambam/GreenBag/internal/repository/user"
	accountsvc "github.com/Bhargavikambam/GreenBag/internal/service/account"
	cartsvc "github.com/Bhargavikambam/GreenBag/internal/service/cart"
	favoritesvc "github.com/Bhargavikambam/GreenBag/internal/service/favorite"
	ordersvc "github.com/Bhargavikambam/GreenBag/internal/service/order"
	paymentsvc "github.com/Bhargavikambam/GreenBag/internal/service/payment"
	productsvc "github.com/Bhargavikambam/GreenBag/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	paymentRepo := paymentrepo.NewPostgres(dbpool)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	accountService := accountsvc.New(userRepo, tokenRepo)
	productService := productsvc.New(productRepo, categoryRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo)
	paymentService := paymentsvc.New(paymentRepo, orderRepo)
	favoriteService := favoritesvc.New(favoriteRepo, productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AccountSvc:     accountService,
		ProductSvc:     productService,
		CartSvc:        cartService,
		OrderSvc:       orderService,
		PaymentSvc:     paymentService,
		FavoriteSvc:    favoriteService,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
