package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"freshmarket/internal/config"
	"freshmarket/internal/db"
	"freshmarket/internal/httpserver"
	auditrepo "freshmarket/internal/repository/auditlog"
	categoryrepo "freshmarket/internal/repository/category"
	limitrepo "freshmarket/internal/repository/limit"
	notifrepo "freshmarket/internal/repository/notification"
	orderrepo "freshmarket/internal/repository/order"
	productrepo "freshmarket/internal/repository/product"
	salerepo "freshmarket/internal/repository/sale"
	sessionrepo "freshmarket/internal/repository/session"
	taskrepo "freshmarket/internal/repository/task"
	userrepo "freshmarket/internal/repository/user"
	authsvc "freshmarket/internal/service/auth"
	categorysvc "freshmarket/internal/service/category"
	ordersvc "freshmarket/internal/service/order"
	productsvc "freshmarket/internal/service/product"
	salesvc "freshmarket/internal/service/sale"
	usersvc "freshmarket/internal/service/user"
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

	userRepo := userrepo.NewPostgres(dbpool)
	sessionRepo := sessionrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	saleRepo := salerepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool)
	limitRepo := limitrepo.NewPostgres(dbpool)
	notifRepo := notifrepo.NewPostgres(dbpool)
	auditRepo := auditrepo.NewPostgres(dbpool)
	taskRepo := taskrepo.NewPostgres(dbpool)

	authService := authsvc.New(userRepo, sessionRepo, cfg.SessionTTL)
	userService := usersvc.New(userRepo, auditRepo)
	categoryService := categorysvc.New(categoryRepo, auditRepo)
	productService := productsvc.New(productRepo, limitRepo, auditRepo, notifRepo)
	saleService := salesvc.New(saleRepo, productRepo, auditRepo, notifRepo)
	orderService := ordersvc.New(orderRepo, productRepo, limitRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		AuthSvc:     authService,
		UserSvc:     userService,
		CategorySvc: categoryService,
		ProductSvc:  productService,
		SaleSvc:     saleService,
		OrderSvc:    orderService,
		TaskRepo:    taskRepo,
		NotifRepo:   notifRepo,
		AuditRepo:   auditRepo,
	}, cfg.CORSOrigins)
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
