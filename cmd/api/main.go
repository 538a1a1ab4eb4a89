package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/audit"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	stockRepo := infraRepo.NewStockGormRepository(gormDB)
	transactionRepo := infraRepo.NewTransactionGormRepository(gormDB)
	reportRepo := infraRepo.NewReportGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//監査ログ（ベストエフォート）
	trail := audit.NewTrail(cfg.AuditLogPath)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(txManager, productRepo, trail)
	stockUC := usecase.NewStockUsecase(txManager, productRepo, stockRepo, trail)
	reportUC := usecase.NewReportUsecase(reportRepo, transactionRepo, productRepo)

	//Handler生成
	productH := handler.NewProductHandler(catalogUC)
	transactionH := handler.NewTransactionHandler(stockUC)
	reportH := handler.NewReportHandler(reportUC)

	//Server起動
	e := server.New(cfg.RequestTimeout)
	server.RegisterRoutes(e, productH, transactionH, reportH)

	go func() {
		if err := server.Start(e, cfg.Addr()); err != nil {
			log.Printf("server: %v", err)
		}
	}()

	//SIGINT/SIGTERMでgraceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx, e); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
