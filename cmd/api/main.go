package main

import (
	"os"

	"drumroast/internal/config"
	"drumroast/internal/domain/model"
	"drumroast/internal/handler"
	"drumroast/internal/infra/db"
	infraRepo "drumroast/internal/infra/repository"
	"drumroast/internal/infra/storage"
	"drumroast/internal/server"
	"drumroast/internal/usecase"
	"drumroast/internal/validator"
	"drumroast/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くても良い（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.GoEnv)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Offer{},
		&model.Order{},
	); err != nil {
		log.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	offerRepo := infraRepo.NewOfferGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//画像ストレージ
	images := storage.NewLocalImageStore(cfg.UploadDir, cfg.UploadPublicURL)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	offerUC := usecase.NewOfferUsecase(offerRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartItemRepo, productRepo, orderRepo, cfg.WhatsAppNumber)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, images)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, productRepo, offerRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Product:      handler.NewProductHandler(catalogUC),
		Offer:        handler.NewOfferHandler(offerUC),
		Cart:         handler.NewCartHandler(cartUC),
		Checkout:     handler.NewCheckoutHandler(checkoutUC),
		AdminProduct: handler.NewAdminProductHandler(adminProductUC),
		AdminOffer:   handler.NewAdminOfferHandler(offerUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
	}

	//Server起動
	e := server.New(cfg, log, userRepo, images.Dir(), handlers)

	addr := ":" + cfg.Port
	log.Info("starting server", "addr", addr)
	if err := e.Start(addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
