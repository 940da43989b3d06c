package server

import (
	"log/slog"
	"net/http"

	"drumroast/internal/config"
	"drumroast/internal/handler"
	"drumroast/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Offer        *handler.OfferHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	AdminProduct *handler.AdminProductHandler
	AdminOffer   *handler.AdminOfferHandler
	AdminOrder   *handler.AdminOrderHandler
}

// New はechoを組み立ててルートを登録する。
func New(cfg config.Config, log *slog.Logger, userRepo repository.UserRepository, uploadDir string, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			if v.Error != nil || v.Status >= 500 {
				log.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "err", v.Error)
				return nil
			}
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// アップロード済み画像の静的配信
	e.Static(cfg.UploadPublicURL, uploadDir)

	h.Product.RegisterRoutes(e)
	h.Offer.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e, cfg, userRepo)
	h.Cart.RegisterRoutes(e, cfg, userRepo)
	h.Checkout.RegisterRoutes(e, cfg, userRepo)
	h.AdminProduct.RegisterRoutes(e, cfg, userRepo)
	h.AdminOffer.RegisterRoutes(e, cfg, userRepo)
	h.AdminOrder.RegisterRoutes(e, cfg, userRepo)

	return e
}
