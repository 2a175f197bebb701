package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Sherlinsilvia14/MKV-co/internal/accounts"
	"github.com/Sherlinsilvia14/MKV-co/internal/auth"
	"github.com/Sherlinsilvia14/MKV-co/internal/catalog"
	"github.com/Sherlinsilvia14/MKV-co/internal/checkout"
	"github.com/Sherlinsilvia14/MKV-co/internal/config"
	"github.com/Sherlinsilvia14/MKV-co/internal/db"
	"github.com/Sherlinsilvia14/MKV-co/internal/domain/account"
	"github.com/Sherlinsilvia14/MKV-co/internal/logger"
	"github.com/Sherlinsilvia14/MKV-co/internal/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{Service: "mkv-co", Env: cfg.AppEnv, Level: os.Getenv("LOG_LEVEL")})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	images, err := catalog.NewImageStore(cfg.UploadDir)
	if err != nil {
		log.Error("upload dir setup failed", "err", err)
		os.Exit(1)
	}

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:       cfg.JWTIssuer,
		AccessSecret: cfg.JWTAccessSecret,
		AccessTTLMin: cfg.AccessTokenTTLMin,
	})

	accHandler := accounts.NewHandler(accounts.NewRepo(pool), jwtMgr, cfg.AdminWhatsApp)
	prodHandler := catalog.NewHandler(catalog.NewRepo(pool), images)
	checkoutHandler := checkout.NewHandler(checkout.Composer{
		Contact: cfg.WhatsAppContact,
		BaseURL: cfg.AppBaseURL,
	})

	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/signup", accHandler.Signup)
		api.POST("/login", accHandler.Login)
		api.GET("/user/:whatsapp", accHandler.GetByWhatsApp)

		api.GET("/products", prodHandler.List)
		api.GET("/products/:id", prodHandler.Get)

		api.POST("/checkout/cart", checkoutHandler.CartOrder)
		api.POST("/checkout/item", checkoutHandler.ItemOrder)
	}

	// Adding products is an admin capability, enforced server-side.
	adminOnly := api.Group("/")
	adminOnly.Use(auth.AuthMiddleware(jwtMgr), auth.RequireRole(account.RoleAdmin))
	adminOnly.POST("/products", prodHandler.Create)

	r.Static("/uploads", cfg.UploadDir)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	stopCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(stopCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
	log.Info("stopped")
}
