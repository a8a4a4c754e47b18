package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/jhoicas/mm-inventario/internal/application/analytics"
	"github.com/jhoicas/mm-inventario/internal/application/auth"
	"github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/application/usecase"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/mm-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/persistence"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/seed"
	"github.com/jhoicas/mm-inventario/internal/infrastructure/snapshot"
	httpRouter "github.com/jhoicas/mm-inventario/internal/interfaces/http"
	"github.com/jhoicas/mm-inventario/pkg/config"
	"github.com/jhoicas/mm-inventario/pkg/logger"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	persist, closer, err := persistence.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closer.Close()

	recorder := metrics.NewRecorder()
	store := snapshot.New(persist,
		snapshot.WithLogger(log),
		snapshot.WithRecorder(recorder),
	)
	if err := store.Open(ctx, seed.Default); err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot")
	}

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		jwtSecret = randomSecret()
		log.Warn().Msg("JWT_SECRET vacío: se usa un secreto aleatorio, los tokens no sobreviven a un reinicio")
	}
	latency := cfg.Auth.Latency
	if latency == 0 {
		latency = -1 // AUTH_LATENCY_MS=0 desactiva la espera
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     jwtSecret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.Options{Latency: latency})

	// PDF: hoja de conteo imprimible
	sheetGenerator := infrapdf.NewCountSheetGenerator(cfg.App.Name)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:     cfg.App.Name,
		DocsPath: cfg.HTTP.DocsPath,
		Logger:   log.Named("http"),
		Metrics:  recorder,
	}, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     usecase.NewProductUseCase(store, nil),
		WarehouseUC:   usecase.NewWarehouseUseCase(store, nil),
		StoreUC:       usecase.NewStoreUseCase(store, nil),
		ServiceUC:     usecase.NewServiceUseCase(store, nil),
		SettingsUC:    usecase.NewSettingsUseCase(store),
		MovementUC:    inventory.NewMovementUseCase(store, nil, nil),
		CountUC:       inventory.NewCountUseCase(store, sheetGenerator, nil, nil),
		Replenishment: inventory.NewReplenishmentUseCase(store),
		DashboardUC:   appanalytics.NewDashboardUseCase(store),
		JWTSecret:     jwtSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generar secreto JWT: " + err.Error())
	}
	return hex.EncodeToString(b)
}
