// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"reference-service/internal/routes"
	"reference-service/pkg/config"
	"reference-service/pkg/database/postgresql"
	applogger "reference-service/pkg/logger"
	"reference-service/pkg/middleware"
	"reference-service/pkg/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Конфиг (.env) и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(logger))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Validator = validation.New()

	// 3. Хранилища
	referenceDB, err := postgresql.ConnectDB(ctx, "reference", cfg.Reference, logger)
	if err != nil {
		logger.Fatal("не удалось подключиться к справочной базе", zap.Error(err))
	}
	defer referenceDB.Close()

	authDB, err := postgresql.ConnectDB(ctx, "auth", cfg.Auth, logger)
	if err != nil {
		logger.Fatal("не удалось подключиться к базе авторизации", zap.Error(err))
	}
	defer authDB.Close()

	// 4. Роуты
	routes.InitRouter(e, routes.Stores{Reference: referenceDB, Auth: authDB}, cfg, logger)

	// 5. Запуск
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Остановка сервера...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
}
