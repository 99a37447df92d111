package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"reference-service/pkg/config"
	"reference-service/pkg/database/postgresql"
	applogger "reference-service/pkg/logger"
	"reference-service/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDemo := flag.Bool("demo", false, "Создать демо-контрагента (ООО с директором, сотрудником и счётом)")
	runSession := flag.Bool("session", false, "Создать сессию разработчика в базе авторизации")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -demo -session)")
	sessionTTL := flag.Duration("ttl", 24*time.Hour, "Время жизни сессии разработчика")

	flag.Parse()

	if !*runDemo && !*runSession && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -demo")
		log.Println("  go run ./seeders/cmd/seed -session -ttl 8h")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	if *runAll || *runDemo {
		referenceDB, err := postgresql.ConnectDB(ctx, "reference", cfg.Reference, logger)
		if err != nil {
			logger.Fatal("❌ Нет подключения к справочной базе", zap.Error(err))
		}
		defer referenceDB.Close()

		if err := seeders.SeedDemo(ctx, referenceDB, logger); err != nil {
			logger.Fatal("❌ Ошибка наполнения демо-данными", zap.Error(err))
		}
		log.Println("======================================================")
	}

	if *runAll || *runSession {
		authDB, err := postgresql.ConnectDB(ctx, "auth", cfg.Auth, logger)
		if err != nil {
			logger.Fatal("❌ Нет подключения к базе авторизации", zap.Error(err))
		}
		defer authDB.Close()

		token, err := seeders.SeedDevSession(ctx, authDB, *sessionTTL, logger)
		if err != nil {
			logger.Fatal("❌ Ошибка создания сессии", zap.Error(err))
		}
		// Токен показываем один раз, в базе только хэш.
		log.Printf("🔑 Cookie %s=%s", cfg.Session.CookieName, token)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
