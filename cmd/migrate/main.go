package main

import (
	"context"
	"log"

	"storerating/internal/app/dsn"
	"storerating/internal/app/kvstore"
	"storerating/internal/app/repository"

	"github.com/joho/godotenv"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных (создает таблицу kv_slots)
	store, err := kvstore.NewPostgresStore(dsnStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Начальные данные: администратор, пустые коллекции, счетчики
	repo := repository.New(store)
	if err := repo.InitData(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database migration completed successfully")
}
