package main

import (
	"context"
	"fmt"

	"storerating/internal/app/config"
	"storerating/internal/app/dsn"
	"storerating/internal/app/handler"
	"storerating/internal/app/kvstore"
	"storerating/internal/app/middleware"
	"storerating/internal/app/redis"
	"storerating/internal/app/repository"
	"storerating/internal/app/storage"
	"storerating/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("App start")

	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("config error: ", err)
	}

	// Redis: blacklist токенов и, опционально, бэкенд хранилища
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redis.New(ctx, cfg.Redis)
		if err != nil {
			logrus.Fatal("redis error: ", err)
		}
		defer redisClient.Close()
	}

	store, err := newKVStore(cfg, redisClient)
	if err != nil {
		logrus.Fatal("storage error: ", err)
	}

	repo := repository.New(store)
	if err := repo.InitData(ctx); err != nil {
		logrus.Fatal("seed error: ", err)
	}

	// MinIO опционален: без него эндпоинт загрузки картинок отвечает 503
	var minioClient *storage.MinIOClient
	if cfg.Minio.Enabled {
		minioClient, err = storage.NewMinIOClient(
			cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			logrus.Fatal("minio error: ", err)
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()

	logrus.Info("App terminated")
}

// newKVStore выбирает бэкенд kv-хранилища по конфигурации
func newKVStore(cfg *config.Config, redisClient *redis.Client) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case "postgres":
		dsnStr := dsn.FromEnv()
		if dsnStr == "" {
			return nil, fmt.Errorf("postgres storage requires DB_* env variables")
		}
		return kvstore.NewPostgresStore(dsnStr)
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis storage requires REDIS_* env variables")
		}
		return kvstore.NewRedisStore(redisClient.Unwrap()), nil
	case "memory":
		logrus.Warn("using in-memory storage, data will not survive a restart")
		return kvstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
