// Package main 目录服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"venus-catalog-api/internal/application/catalog"
	"venus-catalog-api/internal/config"
	"venus-catalog-api/internal/infrastructure/persistence/postgres"
	"venus-catalog-api/internal/infrastructure/persistence/redis"
	"venus-catalog-api/internal/interfaces/http/handler"
	"venus-catalog-api/internal/interfaces/http/router"
	"venus-catalog-api/pkg/logger"
	"venus-catalog-api/pkg/tracer"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting catalog-api",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化追踪
	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		log.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 初始化存储
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		logger.Fatal(ctx, "failed to init postgres", err)
	}
	defer pgClient.Close()

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Fatal(ctx, "failed to init redis", err)
	}
	defer redisClient.Close()

	// 仓储与事务
	characterRepo := postgres.NewCharacterRepository(pgClient)
	swimsuitRepo := postgres.NewSwimsuitRepository(pgClient)
	skillRepo := postgres.NewSkillRepository(pgClient)
	itemRepo := postgres.NewItemRepository(pgClient)
	eventRepo := postgres.NewEventRepository(pgClient)
	documentRepo := postgres.NewDocumentRepository(pgClient)
	txManager := postgres.NewTxManager(pgClient)

	// 缓存与失效
	cache := redis.NewCache(redisClient)
	invalidator := catalog.NewInvalidator(cache, cfg.Catalog.InvalidationDebounce)
	defer invalidator.Stop()

	// 应用服务
	ttl := cfg.Catalog.CollectionTTL
	characterSvc, err := catalog.NewCharacterService(characterRepo, cache, ttl, invalidator)
	if err != nil {
		logger.Fatal(ctx, "failed to init character service", err)
	}
	swimsuitSvc, err := catalog.NewSwimsuitService(swimsuitRepo, characterRepo, txManager, cache, ttl, invalidator)
	if err != nil {
		logger.Fatal(ctx, "failed to init swimsuit service", err)
	}
	skillSvc, err := catalog.NewSkillService(skillRepo, cache, ttl, invalidator)
	if err != nil {
		logger.Fatal(ctx, "failed to init skill service", err)
	}
	itemSvc, err := catalog.NewItemService(itemRepo, cache, ttl, invalidator)
	if err != nil {
		logger.Fatal(ctx, "failed to init item service", err)
	}
	eventSvc, err := catalog.NewEventService(eventRepo, cache, ttl, invalidator)
	if err != nil {
		logger.Fatal(ctx, "failed to init event service", err)
	}
	documentSvc, err := catalog.NewDocumentService(documentRepo, cache, ttl, invalidator)
	if err != nil {
		logger.Fatal(ctx, "failed to init document service", err)
	}

	// HTTP 层
	handlers := router.Handlers{
		Health:    handler.NewHealthHandler(pgClient, redisClient),
		Character: handler.NewCharacterHandler(characterSvc, &cfg.Catalog),
		Swimsuit:  handler.NewSwimsuitHandler(swimsuitSvc, &cfg.Catalog),
		Skill:     handler.NewSkillHandler(skillSvc, &cfg.Catalog),
		Item:      handler.NewItemHandler(itemSvc, &cfg.Catalog),
		Event:     handler.NewEventHandler(eventSvc, &cfg.Catalog),
		Document:  handler.NewDocumentHandler(documentSvc, &cfg.Catalog),
	}
	r := router.New(cfg, handlers, redis.NewRateLimiter(redisClient))

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
