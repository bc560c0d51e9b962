package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"hair-scanner-api/internal/core/auth"
	"hair-scanner-api/internal/core/cache"
	"hair-scanner-api/internal/core/config"
	"hair-scanner-api/internal/core/database"
	"hair-scanner-api/internal/core/logger"
	"hair-scanner-api/internal/core/server"
	"hair-scanner-api/internal/repo"
	"hair-scanner-api/internal/service"
	"hair-scanner-api/internal/transport/http/handler"
	"hair-scanner-api/internal/transport/http/router"
	"hair-scanner-api/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := repo.Migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// Redis（可选；未配置时画像读取直接走库）
	rc := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() { _ = rc.Close() }()
	if rc.Enabled() {
		log.Info("redis enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// JWT
	jwter := auth.NewJWTer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.AccessTokenTTLMin)*time.Minute)
	if jwter.UsingDevSecret() {
		if cfg.App.IsProduction() {
			log.Fatal("jwt.secret is not set; refusing to start in production with the development secret")
		}
		log.Warn("jwt.secret is not set; using the development secret")
	}

	// 依赖装配
	users := repo.NewUserRepo(db)
	questionnaires := repo.NewCachedQuestionnaires(
		repo.NewQuestionnaireRepo(db), rc,
		time.Duration(cfg.Cache.ProfileTTLSec)*time.Second, log,
	)
	authenticator := service.NewAuthenticator(users, utils.NewPasswordHasher(utils.DefaultHashCost), jwter)
	curator := service.NewProfileCurator(questionnaires)

	health := handler.NewHealthHandler(map[string]handler.Check{
		"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
		"redis":    rc.Ping,
	}, log)

	r := router.NewAPIEngine(router.APIDeps{
		Log:    log,
		Tokens: jwter,
		Users:  users,
		Health: health,
		Modules: []router.Module{
			handler.NewAuthHandler(authenticator, log),
			handler.NewQuestionnaireHandler(curator, log),
		},
	}, router.APIOptions{
		CORSOrigins:    cfg.App.CORSOrigins,
		RequestTimeout: time.Duration(cfg.App.HTTP.RequestTimeoutSec) * time.Second,
		MaxBodyBytes:   cfg.App.HTTP.MaxBodyBytes,
		MaxInFlight:    cfg.App.HTTP.MaxInFlight,
	})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)
	srv.ErrorLog = logger.ToStdLogger(log, zapcore.WarnLevel)

	adminAddr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	adminSrv := server.BuildServer(adminAddr, router.NewAdminEngine(log, health), 5*time.Second, 10*time.Second, 60*time.Second)
	adminSrv.ErrorLog = srv.ErrorLog

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("env", cfg.App.Env),
		zap.String("addr", addr),
		zap.String("api", baseURL+router.APIPrefix),
		zap.String("health", baseURL+router.APIPrefix+"/health"),
		zap.String("metrics", "http://"+adminAddr+"/metrics"),
	)

	// 异步启动
	for name, s := range map[string]*http.Server{"api": srv, "admin": adminSrv} {
		name, s := name, s
		go func() {
			if err := server.StartHTTP(s, log, name); err != nil {
				log.Fatal("http start FAILED", zap.String("server", name), zap.Error(err))
			}
		}()
	}

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.Shutdown(ctx, log, srv, adminSrv)
	log.Info("api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	return logger.New(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Service:     cfg.App.Name,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.Rotate.Enable,
			Filename:   cfg.Log.Rotate.Filename,
			MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
			MaxBackups: cfg.Log.Rotate.MaxBackups,
			MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
			Compress:   cfg.Log.Rotate.Compress,
		},
	})
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             l,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
