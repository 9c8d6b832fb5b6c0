package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "lenddesk-backend/internal/adapter/http"
	"lenddesk-backend/internal/adapter/middleware"
	"lenddesk-backend/internal/adapter/repository/mysql"
	"lenddesk-backend/internal/config"
	"lenddesk-backend/internal/infrastructure/cache"
	"lenddesk-backend/internal/infrastructure/db"
	appuc "lenddesk-backend/internal/usecase/application"
	credituc "lenddesk-backend/internal/usecase/credit"
	kycuc "lenddesk-backend/internal/usecase/kycgate"
	"lenddesk-backend/internal/usecase/lifecycle"
	"lenddesk-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}

	// repositories and transactional boundary
	appRepo := mysql.NewApplicationRepository(gdb)
	partnerRepo := mysql.NewPartnerRepository(gdb)
	kycRepo := mysql.NewKYCRepository(gdb)
	creditRepo := mysql.NewCreditRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	apps := appuc.NewUsecase(appRepo)
	gate := kycuc.NewUsecase(kycRepo)
	scoring := credituc.NewUsecase(creditRepo)
	lc := lifecycle.NewUsecase(guow, zlog, cfg.MaxCounterRounds)

	metrics := middleware.NewMetrics()

	// handlers
	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(apps, lc)
	kycH := httpadp.NewKYCHandler(gate, apps)
	creditH := httpadp.NewCreditHandler(scoring, apps)
	partnerH := httpadp.NewPartnerHandler(partnerRepo)
	lcH := httpadp.NewLifecycleHandler(lc)
	lcH.OnDecision = metrics.CountDecision

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), logger.EchoMiddleware(zlog), metrics.Middleware())

	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, zlog)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/applications", appH.CreateApplication, idem)
	e.GET("/applications/:application_id", appH.GetApplication)
	e.PUT("/applications/:application_id/kyc", kycH.SubmitProfile, idem)
	e.GET("/applications/:application_id/kyc", kycH.Evaluate)
	e.PUT("/applications/:application_id/credit", creditH.SetScore, idem)
	e.GET("/applications/:application_id/credit", creditH.Score)
	e.POST("/applications/:application_id/route", lcH.RouteToPartner, idem)
	e.POST("/applications/:application_id/decision", lcH.RecordDecision, idem)
	e.POST("/applications/:application_id/disburse", lcH.Disburse, idem)
	e.POST("/applications/:application_id/payments", lcH.RecordPayment, idem)
	e.GET("/applications/:application_id/schedule", lcH.GetSchedule)

	e.GET("/partners", partnerH.ListPartners)
	e.POST("/partners", partnerH.CreatePartner, idem)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
