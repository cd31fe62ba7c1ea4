package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "advising-backend/internal/adapter/http"
	"advising-backend/internal/adapter/middleware"
	mysqlrepo "advising-backend/internal/adapter/repository/mysql"
	"advising-backend/internal/config"
	"advising-backend/internal/domain/notify"
	"advising-backend/internal/infrastructure/cache"
	"advising-backend/internal/infrastructure/db"
	"advising-backend/internal/infrastructure/mail"
	"advising-backend/internal/usecase/advising"
	"advising-backend/internal/usecase/review"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().
		Timestamp().
		Str("service", "advising-api").
		Logger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("mysql connection failed")
	}
	logger.Info().Str("db", cfg.MySQLDB).Msg("mysql connected")

	recordRepo := mysqlrepo.NewRecordRepository(gdb)
	catalogRepo := mysqlrepo.NewCatalogRepository(gdb)
	studentRepo := mysqlrepo.NewStudentRepository(gdb)
	txManager := mysqlrepo.NewGormUoW(gdb)

	var mailer notify.Mailer = mail.NewLog(logger)
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		logger.Info().Str("host", cfg.SMTPHost).Msg("smtp mailer enabled")
	}

	advisingUC := advising.NewUsecase(recordRepo, studentRepo, txManager)
	reviewUC := review.NewUsecase(recordRepo, mailer, logger)

	h := httpadp.NewHandler()
	recordHandler := httpadp.NewRecordHandler(advisingUC, reviewUC, logger)
	catalogHandler := httpadp.NewCatalogHandler(catalogRepo, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	records := e.Group("/records")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		records.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger))
		logger.Info().Str("addr", cfg.RedisAddr).Msg("idempotency middleware enabled")
	}
	records.GET("", recordHandler.ListRecords)
	records.GET("/student-info", recordHandler.StudentInfo)
	records.GET("/previous-courses", recordHandler.PreviousCourses)
	records.POST("", recordHandler.UpdateRecords)
	records.POST("/update-status", recordHandler.UpdateStatus)
	records.POST("/create-entry", recordHandler.CreateEntry)

	e.GET("/catalog/courses", catalogHandler.ListCourses)
	e.GET("/catalog/prereqs", catalogHandler.ListPrereqs)

	addr := ":" + cfg.AppPort
	logger.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
