package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/barwaaqo-agri/be-site-backend/config"
	"github.com/barwaaqo-agri/be-site-backend/migrations"
	"github.com/barwaaqo-agri/be-site-backend/pkg/apperrors"
	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
	"github.com/barwaaqo-agri/be-site-backend/pkg/mailer"
	"github.com/barwaaqo-agri/be-site-backend/routes"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/main.go [server|migrate|migrate_status]")
		os.Exit(1)
	}

	config.InitConfig()

	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("APP_ENV"),
		ServiceName: "site-backend",
		Version:     viper.GetString("APP_VERSION"),
	})

	config.InitDB()
	defer config.CloseDB()

	switch os.Args[1] {
	case "server":
		startServer()
	case "migrate":
		if err := migrations.Up(config.DB); err != nil {
			logger.Get().Fatal("Migration failed", err)
		}
		logger.Get().Info("Migrations applied")
	case "migrate_status":
		if err := migrations.Status(config.DB); err != nil {
			logger.Get().Fatal("Migration status failed", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func startServer() {
	log := logger.Get()

	config.InitRedis()
	mailer.Init()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)

	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))

	allowOrigins := viper.GetString("CORS_ALLOW_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     strings.Split(allowOrigins, ","),
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders:    []string{echo.HeaderContentLength},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	routes.RegisterRoutes(e)

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Starting server", logger.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server stopped", err)
	}
}
