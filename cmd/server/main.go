package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dittner/DerTutor/internal/config"
	"github.com/Dittner/DerTutor/internal/corpus"
	"github.com/Dittner/DerTutor/internal/database"
	"github.com/Dittner/DerTutor/internal/routes"
	"github.com/Dittner/DerTutor/internal/utils"
	"github.com/Dittner/DerTutor/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	adminPwd, err := utils.HashPassword("admin")
	if err != nil {
		logrus.Fatalf("failed to hash bootstrap password: %v", err)
	}
	if err := database.InsertDefaultRows(db, "admin", adminPwd); err != nil {
		logrus.Fatalf("failed to insert default rows: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.Store.Path, "media"), 0755); err != nil {
		logrus.Fatalf("failed to create media directory: %v", err)
	}

	corpora, err := corpus.Open(cfg.Corpus)
	if err != nil {
		logrus.Fatalf("failed to open corpora: %v", err)
	}
	defer corpora.Close()

	router := routes.Setup(db, cfg, corpora)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.Infof("server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
