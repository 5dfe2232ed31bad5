package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-circulation/library/app"
	"github.com/Astemirdum/library-circulation/library/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title Library circulation API
// @version 1.0
// @description Catalog, students, loans, fines and library cards.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
