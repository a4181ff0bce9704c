package main

import (
	"wearecars/config"
	"wearecars/di"
	"wearecars/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
