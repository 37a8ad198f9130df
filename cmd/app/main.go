package main

import (
	"cleanmatch/config"
	"cleanmatch/di"
	"cleanmatch/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
