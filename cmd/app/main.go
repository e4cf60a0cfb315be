package main

import (
	"condovia/config"
	"condovia/di"
	"condovia/shared/logger"

	_ "condovia/docs"
)

// @title Condovia API
// @version 1.0
// @description Condominium management backend: amenity slot booking, announcements, maintenance requests, visitor registration and document publishing.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
