package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Aakash2700/sih-project/config"
	"github.com/Aakash2700/sih-project/controllers"
	"github.com/Aakash2700/sih-project/logger"
	"github.com/Aakash2700/sih-project/middlewares"
	"github.com/Aakash2700/sih-project/ml"
	"github.com/Aakash2700/sih-project/utils"
	"github.com/Aakash2700/sih-project/ws"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	log := logger.WithComponent("main")

	db, err := config.OpenDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := controllers.MigrateModels(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	controllers.SeedIfEmpty(db)

	hub := ws.NewHub()
	predictor := ml.NewPredictor(cfg.ModelDir)
	debounce := utils.NewDebouncePolicy(cfg.DebounceIDs, cfg.DebounceWindow)
	ctl := controllers.New(db, hub, predictor, cfg.SecretKey, debounce)

	r := gin.Default()
	r.Use(middlewares.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	controllers.RegisterRoutes(r, ctl)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
