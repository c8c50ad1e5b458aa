package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mkarpovich/liftlog/internal/api"
	"github.com/mkarpovich/liftlog/internal/services"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the host-integration HTTP surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			_, repos, err := openStore()
			if err != nil {
				return err
			}

			engine := services.NewSessionEngine(
				repos.Sessions,
				repos.SetLogs,
				repos.Templates,
				repos.Exercises,
				repos.SetLogs,
				log,
			)
			driver := services.NewSyncDriver(repos.Outbox, newSink(log), log)
			nutrition := services.NewNutritionService(repos.Nutrition, repos.Settings)

			app := fiber.New(fiber.Config{
				AppName:               "liftlog",
				DisableStartupMessage: true,
			})
			app.Use(recover.New())
			app.Use(logger.New())

			handler := api.NewHandler(engine, driver, nutrition, repos.BodyWeight, log)
			handler.Register(app)

			port := getEnv("PORT", "8090")
			go func() {
				stop := make(chan os.Signal, 1)
				signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
				<-stop
				_ = app.Shutdown()
			}()

			log.WithField("port", port).Info("liftlog core listening")
			return app.Listen(":" + port)
		},
	}
}
