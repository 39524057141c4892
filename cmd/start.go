package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UCLALibrary/ftva-mams-data/core/config"
	"github.com/UCLALibrary/ftva-mams-data/core/database"
	"github.com/UCLALibrary/ftva-mams-data/core/loader"
	"github.com/UCLALibrary/ftva-mams-data/core/logger"
	"github.com/UCLALibrary/ftva-mams-data/core/middleware/auth"
	"github.com/UCLALibrary/ftva-mams-data/core/middleware/rayid"
	"github.com/UCLALibrary/ftva-mams-data/core/storage"

	"github.com/UCLALibrary/ftva-mams-data/feature/matches"
	"github.com/UCLALibrary/ftva-mams-data/feature/problems"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/UCLALibrary/ftva-mams-data/docs/swagger"
)

// @title FTVA MAMS Data API
// @version 1.0
// @description API for reconciling FTVA inventory numbers across Alma, FileMaker and the Digital Labs tracking sheet.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Without a connection the tracking sheet falls back to the TSV
		// export and run history is not persisted.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to Digital Labs database", zap.String("database", cfg.Database.Name))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(matches.NewFeature(store, cfg.Storage.Bucket, cfg.Storage.ReportPrefix, cfg.Sources, logg, db))
		mgr.Register(problems.NewFeature(store, cfg.Storage.Bucket, cfg.Sources, logg, db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
