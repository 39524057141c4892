// Package config provides configuration management for the reconciliation service.
//
// It utilizes Viper for loading configuration from environment variables and
// .env files.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the Digital Labs database
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Sources: object names of the Alma, Filemaker and Google Sheet exports
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
