/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/config"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hbnbd",
	Short: "Run the hbnb v1 API server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.MustLoadFromDotenv()

		store := storage.NewFromConfig(c)
		if err := store.Reload(); err != nil {
			log.Fatalf("Unable to initialize storage: %s", err)
		}
		defer store.Close()

		log.Infof("Storage type: %s", c.GetKeyWithDefault(config.StorageTypeKey, "file"))

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())
		e.Use(middleware.CORS())

		setupRoutes(e, RouteOpts{store: store})

		addr := c.GetKeyWithDefault(config.APIHostKey, "0.0.0.0") + ":" +
			c.GetKeyWithDefault(config.APIPortKey, "5000")
		if err := e.Start(addr); err != nil {
			log.Fatalf("Unable to start server: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
