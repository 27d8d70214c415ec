package cmd

import (
	"io"

	cli "github.com/spf13/cobra"
	config "github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/snowzach/thingapi/conf"
	"github.com/snowzach/thingapi/server"
	"github.com/snowzach/thingapi/store/boltdb"
	"github.com/snowzach/thingapi/store/postgres"
	"github.com/snowzach/thingapi/store/sqlite"
	"github.com/snowzach/thingapi/thingapi"
)

func init() {
	rootCmd.AddCommand(apiCmd)
}

var (
	apiCmd = &cli.Command{
		Use:   "api",
		Short: "Start API",
		Long:  `Start API`,
		Run: func(cmd *cli.Command, args []string) { // Initialize the databse

			var thingStore thingapi.ThingStore
			var err error
			switch storageType := config.GetString("storage.type"); storageType {
			case "postgres":
				thingStore, err = postgres.New()
			case "boltdb":
				thingStore, err = boltdb.New()
			case "sqlite":
				thingStore, err = sqlite.New()
			default:
				logger.Fatalw("Unknown storage type", "type", storageType)
			}
			if err != nil {
				logger.Fatalw("Database Error", "error", err)
			}

			// Create the HTTP server
			s, err := server.New(thingStore)
			if err != nil {
				logger.Fatalw("Could not create server",
					"error", err,
				)
			}

			err = s.ListenAndServe()
			if err != nil {
				logger.Fatalw("Could not start server",
					"error", err,
				)
			}

			<-conf.Stop.Chan() // Wait until StopChan
			conf.Stop.Wait()   // Wait until everyone cleans up
			if closer, ok := thingStore.(io.Closer); ok {
				closer.Close()
			}
			zap.L().Sync() // Flush the logger

		},
	}
)
