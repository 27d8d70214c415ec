package cmd

import (
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/blendle/zapdriver"
	cli "github.com/spf13/cobra"
	config "github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snowzach/thingapi/conf"
)

var (
	pidFile string
	cfgFile string
	logger  *zap.SugaredLogger

	// The Root Cli Handler
	rootCmd = &cli.Command{
		Version: conf.GitVersion,
		Use:     conf.Executable,
		PersistentPreRunE: func(cmd *cli.Command, args []string) error {
			// Create Pid File
			pidFile = config.GetString("pidfile")
			if pidFile != "" {
				file, err := os.OpenFile(pidFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
				if err != nil {
					return fmt.Errorf("Could not create pid file: %s Error: %v", pidFile, err)
				}
				defer file.Close()
				if _, err = fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
					return fmt.Errorf("Could not write pid file: %s Error: %v", pidFile, err)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cli.Command, args []string) {
			// Remove Pid file
			if pidFile != "" {
				os.Remove(pidFile)
			}
		},
	}
)

// Execute starts the program
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// This is the main initializer handling cli, config and log
func init() {
	cli.OnInitialize(initConfig, initLogger, initProfiler)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	config.SetTypeByDefaultValue(true)
	config.AutomaticEnv() // Automatically use environment variables where available
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// If a config file is found, read it in.
	if cfgFile != "" {
		config.SetConfigFile(cfgFile)
		if err := config.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Could not read config file: %s ERROR: %s\n", cfgFile, err.Error())
			os.Exit(1)
		}
	}

}

// initLogger configures the global zap logger per the logger config
func initLogger() {

	logConfig := zap.NewProductionConfig()
	logConfig.Sampling = nil

	// Log Level
	var logLevel zapcore.Level
	if err := logLevel.Set(config.GetString("logger.level")); err != nil {
		zap.S().Fatalw("Could not determine logger.level", "error", err)
	}
	logConfig.Level.SetLevel(logLevel)

	// Handle different logger encodings
	loggerEncoding := config.GetString("logger.encoding")
	switch loggerEncoding {
	case "stackdriver":
		logConfig.EncoderConfig = zapdriver.NewProductionEncoderConfig()
		logConfig.Encoding = "json"
	default:
		logConfig.Encoding = loggerEncoding
		if config.GetBool("logger.color") {
			logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		if logConfig.Encoding == "console" {
			logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}
		logConfig.EncoderConfig.MessageKey = "msg"
		logConfig.EncoderConfig.LevelKey = "level"
		logConfig.EncoderConfig.CallerKey = "caller"
	}

	logConfig.DisableStacktrace = config.GetBool("logger.disable_stacktrace")
	logConfig.DisableCaller = config.GetBool("logger.disable_caller")
	logConfig.Development = config.GetBool("logger.dev_mode")

	globalLogger, err := logConfig.Build()
	if err != nil {
		zap.S().Fatalw("Could not build logger", "error", err)
	}
	zap.ReplaceGlobals(globalLogger)
	logger = globalLogger.Sugar().With("package", "cmd")

}

// initProfiler starts the standalone pprof listener if enabled
func initProfiler() {
	if config.GetBool("profiler.enabled") {
		hostPort := net.JoinHostPort(config.GetString("profiler.host"), config.GetString("profiler.port"))
		go http.ListenAndServe(hostPort, nil)
		logger.Infof("Profiler enabled on http://%s", hostPort)
	}
}
