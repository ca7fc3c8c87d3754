package cmd

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Reriiii/AIRecruiter/internal/ats"
	"github.com/Reriiii/AIRecruiter/internal/catalog"
	"github.com/Reriiii/AIRecruiter/internal/logger"
	"github.com/Reriiii/AIRecruiter/internal/workflow"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "ats-cli"
)

type Config struct {
	APIURL    string           `mapstructure:"api-url"`
	UserAgent string           `mapstructure:"user-agent"`
	Upload    *SelectionConfig `mapstructure:"upload"`
	Search    *SearchConfig    `mapstructure:"search"`
	Purge     *PurgeConfig     `mapstructure:"purge"`
	// Catalog overrides the built-in provider/model table when set.
	Catalog map[string]catalog.Provider `mapstructure:"catalog"`
}

type SelectionConfig struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

type SearchConfig struct {
	MinExp         int    `mapstructure:"min-exp"`
	TopK           int    `mapstructure:"top-k"`
	RequiredSkills string `mapstructure:"required-skills"`
	Provider       string `mapstructure:"provider"`
	Model          string `mapstructure:"model"`
}

type PurgeConfig struct {
	Pacing time.Duration `mapstructure:"pacing"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "ats-cli is a simple cli for the AIRecruiter backend: upload resumes, search and manage candidates",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-url", "ATS_API_URL"); err != nil {
		log.Fatalf("binding ATS_API_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is ats-cli.yaml in current directory)")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the backend API (default http://localhost:8000)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional, but a present-and-broken one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// setup builds the pieces every command needs: logger, config, the backend
// client and the orchestrator on top of it.
func setup() (*workflow.Orchestrator, *ats.Client, *Config, *zap.Logger) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	client := ats.New(ctx, zlog, viper.GetString("api-url"))
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	cat := catalog.Default()
	if len(config.Catalog) > 0 {
		cat = catalog.New(config.Catalog)
	}

	return workflow.New(ctx, client, cat, zlog), client, config, zlog
}
