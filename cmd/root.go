package cmd

import (
	"log"

	"github.com/spigell/resume-sorter/internal/classifier"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-sorter"
)

type Config struct {
	Headings     []string          `mapstructure:"headings"`
	Model        classifier.Paths  `mapstructure:"model"`
	Classifier   *ClassifierConfig `mapstructure:"classifier"`
	FeedbackFile string            `mapstructure:"feedback-file"`
	Extract      *ExtractConfig    `mapstructure:"extract"`
}

type ClassifierConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ExtractConfig struct {
	MaxFileSize int64 `mapstructure:"max-file-size"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-sorter predicts the job category of a resume and scores its sections",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("classifier.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	viper.SetDefault("classifier.provider", "local")
	viper.SetDefault("feedback-file", "feedback.csv")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-sorter.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("feedback-file", "", "csv file collecting feedback (default is feedback.csv)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("feedback-file", rootCmd.PersistentFlags().Lookup("feedback-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// A missing default config is fine, every key has a flag or a default.
	// An explicitly requested or broken config is not.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && cfgFile == "" {
			return
		}
		log.Fatal(err)
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
