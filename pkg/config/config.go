package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	SQLite     SQLiteConfig
	Redis      RedisConfig
	LLM        LLMConfig
	Classifier ClassifierConfig
	References ReferencesConfig
	Feedback   FeedbackConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Host              string
	Port              int
	ReadTimeout       int
	WriteTimeout      int
	BodyLimit         int
	MaxQuestionLength int
	RequestsPerMinute int
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTLSec   int
}

type LLMConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	TimeoutSec  int
}

// ClassifierConfig carries intent-classification tunables: the confidence
// step credited per matched keyword and the cap it saturates at.
type ClassifierConfig struct {
	ConfidencePerMatch float64
	ConfidenceCap      float64
}

type ReferencesConfig struct {
	MaxResults int
}

type FeedbackConfig struct {
	MinPatternTotal  int
	LowPositiveRate  float64
	TopPatternsLimit int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/aurora")

	viper.SetEnvPrefix("AURORA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3002)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 10485760)
	viper.SetDefault("server.maxQuestionLength", 2000)
	viper.SetDefault("server.requestsPerMinute", 100)

	viper.SetDefault("sqlite.path", "./data/aurora.db")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlSec", 3600)

	viper.SetDefault("llm.model", "gpt-4")
	viper.SetDefault("llm.temperature", 0.3)
	viper.SetDefault("llm.maxTokens", 800)
	viper.SetDefault("llm.timeoutSec", 30)

	viper.SetDefault("classifier.confidencePerMatch", 0.3)
	viper.SetDefault("classifier.confidenceCap", 1.0)

	viper.SetDefault("references.maxResults", 4)

	viper.SetDefault("feedback.minPatternTotal", 3)
	viper.SetDefault("feedback.lowPositiveRate", 0.5)
	viper.SetDefault("feedback.topPatternsLimit", 5)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
