package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Server     ServerConfig
	CORS       CORSConfig
	Logger     LoggerConfig
	Ollama     OllamaConfig
	Generation GenerationConfig
	Validation ValidationConfig
	PDF        PDFConfig
}

type AppConfig struct {
	Name    string
	Version string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type CORSConfig struct {
	AllowOrigins string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type OllamaConfig struct {
	ServerURL   string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// GenerationConfig bounds the windowing and aggregation stage.
type GenerationConfig struct {
	// WordsPerWindow is the word budget for a single model call.
	WordsPerWindow int
	// MaxFlashcards is the soft cap on total accepted records per document.
	MaxFlashcards int
	// MinWords is the floor below which a document is rejected outright.
	MinWords int
	// CardsPerWindow is how many flashcards the prompt asks for per window.
	CardsPerWindow int
}

// ValidationConfig holds the repair thresholds for candidate flashcards.
type ValidationConfig struct {
	DefaultScore      int
	MinQuestionLength int
	MinAnswerLength   int
	OptionCount       int
}

type PDFConfig struct {
	// MinPageContent is the minimum raw character count for a page to be kept.
	MinPageContent int
	// MinCleanedLength is the minimum character count after text cleanup.
	MinCleanedLength int
}

// LoadConfig reads config.yaml if present and applies environment overrides.
// Every value has a default, so the application starts without a config file.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("app.name"),
			Version: viper.GetString("app.version"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		CORS: CORSConfig{
			AllowOrigins: viper.GetString("cors.allow_origins"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Ollama: OllamaConfig{
			ServerURL:   viper.GetString("ollama.server_url"),
			Model:       viper.GetString("ollama.model"),
			Temperature: viper.GetFloat64("ollama.temperature"),
			MaxTokens:   viper.GetInt("ollama.max_tokens"),
			Timeout:     viper.GetDuration("ollama.timeout") * time.Second,
		},
		Generation: GenerationConfig{
			WordsPerWindow: viper.GetInt("generation.words_per_window"),
			MaxFlashcards:  viper.GetInt("generation.max_flashcards"),
			MinWords:       viper.GetInt("generation.min_words"),
			CardsPerWindow: viper.GetInt("generation.cards_per_window"),
		},
		Validation: ValidationConfig{
			DefaultScore:      viper.GetInt("validation.default_score"),
			MinQuestionLength: viper.GetInt("validation.min_question_length"),
			MinAnswerLength:   viper.GetInt("validation.min_answer_length"),
			OptionCount:       viper.GetInt("validation.option_count"),
		},
		PDF: PDFConfig{
			MinPageContent:   viper.GetInt("pdf.min_page_content"),
			MinCleanedLength: viper.GetInt("pdf.min_cleaned_length"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "flashcard-ia")
	viper.SetDefault("app.version", "0.1.0")

	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 600)
	viper.SetDefault("server.body_limit", 10*1024*1024)

	viper.SetDefault("cors.allow_origins", "http://localhost:3000,http://localhost:3002")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.SetDefault("ollama.server_url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "gemma3:4b-it-qat")
	viper.SetDefault("ollama.temperature", 0.1)
	viper.SetDefault("ollama.max_tokens", 1000)
	viper.SetDefault("ollama.timeout", 120)

	viper.SetDefault("generation.words_per_window", 800)
	viper.SetDefault("generation.max_flashcards", 20)
	viper.SetDefault("generation.min_words", 50)
	viper.SetDefault("generation.cards_per_window", 3)

	viper.SetDefault("validation.default_score", 3)
	viper.SetDefault("validation.min_question_length", 5)
	viper.SetDefault("validation.min_answer_length", 1)
	viper.SetDefault("validation.option_count", 4)

	viper.SetDefault("pdf.min_page_content", 10)
	viper.SetDefault("pdf.min_cleaned_length", 20)
}
