package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath    = "config.yaml"
	DefaultAppPort       = "3000"
	DefaultStorageDriver = "postgres"
	DefaultOpenAIBaseURL = "https://api.openai.com"
	DefaultRateLimitMax  = 10
)

type Config struct {
	// Application
	AppPort       string `yaml:"APP_PORT"`
	AppDebug      bool   `yaml:"APP_DEBUG"`
	StorageDriver string `yaml:"STORAGE_DRIVER"`
	RateLimitMax  int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// MongoDB configuration
	MongoURI      string `yaml:"MONGODB_URI"`
	MongoDatabase string `yaml:"MONGODB_DATABASE"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// OpenAI configuration
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	OpenAIBaseURL string `yaml:"OPENAI_BASE_URL"`
}

var config Config

// LoadConfig reads the yaml file at path, then lets .env files and the process environment override it.
// A missing yaml file is not fatal; the environment alone may configure the service.
func LoadConfig(path string) {
	if path == "" {
		path = DefaultConfigPath
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}

	loaded := Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &loaded); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		loaded = Config{}
	}

	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
	applyEnv(&loaded)
	applyDefaults(&loaded)
	config = loaded
}

func applyEnv(c *Config) {
	stringFields := map[string]*string{
		"APP_PORT":         &c.AppPort,
		"STORAGE_DRIVER":   &c.StorageDriver,
		"DB_USER":          &c.DBUser,
		"DB_NAME":          &c.DBName,
		"DB_PASSWORD":      &c.DBPassword,
		"DB_PORT":          &c.DBPort,
		"DB_HOST":          &c.DBHost,
		"MONGODB_URI":      &c.MongoURI,
		"MONGODB_DATABASE": &c.MongoDatabase,
		"AWS_S3_BUCKET":    &c.AWSS3Bucket,
		"AWS_S3_REGION":    &c.AWSS3Region,
		"AWS_ACCESS_KEY":   &c.AWSAccessKey,
		"AWS_SECRET_KEY":   &c.AWSSecretKey,
		"OPENAI_API_KEY":   &c.OpenAIAPIKey,
		"OPENAI_BASE_URL":  &c.OpenAIBaseURL,
	}
	for key, field := range stringFields {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}

	if v := os.Getenv("APP_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.AppDebug = debug
		}
	}
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			c.RateLimitMax = limit
		}
	}
}

func applyDefaults(c *Config) {
	if c.AppPort == "" {
		c.AppPort = DefaultAppPort
	}
	if c.StorageDriver == "" {
		c.StorageDriver = DefaultStorageDriver
	}
	if c.OpenAIBaseURL == "" {
		c.OpenAIBaseURL = DefaultOpenAIBaseURL
	}
	if c.RateLimitMax <= 0 {
		c.RateLimitMax = DefaultRateLimitMax
	}
}

func GetRateLimitMax() int {
	return config.RateLimitMax
}

func IsDebug() bool {
	return config.AppDebug
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_DEBUG":
		return strconv.FormatBool(config.AppDebug)
	case "STORAGE_DRIVER":
		return config.StorageDriver
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "MONGODB_URI":
		return config.MongoURI
	case "MONGODB_DATABASE":
		return config.MongoDatabase
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_BASE_URL":
		return config.OpenAIBaseURL
	default:
		return ""
	}
}
