package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Corpus   CorpusConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Engine   EngineConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// CorpusConfig selects where the course catalog, career dataset and
// interaction matrix are loaded from at startup.
type CorpusConfig struct {
	Driver           string // "file" or "postgres"
	CoursesPath      string
	CareersPath      string
	InteractionsPath string // optional; empty means no collaborative data
	QuestionsPath    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type EngineConfig struct {
	LimitDefault int
	LimitMax     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid redis database")
		}
		redisDB = parsed
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Career Platform API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Corpus: CorpusConfig{
			Driver:           getEnv("CORPUS_DRIVER", "file"),
			CoursesPath:      getEnv("COURSES_PATH", "data/coursera_courses_processed.json"),
			CareersPath:      getEnv("CAREERS_PATH", "data/career_dataset.csv"),
			InteractionsPath: getEnv("INTERACTIONS_PATH", ""),
			QuestionsPath:    getEnv("ASSESSMENT_QUESTIONS_PATH", "data/assessment_questions.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "career_platform"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Enabled:       getEnv("REDIS_ENABLED", "false") == "true",
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Engine: EngineConfig{
			LimitDefault: getEnvInt("RECO_LIMIT_DEFAULT", 20),
			LimitMax:     getEnvInt("RECO_LIMIT_MAX", 100),
		},
	}

	if cfg.Corpus.Driver != "file" && cfg.Corpus.Driver != "postgres" {
		return nil, errors.New("CORPUS_DRIVER must be file or postgres")
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Corpus.Driver == "postgres" && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
