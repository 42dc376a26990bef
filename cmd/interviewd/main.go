package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/nkove/interviewd/internal/interview/controller"
	"github.com/nkove/interviewd/internal/interview/db"
	"github.com/nkove/interviewd/internal/interview/events"
	"github.com/nkove/interviewd/internal/interview/handlers"
	"github.com/nkove/interviewd/internal/interview/memory"
	"github.com/nkove/interviewd/internal/interview/repository"
	"github.com/nkove/interviewd/internal/interview/responder"
	"github.com/nkove/interviewd/internal/interview/seed"
)

// Config struct for YAML configuration
type Config struct {
	HTTPPort     int      `yaml:"HTTP_PORT"`
	DBHost       string   `yaml:"DB_HOST"`
	DBPort       int      `yaml:"DB_PORT"`
	DBUser       string   `yaml:"DB_USER"`
	DBPassword   string   `yaml:"DB_PASSWORD"`
	DBName       string   `yaml:"DB_NAME"`
	DBSSLMode    string   `yaml:"DB_SSLMODE"`
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	interviews, characters, companies, closeStore, err := initRepositories(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer closeStore()

	producer, closeProducer, err := initProducer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	defer closeProducer()

	interviewSvc := controller.NewInterviewService(interviews, characters, companies, producer, logger)
	characterSvc := controller.NewCharacterService(characters, logger)
	companySvc := controller.NewCompanyService(companies, logger)

	interviewHandler := handlers.NewInterviewHandler(
		interviewSvc, characterSvc, companySvc, responder.NewScripted(), logger)
	catalogHandler := handlers.NewCatalogHandler(characterSvc, companySvc, logger)

	router := handlers.NewRouter(interviewHandler, catalogHandler)
	server := handlers.NewServer(cfg.HTTPPort, router, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

func loadConfig() (*Config, error) {
	configPath := filepath.Join("internal", "interview", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// initRepositories picks the storage backend: PostgreSQL when a DB host
// is configured, otherwise the seeded in-memory adapters.
func initRepositories(cfg *Config, logger *zap.Logger) (
	repository.InterviewRepository,
	repository.CharacterRepository,
	repository.CompanyRepository,
	func(),
	error,
) {
	if cfg.DBHost == "" {
		logger.Info("no database configured, using seeded in-memory repositories")
		characters := memory.NewCharacterRepository()
		characters.Seed(seed.Characters())
		companies := memory.NewCompanyRepository()
		companies.Seed(seed.Companies())
		return memory.NewInterviewRepository(), characters, companies, func() {}, nil
	}

	store, err := db.New(&db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", zap.Error(err))
		}
	}
	return store.Interviews(), store.Characters(), store.Companies(), closeStore, nil
}

// initProducer connects the Kafka producer, or a nop producer when no
// brokers are configured.
func initProducer(cfg *Config, logger *zap.Logger) (controller.EventProducer, func(), error) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("no Kafka brokers configured, events disabled")
		return events.NopProducer{}, func() {}, nil
	}
	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		return nil, nil, err
	}
	return producer, producer.Close, nil
}

// waitForShutdown blocks until an interrupt or SIGTERM is received,
// then shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
