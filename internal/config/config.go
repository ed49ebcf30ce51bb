package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	CLILogFilePath       string
	AgentLogFilePath     string
	ClientLogFilePath    string
	ComputingPower       int
	AgentAddress         string
	AgentPort            string
	AgentRequestTimeout  time.Duration
	ServerPort           string
	DBPath               string
	JWTSecret            string
	JWTExpirationMinutes int
	MaxSubintervals      uint64
	MaxWorkers           int
}

var AppConfig *Config

// InitConfig loads the optional .env file at configPath and fills AppConfig
// from the environment. Missing values fall back to defaults, malformed ones
// are fatal.
func InitConfig(configPath string) {
	AppConfig = &Config{}

	if _, err := os.Stat(configPath); err == nil {
		if err := godotenv.Load(configPath); err != nil {
			log.Fatalf("Error loading %s file: %v", configPath, err)
		}
	}

	AppConfig.CLILogFilePath = os.Getenv("PI_LOG_FILE_PATH")
	AppConfig.AgentLogFilePath = os.Getenv("AGENT_LOG_FILE_PATH")
	AppConfig.ClientLogFilePath = os.Getenv("CLIENT_LOG_FILE_PATH")
	AppConfig.AgentAddress = os.Getenv("AGENT_ADDRESS")

	if os.Getenv("COMPUTING_POWER") != "" {
		var err error
		AppConfig.ComputingPower, err = strconv.Atoi(os.Getenv("COMPUTING_POWER"))
		if err != nil {
			log.Fatal("COMPUTING_POWER not a number")
		}
	} else {
		AppConfig.ComputingPower = runtime.NumCPU()
	}

	if os.Getenv("AGENT_PORT") != "" {
		AppConfig.AgentPort = os.Getenv("AGENT_PORT")
	} else {
		AppConfig.AgentPort = "50051"
	}

	if os.Getenv("AGENT_REQUEST_TIMEOUT_MS") != "" {
		value, err := strconv.Atoi(os.Getenv("AGENT_REQUEST_TIMEOUT_MS"))
		if err != nil {
			log.Fatal("AGENT_REQUEST_TIMEOUT_MS not a number")
		}
		AppConfig.AgentRequestTimeout = time.Duration(value) * time.Millisecond
	} else {
		AppConfig.AgentRequestTimeout = 5 * time.Second
	}

	if os.Getenv("SERVER_PORT") != "" {
		AppConfig.ServerPort = os.Getenv("SERVER_PORT")
	} else {
		AppConfig.ServerPort = "8080"
	}

	if os.Getenv("DB_PATH") != "" {
		AppConfig.DBPath = os.Getenv("DB_PATH")
	} else {
		AppConfig.DBPath = "data/pi.db"
	}

	AppConfig.JWTSecret = os.Getenv("JWT_SECRET")

	if os.Getenv("JWT_EXPIRATION_MINUTES") != "" {
		value, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_MINUTES"))
		if err != nil {
			log.Fatal("JWT_EXPIRATION_MINUTES not a number")
		}
		AppConfig.JWTExpirationMinutes = value
	} else {
		AppConfig.JWTExpirationMinutes = 60
	}

	if os.Getenv("MAX_SUBINTERVALS") != "" {
		value, err := strconv.ParseUint(os.Getenv("MAX_SUBINTERVALS"), 10, 64)
		if err != nil {
			log.Fatal("MAX_SUBINTERVALS not a number")
		}
		AppConfig.MaxSubintervals = value
	} else {
		AppConfig.MaxSubintervals = 1_000_000_000
	}

	if os.Getenv("MAX_WORKERS") != "" {
		value, err := strconv.Atoi(os.Getenv("MAX_WORKERS"))
		if err != nil {
			log.Fatal("MAX_WORKERS not a number")
		}
		AppConfig.MaxWorkers = value
	} else {
		AppConfig.MaxWorkers = 1024
	}
}
