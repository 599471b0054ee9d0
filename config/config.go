package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongoDB = "mongodb"
	StoreDriverMemory  = "memory"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	StoreDriver   string
	AllowOrigins  []string
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	DBUsername    string
	DBPassword    string
	DBClusterHost string
	DBAppName     string
	DBName        string
	DBURI         string
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
	ServiceName   string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:  getEnv("SERVICE_PORT", "5000"),
		MetricsPort:  os.Getenv("METRICS_PORT"),
		Environment:  getEnv("APP_ENV", "development"),
		StoreDriver:  getEnv("STORE_DRIVER", StoreDriverMongoDB),
		AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		MongoDBConfig: MongoDBConfig{
			DBUsername:    os.Getenv("DB_USERNAME"),
			DBPassword:    os.Getenv("DB_PASSWORD"),
			DBClusterHost: getEnv("DB_CLUSTER_HOST", "cluster0.qwpevua.mongodb.net"),
			DBAppName:     getEnv("DB_APP_NAME", "Cluster0"),
			DBName:        getEnv("DB_NAME", "shop"),
			DBURI:         os.Getenv("DB_URI"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "product-events"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
			ServiceName:   getEnv("SERVICE_NAME", "shopigo-product-service"),
		},
	}

	return &conf
}

// ConnectionURI returns DB_URI when set, otherwise an Atlas SRV string built
// from the credentials.
func (c MongoDBConfig) ConnectionURI() string {
	if c.DBURI != "" {
		return c.DBURI
	}

	uri := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUsername, c.DBPassword),
		Host:     c.DBClusterHost,
		Path:     "/",
		RawQuery: url.Values{"appName": []string{c.DBAppName}}.Encode(),
	}

	return uri.String()
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) (items []string) {
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return
}
