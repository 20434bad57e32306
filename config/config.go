// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Database      DatabaseConfiguration
	Neo4j         Neo4jConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Cache         CacheConfiguration
	Auth          AuthConfiguration
	RateLimit     RateLimitConfiguration
	Log           LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration selects the gorm dialector and its DSN
type DatabaseConfiguration struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	LogSQL       bool
}

// Neo4jConfiguration stores data for the org graph mirror. An empty URI disables it.
type Neo4jConfiguration struct {
	URI      string
	Username string
	Password string
}

// RedisConfiguration stores data for Redis connection. An empty Addr disables Redis.
type RedisConfiguration struct {
	Addr            string
	Password        string
	DB              int
	DefaultCacheTTL time.Duration
}

// ElasticsearchConfiguration stores data for the audit trail. An empty URL logs audit entries instead.
type ElasticsearchConfiguration struct {
	URL   string
	Index string
}

// CacheConfiguration sizes the in-process cache used when Redis is disabled
type CacheConfiguration struct {
	Size int
	TTL  time.Duration
}

// AuthConfiguration stores the HMAC secret used to verify bearer tokens
type AuthConfiguration struct {
	Secret string
}

// RateLimitConfiguration bounds requests per client
type RateLimitConfiguration struct {
	Requests int
	Per      time.Duration
}

// LogConfiguration stores where log files go
type LogConfiguration struct {
	Dir string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.dsn", "host=localhost user=albedo password=albedo dbname=albedo port=5432 sslmode=disable")
	viper.SetDefault("database.maxOpenConns", 20)
	viper.SetDefault("database.maxIdleConns", 5)
	viper.SetDefault("database.logSQL", false)
	viper.SetDefault("neo4j.uri", "")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "")
	viper.SetDefault("elasticsearch.index", "audit-logs")
	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("rateLimit.requests", 100)
	viper.SetDefault("rateLimit.per", "1m")
	viper.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
