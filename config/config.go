package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSyncQueueDB int    `mapstructure:"REDIS_SYNC_QUEUE_DB"`

	// Scheduling policy. All wall-clock rules (sleep guard, work hours,
	// weekend-evening bonus) are evaluated in the reference timezone,
	// never in per-user timezones.
	ReferenceTimezone        string  `mapstructure:"REFERENCE_TIMEZONE"`
	SlotStrideMinutes        int     `mapstructure:"SLOT_STRIDE_MINUTES"`
	QuorumRatio              float64 `mapstructure:"QUORUM_RATIO"`
	MinNoticeHours           int     `mapstructure:"MIN_NOTICE_HOURS"`
	MaxLookaheadDays         int     `mapstructure:"MAX_LOOKAHEAD_DAYS"`
	DefaultDurationMinutes   int     `mapstructure:"DEFAULT_DURATION_MINUTES"`
	ProposedTimesLimit       int     `mapstructure:"PROPOSED_TIMES_LIMIT"`
	FullAttendanceBonus      int     `mapstructure:"FULL_ATTENDANCE_BONUS"`
	WeekendEveningBonus      int     `mapstructure:"WEEKEND_EVENING_BONUS"`
	AttendeeWeight           int     `mapstructure:"ATTENDEE_WEIGHT"`
	BestTimesCacheTTLSeconds int     `mapstructure:"BEST_TIMES_CACHE_TTL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SYNC_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "synkt")

	viper.SetDefault("REFERENCE_TIMEZONE", "Australia/Sydney")
	viper.SetDefault("SLOT_STRIDE_MINUTES", 15)
	viper.SetDefault("QUORUM_RATIO", 0.5)
	viper.SetDefault("MIN_NOTICE_HOURS", 24)
	viper.SetDefault("MAX_LOOKAHEAD_DAYS", 60)
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 60)
	viper.SetDefault("PROPOSED_TIMES_LIMIT", 5)
	viper.SetDefault("FULL_ATTENDANCE_BONUS", 1000)
	viper.SetDefault("WEEKEND_EVENING_BONUS", 500)
	viper.SetDefault("ATTENDEE_WEIGHT", 10)
	viper.SetDefault("BEST_TIMES_CACHE_TTL_SECONDS", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
