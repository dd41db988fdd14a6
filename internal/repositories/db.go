// Package repositories provides data access layer implementations.
// It holds the Postgres-backed bank directory store and the shared
// Redis cache used by the directory service.
package repositories

import (
	"time"

	"veriban/internal/config"
	"veriban/internal/models"
	"veriban/internal/repositories/cache"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global database instance, set by InitDB. It stays nil when the
// directory runs file-backed.
var DB *gorm.DB

// CacheService is the global Redis-backed cache, set by InitCache. It stays
// nil when Redis is disabled.
var CacheService *cache.CacheService

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// InitDB connects to Postgres, configures the connection pool and migrates
// the bank directory schema.
func InitDB() error {
	initPostgres()

	return DB.AutoMigrate(
		&models.BankRecord{},
	)
}

// InitCache connects the shared Redis cache from environment configuration.
func InitCache() {
	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	ttl := config.GetDurationEnv("CACHE_TTL", 24*time.Hour)
	CacheService = cache.NewCacheService(redisClient, ttl)
}

func initPostgres() {
	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + config.GetEnv("DB_NAME", "veriban") +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to get database instance")
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	logrus.Info("PostgreSQL connected")
}
