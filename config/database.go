package config

import (
	"time"

	"main/utils"
)

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Path:            utils.GetEnvAsString("SQLITE_PATH", "notes.db"),
		MaxOpenConns:    utils.GetEnvAsInt("SQLITE_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    utils.GetEnvAsInt("SQLITE_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(utils.GetEnvAsInt("SQLITE_CONN_MAX_LIFETIME", 300)) * time.Second,
	}
}
