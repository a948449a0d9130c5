package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultServerPort       = 8080
	defaultStorageDriver    = StorageDriverJSONFile
	defaultConnectionString = "Host=localhost;Port=5432;Database=securebank_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
	defaultChannelID        = "SecureBankWeb"
	defaultChannelKey       = "SecureBankKey001"
)

const (
	StorageDriverJSONFile = "jsonfile"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	ServerPort    int
	StorageDriver string
	DataFile      string
	DatabaseDSN   string
	MigrationsDir string
	ChannelID     string
	ChannelKey    string
}

func Load() (Config, error) {
	port := defaultServerPort
	if raw := strings.TrimSpace(os.Getenv("SERVER_PORT")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("invalid SERVER_PORT %q", raw)
		}
		port = parsed
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	if driver == "" {
		driver = defaultStorageDriver
	}
	switch driver {
	case StorageDriverJSONFile, StorageDriverPostgres, StorageDriverMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q", driver)
	}

	dataFile := strings.TrimSpace(os.Getenv("DATA_FILE"))
	if dataFile == "" {
		dataFile = filepath.Join("data", "bankingUsers.json")
	}

	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	return Config{
		ServerPort:    port,
		StorageDriver: driver,
		DataFile:      dataFile,
		DatabaseDSN:   normalizeConnectionString(conn),
		MigrationsDir: filepath.Join("src", "migrations"),
		ChannelID:     channelID,
		ChannelKey:    channelKey,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
