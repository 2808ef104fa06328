package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DBConfig holds the connection values for one relational store
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	MaxConns int
}

// DiscordConfig holds the values needed to query guild members
type DiscordConfig struct {
	APIBase      string
	BotToken     string
	GuildID      string
	AdminRoleIDs []string
	ModRoleIDs   []string
	// RequestsPerSecond caps outbound calls to the Discord API
	RequestsPerSecond float64
}

// FiveMConfig holds the values needed to query the server listing
type FiveMConfig struct {
	APIBase  string
	JoinCode string
	Timeout  time.Duration
}

// Config holds the project config values
type Config struct {
	Port        string
	Environment string

	AppDB  DBConfig
	GameDB DBConfig

	// MigrateOnStart applies the app database migrations before serving
	MigrateOnStart bool

	SecretKey string
	TokenTTL  time.Duration

	Discord DiscordConfig
	FiveM   FiveMConfig

	PlayersDBPath string
	ItemsPath     string
	WeaponsPath   string

	LogAuthorizedIPs   []string
	LogAuthorizedPorts []string
	// LogStore selects where plugin logs are written: "sql" or "mongo"
	LogStore      string
	MongoURI      string
	MongoDatabase string

	AgentJobs        []string
	RolloverSchedule string
	AllowedOrigins   []string
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.S().Warnw("failed to load .env file", "error", err)
	}

	env := getEnv("ENVIRONMENT", "development")
	logger, err := setLogger(env)
	if err == nil {
		_ = zap.ReplaceGlobals(logger)
	}

	return &Config{
		Port:        getEnv("PORT", "3001"),
		Environment: env,
		AppDB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "fivelives"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
		},
		GameDB: DBConfig{
			Host:     getEnv("DB_HOST_FL", "localhost"),
			Port:     getEnv("DB_PORT_FL", "3306"),
			User:     getEnv("DB_USER_FL", "root"),
			Password: os.Getenv("DB_PASSWORD_FL"),
			Name:     getEnv("DB_NAME_FL", "fivelives_new"),
			MaxConns: getEnvInt("DB_MAX_CONNS_FL", 10),
		},
		MigrateOnStart: getEnvBool("DB_MIGRATE_ON_START", false),
		SecretKey:      os.Getenv("SECRET_KEY"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 2*time.Hour),
		Discord: DiscordConfig{
			APIBase:           getEnv("DISCORD_API_BASE", "https://discord.com/api"),
			BotToken:          os.Getenv("DISCORD_BOT_TOKEN"),
			GuildID:           os.Getenv("DISCORD_GUILD_ID"),
			AdminRoleIDs:      splitList(os.Getenv("ADMIN_ROLE_IDS")),
			ModRoleIDs:        splitList(os.Getenv("MOD_ROLE_IDS")),
			RequestsPerSecond: getEnvFloat("DISCORD_RATE_LIMIT", 5),
		},
		FiveM: FiveMConfig{
			APIBase:  getEnv("FIVEM_API_BASE", "https://servers-frontend.fivem.net/api/servers/single"),
			JoinCode: os.Getenv("FIVEM_JOIN_CODE"),
			Timeout:  getEnvDuration("FIVEM_TIMEOUT", 5*time.Second),
		},
		PlayersDBPath:      getEnv("PLAYERS_DB_PATH", "data/playersDB.json"),
		ItemsPath:          getEnv("ITEMS_PATH", "data/items.lua"),
		WeaponsPath:        getEnv("WEAPONS_PATH", "data/weapons.lua"),
		LogAuthorizedIPs:   splitList(getEnv("LOG_AUTHORIZED_IPS", "0.0.0.0")),
		LogAuthorizedPorts: splitList(getEnv("LOG_AUTHORIZED_PORTS", "30120")),
		LogStore:           getEnv("LOG_STORE", "sql"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDatabase:      getEnv("MONGO_DB_NAME", "tablet"),
		AgentJobs:          splitList(getEnv("AGENT_JOBS", "police,sceriffi,doj")),
		RolloverSchedule:   os.Getenv("PROCURA_ROLLOVER_CRON"),
		AllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "status", httpStatusCode, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// splitList turns a comma separated value into its trimmed, non-empty parts
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
