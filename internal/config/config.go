package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type StorageMode string

const (
	// tenta o banco relacional e cai para o chave-valor em caso de falha
	StorageAuto       StorageMode = "auto"
	StorageRelational StorageMode = "relational"
	// modo web/dev: somente chave-valor
	StorageWeb StorageMode = "web"
)

type Config struct {
	ServerPort string
	Timezone   string

	StorageMode StorageMode
	DBDriver    string
	DBUrl       string

	KVDriver  string
	KVPath    string
	RedisAddr string

	JWTSecret      string
	TrainerPinHash string

	WhatsAppCountryCode string
	MercadoPagoToken    string

	BackupBucket string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Endpoint   string

	SweepSchedule  string
	BackupSchedule string
}

func Load() *Config {
	// .env é opcional
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Timezone:   getEnv("TIMEZONE", "America/Argentina/Buenos_Aires"),

		StorageMode: StorageMode(getEnv("STORAGE_MODE", string(StorageAuto))),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBUrl:       getEnv("DATABASE_URL", "file:trainer.db?_foreign_keys=on"),

		KVDriver:  getEnv("KV_DRIVER", "file"),
		KVPath:    getEnv("KV_PATH", "trainer-data"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		TrainerPinHash: os.Getenv("TRAINER_PIN_HASH"),

		WhatsAppCountryCode: getEnv("WHATSAPP_COUNTRY_CODE", "54"),
		MercadoPagoToken:    os.Getenv("MP_ACCESS_TOKEN"),

		BackupBucket: os.Getenv("BACKUP_BUCKET"),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),

		SweepSchedule:  getEnv("SWEEP_SCHEDULE", "5 0 * * *"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "30 2 * * *"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AuthEnabled() bool {
	return c.TrainerPinHash != ""
}

func (c *Config) BackupEnabled() bool {
	return c.BackupBucket != ""
}
