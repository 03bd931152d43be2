package configuration

import (
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
)

// ConfServer — параметры HTTP-сервера
type ConfServer struct {
	HostName string `env:"SERVICE_HOST_NAME" env-default:"localhost"`
	Port     int    `env:"SERVICE_PORT"       env-default:"8081"`
	GinMode  string `env:"GIN_MODE"           env-default:"debug"`
}

// ConfApp — общие параметры приложения
type ConfApp struct {
	// BaseURL используется при сборке коротких ссылок вида <BaseURL>/r/<код>
	BaseURL string `env:"BASE_URL" env-default:"http://localhost:8081"`
}

// ConfDB — параметры подключения к PostgreSQL
type ConfDB struct {
	HostName string `env:"DB_HOST_NAME" env-default:"dbPostgres"`
	Port     int    `env:"DB_PORT"      env-default:"5432"`
	Name     string `env:"DB_NAME"      env-default:"db-postgres"`
	User     string `env:"DB_USER"      env-default:"postgres"`
	Password string `env:"DB_PASSWORD"  env-default:"postgres"`
}

// ConfCache — параметры Redis
type ConfCache struct {
	HostName string        `env:"REDIS_HOST_NAME" env-default:"dbRedis"`
	Port     int           `env:"REDIS_PORT"      env-default:"6379"`
	Password string        `env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `env:"REDIS_DB"        env-default:"0"`
	TTL      time.Duration `env:"REDIS_TTL"       env-default:"600s"`
	Warming  time.Duration `env:"REDIS_WARMING"   env-default:"24h"`
}

// ConfS3 — параметры S3-совместимого объектного хранилища для выгрузки CSV
type ConfS3 struct {
	Region    string `env:"S3_REGION"            env-default:"auto"`
	Endpoint  string `env:"S3_ENDPOINT"          env-default:""`
	Bucket    string `env:"S3_BUCKET"            env-default:"link-exports"`
	AccessKey string `env:"S3_ACCESS_KEY_ID"     env-default:""`
	SecretKey string `env:"S3_SECRET_ACCESS_KEY" env-default:""`
	// PublicURL — базовый адрес, по которому бакет доступен на чтение;
	// если не задан, публичная ссылка собирается из Endpoint и Bucket
	PublicURL string `env:"S3_PUBLIC_URL" env-default:""`
}

// Config — корневая структура конфигурации
type Config struct {
	Server ConfServer
	App    ConfApp
	DB     ConfDB
	Redis  ConfCache
	S3     ConfS3
}

// ReadConfig загружает .env файл из корня проекта и возвращает заполненную структуру Config
func ReadConfig() (*Config, error) {

	var config Config

	// загружаем конфигурацию из файла .env напрямую в структуру
	if err := cleanenvport.LoadPath("./.env", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
