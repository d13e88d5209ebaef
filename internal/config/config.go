package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CommissionConfig struct {
	Env            string `yaml:"env" env-default:"local"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
	HTTPServer     `yaml:"http_server"`
	CommissionDB   `yaml:"commission_db"`
	LogConfig      `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	MailService    `yaml:"mail-service"`
	Auth           `yaml:"auth"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type CommissionDB struct {
	Dsn string `yaml:"dsn" env:"COMMISSION_DB_DSN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"commission-settlements"`
}

type MailService struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" env-default:"587"`
	Username string `yaml:"username" env:"MAIL_USERNAME"`
	Password string `yaml:"password" env:"MAIL_PASSWORD"`
	From     string `yaml:"from"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

func MustLoad() *CommissionConfig {
	configPath := os.Getenv("COMMISSION_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("COMMISSION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg CommissionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
