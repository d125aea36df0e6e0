package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":3001"`
}

type Database struct {
	Host            string        `yaml:"MYSQL_HOST" env:"MYSQL_HOST" env-default:"localhost"`
	Port            string        `yaml:"MYSQL_PORT" env:"MYSQL_PORT" env-default:"3306"`
	User            string        `yaml:"MYSQL_USER" env:"MYSQL_USER" env-required:"true"`
	Password        string        `yaml:"MYSQL_PASSWORD" env:"MYSQL_PASSWORD" env-required:"true"`
	Name            string        `yaml:"MYSQL_DBNAME" env:"MYSQL_DBNAME" env-required:"true"`
	MaxOpenConns    int           `yaml:"MYSQL_MAX_OPEN_CONNS" env:"MYSQL_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MYSQL_MAX_IDLE_CONNS" env:"MYSQL_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"MYSQL_CONN_MAX_LIFETIME" env:"MYSQL_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnTimeout     time.Duration `yaml:"MYSQL_CONN_TIMEOUT" env:"MYSQL_CONN_TIMEOUT" env-default:"10s"`
}

type Uploads struct {
	Dir      string `yaml:"UPLOADS_DIR" env:"UPLOADS_DIR" env-default:"uploads"`
	MaxBytes int64  `yaml:"UPLOADS_MAX_BYTES" env:"UPLOADS_MAX_BYTES" env-default:"5242880"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer `yaml:"http_server"`
	Database   Database `yaml:"database"`
	Uploads    Uploads  `yaml:"uploads"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

	}

	var cfg Config
	var err error

	if configPath != "" {
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}

	if err != nil {
		log.Fatalf("can not read config: %s", err.Error())
	}

	return &cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&timeout=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.ConnTimeout)
}
