package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Debug      bool       `yaml:"debug"`
	Limiter    Limiter    `yaml:"limiter"`
	Server     Server     `yaml:"server"`
	DB         DB         `yaml:"db"`
	Catalog    Catalog    `yaml:"catalog"`
	Captcha    Captcha    `yaml:"captcha"`
	SMTPServer SMTPServer `yaml:"smtp_server"`
	Admin      Admin      `yaml:"admin"`
	Tasks      Tasks      `yaml:"tasks"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
}

type Server struct {
	Port string `yaml:"port" env-default:"8000"`
	Host string `yaml:"host" env-default:"localhost"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type DB struct {
	Dsn             string        `yaml:"dsn" env:"DB_DSN" env-required:"true"`
	MaxConns        int           `yaml:"max_conns" env-default:"25"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"10m"`
	Migrate         bool          `yaml:"migrate" env-default:"true"`
}

type Catalog struct {
	PageSize int `yaml:"page_size" env-default:"9"`
}

type Captcha struct {
	VerifyURL    string        `yaml:"verify_url"`
	Secret       string        `yaml:"secret" env:"CAPTCHA_SECRET"`
	Timeout      time.Duration `yaml:"timeout" env-default:"3s"`
	RetriesCount int           `yaml:"retries_count" env-default:"2"`
}

type SMTPServer struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port" env-default:"25"`
	Timeout      time.Duration `yaml:"timeout" env-default:"5s"`
	Username     string        `yaml:"username" env:"SMTP_USERNAME"`
	Password     string        `yaml:"password" env:"SMTP_PASSWORD"`
	Sender       string        `yaml:"sender" env-default:"Kinoteka <no-reply@kinoteka.local>"`
	OwnerEmail   string        `yaml:"owner_email"`
	RetriesCount int           `yaml:"retries_count" env-default:"3"`
}

type Admin struct {
	// bcrypt hash of the admin password; login compares against it.
	PasswordHash string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	JWTSecret    string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"12h"`
}

type Tasks struct {
	MaxWorkers int `yaml:"max_workers" env-default:"3"`
	QueueSize  int `yaml:"queue_size" env-default:"100"`
}

func MustLoad(configPath string) *Config {
	var cfg Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic(fmt.Errorf("config file %s not found", configPath))
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic(err)
	}
	return &cfg
}
