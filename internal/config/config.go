package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/trsv-dev/nagios-downtime-scheduler/internal/errs"
)

const (
	ProtocolHTTP  = "http"
	ProtocolHTTPS = "https"

	DefaultDuration = 7200 // секунды
	DefaultTimeout  = 30 * time.Second
)

// Config Конфигурация планировщика даунтайма, полученная из флагов,
// переменных окружения и (опционально) файла настроек.
type Config struct {
	Server   string
	Protocol string
	Port     int
	User     string
	Password string

	Hostname string
	Message  string
	Start    int64
	Duration int64

	Timeout time.Duration
	UTC     bool
	Ping    bool

	CGIPath       string
	Author        string
	SuccessMarker string

	LogLevel  string
	LogOutput string

	ConfigFile string
	Version    bool
}

// InitConfig Инициализация структуры, содержащей конфигурацию, полученную из флагов или
// переменных окружения. Приоритет: флаги < переменные окружения < ничего;
// файл настроек заполняет только пустые значения, значения по умолчанию
// применяются последними.
func InitConfig() (*Config, error) {
	config := &Config{}

	flag.StringVar(&config.Server, "server", "", "Monitoring server host name (required)")
	flag.StringVar(&config.Protocol, "protocol", "", "Protocol to use: http or https (default `http`)")
	flag.IntVar(&config.Port, "port", 0, "Server port (0 means derive from protocol: 80/443)")
	flag.StringVar(&config.User, "user", "", "HTTP basic auth user (required)")
	flag.StringVar(&config.Password, "password", "", "HTTP basic auth password (required)")
	flag.StringVar(&config.Hostname, "hostname", "", "Monitored host to schedule downtime for (required)")
	flag.StringVar(&config.Message, "message", "", "Downtime comment, max 40 characters advised (required)")
	flag.Int64Var(&config.Start, "start", 0, "Downtime start as unix seconds (default: now)")
	flag.Int64Var(&config.Duration, "duration", 0, "Downtime duration in seconds (default 7200)")
	flag.DurationVar(&config.Timeout, "timeout", 0, "HTTP connect/read timeout (default 30s)")
	flag.BoolVar(&config.UTC, "utc", false, "Format start/end times in UTC instead of the local zone")
	flag.BoolVar(&config.Ping, "ping", false, "Check server reachability before touching cmd.cgi")
	flag.StringVar(&config.CGIPath, "cgi-path", "", "Path to cmd.cgi (default `/cgi-bin/nagios3/cmd.cgi`)")
	flag.StringVar(&config.Author, "author", "", "Value for the com_author form field")
	flag.StringVar(&config.LogLevel, "log-level", "", "Log level (example: Debug, Info, Warn, Error)")
	flag.StringVar(&config.LogOutput, "log-output", "", "Log output: stdout, stderr or a file path")
	flag.StringVar(&config.ConfigFile, "config", "", "Optional yaml file with connection defaults")
	flag.BoolVar(&config.Version, "version", false, "Print version and exit")
	flag.Parse()

	applyEnv(config)

	if config.ConfigFile != "" {
		if err := applyFile(config, config.ConfigFile); err != nil {
			return nil, fmt.Errorf("не удалось применить файл настроек: %w", err)
		}
	}

	setDefaults(config)

	return config, nil
}

// applyEnv Переопределение значений из переменных окружения.
func applyEnv(config *Config) {
	if value, ok := os.LookupEnv("NDS_SERVER"); ok {
		config.Server = value
	}

	if value, ok := os.LookupEnv("NDS_PROTOCOL"); ok {
		config.Protocol = value
	}

	if value, ok := os.LookupEnv("NDS_PORT"); ok {
		if port, err := strconv.Atoi(value); err == nil {
			config.Port = port
		}
	}

	if value, ok := os.LookupEnv("NDS_USER"); ok {
		config.User = value
	}

	if value, ok := os.LookupEnv("NDS_PASSWORD"); ok {
		config.Password = value
	}

	if value, ok := os.LookupEnv("NDS_LOG_LEVEL"); ok {
		config.LogLevel = value
	}

	if value, ok := os.LookupEnv("NDS_LOG_OUTPUT"); ok {
		config.LogOutput = value
	}
}

// setDefaults Установка значений по умолчанию для не заданных полей.
func setDefaults(config *Config) {
	if config.Protocol == "" {
		config.Protocol = ProtocolHTTP
	}
	config.Protocol = strings.ToLower(config.Protocol)

	if config.Duration == 0 {
		config.Duration = DefaultDuration
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.CGIPath == "" {
		config.CGIPath = "/cgi-bin/nagios3/cmd.cgi"
	}
	if config.Author == "" {
		config.Author = "nagios-downtime-scheduler"
	}
	if config.SuccessMarker == "" {
		config.SuccessMarker = "successfully submitted"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogOutput == "" {
		config.LogOutput = "stderr"
	}
}

// EffectivePort Действующий порт: явно заданный порт никогда не переопределяется,
// нулевой выводится из протокола (443 для https, иначе 80).
func (c *Config) EffectivePort() int {
	if c.Port != 0 {
		return c.Port
	}

	if strings.EqualFold(c.Protocol, ProtocolHTTPS) {
		return 443
	}

	return 80
}

// BaseURL Базовый адрес сервера мониторинга.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d", c.Protocol, c.Server, c.EffectivePort())
}

// Location Зона форматирования дат формы.
func (c *Config) Location() *time.Location {
	if c.UTC {
		return time.UTC
	}

	return time.Local
}

// Validate Базовая валидация конфигурации: обязательные поля и протокол.
func (c *Config) Validate() error {
	if len(c.Server) == 0 {
		return errs.NewErrMissingParameter("server")
	}

	if len(c.User) == 0 {
		return errs.NewErrMissingParameter("user")
	}

	if len(c.Password) == 0 {
		return errs.NewErrMissingParameter("password")
	}

	if len(c.Hostname) == 0 {
		return errs.NewErrMissingParameter("hostname")
	}

	if len(c.Message) == 0 {
		return errs.NewErrMissingParameter("message")
	}

	if c.Protocol != ProtocolHTTP && c.Protocol != ProtocolHTTPS {
		return errs.NewErrInvalidProtocol(c.Protocol)
	}

	return nil
}
