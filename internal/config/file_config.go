package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig Файл настроек с параметрами подключения.
// Файл заполняет только те поля, которые не были заданы флагами
// или переменными окружения.
type fileConfig struct {
	Server        string `yaml:"server"`
	Protocol      string `yaml:"protocol"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	CGIPath       string `yaml:"cgi_path"`
	Author        string `yaml:"author"`
	SuccessMarker string `yaml:"success_marker"`
	LogLevel      string `yaml:"log_level"`
	LogOutput     string `yaml:"log_output"`
}

// applyFile Чтение файла настроек и заполнение пустых полей конфигурации.
func applyFile(config *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("ошибка чтения файла настроек: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("ошибка разбора файла настроек: %w", err)
	}

	if config.Server == "" {
		config.Server = fc.Server
	}
	if config.Protocol == "" {
		config.Protocol = fc.Protocol
	}
	if config.Port == 0 {
		config.Port = fc.Port
	}
	if config.User == "" {
		config.User = fc.User
	}
	if config.Password == "" {
		config.Password = fc.Password
	}
	if config.CGIPath == "" {
		config.CGIPath = fc.CGIPath
	}
	if config.Author == "" {
		config.Author = fc.Author
	}
	if config.SuccessMarker == "" {
		config.SuccessMarker = fc.SuccessMarker
	}
	if config.LogLevel == "" {
		config.LogLevel = fc.LogLevel
	}
	if config.LogOutput == "" {
		config.LogOutput = fc.LogOutput
	}

	return nil
}
