package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvInfo 服務名稱與路徑 from .env
type EnvInfo struct {
	// service name, also the YAML file name
	TranscodeTrigger    string
	NotificationService string

	// service yaml path
	TranscodeTriggerYAMLPath    string
	NotificationServiceYAMLPath string

	// service log path, empty means stdout only
	TranscodeTriggerLogPath    string
	NotificationServiceLogPath string
}

// EnvConfig 集合服務設定
var (
	EnvConfig = initEnv()
	envConfig EnvInfo
	once      sync.Once
	env       string
)

// envAliases 對外的環境變數名稱 -> viper key
var envAliases = map[string]string{
	"submitter.region":        "ELASTIC_TRANSCODER_REGION",
	"submitter.pipeline_id":   "ELASTIC_TRANSCODER_PIPELINE_ID",
	"marker.database_url":     "DATABASE_URL",
	"marker.credentials_file": "FIREBASE_CREDENTIALS_FILE",
	"marker.credentials_json": "FIREBASE_CREDENTIALS_JSON",
}

func initEnv() EnvInfo {
	once.Do(func() {
		path, err := GetPath(".env", 5)
		if err == nil {
			if err := godotenv.Load(path); err != nil {
				log.Printf("Warning: Could not load .env file: %v", err)
			}
		}

		env = os.Getenv("ENV")

		envConfig = EnvInfo{
			TranscodeTrigger:    getEnv("TRANSCODE_TRIGGER", "transcode_trigger"),
			NotificationService: getEnv("NOTIFICATION_SERVICE", "transcode_trigger"),

			TranscodeTriggerYAMLPath:    getEnv("TRANSCODE_TRIGGER_YAML", "./configs"),
			NotificationServiceYAMLPath: getEnv("NOTIFICATION_SERVICE_YAML", "./configs"),

			TranscodeTriggerLogPath:    os.Getenv("TRANSCODE_TRIGGER_LOG"),
			NotificationServiceLogPath: os.Getenv("NOTIFICATION_SERVICE_LOG"),
		}
	})

	return envConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction check run env
func IsProduction() bool {
	return env == "production"
}

// IsLocal check run env
func IsLocal() bool {
	return env == "local"
}

// LoadConfig 加載配置並驗證，缺少必要設定時回傳錯誤
func LoadConfig[T any](serviceName string, configPath string) (T, error) {
	var cfg T

	v := viper.New()
	v.SetConfigName(serviceName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// 自動讀取環境變數, submitter.backend -> SUBMITTER_BACKEND
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, envName := range envAliases {
		if err := v.BindEnv(key, envName); err != nil {
			return cfg, fmt.Errorf("bind env %s: %w", envName, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("error loading config file: %w", err)
	}

	rawConfig, err := os.ReadFile(v.ConfigFileUsed())
	if err != nil {
		return cfg, fmt.Errorf("error reading raw config file: %w", err)
	}

	// 替換 ${} 占位符為環境變數的值
	expandedConfig := os.ExpandEnv(string(rawConfig))
	if err := v.ReadConfig(bytes.NewBufferString(expandedConfig)); err != nil {
		return cfg, fmt.Errorf("error reading expanded config: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s config: %w", serviceName, err)
	}
	return cfg, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		s := sl.Current().Interface().(SubmitterConfig)
		if s.Backend == SubmitterKafka && len(s.KafkaBrokers) == 0 {
			sl.ReportError(s.KafkaBrokers, "KafkaBrokers", "kafka_brokers", "required_if", "Backend kafka")
		}
	}, SubmitterConfig{})
	return validate
}

// GetPath use fileName loop maxCount find file path
func GetPath(fileName string, maxCount int) (string, error) {
	path := "./" + fileName

	for i := 0; i < maxCount; i++ {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		path = "../" + path
	}
	return "", errors.New(fileName + " can't find path")
}
