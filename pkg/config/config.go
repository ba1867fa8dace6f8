package config

const (
	// SubmitterElasticTranscoder submit jobs to AWS Elastic Transcoder
	SubmitterElasticTranscoder = "elastictranscoder"
	// SubmitterRabbitMQ publish jobs to the transcode queue
	SubmitterRabbitMQ = "rabbitmq"
	// SubmitterKafka write jobs to a kafka topic
	SubmitterKafka = "kafka"

	// MarkerFirebase firebase realtime database
	MarkerFirebase = "firebase"
	// MarkerRedis redis key per video group
	MarkerRedis = "redis"
	// MarkerMongo mongo document per video group
	MarkerMongo = "mongo"
	// MarkerPostgres postgres row per video group
	MarkerPostgres = "postgres"
)

// TranscodeTrigger definition transcode_trigger YAML structure
type TranscodeTrigger struct {
	IP      string `mapstructure:"ip"`
	Port    string `mapstructure:"port"`
	LogPath string `mapstructure:"log_path"`

	Submitter SubmitterConfig `mapstructure:"submitter"`
	Marker    MarkerConfig    `mapstructure:"marker"`
	Presets   PresetsConfig   `mapstructure:"presets"`
	MinIO     MinIOConfig     `mapstructure:"minio"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
}

// SubmitterConfig definition transcoding backend setting
type SubmitterConfig struct {
	Backend    string `mapstructure:"backend" validate:"oneof=elastictranscoder rabbitmq kafka"`
	PipelineID string `mapstructure:"pipeline_id" validate:"required"`

	// elastic transcoder, empty keys fall back to the default credential chain
	Region          string `mapstructure:"region" validate:"required_if=Backend elastictranscoder"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`

	RabbitMQURL  string   `mapstructure:"rabbitmq_url" validate:"required_if=Backend rabbitmq"`
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaTopic   string   `mapstructure:"kafka_topic" validate:"required_if=Backend kafka"`

	RetryCount    int `mapstructure:"retry_count"`
	RetryInterval int `mapstructure:"retry_interval"`
}

// MarkerConfig definition progress marker database setting
type MarkerConfig struct {
	Backend     string `mapstructure:"backend" validate:"oneof=firebase redis mongo postgres"`
	DatabaseURL string `mapstructure:"database_url" validate:"required"`

	// firebase credentials bundle, empty means application default credentials
	CredentialsFile string `mapstructure:"credentials_file"`
	CredentialsJSON string `mapstructure:"credentials_json"`

	MongoDatabase string `mapstructure:"mongo_database" validate:"required_if=Backend mongo"`

	RedisMasterName    string   `mapstructure:"redis_master_name"`
	RedisSentinelAddrs []string `mapstructure:"redis_sentinel_addrs"`

	RetryCount    int `mapstructure:"retry_count"`
	RetryInterval int `mapstructure:"retry_interval"`
}

// PresetsConfig definition rendition preset ids of the transcoding backend catalog
type PresetsConfig struct {
	Web480p      string `mapstructure:"web_480p" validate:"required"`
	Generic720p  string `mapstructure:"generic_720p" validate:"required"`
	Web720p      string `mapstructure:"web_720p" validate:"required"`
	Generic1080p string `mapstructure:"generic_1080p" validate:"required"`
}

// MinIOConfig definition bucket notification listener setting
type MinIOConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host" validate:"required_if=Enabled true"`
	Port       int    `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	BucketName string `mapstructure:"bucket_name" validate:"required_if=Enabled true"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	Prefix     string `mapstructure:"prefix"`
	Suffix     string `mapstructure:"suffix"`

	RetryCount    int `mapstructure:"retry_count"`
	RetryInterval int `mapstructure:"retry_interval"`
}

// WebhookConfig definition notification webhook setting
type WebhookConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Secret  string `mapstructure:"secret" validate:"required_if=Enabled true"`
}

// SentryConfig definition error reporting setting
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}
