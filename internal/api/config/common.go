package config

// Config is the top-level configuration shape.
type Config struct {
	Server            ServerConfig      `mapstructure:"server"`
	Mongo             MongoConfig       `mapstructure:"mongo"`
	Redis             RedisConfig       `mapstructure:"redis"`
	SMTP              SMTPConfig        `mapstructure:"smtp"`
	LLM               LLMConfig         `mapstructure:"llm"`
	Alerts            AlertsConfig      `mapstructure:"alerts"`
	Kafka             KafkaConfig       `mapstructure:"kafka"`
	KafkaViewConsumer KafkaViewConsumer `mapstructure:"kafka_view_consumer"`
	Logstash          LogstashConfig    `mapstructure:"logstash"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// SMTPConfig drives the mail transport. Alerts are silently skipped when
// Host is empty.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// LLMConfig configures the optional personalization model. An empty ApiKey
// disables personalization entirely.
type LLMConfig struct {
	URL            string `mapstructure:"url"`
	Model          string `mapstructure:"model"`
	ApiKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// AlertsConfig holds job-alert pipeline knobs.
type AlertsConfig struct {
	// PortalBaseURL is prefixed to per-job links inside alert emails.
	PortalBaseURL string `mapstructure:"portal_base_url"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaViewConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
