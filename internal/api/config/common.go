package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Billing  BillingConfig  `mapstructure:"billing"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	ShareURL string `mapstructure:"share_url"` // 故事分享链接前缀
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type LLMConfig struct {
	URL       string `mapstructure:"url"`
	TextModel string `mapstructure:"text_model"`
	ApiKey    string `mapstructure:"api_key"`
}

// BillingConfig 支付网关配置
type BillingConfig struct {
	CheckoutURL string `mapstructure:"checkout_url"`
	ApiKey      string `mapstructure:"api_key"`
	PriceID     string `mapstructure:"price_id"`
	SuccessURL  string `mapstructure:"success_url"`
	CancelURL   string `mapstructure:"cancel_url"`
}

// LimitsConfig 业务限额
type LimitsConfig struct {
	FreeDailyStories int `mapstructure:"free_daily_stories"`
	DailyFeedShares  int `mapstructure:"daily_feed_shares"`
	RequestWindowMs  int `mapstructure:"request_window_ms"`
}
