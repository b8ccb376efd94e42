package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Practice PracticeConfig `yaml:"practice"`
	Battery  BatteryConfig  `yaml:"battery"`
	Reward   RewardConfig   `yaml:"reward"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// PracticeConfig holds practice-engine settings.
type PracticeConfig struct {
	// MaxQuestions caps the question count of any single session.
	MaxQuestions int `yaml:"max_questions" env:"PRACTICE_MAX_QUESTIONS" env-default:"120"`
	// DefaultQuestionCount is used when the caller supplies no target.
	DefaultQuestionCount int `yaml:"default_question_count" env:"PRACTICE_DEFAULT_QUESTION_COUNT" env-default:"10"`
	// CountDebounce is the filter-edit inactivity window before the live
	// question-count estimate recomputes.
	CountDebounce time.Duration `yaml:"count_debounce" env:"PRACTICE_COUNT_DEBOUNCE" env-default:"300ms"`
	// SubscriberCacheTTL bounds how long an unlimited-access check is reused.
	SubscriberCacheTTL time.Duration `yaml:"subscriber_cache_ttl" env:"PRACTICE_SUBSCRIBER_CACHE_TTL" env-default:"5m"`
	// FallbackEnabled substitutes the built-in question set when free
	// practice resolution fails or yields nothing.
	FallbackEnabled bool `yaml:"fallback_enabled" env:"PRACTICE_FALLBACK_ENABLED" env-default:"true"`
}

// BatteryConfig holds allowance ("battery") settings.
type BatteryConfig struct {
	ProgramID    string `yaml:"program_id"    env:"BATTERY_PROGRAM_ID"    env-default:"concursos"`
	SessionCost  int    `yaml:"session_cost"  env:"BATTERY_SESSION_COST"  env-default:"1"`
	QuestionCost int    `yaml:"question_cost" env:"BATTERY_QUESTION_COST" env-default:"1"`
}

// RewardConfig holds the built-in fallback reward pair, used only when the
// gamification coefficients provider has not loaded.
type RewardConfig struct {
	ZenXP     int `yaml:"zen_xp"     env:"REWARD_ZEN_XP"     env-default:"5"`
	ZenCoins  int `yaml:"zen_coins"  env:"REWARD_ZEN_COINS"  env-default:"1"`
	HardXP    int `yaml:"hard_xp"    env:"REWARD_HARD_XP"    env-default:"10"`
	HardCoins int `yaml:"hard_coins" env:"REWARD_HARD_COINS" env-default:"2"`
}
