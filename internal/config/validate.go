package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}
	if err := c.Battery.validate(); err != nil {
		return fmt.Errorf("battery: %w", err)
	}
	if err := c.Reward.validate(); err != nil {
		return fmt.Errorf("reward: %w", err)
	}
	return nil
}

func (p *PracticeConfig) validate() error {
	if p.MaxQuestions <= 0 {
		return fmt.Errorf("max_questions must be > 0 (got %d)", p.MaxQuestions)
	}
	if p.DefaultQuestionCount <= 0 || p.DefaultQuestionCount > p.MaxQuestions {
		return fmt.Errorf("default_question_count must be in 1..%d (got %d)", p.MaxQuestions, p.DefaultQuestionCount)
	}
	if p.CountDebounce <= 0 {
		return fmt.Errorf("count_debounce must be > 0 (got %v)", p.CountDebounce)
	}
	if p.SubscriberCacheTTL <= 0 {
		return fmt.Errorf("subscriber_cache_ttl must be > 0 (got %v)", p.SubscriberCacheTTL)
	}
	return nil
}

func (b *BatteryConfig) validate() error {
	if b.ProgramID == "" {
		return fmt.Errorf("program_id must not be empty")
	}
	if b.SessionCost < 0 || b.QuestionCost < 0 {
		return fmt.Errorf("costs must be >= 0 (got session=%d question=%d)", b.SessionCost, b.QuestionCost)
	}
	return nil
}

func (r *RewardConfig) validate() error {
	if r.ZenXP < 0 || r.ZenCoins < 0 || r.HardXP < 0 || r.HardCoins < 0 {
		return fmt.Errorf("fallback rewards must be >= 0")
	}
	return nil
}
