package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo-data settings.
type Config struct {
	Users           int     `yaml:"users"             env:"SEEDER_USERS"             env-default:"20"`
	FollowsPerUser  int     `yaml:"follows_per_user"  env:"SEEDER_FOLLOWS_PER_USER"  env-default:"5"`
	TweetsPerUser   int     `yaml:"tweets_per_user"   env:"SEEDER_TWEETS_PER_USER"   env-default:"3"`
	RepliesPerTweet int     `yaml:"replies_per_tweet" env:"SEEDER_REPLIES_PER_TWEET" env-default:"1"`
	LikeRatio       float64 `yaml:"like_ratio"        env:"SEEDER_LIKE_RATIO"        env-default:"0.3"`
	Password        string  `yaml:"password"          env:"SEEDER_PASSWORD"          env-default:"password123"`
	EmailDomain     string  `yaml:"email_domain"      env:"SEEDER_EMAIL_DOMAIN"      env-default:"demo.tweeter.local"`
	Concurrency     int     `yaml:"concurrency"       env:"SEEDER_CONCURRENCY"       env-default:"8"`
	RandSeed        uint64  `yaml:"rand_seed"         env:"SEEDER_RAND_SEED"         env-default:"1"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the counts make sense.
func (c Config) Validate() error {
	switch {
	case c.Users < 1:
		return fmt.Errorf("seeder config: users must be at least 1")
	case c.FollowsPerUser < 0 || c.TweetsPerUser < 0 || c.RepliesPerTweet < 0:
		return fmt.Errorf("seeder config: counts must not be negative")
	case c.LikeRatio < 0 || c.LikeRatio > 1:
		return fmt.Errorf("seeder config: like_ratio must be within [0, 1]")
	case c.Concurrency < 1:
		return fmt.Errorf("seeder config: concurrency must be at least 1")
	}
	return nil
}
