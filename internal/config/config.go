package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/walkinmyshoes/wims/internal/empathy"
)

// Config is the top-level wims configuration.
type Config struct {
	UserID             string  `mapstructure:"user_id"`
	UserName           string  `mapstructure:"user_name"`
	TargetScore        float64 `mapstructure:"target_score"`
	TotalTasks         int     `mapstructure:"total_tasks"`
	SnapshotKeep       int     `mapstructure:"snapshot_keep"`
	ClampKnowledgeGain bool    `mapstructure:"clamp_knowledge_gain"`
	Weights            Weights `mapstructure:"weights"`
}

// Weights defines the empathy score dimension weights.
type Weights struct {
	Knowledge   float64 `mapstructure:"knowledge"`
	Engagement  float64 `mapstructure:"engagement"`
	Retries     float64 `mapstructure:"retries"`
	HelpSeeking float64 `mapstructure:"help_seeking"`
	Resilience  float64 `mapstructure:"resilience"`
}

// Scoring converts the file-level config into a calculator config.
func (c *Config) Scoring() empathy.Config {
	return empathy.Config{
		ClampKnowledgeGain: c.ClampKnowledgeGain,
		Weights: empathy.Weights{
			Knowledge:   c.Weights.Knowledge,
			Engagement:  c.Weights.Engagement,
			Retries:     c.Weights.Retries,
			HelpSeeking: c.Weights.HelpSeeking,
			Resilience:  c.Weights.Resilience,
		},
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// WIMS_USER_NAME, WIMS_TARGET_SCORE, etc. override file values.
	v.SetEnvPrefix("WIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("user_id", DefaultUserID)
	v.SetDefault("user_name", DefaultUserName)
	v.SetDefault("target_score", DefaultTargetScore)
	v.SetDefault("total_tasks", DefaultTotalTasks)
	v.SetDefault("snapshot_keep", DefaultSnapshotKeep)
	v.SetDefault("clamp_knowledge_gain", false)
	v.SetDefault("weights.knowledge", DefaultWeights.Knowledge)
	v.SetDefault("weights.engagement", DefaultWeights.Engagement)
	v.SetDefault("weights.retries", DefaultWeights.Retries)
	v.SetDefault("weights.help_seeking", DefaultWeights.HelpSeeking)
	v.SetDefault("weights.resilience", DefaultWeights.Resilience)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
