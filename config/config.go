package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Stats       StatsConfig       `yaml:"stats"`
	Audio       AudioConfig       `yaml:"audio"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Speech      SpeechConfig      `yaml:"speech"`
	Match       MatchConfig       `yaml:"match"`
	Pushover    PushoverConfig    `yaml:"pushover"`
	Log         LogConfig         `yaml:"log"`
}

type StatsConfig struct {
	URL       string `yaml:"url"`
	TableID   string `yaml:"table_id"`
	Fetcher   string `yaml:"fetcher"`
	Cache     string `yaml:"cache"`
	CachePath string `yaml:"cache_path"`
	RedisURL  string `yaml:"redis_url"`
	RedisKey  string `yaml:"redis_key"`
	RedisTTL  string `yaml:"redis_ttl"`
}

type AudioConfig struct {
	Source     string `yaml:"source"`
	Path       string `yaml:"path"`
	InputFile  string `yaml:"input_file"`
	Duration   string `yaml:"duration"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
}

type TranscriberConfig struct {
	Provider  string `yaml:"provider"`
	ModelPath string `yaml:"model_path"`
	Language  string `yaml:"language"`
}

type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`
	TTSModel string `yaml:"tts_model"`
	TTSVoice string `yaml:"tts_voice"`
}

type SpeechConfig struct {
	Provider string `yaml:"provider"`
	Command  string `yaml:"command"`
}

type MatchConfig struct {
	Scorer    string `yaml:"scorer"`
	Threshold *int   `yaml:"threshold"`
}

type PushoverConfig struct {
	Token   string `yaml:"token"`
	UserKey string `yaml:"user_key"`
	Enabled bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML file at path, expanding ${VAR} references from the
// environment. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// ThresholdOrDefault returns the configured match threshold, 80 when unset.
func (m MatchConfig) ThresholdOrDefault() int {
	if m.Threshold == nil {
		return 80
	}
	return *m.Threshold
}

func (c *Config) setDefaults() {
	if c.Stats.URL == "" {
		c.Stats.URL = "https://www.basketball-reference.com/leagues/NBA_2025_per_game.html"
	}
	if c.Stats.TableID == "" {
		c.Stats.TableID = "per_game_stats"
	}
	if c.Stats.Fetcher == "" {
		c.Stats.Fetcher = "http"
	}
	if c.Stats.Cache == "" {
		c.Stats.Cache = "file"
	}
	if c.Stats.CachePath == "" {
		c.Stats.CachePath = "nba_stats.csv"
	}
	if c.Stats.RedisURL == "" {
		c.Stats.RedisURL = "redis://localhost:6379/0"
	}
	if c.Stats.RedisKey == "" {
		c.Stats.RedisKey = "nba:per_game_stats"
	}
	if c.Audio.Source == "" {
		c.Audio.Source = "microphone"
	}
	if c.Audio.Path == "" {
		c.Audio.Path = "player_name.wav"
	}
	if c.Audio.Duration == "" {
		c.Audio.Duration = "5s"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 44100
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Transcriber.Provider == "" {
		c.Transcriber.Provider = "openai"
	}
	if c.OpenAI.TTSModel == "" {
		c.OpenAI.TTSModel = "tts-1"
	}
	if c.OpenAI.TTSVoice == "" {
		c.OpenAI.TTSVoice = "alloy"
	}
	if c.Speech.Provider == "" {
		c.Speech.Provider = "command"
	}
	if c.Match.Scorer == "" {
		c.Match.Scorer = "token_sort"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
