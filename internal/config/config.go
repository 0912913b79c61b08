package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Data     DataConfig     `yaml:"data"`
	Ollama   OllamaConfig   `yaml:"ollama"`
	LinkedIn LinkedInConfig `yaml:"linkedin"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Journey  JourneyConfig  `yaml:"journey"`
	Events   EventsConfig   `yaml:"events"`
	LogLevel string         `yaml:"log_level" validate:"oneof=debug info warn error"`
}

type DataConfig struct {
	Dir            string `yaml:"dir" validate:"required"`
	CurriculumFile string `yaml:"curriculum_file" validate:"required"`
	HistoryFile    string `yaml:"history_file" validate:"required"`
	StateFile      string `yaml:"state_file" validate:"required"`
	LogFile        string `yaml:"log_file"`
}

func (d DataConfig) CurriculumPath() string { return filepath.Join(d.Dir, d.CurriculumFile) }
func (d DataConfig) HistoryPath() string    { return filepath.Join(d.Dir, d.HistoryFile) }
func (d DataConfig) StatePath() string      { return filepath.Join(d.Dir, d.StateFile) }

func (d DataConfig) LogPath() string {
	if d.LogFile == "" {
		return ""
	}
	return filepath.Join(d.Dir, d.LogFile)
}

type OllamaConfig struct {
	BaseURL     string        `yaml:"base_url" validate:"required,url"`
	Model       string        `yaml:"model" validate:"required"`
	Temperature float64       `yaml:"temperature" validate:"gte=0,lte=2"`
	Timeout     time.Duration `yaml:"timeout"`
	Retry       RetryConfig   `yaml:"retry"`
}

// RetryConfig controls retries of rate-limited generation calls. The wait
// before retry n is BackoffStep*n.
type RetryConfig struct {
	MaxRetries  int           `yaml:"max_retries" validate:"gte=0"`
	BackoffStep time.Duration `yaml:"backoff_step"`
}

type LinkedInConfig struct {
	BaseURL     string        `yaml:"base_url" validate:"required,url"`
	AccessToken string        `yaml:"access_token"`
	PersonID    string        `yaml:"person_id" validate:"required_with=AccessToken"`
	Visibility  string        `yaml:"visibility" validate:"oneof=PUBLIC CONNECTIONS"`
	Timeout     time.Duration `yaml:"timeout"`
}

// HasCredentials reports whether real posting is possible.
func (l LinkedInConfig) HasCredentials() bool {
	return l.AccessToken != ""
}

type ScheduleConfig struct {
	PostingTime string `yaml:"posting_time" validate:"datetime=15:04"`
	Timezone    string `yaml:"timezone" validate:"timezone"`
	AutoApprove bool   `yaml:"auto_approve"`
}

// Location resolves Timezone, falling back to local time.
func (s ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

type JourneyConfig struct {
	TotalDays        int    `yaml:"total_days" validate:"min=1"`
	MinPostLength    int    `yaml:"min_post_length" validate:"min=0"`
	MaxPostLength    int    `yaml:"max_post_length" validate:"gtfield=MinPostLength"`
	HashtagCount     int    `yaml:"hashtag_count" validate:"min=1"`
	MaxRegenerations int    `yaml:"max_regenerations" validate:"min=0"`
	OnUnrecognized   string `yaml:"on_unrecognized" validate:"oneof=approve reprompt"`
}

type EventsConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (e EventsConfig) Enabled() bool {
	return e.URL != ""
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment references in data and decodes it.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := seeded()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// seeded holds defaults for fields where an explicit zero is a valid
// setting; yaml leaves them alone unless the file names them.
func seeded() Config {
	return Config{
		Ollama: OllamaConfig{
			Temperature: 0.8,
			Retry:       RetryConfig{MaxRetries: 3},
		},
		Journey: JourneyConfig{MaxRegenerations: 5},
	}
}

func (c *Config) setDefaults() {
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Data.CurriculumFile == "" {
		c.Data.CurriculumFile = "curriculum.json"
	}
	if c.Data.HistoryFile == "" {
		c.Data.HistoryFile = "posted_history.json"
	}
	if c.Data.StateFile == "" {
		c.Data.StateFile = "agent_state.json"
	}
	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "llama3.2"
	}
	if c.Ollama.Timeout == 0 {
		c.Ollama.Timeout = 5 * time.Minute
	}
	if c.Ollama.Retry.BackoffStep == 0 {
		c.Ollama.Retry.BackoffStep = 30 * time.Second
	}
	if c.LinkedIn.BaseURL == "" {
		c.LinkedIn.BaseURL = "https://api.linkedin.com/v2"
	}
	if c.LinkedIn.Visibility == "" {
		c.LinkedIn.Visibility = "PUBLIC"
	}
	if c.LinkedIn.Timeout == 0 {
		c.LinkedIn.Timeout = 30 * time.Second
	}
	if c.Schedule.PostingTime == "" {
		c.Schedule.PostingTime = "10:00"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "Asia/Kolkata"
	}
	if c.Journey.TotalDays == 0 {
		c.Journey.TotalDays = 90
	}
	if c.Journey.MinPostLength == 0 {
		c.Journey.MinPostLength = 500
	}
	if c.Journey.MaxPostLength == 0 {
		c.Journey.MaxPostLength = 3000
	}
	if c.Journey.HashtagCount == 0 {
		c.Journey.HashtagCount = 5
	}
	if c.Journey.OnUnrecognized == "" {
		c.Journey.OnUnrecognized = "approve"
	}
	if c.Events.Exchange == "" {
		c.Events.Exchange = "journey_poster"
	}
	if c.Events.RoutingKey == "" {
		c.Events.RoutingKey = "posts"
	}
	if c.Events.QueueName == "" {
		c.Events.QueueName = "journey_posts"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
