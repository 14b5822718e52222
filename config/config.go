package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Feed       FeedConfig       `yaml:"feed"`
	Relevance  RelevanceConfig  `yaml:"relevance"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Scanner    ScannerConfig    `yaml:"scanner"`
	API        APIConfig        `yaml:"api"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeedConfig 는 공식 관보(BOE) 피드 수집 설정이다.
type FeedConfig struct {
	URL    string `yaml:"url"`
	Source string `yaml:"source"`
	// Limit 는 한 번의 스캔에서 읽을 최대 항목 수이다.
	Limit           int           `yaml:"limit"`
	Timeout         time.Duration `yaml:"timeout"`
	SummaryMaxRunes int           `yaml:"summary_max_runes"`
}

type RelevanceConfig struct {
	Keywords []string `yaml:"keywords"`
	// MatchSummary 가 true 이면 제목뿐 아니라 요약문도 키워드 검사 대상에 포함한다.
	MatchSummary bool `yaml:"match_summary"`
}

// SummarizerConfig 는 영향 분석용 LLM 백엔드 설정이다.
// Backends 의 순서가 곧 호출 우선순위이며, 자격 증명이 없는 백엔드는 기동 시점에 제외된다.
type SummarizerConfig struct {
	Backends         []string           `yaml:"backends"`
	Timeout          time.Duration      `yaml:"timeout"`
	MaxTokens        int                `yaml:"max_tokens"`
	Temperature      float64            `yaml:"temperature"`
	HuggingFaceURL   string             `yaml:"huggingface_url"`
	HuggingFaceModel string             `yaml:"huggingface_model"`
	OpenRouterURL    string             `yaml:"openrouter_url"`
	OpenRouterModel  string             `yaml:"openrouter_model"`
	GeminiModel      string             `yaml:"gemini_model"`
	AnthropicModel   string             `yaml:"anthropic_model"`
	Quota            SummaryQuotaConfig `yaml:"quota"`
}

// SummaryQuotaConfig 는 요약용 LLM 호출에 대한 속도/일일 한도를 정의한다.
type SummaryQuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type SchedulerConfig struct {
	// DailyAt 는 "HH:MM" 형식의 일일 실행 시각이다.
	DailyAt    string `yaml:"daily_at"`
	Timezone   string `yaml:"timezone"`
	RunOnStart bool   `yaml:"run_on_start"`
}

type ScannerConfig struct {
	DisplayLimit int `yaml:"display_limit"`
}

type APIConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Secrets 는 환경변수로만 주입되는 자격 증명 모음이다.
// 값이 비어 있어도 기동은 실패하지 않으며, 해당 백엔드만 비활성화된다.
type Secrets struct {
	HuggingFaceToken string
	OpenRouterAPIKey string
	GeminiAPIKey     string
	AnthropicAPIKey  string
	KafkaBrokers     string
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
}

// Load 는 주어진 경로의 YAML 설정을 읽고 비어 있는 값을 기본값으로 채운다.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// LoadSecrets 는 프로세스 환경변수에서 자격 증명을 읽는다.
func LoadSecrets() Secrets {
	return Secrets{
		HuggingFaceToken: strings.TrimSpace(os.Getenv("HUGGINGFACE_TOKEN")),
		OpenRouterAPIKey: strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AnthropicAPIKey:  strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		KafkaBrokers:     strings.TrimSpace(os.Getenv("KAFKA_BOOTSTRAP_SERVERS")),
	}
}

// Defaults 는 설정 파일 없이도 파이프라인이 동작하도록 모든 기본값이 채워진 설정을 반환한다.
func Defaults() AppConfig {
	var c AppConfig
	c.ApplyDefaults()
	return c
}

func (c *AppConfig) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Feed.URL == "" {
		c.Feed.URL = "https://www.boe.es/rss/boe.php"
	}
	if c.Feed.Source == "" {
		c.Feed.Source = "BOE"
	}
	if c.Feed.Limit <= 0 {
		c.Feed.Limit = 15
	}
	if c.Feed.Timeout <= 0 {
		c.Feed.Timeout = 10 * time.Second
	}
	if c.Feed.SummaryMaxRunes <= 0 {
		c.Feed.SummaryMaxRunes = 300
	}

	s := &c.Summarizer
	if len(s.Backends) == 0 {
		s.Backends = []string{"huggingface", "openrouter", "gemini", "anthropic"}
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MaxTokens <= 0 {
		s.MaxTokens = 800
	}
	if s.Temperature <= 0 {
		s.Temperature = 0.7
	}
	if s.HuggingFaceURL == "" {
		s.HuggingFaceURL = "https://api-inference.huggingface.co/models"
	}
	if s.HuggingFaceModel == "" {
		s.HuggingFaceModel = "mistralai/Mistral-7B-Instruct-v0.3"
	}
	if s.OpenRouterURL == "" {
		s.OpenRouterURL = "https://openrouter.ai/api/v1/"
	}
	if s.OpenRouterModel == "" {
		s.OpenRouterModel = "meta-llama/llama-3.1-8b-instruct:free"
	}
	if s.GeminiModel == "" {
		s.GeminiModel = "gemini-2.0-flash"
	}
	if s.AnthropicModel == "" {
		s.AnthropicModel = "claude-3-5-haiku-latest"
	}

	if c.Scheduler.DailyAt == "" {
		c.Scheduler.DailyAt = "09:00"
	}
	if c.Scheduler.Timezone == "" {
		c.Scheduler.Timezone = "Europe/Madrid"
	}

	if c.Scanner.DisplayLimit <= 0 {
		c.Scanner.DisplayLimit = 10
	}

	if c.API.Addr == "" {
		c.API.Addr = ":8080"
	}
	if len(c.API.AllowedOrigins) == 0 {
		c.API.AllowedOrigins = []string{"*"}
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
