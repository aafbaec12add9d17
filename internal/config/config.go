package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

// RSSSource 单个 RSS 源配置
type RSSSource struct {
	Name    string `yaml:"Name"`
	URL     string `yaml:"URL"`
	Enabled *bool  `yaml:"Enabled"` // 未配置时默认启用
}

// IsEnabled 源是否启用
func (s *RSSSource) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

type GNews struct {
	APIKey     string `yaml:"APIKey"`     // 为空则跳过 GNews 搜索
	Lang       string `yaml:"Lang"`       // 搜索语言，默认 zh
	MaxResults int    `yaml:"MaxResults"` // 每个关键词的最大结果数，免费版上限 10
}

type LLM struct {
	BaseURL   string `yaml:"BaseURL"` // 兼容 OpenAI API 的端点，如智谱开放平台
	APIKey    string `yaml:"APIKey"`  // 为空则跳过 AI 总结
	Model     string `yaml:"Model"`   // 如 glm-4-flash, deepseek-chat
	MaxTokens int    `yaml:"MaxTokens"`
}

type Feishu struct {
	WebhookURL string `yaml:"WebhookURL"` // 为空则跳过通知
	ReportURL  string `yaml:"ReportURL"`  // 日报在线链接（如 GitHub Pages）
}

type Report struct {
	OutputDir string `yaml:"OutputDir"` // 日报输出目录，默认 output
}

type Leaderboard struct {
	Enable  bool   `yaml:"Enable"`
	DataURL string `yaml:"DataURL"` // lmarena-history 的 scores.json 地址
	TopN    int    `yaml:"TopN"`    // 国产模型显示数量，默认 10
}

type Tracker struct {
	Cron          string `yaml:"Cron"`          // cron 表达式，如 "0 23 * * *"
	RecencyHours  int    `yaml:"RecencyHours"`  // 只保留最近 N 小时的文章，默认 24
	RetentionDays int    `yaml:"RetentionDays"` // 文章保留天数
	RetryTimes    int    `yaml:"RetryTimes"`    // 抓取/总结失败重试次数，默认 3
	RetryInterval int    `yaml:"RetryInterval"` // 重试间隔（秒），默认 60
}

// TopicList 搜索主题列表，兼容两种写法：
//
//	Topics: ["DeepSeek", "Kimi"]
//	Topics: "DeepSeek, Kimi"
//
// 在配置层归一化为有序字符串列表，下游只会看到规范形式。
type TopicList []string

func (t *TopicList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*t = normalizeTopics(items)
		return nil
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*t = normalizeTopics(strings.Split(s, ","))
		return nil
	default:
		return fmt.Errorf("Topics 必须是字符串列表或逗号分隔的字符串")
	}
}

func normalizeTopics(items []string) []string {
	topics := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			topics = append(topics, item)
		}
	}
	return topics
}

type Config struct {
	Sock5Proxy  Sock5Proxy  `yaml:"Sock5Proxy"`
	RSSSources  []RSSSource `yaml:"RSSSources"`
	Topics      TopicList   `yaml:"Topics"`
	GNews       GNews       `yaml:"GNews"`
	LLM         LLM         `yaml:"LLM"`
	Feishu      Feishu      `yaml:"Feishu"`
	Report      Report      `yaml:"Report"`
	Leaderboard Leaderboard `yaml:"Leaderboard"`
	Tracker     Tracker     `yaml:"Tracker"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证数据源：至少要有一个可用来源
	enabledRSS := 0
	for i := range c.RSSSources {
		src := &c.RSSSources[i]
		if !src.IsEnabled() {
			continue
		}
		if src.Name == "" {
			return fmt.Errorf("RSSSources[%d].Name 不能为空", i)
		}
		if src.URL == "" {
			return fmt.Errorf("RSSSources[%d].URL 不能为空", i)
		}
		enabledRSS++
	}
	if enabledRSS == 0 && c.GNews.APIKey == "" {
		return fmt.Errorf("至少需要启用一个 RSS 源或配置 GNews.APIKey")
	}

	// 验证 GNews
	if c.GNews.MaxResults < 0 {
		return fmt.Errorf("GNews.MaxResults 必须 >= 0")
	}

	// 验证 LLM（APIKey 为空时允许跳过 AI 总结）
	if c.LLM.APIKey != "" {
		if c.LLM.BaseURL == "" {
			return fmt.Errorf("LLM.BaseURL 不能为空")
		}
		if c.LLM.Model == "" {
			return fmt.Errorf("LLM.Model 不能为空")
		}
		if c.LLM.MaxTokens <= 0 {
			return fmt.Errorf("LLM.MaxTokens 必须大于 0")
		}
	}

	// 验证 Tracker
	if c.Tracker.Cron == "" {
		return fmt.Errorf("Tracker.Cron 不能为空")
	}
	if c.Tracker.RecencyHours < 0 {
		return fmt.Errorf("Tracker.RecencyHours 必须 >= 0")
	}
	if c.Tracker.RetentionDays < 0 {
		return fmt.Errorf("Tracker.RetentionDays 必须 >= 0")
	}
	if c.Tracker.RetryTimes < 0 {
		return fmt.Errorf("Tracker.RetryTimes 必须 >= 0")
	}
	if c.Tracker.RetryInterval < 0 {
		return fmt.Errorf("Tracker.RetryInterval 必须 >= 0")
	}

	if c.Leaderboard.TopN < 0 {
		return fmt.Errorf("Leaderboard.TopN 必须 >= 0")
	}

	return nil
}
