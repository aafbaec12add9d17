package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestTopicListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "列表形式",
			yaml: `Topics: ["DeepSeek", "Kimi", "智谱"]`,
			want: []string{"DeepSeek", "Kimi", "智谱"},
		},
		{
			name: "逗号分隔字符串",
			yaml: `Topics: "DeepSeek, Kimi,智谱"`,
			want: []string{"DeepSeek", "Kimi", "智谱"},
		},
		{
			name: "忽略空白项",
			yaml: `Topics: "DeepSeek,, , Kimi"`,
			want: []string{"DeepSeek", "Kimi"},
		},
		{
			name: "空字符串",
			yaml: `Topics: ""`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			err := yaml.Unmarshal([]byte(tt.yaml), &c)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, []string(c.Topics))
		})
	}
}

func TestValidate(t *testing.T) {
	enabled := true
	disabled := false

	base := func() *Config {
		return &Config{
			RSSSources: []RSSSource{
				{Name: "机器之心", URL: "https://www.jiqizhixin.com/rss", Enabled: &enabled},
			},
			Tracker: Tracker{Cron: "0 23 * * *"},
		}
	}

	t.Run("合法配置", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("无可用数据源", func(t *testing.T) {
		c := base()
		c.RSSSources[0].Enabled = &disabled
		err := c.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "至少需要启用一个")
	})

	t.Run("仅配置GNews也可用", func(t *testing.T) {
		c := base()
		c.RSSSources = nil
		c.GNews.APIKey = "test-key"
		assert.NoError(t, c.Validate())
	})

	t.Run("RSS源缺少URL", func(t *testing.T) {
		c := base()
		c.RSSSources[0].URL = ""
		assert.Error(t, c.Validate())
	})

	t.Run("LLM配置不完整", func(t *testing.T) {
		c := base()
		c.LLM = LLM{APIKey: "key", BaseURL: "https://open.bigmodel.cn/api/paas/v4", Model: ""}
		assert.Error(t, c.Validate())
	})

	t.Run("缺少Cron", func(t *testing.T) {
		c := base()
		c.Tracker.Cron = ""
		assert.Error(t, c.Validate())
	})
}

func TestRSSSourceIsEnabled(t *testing.T) {
	enabled := true
	disabled := false

	assert.True(t, (&RSSSource{}).IsEnabled(), "未配置时默认启用")
	assert.True(t, (&RSSSource{Enabled: &enabled}).IsEnabled())
	assert.False(t, (&RSSSource{Enabled: &disabled}).IsEnabled())
}
