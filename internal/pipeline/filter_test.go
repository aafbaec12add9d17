package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelevanceFilter(t *testing.T) {
	t.Run("只保留命中关键词的条目", func(t *testing.T) {
		f := NewRelevanceFilter([]string{"DeepSeek"})
		kept, excluded := f.Filter([]*NewsItem{
			{Title: "DeepSeek 开源新模型", URL: "https://a.com/1"},
			{Title: "OpenAI 发布 GPT-5", URL: "https://b.com/2"},
		})
		assert.Len(t, kept, 1)
		assert.Equal(t, 1, excluded)
		assert.Equal(t, "DeepSeek 开源新模型", kept[0].Title)
		assert.Equal(t, []string{"DeepSeek"}, kept[0].TopicsMatched)
	})

	t.Run("大小写不敏感", func(t *testing.T) {
		f := NewRelevanceFilter([]string{"deepseek"})
		kept, _ := f.Filter([]*NewsItem{
			{Title: "DEEPSEEK 新进展", URL: "https://a.com/1"},
		})
		assert.Len(t, kept, 1)
		assert.Equal(t, []string{"deepseek"}, kept[0].TopicsMatched)
	})

	t.Run("摘要命中也算匹配", func(t *testing.T) {
		f := NewRelevanceFilter([]string{"Kimi"})
		kept, _ := f.Filter([]*NewsItem{
			{Title: "月之暗面发布新功能", Summary: "Kimi 助手全面升级", URL: "https://a.com/1"},
		})
		assert.Len(t, kept, 1)
	})

	t.Run("记录全部命中的关键词且保持配置顺序", func(t *testing.T) {
		f := NewRelevanceFilter([]string{"智谱", "GLM", "DeepSeek"})
		kept, _ := f.Filter([]*NewsItem{
			{Title: "智谱发布 GLM-5", URL: "https://a.com/1"},
		})
		assert.Len(t, kept, 1)
		assert.Equal(t, []string{"智谱", "GLM"}, kept[0].TopicsMatched)
	})

	t.Run("全部被排除是合法结果", func(t *testing.T) {
		f := NewRelevanceFilter([]string{"DeepSeek"})
		kept, excluded := f.Filter([]*NewsItem{
			{Title: "无关资讯一", URL: "https://a.com/1"},
			{Title: "无关资讯二", URL: "https://b.com/2"},
		})
		assert.Empty(t, kept)
		assert.Equal(t, 2, excluded)
	})

	t.Run("未配置关键词时保留全部", func(t *testing.T) {
		f := NewRelevanceFilter(nil)
		items := []*NewsItem{
			{Title: "任意资讯", URL: "https://a.com/1"},
		}
		kept, excluded := f.Filter(items)
		assert.Equal(t, items, kept)
		assert.Zero(t, excluded)
		assert.Empty(t, kept[0].TopicsMatched)
	})
}

func TestRecencyFilter(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	newFilter := func(maxAge time.Duration) *RecencyFilter {
		f := NewRecencyFilter(maxAge)
		f.now = func() time.Time { return now }
		return f
	}

	recent := now.Add(-2 * time.Hour)
	stale := now.Add(-30 * time.Hour)

	t.Run("过滤窗口外的条目", func(t *testing.T) {
		kept, dropped := newFilter(24*time.Hour).Filter([]*NewsItem{
			{Title: "新条目", URL: "https://a.com/1", PublishedAt: &recent},
			{Title: "旧条目", URL: "https://b.com/2", PublishedAt: &stale},
		})
		assert.Len(t, kept, 1)
		assert.Equal(t, 1, dropped)
		assert.Equal(t, "新条目", kept[0].Title)
	})

	t.Run("无发布时间的条目保留", func(t *testing.T) {
		kept, dropped := newFilter(24*time.Hour).Filter([]*NewsItem{
			{Title: "无时间条目", URL: "https://a.com/1"},
		})
		assert.Len(t, kept, 1)
		assert.Zero(t, dropped)
	})

	t.Run("窗口为0时不过滤", func(t *testing.T) {
		kept, dropped := newFilter(0).Filter([]*NewsItem{
			{Title: "旧条目", URL: "https://a.com/1", PublishedAt: &stale},
		})
		assert.Len(t, kept, 1)
		assert.Zero(t, dropped)
	})
}
