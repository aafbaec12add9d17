package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "去除utm参数和末尾斜杠",
			raw:  "https://example.com/news/glm-5/?utm_source=rss&utm_medium=feed",
			want: "https://example.com/news/glm-5",
		},
		{
			name: "保留正常查询参数",
			raw:  "https://example.com/article?id=42&utm_campaign=daily",
			want: "https://example.com/article?id=42",
		},
		{
			name: "主机名小写",
			raw:  "https://Example.COM/News",
			want: "https://example.com/News",
		},
		{
			name: "去除默认端口",
			raw:  "https://example.com:443/a",
			want: "https://example.com/a",
		},
		{
			name: "去除http默认端口",
			raw:  "http://example.com:80/a",
			want: "http://example.com/a",
		},
		{
			name: "去除已知跟踪参数",
			raw:  "https://example.com/a?spm=123&fbclid=xyz&page=2",
			want: "https://example.com/a?page=2",
		},
		{
			name: "去除fragment",
			raw:  "https://example.com/a#section",
			want: "https://example.com/a",
		},
		{
			name: "无法解析时仅去除末尾斜杠",
			raw:  "not-a-url/",
			want: "not-a-url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.raw))
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Run("ISO-8601优先", func(t *testing.T) {
		got := ParseTime("2026-02-01T08:30:00+08:00")
		assert.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 30, 0, 0, time.UTC), *got)
	})

	t.Run("RFC-822回退", func(t *testing.T) {
		got := ParseTime("Mon, 02 Feb 2026 10:00:00 +0800")
		assert.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 2, 2, 2, 0, 0, 0, time.UTC), *got)
	})

	t.Run("纯日期", func(t *testing.T) {
		got := ParseTime("2026-02-01")
		assert.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("无法解析返回nil而非错误", func(t *testing.T) {
		assert.Nil(t, ParseTime("昨天下午"))
		assert.Nil(t, ParseTime(""))
		assert.Nil(t, ParseTime("   "))
	})
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"去除HTML标签", "<p>智谱发布<b>新模型</b></p>", "智谱发布新模型"},
		{"解码HTML实体", "A &amp; B &lt;test&gt;", "A & B <test>"},
		{"合并多余空白", "  多个\n\n 空白\t字符  ", "多个 空白 字符"},
		{"空字符串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.text))
		})
	}
}

func TestNormalizerRejection(t *testing.T) {
	n := NewNormalizer()

	t.Run("标题和链接均为空时拒绝并计数", func(t *testing.T) {
		items, rejected := n.Normalize("机器之心", []RawRecord{
			RSSRecord{Title: "", Link: ""},
			RSSRecord{Title: "正常条目", Link: "https://example.com/a", PubDate: "Mon, 02 Feb 2026 10:00:00 +0800"},
		})
		assert.Len(t, items, 1)
		assert.Equal(t, 1, rejected)
		assert.Equal(t, "正常条目", items[0].Title)
	})

	t.Run("缺少链接时拒绝", func(t *testing.T) {
		items, rejected := n.Normalize("36Kr", []RawRecord{
			RSSRecord{Title: "只有标题"},
		})
		assert.Empty(t, items)
		assert.Equal(t, 1, rejected)
	})

	t.Run("日期无法解析不算拒绝", func(t *testing.T) {
		items, rejected := n.Normalize("36Kr", []RawRecord{
			RSSRecord{Title: "标题", Link: "https://example.com/b", PubDate: "???"},
		})
		assert.Len(t, items, 1)
		assert.Zero(t, rejected)
		assert.Nil(t, items[0].PublishedAt)
	})
}

func TestNormalizerAPIRecord(t *testing.T) {
	n := NewNormalizer()

	items, rejected := n.Normalize("GNews", []RawRecord{
		APIRecord{
			Title:       "DeepSeek 开源新模型",
			URL:         "https://news.example.com/deepseek/?utm_source=gnews",
			PublishedAt: "2026-02-01T12:00:00Z",
			Description: "<p>DeepSeek 今日宣布开源</p>",
			SourceName:  "GNews/新浪科技",
		},
	})
	assert.Zero(t, rejected)
	assert.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "https://news.example.com/deepseek", item.URL)
	assert.Equal(t, "GNews/新浪科技", item.Source, "记录级来源优先于载荷级来源")
	assert.Equal(t, "DeepSeek 今日宣布开源", item.Summary)
	assert.Equal(t, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), *item.PublishedAt)
	assert.Empty(t, item.TopicsMatched, "过滤前 TopicsMatched 为空")
}

func TestNormalizerSummaryTruncation(t *testing.T) {
	n := NewNormalizer()

	long := make([]rune, 0, 600)
	for i := 0; i < 600; i++ {
		long = append(long, '长')
	}
	items, _ := n.Normalize("机器之心", []RawRecord{
		RSSRecord{Title: "标题", Link: "https://example.com/c", Description: string(long)},
	})
	assert.Len(t, items, 1)
	assert.Equal(t, maxSummaryRunes, len([]rune(items[0].Summary)))
}
