package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePayloads() []SourcePayload {
	return []SourcePayload{
		{
			Source: "机器之心",
			Records: []RawRecord{
				RSSRecord{Title: "DeepSeek 开源新模型", Link: "https://a.com/deepseek?utm_source=rss", PubDate: "Mon, 02 Feb 2026 08:00:00 +0000", Description: "DeepSeek 今日开源"},
				RSSRecord{Title: "", Link: ""}, // 坏记录
				RSSRecord{Title: "OpenAI 发布 GPT-5", Link: "https://a.com/gpt5"},
			},
		},
		{
			Source: "GNews",
			Records: []RawRecord{
				APIRecord{Title: "DeepSeek 开源新模型", URL: "https://a.com/deepseek/", PublishedAt: "2026-02-02T09:00:00Z", SourceName: "GNews/新浪科技"},
			},
		},
	}
}

func TestPipelineRun(t *testing.T) {
	p := New([]string{"DeepSeek"})

	items, summary, err := p.Run(samplePayloads())
	assert.NoError(t, err)

	assert.Equal(t, 4, summary.FetchedCount)
	assert.Equal(t, 3, summary.NormalizedCount)
	assert.Equal(t, 1, summary.RejectedCount, "空标题空链接的记录被拒绝")
	assert.Equal(t, 2, summary.DedupedCount, "跨源同链接合并为一条")
	assert.Equal(t, 1, summary.DuplicatesRemoved)
	assert.Equal(t, 1, summary.FilteredCount)
	assert.Equal(t, 1, summary.ExcludedCount)

	assert.Len(t, items, 1)
	assert.Equal(t, "https://a.com/deepseek", items[0].URL)
	assert.Equal(t, "机器之心", items[0].Source, "保留发布时间更早的代表")
	assert.Equal(t, []string{"DeepSeek"}, items[0].TopicsMatched)
}

func TestPipelineRunDeterministic(t *testing.T) {
	p := New([]string{"DeepSeek", "GPT"})

	first, firstSummary, err := p.Run(samplePayloads())
	assert.NoError(t, err)
	second, secondSummary, err := p.Run(samplePayloads())
	assert.NoError(t, err)

	// 相同输入的两次运行，输出内容与顺序完全一致
	assert.Equal(t, first, second)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestPipelineRunEmptyInput(t *testing.T) {
	p := New([]string{"DeepSeek"})

	t.Run("全部源为空载荷", func(t *testing.T) {
		items, summary, err := p.Run([]SourcePayload{
			{Source: "机器之心"},
			{Source: "GNews"},
		})
		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, summary.FilteredCount)
	})

	t.Run("空载荷列表", func(t *testing.T) {
		items, summary, err := p.Run([]SourcePayload{})
		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.Zero(t, summary.FetchedCount)
	})

	t.Run("载荷容器缺失属于调用方错误", func(t *testing.T) {
		_, _, err := p.Run(nil)
		assert.Error(t, err)
	})
}

func TestPipelinePartialResult(t *testing.T) {
	p := New([]string{"DeepSeek"})

	// 一个源全是坏记录时，其余源照常产出
	items, summary, err := p.Run([]SourcePayload{
		{Source: "坏源", Records: []RawRecord{
			RSSRecord{}, RSSRecord{Title: "  "},
		}},
		{Source: "GNews", Records: []RawRecord{
			APIRecord{Title: "DeepSeek 最新进展", URL: "https://a.com/x", PublishedAt: "2026-02-02T09:00:00Z"},
		}},
	})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, summary.RejectedCount)
	assert.Equal(t, 1, summary.FilteredCount)
}
