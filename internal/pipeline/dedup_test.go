package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	utc := t.UTC()
	return &utc
}

func newDedup() *Deduplicator {
	return NewDeduplicator(DuplicateTokenOverlapThreshold)
}

func TestThresholdConstant(t *testing.T) {
	// 0.8 是固定策略常量，不是可调参数
	assert.Equal(t, 0.8, DuplicateTokenOverlapThreshold)
}

func TestDeduplicateByURL(t *testing.T) {
	// 仅跟踪参数和末尾斜杠不同的链接归一化后指向同一条目
	n := NewNormalizer()
	items, _ := n.Normalize("机器之心", []RawRecord{
		RSSRecord{Title: "智谱发布 GLM-5", Link: "https://example.com/glm5?utm_source=x"},
	})
	more, _ := n.Normalize("36Kr", []RawRecord{
		RSSRecord{Title: "智谱正式发布 GLM-5 模型", Link: "https://example.com/glm5/"},
	})
	items = append(items, more...)
	assert.Equal(t, items[0].URL, items[1].URL)

	out := newDedup().Deduplicate(items)
	assert.Len(t, out, 1)
	assert.Equal(t, "机器之心", out[0].Source, "保留先出现的条目")
}

func TestDeduplicateBySimilarTitle(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		sameCluster bool
	}{
		{
			name:        "短标题是长标题的子串",
			a:           "智谱发布新一代大模型 GLM-5",
			b:           "智谱 发布 新一代 大模型 GLM-5，性能大幅提升",
			sameCluster: true,
		},
		{
			name:        "词集重合率恰好达到0.8",
			a:           "阿里 通义 千问 发布 新版",
			b:           "通义 千问 新版 发布 阿里云",
			sameCluster: true,
		},
		{
			name:        "词集重合率0.75不足",
			a:           "Qwen3 模型 开源 发布",
			b:           "Qwen3 模型 开源 上线",
			sameCluster: false,
		},
		{
			name:        "不同事件",
			a:           "智谱发布新模型",
			b:           "Kimi发布新功能",
			sameCluster: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newDedup().Deduplicate([]*NewsItem{
				{Title: tt.a, URL: "https://a.example.com/1"},
				{Title: tt.b, URL: "https://b.example.com/2"},
			})
			if tt.sameCluster {
				assert.Len(t, out, 1)
			} else {
				assert.Len(t, out, 2)
			}
		})
	}
}

func TestRepresentativeSelection(t *testing.T) {
	t.Run("发布时间最早者为代表", func(t *testing.T) {
		out := newDedup().Deduplicate([]*NewsItem{
			{Title: "智谱发布 GLM-5", URL: "https://a.com/1", Source: "36Kr", PublishedAt: ts("2026-02-01T10:00:00Z"), Summary: "晚"},
			{Title: "智谱发布 GLM-5 模型", URL: "https://b.com/2", Source: "机器之心", PublishedAt: ts("2026-02-01T08:00:00Z"), Summary: "早"},
		})
		assert.Len(t, out, 1)
		assert.Equal(t, "机器之心", out[0].Source)
		assert.Equal(t, "早", out[0].Summary)
	})

	t.Run("无时间排最后", func(t *testing.T) {
		out := newDedup().Deduplicate([]*NewsItem{
			{Title: "智谱发布 GLM-5", URL: "https://a.com/1", Source: "A"},
			{Title: "智谱发布 GLM-5 模型", URL: "https://b.com/2", Source: "B", PublishedAt: ts("2026-02-01T10:00:00Z")},
		})
		assert.Len(t, out, 1)
		assert.Equal(t, "B", out[0].Source)
	})

	t.Run("均无时间取先出现者", func(t *testing.T) {
		out := newDedup().Deduplicate([]*NewsItem{
			{Title: "智谱发布 GLM-5", URL: "https://a.com/1", Source: "A"},
			{Title: "智谱发布 GLM-5 模型", URL: "https://b.com/2", Source: "B"},
		})
		assert.Len(t, out, 1)
		assert.Equal(t, "A", out[0].Source)
	})

	t.Run("代表摘要为空时拼接簇内摘要", func(t *testing.T) {
		out := newDedup().Deduplicate([]*NewsItem{
			{Title: "智谱发布 GLM-5", URL: "https://a.com/1", Source: "A", PublishedAt: ts("2026-02-01T08:00:00Z")},
			{Title: "智谱发布 GLM-5 模型", URL: "https://b.com/2", Source: "B", PublishedAt: ts("2026-02-01T10:00:00Z"), Summary: "后来者的摘要"},
		})
		assert.Len(t, out, 1)
		// 代表身份不变，只补充摘要
		assert.Equal(t, "A", out[0].Source)
		assert.Equal(t, "https://a.com/1", out[0].URL)
		assert.Equal(t, ts("2026-02-01T08:00:00Z"), out[0].PublishedAt)
		assert.Equal(t, "后来者的摘要", out[0].Summary)
	})
}

func TestDeduplicateOrderAndDeterminism(t *testing.T) {
	build := func() []*NewsItem {
		return []*NewsItem{
			{Title: "DeepSeek 开源新模型", URL: "https://a.com/1", PublishedAt: ts("2026-02-01T09:00:00Z")},
			{Title: "Kimi 发布新功能", URL: "https://b.com/2"},
			{Title: "DeepSeek 开源新模型，引发关注", URL: "https://c.com/3", PublishedAt: ts("2026-02-01T07:00:00Z")},
			{Title: "昇腾芯片新进展", URL: "https://d.com/4"},
		}
	}

	first := newDedup().Deduplicate(build())
	second := newDedup().Deduplicate(build())

	// 相同输入顺序必然得到相同输出
	assert.Equal(t, first, second)

	// 输出保持各簇首次出现的顺序
	assert.Len(t, first, 3)
	assert.Equal(t, "https://c.com/3", first[0].URL, "簇代表是发布时间更早的成员")
	assert.Equal(t, "https://b.com/2", first[1].URL)
	assert.Equal(t, "https://d.com/4", first[2].URL)
}

func TestDeduplicateIdempotent(t *testing.T) {
	items := []*NewsItem{
		{Title: "智谱发布新一代大模型 GLM-5", URL: "https://a.com/1", Summary: "摘要"},
		{Title: "智谱 发布 新一代 大模型 GLM-5，性能大幅提升", URL: "https://b.com/2"},
		{Title: "Kimi发布新功能", URL: "https://c.com/3"},
		{Title: "Kimi发布新功能", URL: "https://c.com/3"},
	}

	d := newDedup()
	once := d.Deduplicate(items)
	twice := d.Deduplicate(once)
	assert.Equal(t, once, twice, "对自身输出再次去重结果不变")
}

func TestDeduplicateBridgeMergesClusters(t *testing.T) {
	t.Run("标题桥接两个簇", func(t *testing.T) {
		// 前两个标题互不相似，第三个标题是两者的公共子串且发布最早：
		// 三者应合并为一个簇，且代表条目不得与任何其他输出重复
		items := []*NewsItem{
			{Title: "深度求索发布新模型", URL: "https://a.com/1", PublishedAt: ts("2026-02-01T10:00:00Z")},
			{Title: "网友热议深度求索", URL: "https://b.com/2", PublishedAt: ts("2026-02-01T11:00:00Z")},
			{Title: "深度求索", URL: "https://c.com/3", PublishedAt: ts("2026-02-01T08:00:00Z")},
		}

		d := newDedup()
		once := d.Deduplicate(items)
		assert.Len(t, once, 1)
		assert.Equal(t, "https://c.com/3", once[0].URL, "代表是发布时间最早的桥接条目")

		twice := d.Deduplicate(once)
		assert.Equal(t, once, twice, "对自身输出再次去重结果不变")
	})

	t.Run("URL与标题分别命中不同簇", func(t *testing.T) {
		items := []*NewsItem{
			{Title: "阿里发布新模型", URL: "https://a.com/1"},
			{Title: "通义千问上线", URL: "https://b.com/2"},
			{Title: "通义千问上线了", URL: "https://a.com/1"},
		}

		d := newDedup()
		once := d.Deduplicate(items)
		assert.Len(t, once, 1)

		twice := d.Deduplicate(once)
		assert.Equal(t, once, twice)
	})
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, newDedup().Deduplicate(nil))
	assert.Empty(t, newDedup().Deduplicate([]*NewsItem{}))
}
