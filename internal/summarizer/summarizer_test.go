package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fachebot/ai-news-tracker/internal/pipeline"
	"github.com/stretchr/testify/assert"
)

// mockLLMChat 用于测试的 llmChat mock
type mockLLMChat struct {
	response   string
	err        error
	gotSystem  string
	gotUser    string
	callCount  int
	maxInput   int
}

func (m *mockLLMChat) Chat(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	m.callCount++
	m.gotSystem = systemPrompt
	m.gotUser = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMChat) MaxInputTokens() int {
	if m.maxInput > 0 {
		return m.maxInput
	}
	return 8000
}

func sampleItems() []*pipeline.NewsItem {
	return []*pipeline.NewsItem{
		{Title: "DeepSeek 开源新模型", Source: "机器之心", URL: "https://a.com/1", Summary: "DeepSeek 今日宣布开源"},
		{Title: "智谱发布 GLM-5", Source: "36Kr", URL: "https://b.com/2"},
	}
}

func TestSummarize_Success(t *testing.T) {
	mock := &mockLLMChat{response: "## 今日要点\n\n1. DeepSeek 开源新模型"}
	s := &Summarizer{llmClient: mock}

	summary, err := s.Summarize(context.Background(), sampleItems())
	assert.NoError(t, err)
	assert.Equal(t, "## 今日要点\n\n1. DeepSeek 开源新模型", summary)

	// prompt 包含编号的资讯条目和来源
	assert.Contains(t, mock.gotUser, "1. 【机器之心】DeepSeek 开源新模型")
	assert.Contains(t, mock.gotUser, "摘要：DeepSeek 今日宣布开源")
	assert.Contains(t, mock.gotUser, "2. 【36Kr】智谱发布 GLM-5")
	assert.Contains(t, mock.gotSystem, "资讯分析师")
}

func TestSummarize_EmptyItems(t *testing.T) {
	mock := &mockLLMChat{}
	s := &Summarizer{llmClient: mock}

	summary, err := s.Summarize(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, EmptySummary, summary)
	assert.Zero(t, mock.callCount, "空条目不调用 LLM")
}

func TestSummarize_LLMError(t *testing.T) {
	mock := &mockLLMChat{err: errors.New("api error")}
	s := &Summarizer{llmClient: mock}

	_, err := s.Summarize(context.Background(), sampleItems())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "生成总结失败")
}

func TestBuildArticlesText_LimitsArticleCount(t *testing.T) {
	items := make([]*pipeline.NewsItem, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, &pipeline.NewsItem{
			Title:  "资讯标题",
			Source: "机器之心",
			URL:    "https://a.com/x",
		})
	}

	s := &Summarizer{llmClient: &mockLLMChat{}}
	text := s.buildArticlesText(items)
	assert.Contains(t, text, "20. 【机器之心】")
	assert.NotContains(t, text, "21. 【机器之心】")
}

func TestBuildArticlesText_TruncatesLongSummary(t *testing.T) {
	long := strings.Repeat("长", 300)
	s := &Summarizer{llmClient: &mockLLMChat{}}
	text := s.buildArticlesText([]*pipeline.NewsItem{
		{Title: "标题", Source: "机器之心", URL: "https://a.com/1", Summary: long},
	})
	assert.Contains(t, text, "摘要：")
	assert.Less(t, len([]rune(text)), 300)
}

func TestBuildArticlesText_RespectsTokenBudget(t *testing.T) {
	items := make([]*pipeline.NewsItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, &pipeline.NewsItem{
			Title:   strings.Repeat("很长的中文标题内容", 10),
			Source:  "机器之心",
			URL:     "https://a.com/x",
			Summary: strings.Repeat("很长的摘要内容", 20),
		})
	}

	s := &Summarizer{llmClient: &mockLLMChat{maxInput: 200}}
	text := s.buildArticlesText(items)
	// 超出预算时截断，但至少保留第一条
	assert.Contains(t, text, "1. 【机器之心】")
	assert.NotContains(t, text, "10. 【机器之心】")
}
