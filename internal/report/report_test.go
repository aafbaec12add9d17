package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fachebot/ai-news-tracker/internal/fetcher"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	r := NewMarkdownReport(dir)

	published := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	items := []*pipeline.NewsItem{
		{
			Title:         "DeepSeek 开源新模型",
			URL:           "https://example.com/deepseek",
			Source:        "机器之心",
			PublishedAt:   &published,
			Summary:       "DeepSeek 今日宣布开源新一代推理模型",
			TopicsMatched: []string{"deepseek"},
		},
		{
			Title:  "智谱发布 GLM-5",
			URL:    "https://example.com/glm",
			Source: "36Kr",
		},
	}

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	path, err := r.Generate(items, "## 今日要点\n\n1. DeepSeek 开源新模型", date, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026-01-15.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# 2026-01-15 国产大模型日报")
	assert.Contains(t, content, "## 今日要点")
	assert.Contains(t, content, "### DeepSeek 开源新模型")
	assert.Contains(t, content, "**来源**: 机器之心")
	assert.Contains(t, content, "**时间**: 2026-01-15 09:30")
	assert.Contains(t, content, "**关键词**: deepseek")
	assert.Contains(t, content, "[阅读原文](https://example.com/deepseek)")
	// 无发布时间的条目不输出时间字段
	assert.Contains(t, content, "**来源**: 36Kr\n")
}

func TestGenerate_EmptyItems(t *testing.T) {
	dir := t.TempDir()
	r := NewMarkdownReport(dir)

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	path, err := r.Generate(nil, "## 今日要点\n\n暂无相关资讯。", date, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "暂无相关资讯。")
}

func TestGenerate_WithLeaderboard(t *testing.T) {
	dir := t.TempDir()
	r := NewMarkdownReport(dir)

	leaderboard := &fetcher.LeaderboardSummary{
		Date: "2026-01-14",
		TopGlobal: []fetcher.ModelRank{
			{Rank: 1, Model: "gemini-pro", Score: 1402},
			{Rank: 2, Model: "deepseek-v4", Score: 1398},
		},
		ChineseModels: []fetcher.ModelRank{
			{Rank: 2, Model: "deepseek-v4", Score: 1398},
			{Rank: 7, Model: "qwen-max", Score: 1370},
		},
	}

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	path, err := r.Generate(nil, "总结", date, leaderboard)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "## 国产模型排行榜 (LM Arena)")
	assert.Contains(t, content, "| 1 | gemini-pro | 1402 |")
	assert.Contains(t, content, "| 7 | qwen-max | 1370 |")
	assert.Contains(t, content, "数据日期: 2026-01-14")
}

func TestGenerate_TruncatesLongSummary(t *testing.T) {
	dir := t.TempDir()
	r := NewMarkdownReport(dir)

	items := []*pipeline.NewsItem{
		{
			Title:   "标题",
			URL:     "https://example.com/a",
			Source:  "机器之心",
			Summary: strings.Repeat("长", 500),
		},
	}

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	path, err := r.Generate(items, "总结", date, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), strings.Repeat("长", 301))
}

func TestTruncateModelName_MultiByte(t *testing.T) {
	name := strings.Repeat("问", 60)
	got := truncateModelName(name, 45)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("问", 42)+"...", got)
}

func TestLatestReportPath(t *testing.T) {
	r := NewMarkdownReport("/tmp/reports")
	path := r.LatestReportPath()
	assert.True(t, strings.HasPrefix(path, "/tmp/reports/"))
	assert.True(t, strings.HasSuffix(path, ".md"))
}
