package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/fetcher"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, code int, capture *[][]byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if capture != nil {
			*capture = append(*capture, body)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"code": code, "msg": "ok"})
	}))
}

func sampleItems() []*pipeline.NewsItem {
	published := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	return []*pipeline.NewsItem{
		{
			Title:       "DeepSeek 开源新模型",
			URL:         "https://example.com/deepseek",
			Source:      "机器之心",
			PublishedAt: &published,
			Summary:     "DeepSeek 今日宣布开源新一代推理模型",
		},
		{
			Title:  "智谱发布 GLM-5",
			URL:    "https://example.com/glm",
			Source: "36Kr",
		},
	}
}

func TestSendReport_Success(t *testing.T) {
	var bodies [][]byte
	server := newTestServer(t, 0, &bodies)
	defer server.Close()

	n := NewFeishuNotifier(&config.Feishu{WebhookURL: server.URL}, server.Client())
	err := n.SendReport(context.Background(), "## 今日要点\n\n1. DeepSeek 开源新模型", sampleItems(), nil)
	assert.NoError(t, err)
	require.Len(t, bodies, 1)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(bodies[0], &payload))
	assert.Equal(t, "interactive", payload["msg_type"])

	raw := string(bodies[0])
	assert.Contains(t, raw, "国产大模型日报")
	assert.Contains(t, raw, "DeepSeek 开源新模型")
	assert.Contains(t, raw, "机器之心")
}

func TestSendReport_EmptyWebhookSkips(t *testing.T) {
	n := NewFeishuNotifier(&config.Feishu{}, nil)
	err := n.SendReport(context.Background(), "总结", sampleItems(), nil)
	assert.NoError(t, err)
}

func TestSendReport_FeishuErrorCode(t *testing.T) {
	server := newTestServer(t, 9499, nil)
	defer server.Close()

	n := NewFeishuNotifier(&config.Feishu{WebhookURL: server.URL}, server.Client())
	err := n.SendReport(context.Background(), "总结", nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "code=9499")
}

func TestSendReport_BatchesLargeCard(t *testing.T) {
	var bodies [][]byte
	server := newTestServer(t, 0, &bodies)
	defer server.Close()

	// 构造超过 25KB 的总结，强制分批
	largeSummary := "## 今日要点\n\n" + strings.Repeat("这是一条非常长的资讯要点内容。", 2000)

	n := NewFeishuNotifier(&config.Feishu{WebhookURL: server.URL, ReportURL: "https://example.com/report"}, server.Client())
	err := n.SendReport(context.Background(), largeSummary, sampleItems(), nil)
	assert.NoError(t, err)
	require.Len(t, bodies, 2, "超限消息应拆分为两张卡片")

	// 第二张卡片是资讯列表
	assert.Contains(t, string(bodies[1]), "详细资讯 (2 条)")
	assert.Contains(t, string(bodies[1]), "查看完整日报")
}

func TestSendReport_WithLeaderboard(t *testing.T) {
	var bodies [][]byte
	server := newTestServer(t, 0, &bodies)
	defer server.Close()

	leaderboard := &fetcher.LeaderboardSummary{
		Date: "2026-01-15",
		TopGlobal: []fetcher.ModelRank{
			{Rank: 1, Model: "gemini-pro", Score: 1402},
			{Rank: 2, Model: "deepseek-v4", Score: 1398},
		},
		ChineseModels: []fetcher.ModelRank{
			{Rank: 2, Model: "deepseek-v4", Score: 1398},
		},
	}

	n := NewFeishuNotifier(&config.Feishu{WebhookURL: server.URL}, server.Client())
	err := n.SendReport(context.Background(), "总结", nil, leaderboard)
	assert.NoError(t, err)
	require.Len(t, bodies, 1)

	raw := string(bodies[0])
	assert.Contains(t, raw, "国产模型排行榜")
	assert.Contains(t, raw, "deepseek-v4")
}

func TestSendText(t *testing.T) {
	var bodies [][]byte
	server := newTestServer(t, 0, &bodies)
	defer server.Close()

	n := NewFeishuNotifier(&config.Feishu{WebhookURL: server.URL}, server.Client())
	err := n.SendText(context.Background(), "任务执行失败")
	assert.NoError(t, err)
	require.Len(t, bodies, 1)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(bodies[0], &payload))
	assert.Equal(t, "text", payload["msg_type"])
}

func TestFormatArticle_TruncatesSummary(t *testing.T) {
	item := &pipeline.NewsItem{
		Title:   "标题",
		URL:     "https://example.com/a",
		Source:  "机器之心",
		Summary: strings.Repeat("长", 200),
	}
	content := formatArticle(item)
	assert.Contains(t, content, "...")
	assert.Less(t, len([]rune(content)), 220)

	// 未截断的摘要不追加省略号
	item.Summary = "短摘要"
	assert.NotContains(t, formatArticle(item), "...")
}

func TestTruncateModelName_MultiByte(t *testing.T) {
	name := strings.Repeat("智", 40)
	got := truncateModelName(name, 30)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("智", 27)+"...", got)

	assert.Equal(t, "deepseek-v4", truncateModelName("deepseek-v4", 30))
}
