package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"

	"github.com/stretchr/testify/assert"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>机器之心</title>
    <item>
      <title>智谱发布 GLM-5</title>
      <link>https://example.com/glm5</link>
      <pubDate>Mon, 02 Feb 2026 10:00:00 +0800</pubDate>
      <description>&lt;p&gt;智谱今日发布新一代大模型&lt;/p&gt;</description>
    </item>
    <item>
      <title>DeepSeek 新进展</title>
      <link>https://example.com/deepseek</link>
    </item>
  </channel>
</rss>`

func TestRSSFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	enabled := true
	disabled := false
	f := NewRSSFetcher([]config.RSSSource{
		{Name: "机器之心", URL: server.URL, Enabled: &enabled},
		{Name: "已禁用源", URL: server.URL, Enabled: &disabled},
		{Name: "坏源", URL: "http://127.0.0.1:1/rss"},
	}, server.Client())

	payloads := f.FetchAll(context.Background())

	// 禁用的源不抓取，失败的源跳过
	assert.Len(t, payloads, 1)
	assert.Equal(t, "机器之心", payloads[0].Source)
	assert.Len(t, payloads[0].Records, 2)

	rec, ok := payloads[0].Records[0].(pipeline.RSSRecord)
	assert.True(t, ok)
	assert.Equal(t, "智谱发布 GLM-5", rec.Title)
	assert.Equal(t, "https://example.com/glm5", rec.Link)
	assert.Equal(t, "Mon, 02 Feb 2026 10:00:00 +0800", rec.PubDate)
	assert.Contains(t, rec.Description, "智谱今日发布新一代大模型")
}

func TestGNewsFetcher(t *testing.T) {
	var gotQuery []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = append(gotQuery, r.URL.Query().Get("q"))
		assert.Equal(t, "zh", r.URL.Query().Get("lang"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalArticles": 1,
			"articles": [{
				"title": "DeepSeek 开源新模型",
				"description": "今日开源",
				"url": "https://news.example.com/deepseek",
				"publishedAt": "2026-02-02T09:00:00Z",
				"source": {"name": "新浪科技"}
			}]
		}`))
	}))
	defer server.Close()

	f := NewGNewsFetcher(&config.GNews{APIKey: "test-key"}, server.Client())
	f.baseURL = server.URL

	payload := f.FetchByKeywords(context.Background(), []string{"DeepSeek", "Kimi"})
	assert.NotNil(t, payload)
	assert.Equal(t, "GNews", payload.Source)
	assert.Equal(t, []string{"DeepSeek", "Kimi"}, gotQuery, "逐个关键词搜索")
	assert.Len(t, payload.Records, 2)

	rec, ok := payload.Records[0].(pipeline.APIRecord)
	assert.True(t, ok)
	assert.Equal(t, "GNews/新浪科技", rec.SourceName)
	assert.Equal(t, "2026-02-02T09:00:00Z", rec.PublishedAt)
}

func TestGNewsFetcherNoAPIKey(t *testing.T) {
	f := NewGNewsFetcher(&config.GNews{}, nil)
	assert.Nil(t, f.FetchByKeywords(context.Background(), []string{"DeepSeek"}))
}

func TestGNewsFetcherServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	f := NewGNewsFetcher(&config.GNews{APIKey: "test-key"}, server.Client())
	f.baseURL = server.URL

	// 搜索失败不中断，返回空载荷
	payload := f.FetchByKeywords(context.Background(), []string{"DeepSeek"})
	assert.NotNil(t, payload)
	assert.Empty(t, payload.Records)
}

func TestLeaderboardFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"2026-02-01": {"text": {"overall": {"old-model": 1200}}},
			"2026-02-02": {"text": {"overall": {
				"gpt-5": 1400,
				"deepseek-v4": 1390,
				"gemini-3-pro": 1380,
				"qwen3-max": 1370,
				"claude-opus": 1360,
				"kimi-k2": 1350,
				"llama-4": 1340
			}}}
		}`))
	}))
	defer server.Close()

	f := NewLeaderboardFetcher(server.URL, server.Client())
	summary, err := f.Summary(context.Background(), 10)
	assert.NoError(t, err)

	assert.Equal(t, "2026-02-02", summary.Date, "使用最新日期的数据")
	assert.Len(t, summary.TopGlobal, 5)
	assert.Equal(t, "gpt-5", summary.TopGlobal[0].Model)
	assert.Equal(t, 1, summary.TopGlobal[0].Rank)

	// 国产模型按总榜排名筛选
	models := make([]string, 0, len(summary.ChineseModels))
	for _, m := range summary.ChineseModels {
		models = append(models, m.Model)
	}
	assert.Equal(t, []string{"deepseek-v4", "qwen3-max", "kimi-k2"}, models)
	assert.Equal(t, 2, summary.ChineseModels[0].Rank, "保留总榜排名")
}

func TestLeaderboardFetcherEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	f := NewLeaderboardFetcher(server.URL, server.Client())
	_, err := f.Summary(context.Background(), 10)
	assert.Error(t, err)
}

func TestAggregatorOrder(t *testing.T) {
	rssServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer rssServer.Close()

	gnewsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalArticles": 0, "articles": []}`))
	}))
	defer gnewsServer.Close()

	rss := NewRSSFetcher([]config.RSSSource{
		{Name: "机器之心", URL: rssServer.URL},
	}, rssServer.Client())
	gnews := NewGNewsFetcher(&config.GNews{APIKey: "test-key"}, gnewsServer.Client())
	gnews.baseURL = gnewsServer.URL

	payloads := NewAggregator(rss, gnews).FetchAll(context.Background(), []string{"DeepSeek"})

	// RSS 源在前，GNews 在后
	assert.Len(t, payloads, 2)
	assert.Equal(t, "机器之心", payloads[0].Source)
	assert.Equal(t, "GNews", payloads[1].Source)
}
