package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
)

const gnewsBaseURL = "https://gnews.io/api/v4/search"

// gnewsResponse GNews v4 搜索接口的响应体
type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// GNewsFetcher 通过 GNews API 按关键词搜索新闻
type GNewsFetcher struct {
	config  *config.GNews
	client  *http.Client
	baseURL string
}

func NewGNewsFetcher(cfg *config.GNews, httpClient *http.Client) *GNewsFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GNewsFetcher{
		config:  cfg,
		client:  httpClient,
		baseURL: gnewsBaseURL,
	}
}

// FetchByKeywords 逐个关键词搜索，合并为一个 GNews 载荷。
// 单个关键词搜索失败只记录日志，不影响其他关键词。
// API Key 未配置时返回 nil。
func (f *GNewsFetcher) FetchByKeywords(ctx context.Context, keywords []string) *pipeline.SourcePayload {
	if f.config.APIKey == "" {
		logger.Infof("[GNews] API Key 未配置，跳过 GNews 搜索")
		return nil
	}

	records := make([]pipeline.RawRecord, 0)
	for _, keyword := range keywords {
		found, err := f.search(ctx, keyword)
		if err != nil {
			logger.Warnf("[GNews] '%s': 搜索失败 - %v", keyword, err)
			continue
		}
		logger.Infof("[GNews] '%s': 获取 %d 条", keyword, len(found))
		records = append(records, found...)
	}

	return &pipeline.SourcePayload{Source: "GNews", Records: records}
}

func (f *GNewsFetcher) search(ctx context.Context, keyword string) ([]pipeline.RawRecord, error) {
	lang := f.config.Lang
	if lang == "" {
		lang = "zh"
	}
	maxResults := f.config.MaxResults
	if maxResults <= 0 || maxResults > 10 {
		maxResults = 10 // 免费版上限
	}

	params := url.Values{}
	params.Set("q", keyword)
	params.Set("lang", lang)
	params.Set("max", strconv.Itoa(maxResults))
	params.Set("apikey", f.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GNews 返回状态码 %d", resp.StatusCode)
	}

	var data gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("解析 GNews 响应失败: %w", err)
	}

	records := make([]pipeline.RawRecord, 0, len(data.Articles))
	for _, item := range data.Articles {
		sourceName := item.Source.Name
		if sourceName == "" {
			sourceName = "Unknown"
		}
		records = append(records, pipeline.APIRecord{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Description: item.Description,
			SourceName:  "GNews/" + sourceName,
		})
	}
	return records, nil
}
