package fetcher

import (
	"context"
	"net/http"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"

	"github.com/mmcdole/gofeed"
)

// RSSFetcher 从配置的 RSS 源抓取原始条目
type RSSFetcher struct {
	parser  *gofeed.Parser
	sources []config.RSSSource
}

func NewRSSFetcher(sources []config.RSSSource, httpClient *http.Client) *RSSFetcher {
	parser := gofeed.NewParser()
	if httpClient != nil {
		parser.Client = httpClient
	}

	enabled := make([]config.RSSSource, 0, len(sources))
	for _, s := range sources {
		if s.IsEnabled() {
			enabled = append(enabled, s)
		}
	}
	return &RSSFetcher{parser: parser, sources: enabled}
}

// FetchAll 按配置顺序抓取所有启用的 RSS 源。
// 单个源抓取失败只记录日志并跳过，不影响其他源。
func (f *RSSFetcher) FetchAll(ctx context.Context) []pipeline.SourcePayload {
	payloads := make([]pipeline.SourcePayload, 0, len(f.sources))
	for _, source := range f.sources {
		records, err := f.fetchSource(ctx, source)
		if err != nil {
			logger.Warnf("[RSS] %s: 抓取失败 - %v", source.Name, err)
			continue
		}
		logger.Infof("[RSS] %s: 获取 %d 条", source.Name, len(records))
		payloads = append(payloads, pipeline.SourcePayload{
			Source:  source.Name,
			Records: records,
		})
	}
	return payloads
}

func (f *RSSFetcher) fetchSource(ctx context.Context, source config.RSSSource) ([]pipeline.RawRecord, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, err
	}

	records := make([]pipeline.RawRecord, 0, len(feed.Items))
	for _, item := range feed.Items {
		records = append(records, pipeline.RSSRecord{
			Title:       item.Title,
			Link:        item.Link,
			PubDate:     item.Published,
			Description: extractDescription(item),
		})
	}
	return records, nil
}

// extractDescription 优先使用全文 content:encoded（机器之心使用该字段），
// 其次 description
func extractDescription(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}
