package fetcher

import (
	"context"

	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
)

// Aggregator 聚合多个数据源的抓取结果。
// 源顺序固定：RSS 源按配置顺序在前，GNews 在后。
type Aggregator struct {
	rss   *RSSFetcher
	gnews *GNewsFetcher
}

func NewAggregator(rss *RSSFetcher, gnews *GNewsFetcher) *Aggregator {
	return &Aggregator{rss: rss, gnews: gnews}
}

// FetchAll 从所有数据源抓取原始载荷，交给流水线处理。
// 任何源失败都不会中断：返回成功抓到的部分。
func (a *Aggregator) FetchAll(ctx context.Context, topics []string) []pipeline.SourcePayload {
	payloads := a.rss.FetchAll(ctx)

	if gnews := a.gnews.FetchByKeywords(ctx, topics); gnews != nil {
		payloads = append(payloads, *gnews)
	}

	total := 0
	for _, p := range payloads {
		total += len(p.Records)
	}
	logger.Infof("[Aggregator] 抓取完成，%d 个源共 %d 条原始记录", len(payloads), total)
	return payloads
}
