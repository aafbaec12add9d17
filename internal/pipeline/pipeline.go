package pipeline

import (
	"fmt"

	"github.com/fachebot/ai-news-tracker/internal/logger"
)

// RunSummary 单轮流水线运行的统计信息
type RunSummary struct {
	FetchedCount      int // 各源原始记录总数
	NormalizedCount   int // 归一化成功的条目数
	RejectedCount     int // 归一化阶段被拒绝的记录数
	DedupedCount      int // 去重后的条目数
	DuplicatesRemoved int // 被合并的重复条目数
	FilteredCount     int // 关键词过滤后保留的条目数
	ExcludedCount     int // 关键词过滤排除的条目数
}

// Pipeline 按固定顺序执行 归一化 → 去重 → 关键词过滤。
// 每轮运行是输入和策略常量的纯函数，不跨轮共享状态。
type Pipeline struct {
	normalizer *Normalizer
	dedup      *Deduplicator
	filter     *RelevanceFilter
}

// New 创建流水线，topics 为已规范化的主题关键词列表
func New(topics []string) *Pipeline {
	return &Pipeline{
		normalizer: NewNormalizer(),
		dedup:      NewDeduplicator(DuplicateTokenOverlapThreshold),
		filter:     NewRelevanceFilter(topics),
	}
}

// Run 对各源抓取结果执行完整流水线。
// 单个源为空或整体为坏数据都不会中断运行（部分结果策略）；
// 全部源为空时返回空结果和统计，不算错误。
// 只有载荷容器本身缺失（nil）才视为调用方违反约定。
func (p *Pipeline) Run(payloads []SourcePayload) ([]*NewsItem, *RunSummary, error) {
	if payloads == nil {
		return nil, nil, fmt.Errorf("原始载荷容器缺失")
	}

	summary := &RunSummary{}

	// 1. 逐源归一化，保持源配置顺序拼接
	merged := make([]*NewsItem, 0)
	for _, payload := range payloads {
		summary.FetchedCount += len(payload.Records)
		items, rejected := p.normalizer.Normalize(payload.Source, payload.Records)
		summary.RejectedCount += rejected
		if len(items) == 0 {
			logger.Debugf("[Pipeline] 源 %s 无有效条目", payload.Source)
			continue
		}
		merged = append(merged, items...)
	}
	summary.NormalizedCount = len(merged)

	// 2. 去重
	deduped := p.dedup.Deduplicate(merged)
	summary.DedupedCount = len(deduped)
	summary.DuplicatesRemoved = len(merged) - len(deduped)
	if summary.DuplicatesRemoved > 0 {
		logger.Infof("[Pipeline] 去除 %d 条重复资讯", summary.DuplicatesRemoved)
	}

	// 3. 关键词过滤
	filtered, excluded := p.filter.Filter(deduped)
	summary.FilteredCount = len(filtered)
	summary.ExcludedCount = excluded

	logger.Infof("[Pipeline] 抓取 %d 条，归一化 %d 条（拒绝 %d），去重后 %d 条，关键词匹配 %d 条",
		summary.FetchedCount, summary.NormalizedCount, summary.RejectedCount,
		summary.DedupedCount, summary.FilteredCount)

	return filtered, summary, nil
}
