package pipeline

import "strings"

// RelevanceFilter 基于主题关键词过滤条目。
// 关键词在标题+摘要中命中（大小写不敏感的子串匹配）即保留，
// 并把全部命中的关键词按配置顺序写入 TopicsMatched。
type RelevanceFilter struct {
	topics []string
}

// NewRelevanceFilter 创建过滤器，topics 为已规范化的有序关键词列表
func NewRelevanceFilter(topics []string) *RelevanceFilter {
	return &RelevanceFilter{topics: topics}
}

// Filter 过滤条目，返回保留的条目和被排除的数量。
// 未配置关键词时保留全部条目；全部被排除是合法结果而非错误。
func (f *RelevanceFilter) Filter(items []*NewsItem) ([]*NewsItem, int) {
	if len(f.topics) == 0 {
		return items, 0
	}

	kept := make([]*NewsItem, 0, len(items))
	excluded := 0
	for _, item := range items {
		matched := f.matchTopics(item)
		if len(matched) == 0 {
			excluded++
			continue
		}
		item.TopicsMatched = matched
		kept = append(kept, item)
	}
	return kept, excluded
}

func (f *RelevanceFilter) matchTopics(item *NewsItem) []string {
	text := strings.ToLower(item.Title + " " + item.Summary)
	var matched []string
	for _, topic := range f.topics {
		if strings.Contains(text, strings.ToLower(topic)) {
			matched = append(matched, topic)
		}
	}
	return matched
}
