package pipeline

import "time"

// RecencyFilter 只保留发布时间在最近窗口内的条目。
// 无发布时间的条目无法判断新旧，一律保留。
type RecencyFilter struct {
	maxAge time.Duration
	now    func() time.Time
}

// NewRecencyFilter 创建时间过滤器；maxAge <= 0 时不过滤
func NewRecencyFilter(maxAge time.Duration) *RecencyFilter {
	return &RecencyFilter{maxAge: maxAge, now: time.Now}
}

// Filter 过滤条目，返回保留的条目和被排除的数量
func (f *RecencyFilter) Filter(items []*NewsItem) ([]*NewsItem, int) {
	if f.maxAge <= 0 {
		return items, 0
	}

	cutoff := f.now().UTC().Add(-f.maxAge)
	kept := make([]*NewsItem, 0, len(items))
	dropped := 0
	for _, item := range items {
		if item.PublishedAt != nil && item.PublishedAt.Before(cutoff) {
			dropped++
			continue
		}
		kept = append(kept, item)
	}
	return kept, dropped
}
