package pipeline

import (
	"strings"
	"unicode"
)

// DuplicateTokenOverlapThreshold 标题分词重合率阈值。
// 两个标题的词集交集除以较小一方的词数达到该值即视为同一事件。
const DuplicateTokenOverlapThreshold = 0.8

// Deduplicator 将归一化序列压缩为每个事件簇一条代表条目。
// URL 完全相同必然同簇；标题相似（归一化后互为子串，或词集重合率达到阈值）也判为同簇。
// 对相同输入顺序，输出是确定的；对自身输出再次去重结果不变。
type Deduplicator struct {
	threshold float64
}

// NewDeduplicator 创建去重器，threshold 通常传 DuplicateTokenOverlapThreshold
func NewDeduplicator(threshold float64) *Deduplicator {
	return &Deduplicator{threshold: threshold}
}

// entry 簇内成员，seq 为条目在输入中的位置，用于并列时的先后裁决
type entry struct {
	item *NewsItem
	key  titleKey
	seq  int
}

// cluster 同一事件的条目集合
type cluster struct {
	members []entry
}

// titleKey 标题的两种归一化形态，避免逐对比较时重复计算
type titleKey struct {
	norm   string
	tokens map[string]struct{}
}

func newTitleKey(title string) titleKey {
	return titleKey{
		norm:   normalizeTitle(title),
		tokens: titleTokens(title),
	}
}

// Deduplicate 去重，输出顺序为各簇首个成员的出现顺序
func (d *Deduplicator) Deduplicate(items []*NewsItem) []*NewsItem {
	if len(items) == 0 {
		return []*NewsItem{}
	}

	clusters := make([]*cluster, 0, len(items))
	byURL := make(map[string]*cluster)

	for seq, item := range items {
		key := newTitleKey(item.Title)
		urlCluster := byURL[item.URL]

		// 收集全部命中的簇：URL 相同或标题相似。
		// 预期输入量为每天几十到几百条，逐簇线性匹配即可
		matched := make([]*cluster, 0, 1)
		for _, candidate := range clusters {
			if candidate == urlCluster || candidate.matches(key, d.threshold) {
				matched = append(matched, candidate)
			}
		}

		var c *cluster
		if len(matched) == 0 {
			c = &cluster{}
			clusters = append(clusters, c)
		} else {
			// 一个条目可能同时桥接多个原本互不相似的簇，
			// 全部并入最早出现的簇，否则对输出再次去重结果会改变
			c = matched[0]
			if len(matched) > 1 {
				clusters = mergeInto(c, matched[1:], clusters, byURL)
			}
		}

		c.members = append(c.members, entry{item: item, key: key, seq: seq})
		byURL[item.URL] = c
	}

	result := make([]*NewsItem, len(clusters))
	for i, c := range clusters {
		result[i] = c.representative()
	}
	return result
}

// mergeInto 将 absorbed 各簇并入 primary，primary 保持原有输出位置
func mergeInto(primary *cluster, absorbed []*cluster, clusters []*cluster, byURL map[string]*cluster) []*cluster {
	drop := make(map[*cluster]struct{}, len(absorbed))
	for _, c := range absorbed {
		primary.members = append(primary.members, c.members...)
		for _, m := range c.members {
			byURL[m.item.URL] = primary
		}
		drop[c] = struct{}{}
	}

	kept := clusters[:0]
	for _, c := range clusters {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}

// matches 条目标题与簇内任一成员标题相似即视为同簇
func (c *cluster) matches(key titleKey, threshold float64) bool {
	for _, m := range c.members {
		if similarTitles(m.key, key, threshold) {
			return true
		}
	}
	return false
}

// representative 选出簇代表：发布时间最早者（无时间排最后），
// 时间相同或均无时间时取先出现者；代表摘要为空时从簇内
// 第一个有摘要的成员拼接摘要，其余字段不变。
func (c *cluster) representative() *NewsItem {
	rep := c.members[0]
	for _, m := range c.members[1:] {
		if publishedEarlier(m, rep) {
			rep = m
		}
	}

	if rep.item.Summary == "" {
		var donor *NewsItem
		donorSeq := -1
		for _, m := range c.members {
			if m.item.Summary != "" && (donorSeq == -1 || m.seq < donorSeq) {
				donor = m.item
				donorSeq = m.seq
			}
		}
		if donor != nil {
			patched := *rep.item
			patched.Summary = donor.Summary
			return &patched
		}
	}
	return rep.item
}

// publishedEarlier a 是否先于 b：发布时间早者在先，nil 视为最晚；
// 时间相同或均无时间时按输入先后
func publishedEarlier(a, b entry) bool {
	pa, pb := a.item.PublishedAt, b.item.PublishedAt
	switch {
	case pa == nil && pb == nil:
		return a.seq < b.seq
	case pa == nil:
		return false
	case pb == nil:
		return true
	case pa.Equal(*pb):
		return a.seq < b.seq
	default:
		return pa.Before(*pb)
	}
}

// similarTitles 判断两个标题是否指向同一事件
func similarTitles(a, b titleKey, threshold float64) bool {
	if a.norm == "" || b.norm == "" {
		return false
	}
	if strings.Contains(a.norm, b.norm) || strings.Contains(b.norm, a.norm) {
		return true
	}

	smaller := len(a.tokens)
	if len(b.tokens) < smaller {
		smaller = len(b.tokens)
	}
	if smaller == 0 {
		return false
	}
	overlap := 0
	for token := range a.tokens {
		if _, ok := b.tokens[token]; ok {
			overlap++
		}
	}
	return float64(overlap)/float64(smaller) >= threshold
}

// normalizeTitle 小写并去除全部标点和空白，仅保留字母与数字
func normalizeTitle(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// titleTokens 按空白和标点切分出小写词集
func titleTokens(title string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}
