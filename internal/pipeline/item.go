package pipeline

import "time"

// NewsItem 归一化后的新闻条目，是流水线内部的唯一规范形态。
// 构造后不可变，仅 TopicsMatched 由关键词过滤器填充一次。
type NewsItem struct {
	Title         string
	URL           string     // 归一化后的链接，作为跨源主键
	Source        string     // 来源名称，如 "机器之心"、"GNews/新浪科技"
	PublishedAt   *time.Time // 统一为 UTC；源缺失或无法解析时为 nil
	Summary       string     // 源提供的摘要/正文节选，可能为空
	TopicsMatched []string   // 命中的主题关键词，按配置顺序
}

// RawRecord 数据源的原始记录。每种 provider 一个变体，
// 异构的字段命名不允许越过归一化层。
type RawRecord interface {
	rawRecord()
}

// RSSRecord RSS 源的原始条目，字段与 feed 条目一一对应
type RSSRecord struct {
	Title       string
	Link        string
	PubDate     string // 原始日期字符串，如 RFC-822 格式的 pubDate
	Description string
}

func (RSSRecord) rawRecord() {}

// APIRecord 新闻搜索 API 的原始条目
type APIRecord struct {
	Title       string
	URL         string
	PublishedAt string // ISO-8601 日期字符串
	Description string
	SourceName  string // 记录级来源（如 "GNews/新浪科技"），为空时使用载荷级来源
}

func (APIRecord) rawRecord() {}

// SourcePayload 单个数据源本次抓取的全部原始记录
type SourcePayload struct {
	Source  string
	Records []RawRecord
}
