package pipeline

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// maxSummaryRunes 摘要截断长度
const maxSummaryRunes = 500

// trackingQueryKeys 已知的跟踪类查询参数（utm_ 前缀另行匹配）
var trackingQueryKeys = map[string]struct{}{
	"fbclid": {},
	"gclid":  {},
	"spm":    {},
	"ref":    {},
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// isoLayouts ISO-8601 风格的日期格式，优先尝试
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// rfc822Layouts RSS pubDate 常见的 RFC-822 风格格式，其次尝试
var rfc822Layouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// Normalizer 将各数据源的原始记录转换为规范的 NewsItem。
// 纯转换，无副作用；坏记录被跳过并计数，绝不中断整轮运行。
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize 归一化单个源的全部记录，返回有效条目和被拒绝的记录数
func (n *Normalizer) Normalize(source string, records []RawRecord) ([]*NewsItem, int) {
	items := make([]*NewsItem, 0, len(records))
	rejected := 0
	for _, rec := range records {
		item, ok := n.normalizeOne(source, rec)
		if !ok {
			rejected++
			continue
		}
		items = append(items, item)
	}
	return items, rejected
}

func (n *Normalizer) normalizeOne(source string, rec RawRecord) (*NewsItem, bool) {
	var title, link, dateStr, desc, recSource string

	switch r := rec.(type) {
	case RSSRecord:
		title, link, dateStr, desc = r.Title, r.Link, r.PubDate, r.Description
	case *RSSRecord:
		title, link, dateStr, desc = r.Title, r.Link, r.PubDate, r.Description
	case APIRecord:
		title, link, dateStr, desc, recSource = r.Title, r.URL, r.PublishedAt, r.Description, r.SourceName
	case *APIRecord:
		title, link, dateStr, desc, recSource = r.Title, r.URL, r.PublishedAt, r.Description, r.SourceName
	default:
		return nil, false
	}

	title = CleanText(title)
	link = strings.TrimSpace(link)
	if title == "" || link == "" {
		return nil, false
	}
	if recSource != "" {
		source = recSource
	}

	return &NewsItem{
		Title:       title,
		URL:         NormalizeURL(link),
		Source:      source,
		PublishedAt: ParseTime(dateStr),
		Summary:     truncateRunes(CleanText(desc), maxSummaryRunes),
	}, true
}

// NormalizeURL 标准化链接作为跨源的条目标识：
// 主机名小写、去除默认端口、去除 utm_ 等跟踪参数、去除末尾斜杠。
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(raw, "/")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	query := u.Query()
	for key := range query {
		if _, ok := trackingQueryKeys[key]; ok || strings.HasPrefix(key, "utm_") {
			query.Del(key)
		}
	}
	u.RawQuery = query.Encode()
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

// ParseTime 解析日期字符串并统一为 UTC。
// 按固定优先级尝试：先 ISO-8601，再 RFC-822 风格；全部失败返回 nil。
func ParseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	for _, layout := range rfc822Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

// CleanText 清理 HTML 标签和多余空白
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
