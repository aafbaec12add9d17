package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/fetcher"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
)

const (
	// MaxCardSize 飞书卡片消息大小限制（25KB，留 5KB 余量）
	MaxCardSize = 25000

	// maxArticlesInCard 卡片中展开显示的资讯条数
	maxArticlesInCard = 5

	requestTimeout = 30 * time.Second
)

// FeishuNotifier 通过自定义机器人 Webhook 发送飞书卡片通知
type FeishuNotifier struct {
	config *config.Feishu
	client *http.Client
}

func NewFeishuNotifier(cfg *config.Feishu, httpClient *http.Client) *FeishuNotifier {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FeishuNotifier{
		config: cfg,
		client: httpClient,
	}
}

// feishuResponse 飞书 Webhook 返回结构
type feishuResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// SendReport 发送日报通知，卡片超过大小限制时自动分批发送
func (n *FeishuNotifier) SendReport(ctx context.Context, summary string, items []*pipeline.NewsItem, leaderboard *fetcher.LeaderboardSummary) error {
	if n.config.WebhookURL == "" {
		logger.Warnf("[Feishu] Webhook URL 未配置，跳过通知")
		return nil
	}

	cards := n.buildCardsBatched(summary, items, leaderboard)
	for i, card := range cards {
		if len(cards) > 1 {
			logger.Infof("[Feishu] 发送第 %d/%d 条消息", i+1, len(cards))
		}
		if err := n.sendCard(ctx, card); err != nil {
			return err
		}
	}

	return nil
}

// SendText 发送纯文本消息（备用方法）
func (n *FeishuNotifier) SendText(ctx context.Context, text string) error {
	if n.config.WebhookURL == "" {
		logger.Warnf("[Feishu] Webhook URL 未配置，跳过通知")
		return nil
	}

	payload := map[string]any{
		"msg_type": "text",
		"content":  map[string]string{"text": text},
	}
	return n.post(ctx, payload)
}

func (n *FeishuNotifier) sendCard(ctx context.Context, card map[string]any) error {
	payload := map[string]any{
		"msg_type": "interactive",
		"card":     card,
	}
	return n.post(ctx, payload)
}

func (n *FeishuNotifier) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化飞书消息失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("发送飞书通知失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("飞书 Webhook 返回状态码 %d", resp.StatusCode)
	}

	var result feishuResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("解析飞书响应失败: %w", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("飞书通知发送失败: code=%d msg=%s", result.Code, result.Msg)
	}

	logger.Infof("[Feishu] 通知发送成功")
	return nil
}

// buildCardsBatched 构建卡片消息，超过大小限制时拆分为总结卡片和资讯卡片
func (n *FeishuNotifier) buildCardsBatched(summary string, items []*pipeline.NewsItem, leaderboard *fetcher.LeaderboardSummary) []map[string]any {
	fullCard := n.buildCard(summary, items, n.config.ReportURL, leaderboard)
	if cardSize(fullCard) <= MaxCardSize {
		return []map[string]any{fullCard}
	}

	logger.Infof("[Feishu] 消息超过大小限制，分批发送")

	// 第一条：总结 + 排行榜
	card1 := n.buildCard(summary, nil, "", leaderboard)

	// 第二条：资讯列表
	card2 := n.buildCard("", items, n.config.ReportURL, nil)
	card2["header"] = cardHeader(fmt.Sprintf("📰 详细资讯 (%d 条)", len(items)))

	return []map[string]any{card1, card2}
}

// buildCard 构建单张飞书卡片
func (n *FeishuNotifier) buildCard(summary string, items []*pipeline.NewsItem, reportURL string, leaderboard *fetcher.LeaderboardSummary) map[string]any {
	elements := make([]map[string]any, 0)

	if summary != "" {
		elements = append(elements, markdownElement(summary), hrElement())
	}

	if leaderboard != nil {
		if content := formatLeaderboard(leaderboard); content != "" {
			elements = append(elements, markdownElement(content), hrElement())
		}
	}

	if len(items) > 0 {
		elements = append(elements, markdownElement("**📰 详细资讯**"))

		shown := items
		if len(shown) > maxArticlesInCard {
			shown = shown[:maxArticlesInCard]
		}
		for _, item := range shown {
			elements = append(elements, markdownElement(formatArticle(item)))
		}
		if len(items) > maxArticlesInCard {
			elements = append(elements, markdownElement(fmt.Sprintf("*... 共 %d 条资讯*", len(items))))
		}
	}

	if reportURL != "" {
		elements = append(elements, hrElement(), map[string]any{
			"tag": "action",
			"actions": []map[string]any{
				{
					"tag":  "button",
					"text": map[string]any{"tag": "plain_text", "content": "查看完整日报"},
					"type": "primary",
					"url":  reportURL,
				},
			},
		})
	}

	dateStr := time.Now().Format("2006-01-02")
	return map[string]any{
		"config":   map[string]any{"wide_screen_mode": true},
		"header":   cardHeader(fmt.Sprintf("🤖 %s 国产大模型日报", dateStr)),
		"elements": elements,
	}
}

func cardHeader(title string) map[string]any {
	return map[string]any{
		"title": map[string]any{
			"tag":     "plain_text",
			"content": title,
		},
		"template": "blue",
	}
}

func markdownElement(content string) map[string]any {
	return map[string]any{"tag": "markdown", "content": content}
}

func hrElement() map[string]any {
	return map[string]any{"tag": "hr"}
}

func cardSize(card map[string]any) int {
	data, err := json.Marshal(card)
	if err != nil {
		return 0
	}
	return len(data)
}

// formatArticle 格式化单条资讯为飞书 markdown
func formatArticle(item *pipeline.NewsItem) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**[%s](%s)**\n", item.Title, item.URL))
	sb.WriteString(fmt.Sprintf("*%s*", item.Source))
	if item.PublishedAt != nil {
		sb.WriteString(fmt.Sprintf(" | *%s*", item.PublishedAt.Format("15:04")))
	}
	if item.Summary != "" {
		summary := item.Summary
		if runes := []rune(summary); len(runes) > 150 {
			summary = string(runes[:150]) + "..."
		}
		sb.WriteString("\n" + summary)
	}
	return sb.String()
}

// formatLeaderboard 格式化排行榜为飞书 markdown
func formatLeaderboard(leaderboard *fetcher.LeaderboardSummary) string {
	if len(leaderboard.TopGlobal) == 0 && len(leaderboard.ChineseModels) == 0 {
		return ""
	}

	lines := []string{"**📊 国产模型排行榜 (LM Arena)**\n"}

	if len(leaderboard.TopGlobal) > 0 {
		lines = append(lines, "**全球 Top 5**")
		for _, m := range leaderboard.TopGlobal {
			lines = append(lines, fmt.Sprintf("%d. %s (%.0f)", m.Rank, truncateModelName(m.Model, 30), m.Score))
		}
		lines = append(lines, "")
	}

	if len(leaderboard.ChineseModels) > 0 {
		lines = append(lines, "**国产模型 Top 5**")
		shown := leaderboard.ChineseModels
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, m := range shown {
			lines = append(lines, fmt.Sprintf("#%d %s (%.0f)", m.Rank, truncateModelName(m.Model, 30), m.Score))
		}
	}

	return strings.Join(lines, "\n")
}

func truncateModelName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return name
}
