package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fachebot/ai-news-tracker/internal/fetcher"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
)

// maxSummaryInReport 单篇摘要在日报中的截断长度
const maxSummaryInReport = 300

// MarkdownReport 生成 Markdown 格式日报并写入输出目录
type MarkdownReport struct {
	outputDir string
}

func NewMarkdownReport(outputDir string) *MarkdownReport {
	if outputDir == "" {
		outputDir = "output"
	}
	return &MarkdownReport{outputDir: outputDir}
}

// Generate 生成日报文件，返回文件路径
func (r *MarkdownReport) Generate(items []*pipeline.NewsItem, summary string, date time.Time, leaderboard *fetcher.LeaderboardSummary) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	dateStr := date.Format("2006-01-02")
	path := filepath.Join(r.outputDir, dateStr+".md")

	content := buildContent(items, summary, dateStr, leaderboard)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("写入日报文件失败: %w", err)
	}

	logger.Infof("[Report] 日报已保存: %s", path)
	return path, nil
}

// LatestReportPath 返回当天日报的路径
func (r *MarkdownReport) LatestReportPath() string {
	return filepath.Join(r.outputDir, time.Now().Format("2006-01-02")+".md")
}

func buildContent(items []*pipeline.NewsItem, summary, dateStr string, leaderboard *fetcher.LeaderboardSummary) string {
	lines := []string{
		fmt.Sprintf("# %s 国产大模型日报", dateStr),
		"",
		summary,
		"",
	}

	if leaderboard != nil {
		lines = append(lines, formatLeaderboard(leaderboard)...)
	}

	lines = append(lines,
		"---",
		"",
		"## 详细资讯",
		"",
	)

	if len(items) == 0 {
		lines = append(lines, "暂无相关资讯。")
	} else {
		for _, item := range items {
			lines = append(lines, formatArticle(item)...)
		}
	}

	lines = append(lines,
		"",
		"---",
		"",
		fmt.Sprintf("*本日报由 AI News Tracker 自动生成，更新时间: %s*", time.Now().Format("2006-01-02 15:04:05")),
	)

	return strings.Join(lines, "\n")
}

func formatLeaderboard(leaderboard *fetcher.LeaderboardSummary) []string {
	lines := []string{
		"---",
		"",
		"## 国产模型排行榜 (LM Arena)",
		"",
	}

	if len(leaderboard.TopGlobal) > 0 {
		lines = append(lines,
			"### 全球 Top 5",
			"",
			"| 排名 | 模型 | ELO 分数 |",
			"|-----|------|---------|",
		)
		for _, m := range leaderboard.TopGlobal {
			lines = append(lines, fmt.Sprintf("| %d | %s | %.0f |", m.Rank, truncateModelName(m.Model, 45), m.Score))
		}
		lines = append(lines, "")
	}

	if len(leaderboard.ChineseModels) > 0 {
		lines = append(lines,
			"### 国产模型排名",
			"",
			"| 全球排名 | 模型 | ELO 分数 |",
			"|---------|------|---------|",
		)
		shown := leaderboard.ChineseModels
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, m := range shown {
			lines = append(lines, fmt.Sprintf("| %d | %s | %.0f |", m.Rank, truncateModelName(m.Model, 45), m.Score))
		}
		lines = append(lines,
			"",
			fmt.Sprintf("*数据来源: [LM Arena](https://lmarena.ai/) | [原始数据](https://github.com/nakasyou/lmarena-history) | 数据日期: %s*", leaderboard.Date),
			"",
		)
	} else {
		lines = append(lines, "暂无排行榜数据。", "")
	}

	return lines
}

func formatArticle(item *pipeline.NewsItem) []string {
	lines := []string{fmt.Sprintf("### %s", item.Title), ""}

	meta := fmt.Sprintf("**来源**: %s", item.Source)
	if item.PublishedAt != nil {
		meta += fmt.Sprintf(" | **时间**: %s", item.PublishedAt.Format("2006-01-02 15:04"))
	}
	if len(item.TopicsMatched) > 0 {
		meta += fmt.Sprintf(" | **关键词**: %s", strings.Join(item.TopicsMatched, "、"))
	}
	lines = append(lines, meta, "")

	if item.Summary != "" {
		summary := item.Summary
		if runes := []rune(summary); len(runes) > maxSummaryInReport {
			summary = string(runes[:maxSummaryInReport])
		}
		lines = append(lines, summary, "")
	}

	if item.URL != "" {
		lines = append(lines, fmt.Sprintf("[阅读原文](%s)", item.URL), "")
	}

	return lines
}

func truncateModelName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return name
}
