package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/ai-news-tracker/internal/llm"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
)

// maxArticlesInPrompt 最多取 20 篇避免超长
const maxArticlesInPrompt = 20

// maxSummaryInPrompt 单篇摘要在 prompt 中的截断长度
const maxSummaryInPrompt = 200

const systemPrompt = `你是一个专业的 AI 资讯分析师，专注于国产大模型领域。
你的任务是分析当日的 AI 资讯，并生成简洁的中文摘要。

要求：
1. 总结要点：提炼 3-5 条最重要的资讯要点
2. 语言简洁：每条要点不超过 50 字
3. 突出重点：优先关注模型发布、技术突破、重要合作等
4. 客观中立：只陈述事实，不添加主观评价`

const summaryPromptTemplate = `以下是今日收集的 AI 资讯列表：

%s

请根据以上资讯，生成今日要点总结。格式如下：

## 今日要点

1. [要点1]
2. [要点2]
3. [要点3]
...

如果资讯较少或没有特别重要的内容，可以适当减少要点数量。`

// EmptySummary 无资讯时的占位总结
const EmptySummary = "## 今日要点\n\n暂无相关资讯。"

// FallbackSummary 总结生成失败时的占位文本
const FallbackSummary = "## 今日要点\n\n总结生成失败，请查看详细资讯列表。"

// llmChat 调用 LLM 的接口（便于测试注入 mock）
type llmChat interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
	MaxInputTokens() int
}

// Summarizer 使用 LLM 将过滤后的资讯列表总结为今日要点
type Summarizer struct {
	llmClient llmChat
}

func NewSummarizer(llmClient *llm.Client) *Summarizer {
	return &Summarizer{llmClient: llmClient}
}

// Summarize 生成资讯总结。条目为空时返回占位总结，不调用 LLM。
func (s *Summarizer) Summarize(ctx context.Context, items []*pipeline.NewsItem) (string, error) {
	if len(items) == 0 {
		return EmptySummary, nil
	}

	articlesText := s.buildArticlesText(items)
	prompt := fmt.Sprintf(summaryPromptTemplate, articlesText)

	logger.Infof("[Summarizer] 正在生成 AI 总结，共 %d 条资讯", len(items))
	summary, err := s.llmClient.Chat(ctx, systemPrompt, prompt, 0.5)
	if err != nil {
		return "", fmt.Errorf("生成总结失败: %w", err)
	}

	logger.Infof("[Summarizer] 总结生成完成")
	return summary, nil
}

// buildArticlesText 将资讯列表转换为编号文本，并控制在输入 token 预算内
func (s *Summarizer) buildArticlesText(items []*pipeline.NewsItem) string {
	if len(items) > maxArticlesInPrompt {
		items = items[:maxArticlesInPrompt]
	}

	budget := s.llmClient.MaxInputTokens()
	var sb strings.Builder
	used := 0

	for i, item := range items {
		var entry strings.Builder
		entry.WriteString(fmt.Sprintf("%d. 【%s】%s\n", i+1, item.Source, item.Title))
		if item.Summary != "" {
			summary := item.Summary
			if runes := []rune(summary); len(runes) > maxSummaryInPrompt {
				summary = string(runes[:maxSummaryInPrompt])
			}
			entry.WriteString(fmt.Sprintf("   摘要：%s\n", summary))
		}
		entry.WriteString("\n")

		tokens := llm.EstimateTokens(entry.String())
		if budget > 0 && used+tokens > budget && sb.Len() > 0 {
			logger.Warnf("[Summarizer] 输入超出 token 预算，截断至前 %d 条资讯", i)
			break
		}
		sb.WriteString(entry.String())
		used += tokens
	}

	return strings.TrimRight(sb.String(), "\n")
}
