package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig 从环境变量构建测试配置，若 LLM_API_KEY 未设置则跳过
func integrationTestConfig(t *testing.T) *config.LLM {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("跳过集成测试：请设置 LLM_API_KEY 环境变量")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://open.bigmodel.cn/api/paas/v4"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "glm-4-flash"
	}
	return &config.LLM{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     model,
		MaxTokens: 16000,
	}
}

func TestChat_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	userPrompt := `以下是今日收集的 AI 资讯列表：

1. 【机器之心】DeepSeek 开源新一代推理模型
   摘要：DeepSeek 今日宣布开源新一代推理模型，推理成本大幅下降。
2. 【36Kr】智谱发布 GLM 新版本
   摘要：智谱 AI 发布 GLM 系列新版本，多项基准测试成绩提升。

请根据以上资讯，生成今日要点总结。`

	result, err := client.Chat(ctx, "你是一个专业的 AI 资讯分析师。", userPrompt, 0.5)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	assert.Contains(t, result, "DeepSeek")
	t.Log("\n--- 总结 ---\n" + result)
}
