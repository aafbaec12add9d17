package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockOpenAIClient 模拟 OpenAI 客户端
type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// newTestClient 创建用于测试的客户端，注入 mock
func newTestClient(cfg *config.LLM, mockClient openAIClientInterface) *Client {
	maxInputTokens := cfg.MaxTokens - 2000
	if maxInputTokens <= 0 {
		maxInputTokens = 6000
	}
	return &Client{
		config:         cfg,
		openaiClient:   mockClient,
		maxInputTokens: maxInputTokens,
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMin int
		wantMax int
	}{
		{"空文本", "", 0, 0},
		{"纯中文", "这是一段中文测试文本", 8, 50},
		{"纯英文", "This is a test message", 4, 30},
		{"中英混合", "Hello 世界 test 测试", 4, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTokens(tt.text)
			assert.GreaterOrEqual(t, got, tt.wantMin)
			assert.LessOrEqual(t, got, tt.wantMax)
		})
	}
}

func TestChat_Success(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return len(req.Messages) == 2 &&
			req.Messages[0].Role == openai.ChatMessageRoleSystem &&
			req.Messages[1].Role == openai.ChatMessageRoleUser
	})).Return(openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "## 今日要点\n\n1. DeepSeek 开源新模型"}},
		},
	}, nil)

	client := newTestClient(&config.LLM{Model: "glm-4-flash", MaxTokens: 10000}, mockAPI)
	result, err := client.Chat(context.Background(), "系统提示", "用户输入", 0.5)
	assert.NoError(t, err)
	assert.Equal(t, "## 今日要点\n\n1. DeepSeek 开源新模型", result)
	mockAPI.AssertExpectations(t)
}

func TestChat_NoSystemPrompt(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return len(req.Messages) == 1 && req.Messages[0].Role == openai.ChatMessageRoleUser
	})).Return(openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "ok"}},
		},
	}, nil)

	client := newTestClient(&config.LLM{Model: "test", MaxTokens: 10000}, mockAPI)
	result, err := client.Chat(context.Background(), "", "输入", 0.5)
	assert.NoError(t, err)
	assert.Equal(t, "ok", result)
	mockAPI.AssertExpectations(t)
}

func TestChat_TrimsMarkdownCodeBlock(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "```markdown\n## 今日要点\n```"}},
			},
		}, nil)

	client := newTestClient(&config.LLM{Model: "test", MaxTokens: 10000}, mockAPI)
	result, err := client.Chat(context.Background(), "", "输入", 0.5)
	assert.NoError(t, err)
	assert.Equal(t, "## 今日要点", result)
}

func TestChat_APIError(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("api error"))

	client := newTestClient(&config.LLM{Model: "test", MaxTokens: 10000}, mockAPI)
	_, err := client.Chat(context.Background(), "", "输入", 0.5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "调用 LLM API 失败")
}

func TestChat_EmptyResponse(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{Choices: nil}, nil)

	client := newTestClient(&config.LLM{Model: "test", MaxTokens: 10000}, mockAPI)
	_, err := client.Chat(context.Background(), "", "输入", 0.5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "返回空结果")
}
