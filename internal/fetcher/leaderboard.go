package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/fachebot/ai-news-tracker/internal/logger"
)

// defaultLeaderboardURL lmarena-history 项目发布的排行数据
const defaultLeaderboardURL = "https://raw.githubusercontent.com/nakasyou/lmarena-history/main/output/scores.json"

// chineseModelKeywords 国产模型识别关键词
var chineseModelKeywords = []string{
	"deepseek", "qwen", "glm", "zhipu", "chatglm", "baichuan", "yi-",
	"internlm", "minimax", "moonshot", "kimi", "doubao", "ernie",
	"hunyuan", "sensechat", "step", "alibaba", "abab",
}

// ModelRank 排行榜上的单个模型
type ModelRank struct {
	Rank  int
	Model string
	Score float64
}

// LeaderboardSummary 排行榜摘要：全球前五与国产模型排名
type LeaderboardSummary struct {
	Date          string
	TopGlobal     []ModelRank
	ChineseModels []ModelRank
}

// LeaderboardFetcher 从 LM Arena 历史数据获取模型排行
type LeaderboardFetcher struct {
	client  *http.Client
	dataURL string
}

func NewLeaderboardFetcher(dataURL string, httpClient *http.Client) *LeaderboardFetcher {
	if dataURL == "" {
		dataURL = defaultLeaderboardURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &LeaderboardFetcher{client: httpClient, dataURL: dataURL}
}

// leaderboardData 数据结构为 {日期: {text: {overall: {模型: 分数}}}}
type leaderboardData map[string]struct {
	Text struct {
		Overall map[string]float64 `json:"overall"`
	} `json:"text"`
}

// Summary 获取排行榜摘要，topN 为国产模型显示数量
func (f *LeaderboardFetcher) Summary(ctx context.Context, topN int) (*LeaderboardSummary, error) {
	date, overall, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	ranked := rankModels(overall)

	chinese := make([]ModelRank, 0, topN)
	for _, m := range ranked {
		if isChineseModel(m.Model) {
			chinese = append(chinese, m)
			if len(chinese) >= topN {
				break
			}
		}
	}

	topGlobal := ranked
	if len(topGlobal) > 5 {
		topGlobal = topGlobal[:5]
	}

	logger.Infof("[LMArena] 数据日期 %s，共 %d 个模型，国产模型 %d 个", date, len(ranked), len(chinese))
	return &LeaderboardSummary{
		Date:          date,
		TopGlobal:     topGlobal,
		ChineseModels: chinese,
	}, nil
}

func (f *LeaderboardFetcher) load(ctx context.Context) (string, map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.dataURL, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("加载排行榜数据失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("排行榜数据返回状态码 %d", resp.StatusCode)
	}

	var raw leaderboardData
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", nil, fmt.Errorf("解析排行榜数据失败: %w", err)
	}
	if len(raw) == 0 {
		return "", nil, fmt.Errorf("排行榜数据为空")
	}

	// 取最新日期的 text/overall 数据
	dates := make([]string, 0, len(raw))
	for d := range raw {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	latest := dates[0]

	return latest, raw[latest].Text.Overall, nil
}

// rankModels 按 ELO 分数降序排名，分数相同时按名称保证确定性
func rankModels(overall map[string]float64) []ModelRank {
	models := make([]ModelRank, 0, len(overall))
	for name, score := range overall {
		models = append(models, ModelRank{Model: name, Score: score})
	}
	sort.Slice(models, func(i, j int) bool {
		if models[i].Score != models[j].Score {
			return models[i].Score > models[j].Score
		}
		return models[i].Model < models[j].Model
	})
	for i := range models {
		models[i].Rank = i + 1
	}
	return models
}

func isChineseModel(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range chineseModelKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
