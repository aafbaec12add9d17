package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/ai-news-tracker/internal/config"
	"github.com/fachebot/ai-news-tracker/internal/ent"
	"github.com/fachebot/ai-news-tracker/internal/fetcher"
	"github.com/fachebot/ai-news-tracker/internal/llm"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/model"
	"github.com/fachebot/ai-news-tracker/internal/notify"
	"github.com/fachebot/ai-news-tracker/internal/report"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config         *config.Config
	DbClient       *ent.Client
	HTTPClient     *http.Client
	ArticleModel   *model.ArticleModel
	DailyRunModel  *model.DailyRunModel
	LLMClient      *llm.Client
	Aggregator     *fetcher.Aggregator
	Leaderboard    *fetcher.LeaderboardFetcher
	FeishuNotifier *notify.FeishuNotifier
	MarkdownReport *report.MarkdownReport
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建HTTP客户端，可选SOCKS5代理
	httpClient := http.DefaultClient
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		httpClient = &http.Client{
			Transport: &http.Transport{
				Dial:            dialer.Dial,
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	// LLM APIKey 未配置时跳过 AI 总结
	var llmClient *llm.Client
	if c.LLM.APIKey != "" {
		llmClient = llm.NewClient(&c.LLM)
	} else {
		logger.Warnf("LLM.APIKey 未配置，将跳过 AI 总结")
	}

	rss := fetcher.NewRSSFetcher(c.RSSSources, httpClient)
	gnews := fetcher.NewGNewsFetcher(&c.GNews, httpClient)

	svcCtx := &ServiceContext{
		Config:         c,
		DbClient:       client,
		HTTPClient:     httpClient,
		ArticleModel:   model.NewArticleModel(client.Article),
		DailyRunModel:  model.NewDailyRunModel(client.DailyRun),
		LLMClient:      llmClient,
		Aggregator:     fetcher.NewAggregator(rss, gnews),
		Leaderboard:    fetcher.NewLeaderboardFetcher(c.Leaderboard.DataURL, httpClient),
		FeishuNotifier: notify.NewFeishuNotifier(&c.Feishu, httpClient),
		MarkdownReport: report.NewMarkdownReport(c.Report.OutputDir),
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
