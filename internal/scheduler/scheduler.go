package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/ai-news-tracker/internal/ent/dailyrun"
	"github.com/fachebot/ai-news-tracker/internal/fetcher"
	"github.com/fachebot/ai-news-tracker/internal/logger"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
	"github.com/fachebot/ai-news-tracker/internal/summarizer"
	"github.com/fachebot/ai-news-tracker/internal/svc"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron       *cron.Cron
	svcCtx     *svc.ServiceContext
	pipeline   *pipeline.Pipeline
	recency    *pipeline.RecencyFilter
	summarizer *summarizer.Summarizer
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
}

// locUTC UTC 标准时间（UTC）
var locUTC = time.UTC

func NewScheduler(svcCtx *svc.ServiceContext) *Scheduler {
	recencyHours := svcCtx.Config.Tracker.RecencyHours
	if recencyHours <= 0 {
		recencyHours = 24
	}

	var newsSummarizer *summarizer.Summarizer
	if svcCtx.LLMClient != nil {
		newsSummarizer = summarizer.NewSummarizer(svcCtx.LLMClient)
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(locUTC)),
		svcCtx:     svcCtx,
		pipeline:   pipeline.New(svcCtx.Config.Topics),
		recency:    pipeline.NewRecencyFilter(time.Duration(recencyHours) * time.Hour),
		summarizer: newsSummarizer,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	// 注册每日追踪任务
	_, err := s.cron.AddFunc(s.svcCtx.Config.Tracker.Cron, s.runDailyTracker)
	if err != nil {
		return fmt.Errorf("注册每日追踪任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，每日追踪任务: %s", s.svcCtx.Config.Tracker.Cron)

	// 启动时恢复未完成的任务
	go s.recoverDailyRuns()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// RunOnce 立即执行一次完整追踪流程（用于 -once 模式和手动触发）
func (s *Scheduler) RunOnce(ctx context.Context) error {
	runDate := time.Now().In(locUTC).Format("2006-01-02")

	run, err := s.svcCtx.DailyRunModel.GetOrCreate(ctx, runDate, dailyrun.StatusInProgress)
	if err != nil {
		return fmt.Errorf("获取或创建 DailyRun 失败: %w", err)
	}
	if run.Status == dailyrun.StatusCompleted {
		logger.Infof("[Scheduler] 当日 DailyRun 已完成，跳过")
		return nil
	}

	if err := s.executeRun(ctx, run.ID, runDate); err != nil {
		_ = s.svcCtx.DailyRunModel.MarkFailed(ctx, run.ID, err.Error())
		return err
	}
	return s.svcCtx.DailyRunModel.MarkCompleted(ctx, run.ID)
}

// recoverDailyRuns 恢复启动前未完成的 DailyRun（程序崩溃或中途退出）
func (s *Scheduler) recoverDailyRuns() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	incompleteRuns, err := s.svcCtx.DailyRunModel.GetIncompleteRuns(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] 查询未完成 DailyRun 失败: %v", err)
		return
	}
	if len(incompleteRuns) == 0 {
		return
	}

	logger.Infof("[Scheduler] 找到 %d 个未完成的 DailyRun，开始恢复", len(incompleteRuns))
	for _, run := range incompleteRuns {
		select {
		case <-ctx.Done():
			logger.Infof("[Scheduler] 恢复已取消")
			return
		default:
		}

		logger.Infof("[Scheduler] 恢复未完成 DailyRun: %s", run.RunDate)
		if err := s.executeRun(ctx, run.ID, run.RunDate); err != nil {
			logger.Errorf("[Scheduler] 恢复 DailyRun 失败: %v", err)
			_ = s.svcCtx.DailyRunModel.MarkFailed(ctx, run.ID, err.Error())
		} else {
			_ = s.svcCtx.DailyRunModel.MarkCompleted(ctx, run.ID)
		}
	}
	logger.Infof("[Scheduler] DailyRun 恢复完成")
}

// runDailyTracker 执行每日追踪任务（cron 触发）
func (s *Scheduler) runDailyTracker() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	logger.Infof("[Scheduler] 开始执行每日追踪任务")
	if err := s.RunOnce(ctx); err != nil {
		logger.Errorf("[Scheduler] 每日追踪执行失败: %v", err)
		return
	}
	logger.Infof("[Scheduler] 每日追踪任务完成")
}

// executeRun 执行完整追踪流程：抓取、流水线处理、持久化、总结、日报、通知、清理
func (s *Scheduler) executeRun(ctx context.Context, runID int, runDate string) error {
	// 1. 抓取（带重试）
	payloads, err := s.fetchWithRetry(ctx)
	if err != nil {
		return err
	}

	// 2. 归一化、去重、关键词过滤
	items, runSummary, err := s.pipeline.Run(payloads)
	if err != nil {
		return fmt.Errorf("流水线处理失败: %w", err)
	}

	// 3. 时间过滤：只保留最近窗口内的资讯
	items, dropped := s.recency.Filter(items)
	if dropped > 0 {
		logger.Infof("[Scheduler] 时间过滤排除 %d 条过期资讯", dropped)
	}

	_ = s.svcCtx.DailyRunModel.SetCounts(ctx, runID, runSummary.FetchedCount, len(items))

	// 无相关资讯时跳过总结和通知
	if len(items) == 0 {
		logger.Infof("[Scheduler] 无相关资讯，跳过总结和通知")
		s.cleanupArticles(ctx)
		return nil
	}

	// 4. 持久化当日资讯
	if err := s.svcCtx.ArticleModel.SaveRun(ctx, runDate, items); err != nil {
		logger.Errorf("[Scheduler] 保存资讯失败: %v", err)
	}

	// 5. 排行榜（尽力而为，失败不影响日报）
	var leaderboard *fetcher.LeaderboardSummary
	if s.svcCtx.Config.Leaderboard.Enable {
		leaderboard = s.fetchLeaderboard(ctx)
	}

	// 6. AI 总结（带重试，最终失败时使用占位文本）
	summary := s.generateSummary(ctx, items)

	// 7. 生成 Markdown 日报
	date, _ := time.ParseInLocation("2006-01-02", runDate, locUTC)
	if _, err := s.svcCtx.MarkdownReport.Generate(items, summary, date, leaderboard); err != nil {
		logger.Errorf("[Scheduler] 生成日报失败: %v", err)
	}

	// 8. 飞书通知（仅重试发送；通知失败不影响任务完成状态）
	s.sendNotification(ctx, summary, items, leaderboard)

	// 9. 清理过期资讯
	s.cleanupArticles(ctx)
	return nil
}

// fetchWithRetry 抓取所有数据源，全部源为空时按失败重试
func (s *Scheduler) fetchWithRetry(ctx context.Context) ([]pipeline.SourcePayload, error) {
	retryTimes, retryInterval := s.retryPolicy()

	var payloads []pipeline.SourcePayload
	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("任务已取消")
		default:
		}

		payloads = s.svcCtx.Aggregator.FetchAll(ctx, s.svcCtx.Config.Topics)
		if len(payloads) > 0 {
			return payloads, nil
		}

		logger.Warnf("[Scheduler] 所有数据源抓取失败 (第 %d/%d 次)", attempt, retryTimes)
		if attempt < retryTimes {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("任务已取消")
			case <-time.After(retryInterval):
			}
		}
	}

	return nil, fmt.Errorf("所有数据源抓取失败，已重试 %d 次", retryTimes)
}

// fetchLeaderboard 获取排行榜数据，失败只记录日志
func (s *Scheduler) fetchLeaderboard(ctx context.Context) *fetcher.LeaderboardSummary {
	topN := s.svcCtx.Config.Leaderboard.TopN
	if topN <= 0 {
		topN = 10
	}

	leaderboard, err := s.svcCtx.Leaderboard.Summary(ctx, topN)
	if err != nil {
		logger.Warnf("[Scheduler] 获取排行榜失败: %v", err)
		return nil
	}
	return leaderboard
}

// generateSummary 生成 AI 总结（带重试）。未配置 LLM 或最终失败时使用占位文本。
func (s *Scheduler) generateSummary(ctx context.Context, items []*pipeline.NewsItem) string {
	if s.summarizer == nil {
		logger.Infof("[Scheduler] 未配置 LLM，跳过 AI 总结")
		return summarizer.FallbackSummary
	}

	retryTimes, retryInterval := s.retryPolicy()

	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return summarizer.FallbackSummary
		default:
		}

		summary, err := s.summarizer.Summarize(ctx, items)
		if err == nil {
			return summary
		}

		logger.Warnf("[Scheduler] AI 总结失败 (第 %d/%d 次): %v", attempt, retryTimes, err)
		if attempt < retryTimes {
			select {
			case <-ctx.Done():
				return summarizer.FallbackSummary
			case <-time.After(retryInterval):
			}
		}
	}

	logger.Errorf("[Scheduler] AI 总结失败，使用占位文本")
	return summarizer.FallbackSummary
}

// sendNotification 发送飞书通知，仅重试发送；失败不影响任务完成状态
func (s *Scheduler) sendNotification(ctx context.Context, summary string, items []*pipeline.NewsItem, leaderboard *fetcher.LeaderboardSummary) {
	_, retryInterval := s.retryPolicy()

	notifyRetryTimes := 2
	for attempt := 1; attempt <= notifyRetryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := s.svcCtx.FeishuNotifier.SendReport(ctx, summary, items, leaderboard)
		if err == nil {
			return
		}
		logger.Warnf("[Scheduler] 通知发送失败 (第 %d/%d 次): %v", attempt, notifyRetryTimes, err)
		if attempt < notifyRetryTimes {
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryInterval / 2):
			}
		}
	}

	logger.Errorf("[Scheduler] 通知发送失败，已重试 %d 次", notifyRetryTimes)
}

// cleanupArticles 清理保留期之前的资讯和运行记录
func (s *Scheduler) cleanupArticles(ctx context.Context) {
	retentionDays := s.svcCtx.Config.Tracker.RetentionDays
	if retentionDays <= 0 {
		return
	}

	cutoff := time.Now().In(locUTC).AddDate(0, 0, -retentionDays)
	logger.Infof("[Scheduler] 开始清理 %s 之前的资讯", cutoff.Format("2006-01-02"))

	deleted, err := s.svcCtx.ArticleModel.DeleteBefore(ctx, cutoff)
	if err != nil {
		logger.Errorf("[Scheduler] 清理资讯失败: %v", err)
	} else if deleted > 0 {
		logger.Infof("[Scheduler] 已清理 %d 条资讯", deleted)
	}

	if _, err := s.svcCtx.DailyRunModel.DeleteBefore(ctx, cutoff); err != nil {
		logger.Errorf("[Scheduler] 清理运行记录失败: %v", err)
	}
}

func (s *Scheduler) retryPolicy() (int, time.Duration) {
	retryTimes := s.svcCtx.Config.Tracker.RetryTimes
	if retryTimes <= 0 {
		retryTimes = 3
	}
	retryInterval := time.Duration(s.svcCtx.Config.Tracker.RetryInterval) * time.Second
	if retryInterval <= 0 {
		retryInterval = 60 * time.Second
	}
	return retryTimes, retryInterval
}
