package model

import (
	"context"
	"time"

	"github.com/fachebot/ai-news-tracker/internal/ent"
	"github.com/fachebot/ai-news-tracker/internal/ent/dailyrun"
)

type DailyRunModel struct {
	client *ent.DailyRunClient
}

func NewDailyRunModel(client *ent.DailyRunClient) *DailyRunModel {
	return &DailyRunModel{client: client}
}

// Create 创建 DailyRun 记录
func (m *DailyRunModel) Create(ctx context.Context, runDate string, status dailyrun.Status) (*ent.DailyRun, error) {
	return m.client.Create().
		SetRunDate(runDate).
		SetStatus(status).
		Save(ctx)
}

// GetOrCreate 获取或创建 DailyRun（用于每日任务开始时）
// 若已存在相同日期的记录则返回现有记录
func (m *DailyRunModel) GetOrCreate(ctx context.Context, runDate string, status dailyrun.Status) (*ent.DailyRun, error) {
	existing, err := m.client.Query().
		Where(dailyrun.RunDateEQ(runDate)).
		First(ctx)

	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	return m.Create(ctx, runDate, status)
}

// GetByRunDate 查询指定日期的 DailyRun 记录
func (m *DailyRunModel) GetByRunDate(ctx context.Context, runDate string) (*ent.DailyRun, error) {
	return m.client.Query().
		Where(dailyrun.RunDateEQ(runDate)).
		First(ctx)
}

// GetIncompleteRuns 查询所有未完成的 DailyRun（pending 或 in_progress）
func (m *DailyRunModel) GetIncompleteRuns(ctx context.Context) ([]*ent.DailyRun, error) {
	return m.client.Query().
		Where(
			dailyrun.Or(
				dailyrun.StatusEQ(dailyrun.StatusPending),
				dailyrun.StatusEQ(dailyrun.StatusInProgress),
			),
		).
		Order(dailyrun.ByCreateTime()).
		All(ctx)
}

// SetCounts 记录抓取与过滤数量
func (m *DailyRunModel) SetCounts(ctx context.Context, id int, fetched, filtered int) error {
	return m.client.UpdateOneID(id).
		SetFetchedCount(fetched).
		SetFilteredCount(filtered).
		Exec(ctx)
}

// MarkCompleted 标记 DailyRun 完成
func (m *DailyRunModel) MarkCompleted(ctx context.Context, id int) error {
	return m.client.UpdateOneID(id).SetStatus(dailyrun.StatusCompleted).Exec(ctx)
}

// MarkFailed 标记 DailyRun 失败
func (m *DailyRunModel) MarkFailed(ctx context.Context, id int, errorMsg string) error {
	return m.client.UpdateOneID(id).
		SetStatus(dailyrun.StatusFailed).
		SetErrorMessage(errorMsg).
		Exec(ctx)
}

// DeleteBefore 删除指定日期之前的运行记录
func (m *DailyRunModel) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return m.client.Delete().
		Where(dailyrun.RunDateLT(cutoff.Format("2006-01-02"))).
		Exec(ctx)
}
