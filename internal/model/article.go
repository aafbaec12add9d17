package model

import (
	"context"
	"time"

	"github.com/fachebot/ai-news-tracker/internal/ent"
	"github.com/fachebot/ai-news-tracker/internal/ent/article"
	"github.com/fachebot/ai-news-tracker/internal/pipeline"
)

type ArticleModel struct {
	client *ent.ArticleClient
}

func NewArticleModel(client *ent.ArticleClient) *ArticleModel {
	return &ArticleModel{client: client}
}

// SaveRun 保存某一天的资讯列表，已存在的当天记录先清空再写入
func (m *ArticleModel) SaveRun(ctx context.Context, runDate string, items []*pipeline.NewsItem) error {
	_, err := m.client.Delete().
		Where(article.RunDateEQ(runDate)).
		Exec(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}

	builders := make([]*ent.ArticleCreate, 0, len(items))
	for _, item := range items {
		create := m.client.Create().
			SetRunDate(runDate).
			SetTitle(item.Title).
			SetURL(item.URL).
			SetSource(item.Source).
			SetSummary(item.Summary).
			SetTopics(item.TopicsMatched)
		if item.PublishedAt != nil {
			create.SetPublishedAt(*item.PublishedAt)
		}
		builders = append(builders, create)
	}

	return m.client.CreateBulk(builders...).Exec(ctx)
}

// GetByRunDate 查询某一天的资讯，按发布时间排序
func (m *ArticleModel) GetByRunDate(ctx context.Context, runDate string) ([]*ent.Article, error) {
	return m.client.Query().
		Where(article.RunDateEQ(runDate)).
		Order(article.ByPublishedAt()).
		All(ctx)
}

// DeleteBefore 删除指定日期之前的资讯，用于保留期清理
func (m *ArticleModel) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	return m.client.Delete().
		Where(article.RunDateLT(cutoff.Format("2006-01-02"))).
		Exec(ctx)
}
