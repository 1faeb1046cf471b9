package repository

import (
	"context"

	"via-sacra/internal/domain"
)

// ContentRepository 定义了祈祷文内容的只读查询以及一次性的种子写入。
type ContentRepository interface {
	// GetIntro 返回开场祷文；未初始化时返回 ErrIntroNotFound。
	GetIntro(ctx context.Context) (*domain.IntroText, error)

	// ListStations 按 ID 升序返回站点，最多 limit 条。
	ListStations(ctx context.Context, limit int) ([]domain.Station, error)

	// GetStation 根据编号查找站点；不存在时返回 ErrStationNotFound。
	GetStation(ctx context.Context, id int) (*domain.Station, error)

	// ListFinalPrayers 按种子顺序返回结束祷文，最多 limit 条。
	ListFinalPrayers(ctx context.Context, limit int) ([]domain.FinalPrayer, error)

	// Counts 返回三类内容的记录数。
	Counts(ctx context.Context) (domain.ContentCounts, error)

	// Seed 在一个事务中写入全部内容。
	Seed(ctx context.Context, seed *domain.ContentSeed) error
}
