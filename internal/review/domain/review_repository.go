package domain

import "context"

// ReviewRepository 评价仓储。写操作的原子性由实现保证。
type ReviewRepository interface {
	// Create 在单个事务内完成"查重 + 插入"：已存在未删除评价时
	// 返回 ErrReviewAlreadyExists，包括并发场景下由唯一索引兜底的情况。
	Create(ctx context.Context, review *Review) error
	// GetByID 按 ID 查询未删除的评价，不存在或已软删除时返回 ErrReviewDoesNotExist
	GetByID(ctx context.Context, id uint) (*Review, error)
	// UpdateContent 原地覆盖标题与内容，保留创建时间；
	// 目标不存在或已软删除时返回 ErrReviewDoesNotExist
	UpdateContent(ctx context.Context, id uint, title, content string) (*Review, error)
	// ListByProduct 分页列出商品的未删除评价，最新优先
	ListByProduct(ctx context.Context, productID uint, offset, limit int) ([]*Review, error)
}
