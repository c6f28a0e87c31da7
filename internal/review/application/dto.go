package application

import (
	"time"

	"github.com/wyfcoding/petstore/internal/review/domain"
)

// ReviewDTO 评价数据传输对象
type ReviewDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	ProductID uint      `json:"productId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toReviewDTO(r *domain.Review) *ReviewDTO {
	return &ReviewDTO{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toReviewDTOs(reviews []*domain.Review) []*ReviewDTO {
	dtos := make([]*ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		dtos = append(dtos, toReviewDTO(r))
	}
	return dtos
}
