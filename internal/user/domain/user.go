package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// User 用户实体，本服务只读
type User struct {
	gorm.Model
	Email    string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Nickname string `gorm:"column:nickname;type:varchar(100);not null"`
}

func (User) TableName() string { return "users" }

// UserRepository 用户仓储
type UserRepository interface {
	// GetByID 按 ID 查询，用户不存在时返回 ErrUserNotFound
	GetByID(ctx context.Context, id uint) (*User, error)
}
