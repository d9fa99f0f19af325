package model

import (
	"time"
)

// Rating 매장 평가 모델
// (store_id, user_id) 쌍당 단 하나의 평가만 존재한다. 재제출 시 덮어쓴다.
type Rating struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StoreID uint    `gorm:"not null;index:idx_store_user_rating,unique" json:"store_id"` // 매장 ID
	Store   Store   `gorm:"foreignKey:StoreID" json:"-"`
	UserID  uint    `gorm:"not null;index:idx_store_user_rating,unique" json:"user_id"` // 평가자 ID
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Rating  int     `gorm:"not null" json:"rating"`            // 평점 (1-5)
	Comment *string `gorm:"type:text" json:"comment,omitempty"` // 코멘트 (선택)
}

func (Rating) TableName() string {
	return "ratings"
}
