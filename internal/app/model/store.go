package model

import (
	"time"
)

type Store struct {
	ID            uint      `gorm:"primarykey" json:"id"`                   // 고유 매장 ID
	Name          string    `gorm:"type:varchar(60);not null" json:"name"`  // 매장명 (20-60자)
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`      // 매장 이메일
	Address       string    `gorm:"type:varchar(400)" json:"address"`       // 매장 주소 (최대 400자)
	OwnerID       uint      `gorm:"not null;index" json:"owner_id"`         // 매장 소유자 ID
	Owner         User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"owner,omitempty"`
	AverageRating *float64  `gorm:"type:decimal(3,2)" json:"average_rating"` // 파생 평균 평점 (평가 없으면 null)
	CreatedAt     time.Time `json:"created_at"`                             // 생성 시각
	UpdatedAt     time.Time `json:"updated_at"`                             // 수정 시각

	Ratings []Rating `gorm:"foreignKey:StoreID" json:"ratings,omitempty"` // 매장 평가 목록
}

func (Store) TableName() string {
	return "stores"
}
