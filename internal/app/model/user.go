package model

import (
	"time"
)

type UserRole string // 사용자 권한 타입

const (
	RoleAdmin UserRole = "admin" // 플랫폼 관리자
	RoleUser  UserRole = "user"  // 일반 사용자 (매장 평가 가능)
	RoleOwner UserRole = "owner" // 매장 소유자
)

// ValidRole reports whether s is a member of the closed role set.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                        // 사용자 ID
	Name         string    `gorm:"type:varchar(60);not null" json:"name"`      // 이름 (20-60자)
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`          // 이메일
	PasswordHash string    `gorm:"not null" json:"-"`                          // 비밀번호 해시
	Address      string    `gorm:"type:varchar(400)" json:"address"`           // 주소 (최대 400자)
	Role         UserRole  `gorm:"type:varchar(20);default:'user'" json:"role"` // 권한
	CreatedAt    time.Time `json:"created_at"`                                 // 생성 시각
	UpdatedAt    time.Time `json:"updated_at"`                                 // 수정 시각

	Stores []Store `gorm:"foreignKey:OwnerID" json:"stores,omitempty"` // 소유 매장 목록 (owner용)
}

func (User) TableName() string {
	return "users"
}
