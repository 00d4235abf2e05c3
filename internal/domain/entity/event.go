package entity

import (
	"time"
)

// EventType 活动类型
type EventType string

const (
	EventTypeFestival EventType = "festival"
	EventTypeGacha    EventType = "gacha"
	EventTypeLogin    EventType = "login"
	EventTypeRanking  EventType = "ranking"
)

// Event 游戏活动实体
type Event struct {
	ID            string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocalizedName `gorm:"embedded"`
	Type          EventType `json:"type" gorm:"type:varchar(20);index"`
	StartAt       time.Time `json:"start_at" gorm:"index"`
	EndAt         time.Time `json:"end_at"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Event) TableName() string {
	return "events"
}

// IsActive 判断活动在给定时刻是否进行中
func (e *Event) IsActive(at time.Time) bool {
	return !at.Before(e.StartAt) && at.Before(e.EndAt)
}

// NewEvent 创建新活动
func NewEvent(name LocalizedName, eventType EventType, startAt, endAt time.Time) *Event {
	now := time.Now()
	return &Event{
		LocalizedName: name,
		Type:          eventType,
		StartAt:       startAt,
		EndAt:         endAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
