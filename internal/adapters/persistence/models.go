package persistence

import "time"

// StrategicStateModel represents the strategic_states table. One row per
// colony; the scheduler reads it tolerating staleness, the coordinator
// upserts it every refresh interval.
type StrategicStateModel struct {
	Colony      string    `gorm:"column:colony;primaryKey"`
	UpdatedTick int64     `gorm:"column:updated_tick;not null"`
	Phase       string    `gorm:"column:phase;not null"`
	Bottleneck  string    `gorm:"column:bottleneck"`
	Progress    float64   `gorm:"column:progress"`
	Budget      string    `gorm:"column:budget;type:text"`          // JSON as text
	Workforce   string    `gorm:"column:workforce;type:text"`       // JSON as text
	Transition  string    `gorm:"column:transition;type:text"`      // JSON as text
	Advice      string    `gorm:"column:recommendations;type:text"` // JSON array as text
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (StrategicStateModel) TableName() string {
	return "strategic_states"
}
