package model

import (
	"github.com/haierkeys/quicknote/pkg/timex"

	"gorm.io/gorm"
)

const TableNameNote = "note"

// Note mapped from table <note>
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" type:"int64"`
	Title     string     `gorm:"column:title;type:varchar(100);not null" json:"title" type:"string"`
	Content   string     `gorm:"column:content;type:text;not null" json:"content" type:"string"`
	CreatedAt timex.Time `gorm:"column:created_at;index:idx_note_created_at;autoCreateTime" json:"createdAt" type:"timex.Time"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}

// AutoMigrate migrates one model by key; an empty key migrates everything.
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {
	case "Note", "":
		return db.AutoMigrate(&Note{})
	}
	return nil
}
