package model

import "time"

// ArticleModel mirrors the 'articles' table. The category reference carries
// ON DELETE SET NULL so removing a category never removes its articles.
type ArticleModel struct {
	ID            int64  `gorm:"primaryKey"`
	Title         string `gorm:"type:varchar(255);not null"`
	Content       string `gorm:"type:text"`
	Published     bool   `gorm:"not null;default:true"`
	CategoryID    *int64 `gorm:"index;constraint:OnDelete:SET NULL"`
	NumberOfWords int    `gorm:"not null;default:0"`
	MinutesToRead int    `gorm:"not null;default:0"`
	Image         string `gorm:"type:varchar(1024)"`
	Slug          string `gorm:"type:varchar(255)"`
	Keywords      string `gorm:"type:varchar(1024)"`
	AuthorID      int64  `gorm:"index;not null"`
	ScheduledAt   *time.Time
	SourceURL      string `gorm:"type:varchar(2048)"`
	FetchTimestamp *time.Time
	ViewCount      int    `gorm:"not null;default:0"`
	ShortenedLink  string `gorm:"type:varchar(512)"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Author   *UserModel     `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (ArticleModel) TableName() string {
	return "articles"
}
