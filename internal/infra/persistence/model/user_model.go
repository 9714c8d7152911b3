package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username  string `gorm:"type:varchar(100);index"`
	Password  string `gorm:"type:varchar(255);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time

	Articles []ArticleModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
