package model

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`

	Articles []ArticleModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
