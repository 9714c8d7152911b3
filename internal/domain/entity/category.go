package entity

// Category groups articles. Deleting a category never deletes its articles.
type Category struct {
	ID   int64
	Name string
}
