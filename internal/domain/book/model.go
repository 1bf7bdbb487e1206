package book

// Book - сохраненная запись каталога. CoverID задается только при создании.
type Book struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	CoverID *int   `json:"cover_id"`
}
