package book

import "bookshelf/internal/domain/book"

type listOutput struct {
	Body []book.Book
}

type idInput struct {
	ID int `path:"id" minimum:"1" example:"1" doc:"ID книги"`
}

type bookOutput struct {
	Body book.Book
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Title   string `json:"title" minLength:"1" doc:"Название"`
	Author  string `json:"author,omitempty" doc:"Автор"`
	CoverID *int   `json:"cover_id,omitempty" doc:"ID обложки Open Library"`
}

type updateInput struct {
	ID   int `path:"id" minimum:"1" example:"1" doc:"ID книги"`
	Body updateRequest
}

// updateRequest не содержит cover_id, обложка задается только при добавлении
type updateRequest struct {
	Title  string `json:"title" minLength:"1" doc:"Название"`
	Author string `json:"author,omitempty" doc:"Автор"`
}
