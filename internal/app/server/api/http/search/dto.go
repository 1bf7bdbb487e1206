package search

type Input struct {
	Query string `query:"q" minLength:"1" doc:"Строка поиска по Open Library"`
}

type Output struct {
	Body []Result
}

type Result struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverID  *int   `json:"cover_id"`
	CoverURL string `json:"cover_url,omitempty" doc:"Ссылка на обложку размера M"`
}
