package dto

// PostRequest используется и для постов, и для комментариев
type PostRequest struct {
	Text   string `json:"text" form:"text"`
	Name   string `json:"name" form:"name"`
	Avatar string `json:"avatar" form:"avatar"`
}
