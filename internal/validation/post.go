package validation

import "github.com/thereayou/devconnector/internal/handlers/dto"

// Post проверяет текст поста или комментария
func Post(in dto.PostRequest) (Errors, bool) {
	errs := Errors{}

	text := normalize(in.Text)
	if !isLength(text, 8, 300) {
		errs["text"] = "Length must be between 8 to 300 characters"
	}
	if text == "" {
		errs["text"] = "Text field is required"
	}

	return result(errs)
}
