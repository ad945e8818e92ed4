package validation

import "github.com/thereayou/devconnector/internal/handlers/dto"

func Login(in dto.LoginRequest) (Errors, bool) {
	errs := Errors{}

	email := normalize(in.Email)
	password := normalize(in.Password)

	if email == "" {
		errs["email"] = "Email field is required"
	} else if !isEmail(email) {
		errs["email"] = "Email is invalid"
	}

	if password == "" {
		errs["password"] = "Password field is required"
	}

	return result(errs)
}
