package validation

import "github.com/thereayou/devconnector/internal/handlers/dto"

func Register(in dto.RegisterRequest) (Errors, bool) {
	errs := Errors{}

	name := normalize(in.Name)
	email := normalize(in.Email)
	password := normalize(in.Password)
	password2 := normalize(in.Password2)

	if !isLength(name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}
	if name == "" {
		errs["name"] = "Name field is required"
	}

	if email == "" {
		errs["email"] = "Email field is required"
	} else if !isEmail(email) {
		errs["email"] = "Email is invalid"
	}

	if password == "" {
		errs["password"] = "Password field is required"
	} else if !isLength(password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}

	if password2 == "" {
		errs["password2"] = "Confirm Password field is required"
	} else if password != password2 {
		errs["password2"] = "Passwords must match"
	}

	return result(errs)
}
