package validation

import "github.com/thereayou/devconnector/internal/handlers/dto"

func Profile(in dto.ProfileRequest) (Errors, bool) {
	errs := Errors{}

	handle := normalize(in.Handle)
	if !isLength(handle, 2, 40) {
		errs["handle"] = "Handle needs to between 2 and 40 characters"
	}
	if handle == "" {
		errs["handle"] = "Profile handle is required"
	}

	if normalize(in.Status) == "" {
		errs["status"] = "Status field is required"
	}
	if normalize(in.Skills) == "" {
		errs["skills"] = "Skills field is required"
	}

	links := map[string]string{
		"website":   in.Website,
		"youtube":   in.YouTube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.LinkedIn,
		"instagram": in.Instagram,
	}
	for field, value := range links {
		if v := normalize(value); v != "" && !isURL(v) {
			errs[field] = "Not a valid URL"
		}
	}

	return result(errs)
}
