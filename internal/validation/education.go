package validation

import "github.com/thereayou/devconnector/internal/handlers/dto"

func Education(in dto.EducationRequest) (Errors, bool) {
	errs := Errors{}

	if normalize(in.School) == "" {
		errs["school"] = "School field is required"
	}
	if normalize(in.Degree) == "" {
		errs["degree"] = "Degree field is required"
	}
	if normalize(in.FieldOfStudy) == "" {
		errs["fieldofstudy"] = "Field of study field is required"
	}
	checkPeriod(errs, in.From, in.To)

	return result(errs)
}
