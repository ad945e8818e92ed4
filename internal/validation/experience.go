package validation

import "github.com/thereayou/devconnector/internal/handlers/dto"

func Experience(in dto.ExperienceRequest) (Errors, bool) {
	errs := Errors{}

	if normalize(in.Title) == "" {
		errs["title"] = "Job title field is required"
	}
	if normalize(in.Company) == "" {
		errs["company"] = "Company field is required"
	}
	checkPeriod(errs, in.From, in.To)

	return result(errs)
}

// checkPeriod from обязателен, to опционален; оба в формате YYYY-MM-DD
func checkPeriod(errs Errors, from, to string) {
	from, to = normalize(from), normalize(to)

	if from == "" {
		errs["from"] = "From date field is required"
	} else if !isDate(from) {
		errs["from"] = "From date is invalid"
	}

	if to != "" && !isDate(to) {
		errs["to"] = "To date is invalid"
	}
}
