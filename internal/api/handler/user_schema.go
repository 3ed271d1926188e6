package handler

type registerUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type updateUserRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	TechSkills   *string `json:"techSkills"`
	ResumeLink   *string `json:"resumeLink"    validate:"omitempty,url"`
	EnglishLevel *string `json:"englishLevel"  validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
}

type updateEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
