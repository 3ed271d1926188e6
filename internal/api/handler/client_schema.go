package handler

type registerClientRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type updateClientRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

type updateArchivedRequest struct {
	Archived *bool `json:"archived" validate:"required"`
}
