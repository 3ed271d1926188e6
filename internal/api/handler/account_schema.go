package handler

type registerAccountRequest struct {
	Name          string `json:"name"          validate:"required,min=1"`
	ClientID      int64  `json:"clientId"      validate:"required"`
	ResponsibleID int64  `json:"responsibleId" validate:"required"`
}

type updateAccountRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	ClientID      *int64  `json:"clientId"`
	ResponsibleID *int64  `json:"responsibleId"`
}
