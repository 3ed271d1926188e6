package handler

type registerAssignationRequest struct {
	UserID    int64 `json:"userId"    validate:"required"`
	AccountID int64 `json:"accountId" validate:"required"`
}
