package request

type CreateIncidentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateIncidentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
