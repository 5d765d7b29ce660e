package update_status

// UpdateStatusRequest запрос на прямую установку статуса
type UpdateStatusRequest struct {
	Status string `json:"status"` // "pending" | "in-progress" | "completed"
}
