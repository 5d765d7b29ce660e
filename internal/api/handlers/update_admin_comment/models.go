package update_admin_comment

// UpdateAdminCommentRequest запрос на установку комментария администратора.
// Пустая строка очищает комментарий.
type UpdateAdminCommentRequest struct {
	AdminComment string `json:"adminComment"`
}
