package types

// ToggleResponse 点赞/点踩切换结果
type ToggleResponse struct {
	Message string `json:"message"`
	Action  string `json:"action"` // created / changed / removed
	Status  string `json:"status"` // 当前状态，removed 时为空
}
