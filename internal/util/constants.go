package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// gin.Context 中的键
const (
	ContextSessionID = "sessionID"
)

// 页面状态键前缀
const (
	StatePageTutorial = "tutorial"
	StatePagePractice = "practice"
)
