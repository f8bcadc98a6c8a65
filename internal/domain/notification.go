package domain

type Notification struct {
	Details string `json:"details" csv:"details"`
	Date    string `json:"date" csv:"date"`
	User    string `json:"user" csv:"user"`
	Avatar  string `json:"avatar" csv:"avatar"`
}

// NotificationsSnapshot é o conteúdo do documento notifications/main, em ordem de inserção
type NotificationsSnapshot struct {
	Notifications []Notification `json:"notifications"`
}
