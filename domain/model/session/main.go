package session

// Session は会話の持ち主を識別します。プロセスの生存期間中は固定です。
type Session struct {
	UserID int
}

func NewSession(userID int) Session {
	return Session{UserID: userID}
}
