package model

// Portfolio is the user-editable site content. Data starts as the parsed
// resume and diverges as the user edits it in place.
type Portfolio struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Template  string `json:"template"`
	Data      string `json:"data"`
	Published bool   `json:"published"`
	Ctime     int64  `json:"ctime"`
	Mtime     int64  `json:"mtime"`
}
