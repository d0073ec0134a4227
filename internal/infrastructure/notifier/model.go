package notifier

type sendRequest struct {
	Purpose string            `json:"purpose"`
	Target  string            `json:"target"`
	Params  map[string]string `json:"params"`
}

type sendResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	MessageID   string `json:"message_id"`
}
