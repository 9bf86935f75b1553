package core

type PingStatus string

const (
	StatusPingOK          PingStatus = "ok"
	StatusPingUnavailable PingStatus = "unavailable"
)

type PingResponse struct {
	Replies map[string]PingStatus `json:"replies"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type TokenReply struct {
	Token string `json:"token"`
}

// ErrorReply is the body of every non-2xx gateway reply.
type ErrorReply struct {
	Error string `json:"error"`
}

type TextRequest struct {
	Text string `json:"text"`
}

type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Keyword struct {
	Stem      string   `json:"stem"`
	Terms     []string `json:"terms"`
	Frequency int64    `json:"frequency"`
}

type KeywordsResult struct {
	Keywords []Keyword `json:"keywords"`
	Total    int64     `json:"total"`
}

type TermsResult struct {
	Terms []string `json:"terms"`
	Total int64    `json:"total"`
}

type IndexStats struct {
	Documents     int64 `json:"documents"`
	TermsTotal    int64 `json:"terms_total"`
	TermsUnique   int64 `json:"terms_unique"`
	ReferenceSize int64 `json:"reference_size"`
}
