package exam

// Question is a validated, immutable exam question record.
// IDs are assigned densely (1-based) at acceptance time; OriginalNumber keeps
// the source ordinal and may have gaps where questions were rejected.
type Question struct {
	ID             int               `json:"id"`
	OriginalNumber int               `json:"originalNumber"`
	Domain         string            `json:"domain"`
	Question       string            `json:"question"`
	Options        map[string]string `json:"options"`
	CorrectAnswer  string            `json:"correctAnswer"`
	Explanation    string            `json:"explanation"`
	Services       []string          `json:"services"`
}

// ParseError records why a question block was rejected.
type ParseError struct {
	Number  int    `json:"number"`
	Message string `json:"message"`
}

func (e ParseError) String() string {
	return e.Message
}

// Letters is the fixed option key set every accepted question must carry.
var Letters = []string{"A", "B", "C", "D"}
