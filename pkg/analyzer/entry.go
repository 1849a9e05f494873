package analyzer

// Entry is one vocabulary item reported by the analyzer program.
// JSON field names are matched case-insensitively, so both the PascalCase
// names written by the reference analyzer and snake/camel variants decode.
type Entry struct {
	WordOrPhrase    string   `json:"WordOrPhrase"`
	Frequency       int      `json:"Frequency"`
	Difficulty      *float64 `json:"Difficulty"`
	ContextSentence *string  `json:"ContextSentence"`
}
