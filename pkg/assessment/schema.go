// Package assessment holds the assessment document model, the structural
// edit operations used by the builder UI, and the interpreter that turns a
// document plus the current answers into a render plan. The package is pure:
// no storage, no transport, no hidden state.
package assessment

// QuestionType is the closed set of question kinds a builder can author.
type QuestionType string

const (
	ShortText    QuestionType = "short-text"
	LongText     QuestionType = "long-text"
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	Numeric      QuestionType = "numeric"
	FileUpload   QuestionType = "file-upload"
)

// Assessment is the root authored document. Section order is meaningful:
// it is the display order and the order conditions are evaluated in.
type Assessment struct {
	JobID    string    `json:"jobId,omitempty"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section groups questions under a title. The ID is an opaque token that
// stays stable across edits.
type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is a single prompt. Options is only meaningful for the choice
// types. Validations and Condition are optional.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Label       string       `json:"label"`
	Options     []string     `json:"options,omitempty"`
	Validations *Validations `json:"validations,omitempty"`
	Condition   *Condition   `json:"condition,omitempty"`
}

// Validations are the recognized constraints. Pointer fields distinguish
// "not set" from a zero bound. Length bounds apply to the text types,
// Min/Max to numeric; a bound declared on a non-matching type is ignored
// at render time rather than treated as an error.
type Validations struct {
	Required  bool     `json:"required,omitempty"`
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

// Condition makes a question visible only while the referenced question's
// current answer equals Value exactly.
type Condition struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

// Answers maps question ID to the currently entered value: string,
// []string (multi-choice) or float64 (numeric). Owned by the caller and
// supplied fresh on every render; never persisted by this package.
type Answers map[string]any

// FindSection returns the index of the section with the given id, or -1.
func (a Assessment) FindSection(sectionID string) int {
	for i, s := range a.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

// FindQuestion returns the index of the question with the given id within
// the section, or -1.
func (s Section) FindQuestion(questionID string) int {
	for i, q := range s.Questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}
