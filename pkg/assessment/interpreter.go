package assessment

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// InputKind is the rendering affordance a visible question requires.
type InputKind string

const (
	InputText        InputKind = "text"
	InputTextarea    InputKind = "textarea"
	InputSelect      InputKind = "select"
	InputMultiSelect InputKind = "multi-select"
	InputNumber      InputKind = "number"
	InputFile        InputKind = "file"
	InputUnsupported InputKind = "unsupported"
)

// FieldPlan is the per-question render decision. Error carries the first
// failing validation message, empty when the current answer is acceptable.
type FieldPlan struct {
	QuestionID string    `json:"questionId"`
	Visible    bool      `json:"visible"`
	Input      InputKind `json:"input"`
	Error      string    `json:"error,omitempty"`
}

// Render walks the document in section-then-question order and produces one
// FieldPlan per visible question. Hidden questions contribute nothing: they
// are excluded from display and from validation, though their stored answers
// are left alone.
//
// Render is stateless and idempotent; callers re-run it on every answer
// change since a later question's visibility can depend on an earlier
// question's current value. A malformed document never makes it fail:
// unknown types and choice questions without options render as unsupported,
// a condition pointing at a missing question hides its target.
func Render(doc Assessment, answers Answers) []FieldPlan {
	plans := make([]FieldPlan, 0, 8)
	for _, section := range doc.Sections {
		for _, q := range section.Questions {
			if !isVisible(q, answers) {
				continue
			}
			plans = append(plans, FieldPlan{
				QuestionID: q.ID,
				Visible:    true,
				Input:      inputKind(q),
				Error:      validate(q, answers[q.ID]),
			})
		}
	}
	return plans
}

// isVisible evaluates a question's condition against the current answers.
// Comparison policy: both sides are coerced to a canonical string and
// compared exactly. A missing answer, a missing target question, or a
// non-scalar answer (multi-choice) never matches, so the question stays
// hidden until the dependency holds the exact value.
func isVisible(q Question, answers Answers) bool {
	if q.Condition == nil {
		return true
	}
	v, ok := answers[q.Condition.QuestionID]
	if !ok {
		return false
	}
	s, ok := coerceString(v)
	if !ok {
		return false
	}
	return s == q.Condition.Value
}

func inputKind(q Question) InputKind {
	switch q.Type {
	case ShortText:
		return InputText
	case LongText:
		return InputTextarea
	case SingleChoice:
		if len(q.Options) == 0 {
			return InputUnsupported
		}
		return InputSelect
	case MultiChoice:
		if len(q.Options) == 0 {
			return InputUnsupported
		}
		return InputMultiSelect
	case Numeric:
		return InputNumber
	case FileUpload:
		return InputFile
	default:
		return InputUnsupported
	}
}

// validate checks the answer against the question's rules in fixed order:
// required first, then length or range. Only the first failure is reported.
// Rules that do not match the question's type are skipped, keeping the
// interpreter robust to half-edited schemas.
func validate(q Question, answer any) string {
	rules := q.Validations
	if rules == nil {
		return ""
	}

	if rules.Required && isEmpty(answer) {
		return "This field is required."
	}
	if answer == nil {
		return ""
	}

	switch q.Type {
	case ShortText, LongText:
		s, ok := coerceString(answer)
		if !ok {
			return ""
		}
		n := utf8.RuneCountInString(s)
		if rules.MinLength != nil && n < *rules.MinLength {
			return fmt.Sprintf("Must be at least %d characters.", *rules.MinLength)
		}
		if rules.MaxLength != nil && n > *rules.MaxLength {
			return fmt.Sprintf("Must be at most %d characters.", *rules.MaxLength)
		}
	case Numeric:
		n, ok := toFloat(answer)
		if !ok {
			return ""
		}
		if rules.Min != nil && n < *rules.Min {
			return fmt.Sprintf("Must be at least %s.", formatNumber(*rules.Min))
		}
		if rules.Max != nil && n > *rules.Max {
			return fmt.Sprintf("Must be at most %s.", formatNumber(*rules.Max))
		}
	}
	return ""
}

// isEmpty reports whether an answer counts as absent for the required rule:
// nil, empty string, or an empty list.
func isEmpty(answer any) bool {
	switch v := answer.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// coerceString renders a scalar answer as its canonical string form. Slices
// report !ok: a multi-select answer is never equal to a scalar condition
// value.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return formatNumber(t), true
	case float32:
		return formatNumber(float64(t)), true
	default:
		return "", false
	}
}

// toFloat accepts the numeric shapes a JSON answer map can carry, including
// a numeric string from a number input.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// formatNumber drops the trailing ".0" that FormatFloat('f') would keep, so
// a numeric answer of 5 compares equal to a condition value of "5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
