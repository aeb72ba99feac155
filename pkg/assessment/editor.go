package assessment

import "github.com/google/uuid"

// Op is a structural edit applied to a document by an Editor. The set of
// operations is closed; each one returns a fresh document and never touches
// the input. An op that references a missing section or question id is a
// silent no-op: stale edits from a builder UI are expected and harmless.
type Op interface {
	apply(doc Assessment, newID func() string) Assessment
}

// Editor applies structural edits. The id generator is injectable so tests
// can observe the ids handed to new sections and questions.
type Editor struct {
	newID func() string
}

func NewEditor() *Editor {
	return &Editor{newID: uuid.NewString}
}

// NewEditorWithIDs builds an editor using a caller-supplied id generator.
// Generated ids must be unique for the session; collisions are not defended
// against.
func NewEditorWithIDs(newID func() string) *Editor {
	return &Editor{newID: newID}
}

// Apply runs one edit and returns the resulting document. The input document
// is never mutated, so callers can keep snapshots for undo or compare values
// to detect change.
func (e *Editor) Apply(doc Assessment, op Op) Assessment {
	if op == nil {
		return doc
	}
	return op.apply(doc, e.newID)
}

// AddSection appends a new empty section titled "New Section".
type AddSection struct{}

func (AddSection) apply(doc Assessment, newID func() string) Assessment {
	sections := make([]Section, 0, len(doc.Sections)+1)
	sections = append(sections, doc.Sections...)
	sections = append(sections, Section{ID: newID(), Title: "New Section", Questions: []Question{}})
	doc.Sections = sections
	return doc
}

// RemoveSection drops the section with the given id.
type RemoveSection struct {
	SectionID string `json:"sectionId"`
}

func (op RemoveSection) apply(doc Assessment, _ func() string) Assessment {
	if doc.FindSection(op.SectionID) < 0 {
		return doc
	}
	sections := make([]Section, 0, len(doc.Sections)-1)
	for _, s := range doc.Sections {
		if s.ID != op.SectionID {
			sections = append(sections, s)
		}
	}
	doc.Sections = sections
	return doc
}

// RenameSection replaces a section's title.
type RenameSection struct {
	SectionID string `json:"sectionId"`
	Title     string `json:"title"`
}

func (op RenameSection) apply(doc Assessment, _ func() string) Assessment {
	return mapSection(doc, op.SectionID, func(s Section) Section {
		s.Title = op.Title
		return s
	})
}

// AddQuestion appends a default short-text question labelled "New Question"
// to the named section.
type AddQuestion struct {
	SectionID string `json:"sectionId"`
}

func (op AddQuestion) apply(doc Assessment, newID func() string) Assessment {
	return mapSection(doc, op.SectionID, func(s Section) Section {
		questions := make([]Question, 0, len(s.Questions)+1)
		questions = append(questions, s.Questions...)
		questions = append(questions, Question{ID: newID(), Type: ShortText, Label: "New Question"})
		s.Questions = questions
		return s
	})
}

// RemoveQuestion drops a question from the named section.
type RemoveQuestion struct {
	SectionID  string `json:"sectionId"`
	QuestionID string `json:"questionId"`
}

func (op RemoveQuestion) apply(doc Assessment, _ func() string) Assessment {
	return mapSection(doc, op.SectionID, func(s Section) Section {
		if s.FindQuestion(op.QuestionID) < 0 {
			return s
		}
		questions := make([]Question, 0, len(s.Questions)-1)
		for _, q := range s.Questions {
			if q.ID != op.QuestionID {
				questions = append(questions, q)
			}
		}
		s.Questions = questions
		return s
	})
}

// QuestionPatch is a partial update for UpdateQuestion. Nil fields are left
// untouched; ClearCondition drops an existing condition since a nil
// Condition alone means "unchanged".
type QuestionPatch struct {
	Type           *QuestionType `json:"type,omitempty"`
	Label          *string       `json:"label,omitempty"`
	Options        []string      `json:"options,omitempty"`
	Validations    *Validations  `json:"validations,omitempty"`
	Condition      *Condition    `json:"condition,omitempty"`
	ClearCondition bool          `json:"clearCondition,omitempty"`
}

// UpdateQuestion merges a patch into the matching question. The question id
// is never changed by a patch.
type UpdateQuestion struct {
	SectionID  string        `json:"sectionId"`
	QuestionID string        `json:"questionId"`
	Patch      QuestionPatch `json:"patch"`
}

func (op UpdateQuestion) apply(doc Assessment, _ func() string) Assessment {
	return mapSection(doc, op.SectionID, func(s Section) Section {
		i := s.FindQuestion(op.QuestionID)
		if i < 0 {
			return s
		}
		questions := make([]Question, len(s.Questions))
		copy(questions, s.Questions)
		q := questions[i]
		if op.Patch.Type != nil {
			q.Type = *op.Patch.Type
		}
		if op.Patch.Label != nil {
			q.Label = *op.Patch.Label
		}
		if op.Patch.Options != nil {
			q.Options = op.Patch.Options
		}
		if op.Patch.Validations != nil {
			q.Validations = op.Patch.Validations
		}
		if op.Patch.Condition != nil {
			q.Condition = op.Patch.Condition
		}
		if op.Patch.ClearCondition {
			q.Condition = nil
		}
		questions[i] = q
		s.Questions = questions
		return s
	})
}

// mapSection rebuilds the section slice with fn applied to the matching
// section. Untouched sections are shared with the input document.
func mapSection(doc Assessment, sectionID string, fn func(Section) Section) Assessment {
	i := doc.FindSection(sectionID)
	if i < 0 {
		return doc
	}
	sections := make([]Section, len(doc.Sections))
	copy(sections, doc.Sections)
	sections[i] = fn(sections[i])
	doc.Sections = sections
	return doc
}
