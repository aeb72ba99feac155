package assessment

import (
	"reflect"
	"testing"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

// conditionalDoc is the end-to-end document: Q1 gates Q2.
func conditionalDoc() Assessment {
	return Assessment{
		Title: "Screening",
		Sections: []Section{
			{
				ID:    "sec1",
				Title: "Eligibility",
				Questions: []Question{
					{ID: "Q1", Type: SingleChoice, Label: "Authorized to work?", Options: []string{"Yes", "No"}, Validations: &Validations{Required: true}},
					{ID: "Q2", Type: LongText, Label: "Details", Condition: &Condition{QuestionID: "Q1", Value: "Yes"}},
				},
			},
		},
	}
}

func planIDs(plans []FieldPlan) []string {
	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.QuestionID)
	}
	return ids
}

func TestRenderConditionalFlow(t *testing.T) {
	doc := conditionalDoc()

	// No answers: only Q1, carrying a required error.
	plans := Render(doc, Answers{})
	if !reflect.DeepEqual(planIDs(plans), []string{"Q1"}) {
		t.Fatalf("visible questions = %v, want [Q1]", planIDs(plans))
	}
	if plans[0].Error == "" {
		t.Error("Q1 should carry a required validation error")
	}

	// Q1 answered "Yes": Q2 appears, both valid.
	plans = Render(doc, Answers{"Q1": "Yes"})
	if !reflect.DeepEqual(planIDs(plans), []string{"Q1", "Q2"}) {
		t.Fatalf("visible questions = %v, want [Q1 Q2]", planIDs(plans))
	}
	for _, p := range plans {
		if p.Error != "" {
			t.Errorf("%s unexpectedly invalid: %q", p.QuestionID, p.Error)
		}
	}

	// Q1 flipped to "No": Q2 disappears again.
	plans = Render(doc, Answers{"Q1": "No"})
	if !reflect.DeepEqual(planIDs(plans), []string{"Q1"}) {
		t.Errorf("visible questions = %v, want [Q1]", planIDs(plans))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	doc := conditionalDoc()
	answers := Answers{"Q1": "Yes", "Q2": "some details"}

	first := Render(doc, answers)
	second := Render(doc, answers)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated renders differ:\n%v\n%v", first, second)
	}
}

func TestRenderPreservesDocumentOrder(t *testing.T) {
	doc := Assessment{Sections: []Section{
		{ID: "s1", Questions: []Question{{ID: "a", Type: ShortText}, {ID: "b", Type: Numeric}}},
		{ID: "s2", Questions: []Question{{ID: "c", Type: LongText}}},
	}}

	got := planIDs(Render(doc, Answers{}))
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want [a b c]", got)
	}
}

func TestInputKinds(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want InputKind
	}{
		{"short text", Question{Type: ShortText}, InputText},
		{"long text", Question{Type: LongText}, InputTextarea},
		{"single choice", Question{Type: SingleChoice, Options: []string{"a"}}, InputSelect},
		{"multi choice", Question{Type: MultiChoice, Options: []string{"a"}}, InputMultiSelect},
		{"numeric", Question{Type: Numeric}, InputNumber},
		{"file upload", Question{Type: FileUpload}, InputFile},
		{"unknown type", Question{Type: "video-response"}, InputUnsupported},
		{"choice without options", Question{Type: SingleChoice}, InputUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{tt.q}}}}
			plans := Render(doc, Answers{})
			if len(plans) != 1 {
				t.Fatalf("expected 1 plan, got %d", len(plans))
			}
			if plans[0].Input != tt.want {
				t.Errorf("input = %q, want %q", plans[0].Input, tt.want)
			}
		})
	}
}

func TestRequiredValidation(t *testing.T) {
	q := Question{ID: "q", Type: ShortText, Validations: &Validations{Required: true}}
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{q}}}}

	tests := []struct {
		name    string
		answers Answers
		wantErr bool
	}{
		{"missing", Answers{}, true},
		{"empty string", Answers{"q": ""}, true},
		{"empty list", Answers{"q": []string{}}, true},
		{"filled", Answers{"q": "hi"}, false},
		{"non-empty list", Answers{"q": []string{"a"}}, false},
		{"numeric zero", Answers{"q": 0.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := Render(doc, tt.answers)
			if got := plans[0].Error != ""; got != tt.wantErr {
				t.Errorf("error = %q, wantErr %v", plans[0].Error, tt.wantErr)
			}
		})
	}
}

func TestLengthValidation(t *testing.T) {
	q := Question{ID: "q", Type: ShortText, Validations: &Validations{MinLength: intPtr(3), MaxLength: intPtr(5)}}
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{q}}}}

	tests := []struct {
		name    string
		answer  any
		wantErr bool
	}{
		{"too short", "ab", true},
		{"lower bound", "abc", false},
		{"upper bound", "abcde", false},
		{"too long", "abcdef", true},
		{"absent and not required", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := Answers{}
			if tt.answer != nil {
				answers["q"] = tt.answer
			}
			plans := Render(doc, answers)
			if got := plans[0].Error != ""; got != tt.wantErr {
				t.Errorf("error = %q, wantErr %v", plans[0].Error, tt.wantErr)
			}
		})
	}
}

func TestRangeValidation(t *testing.T) {
	q := Question{ID: "q", Type: Numeric, Validations: &Validations{Min: floatPtr(1), Max: floatPtr(10)}}
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{q}}}}

	tests := []struct {
		name    string
		answer  any
		wantErr bool
	}{
		{"below min", 0.5, true},
		{"at min", 1.0, false},
		{"at max", 10.0, false},
		{"above max", 11.0, true},
		{"numeric string", "7", false},
		{"numeric string out of range", "12", true},
		{"garbage string ignored", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := Render(doc, Answers{"q": tt.answer})
			if got := plans[0].Error != ""; got != tt.wantErr {
				t.Errorf("error = %q, wantErr %v", plans[0].Error, tt.wantErr)
			}
		})
	}
}

func TestMismatchedRulesAreIgnored(t *testing.T) {
	// Length bounds on a numeric question and range bounds on a text
	// question must be skipped, not fail.
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{
		{ID: "n", Type: Numeric, Validations: &Validations{MinLength: intPtr(100)}},
		{ID: "t", Type: ShortText, Validations: &Validations{Min: floatPtr(100)}},
	}}}}

	plans := Render(doc, Answers{"n": 5.0, "t": "ok"})
	for _, p := range plans {
		if p.Error != "" {
			t.Errorf("%s: mismatched rule produced error %q", p.QuestionID, p.Error)
		}
	}
}

func TestValidationOrderRequiredFirst(t *testing.T) {
	q := Question{ID: "q", Type: ShortText, Validations: &Validations{Required: true, MinLength: intPtr(3)}}
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{q}}}}

	plans := Render(doc, Answers{"q": ""})
	if plans[0].Error != "This field is required." {
		t.Errorf("error = %q, want the required message first", plans[0].Error)
	}
}

func TestConditionCoercion(t *testing.T) {
	tests := []struct {
		name        string
		condValue   string
		answer      any
		wantVisible bool
	}{
		{"string match", "Yes", "Yes", true},
		{"string mismatch", "Yes", "No", false},
		{"numeric answer vs string value", "5", 5.0, true},
		{"numeric answer mismatch", "5", 6.0, false},
		{"bool answer", "true", true, true},
		{"multi-select never matches scalar", "Yes", []string{"Yes"}, false},
		{"missing answer", "Yes", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{
				{ID: "p", Type: ShortText},
				{ID: "q", Type: ShortText, Condition: &Condition{QuestionID: "p", Value: tt.condValue}},
			}}}}
			answers := Answers{}
			if tt.answer != nil {
				answers["p"] = tt.answer
			}
			plans := Render(doc, answers)
			visible := len(plans) == 2
			if visible != tt.wantVisible {
				t.Errorf("visible = %v, want %v", visible, tt.wantVisible)
			}
		})
	}
}

func TestDanglingConditionHidesQuestion(t *testing.T) {
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{
		{ID: "q", Type: ShortText, Condition: &Condition{QuestionID: "ghost", Value: "x"}},
	}}}}

	plans := Render(doc, Answers{"q": "answered anyway"})
	if len(plans) != 0 {
		t.Errorf("dangling condition target should hide the question, got %v", plans)
	}
}

func TestHiddenQuestionSkipsValidation(t *testing.T) {
	doc := Assessment{Sections: []Section{{ID: "s", Questions: []Question{
		{ID: "p", Type: SingleChoice, Options: []string{"Yes", "No"}},
		{ID: "q", Type: ShortText, Validations: &Validations{Required: true}, Condition: &Condition{QuestionID: "p", Value: "Yes"}},
	}}}}

	plans := Render(doc, Answers{"p": "No"})
	if len(plans) != 1 || plans[0].QuestionID != "p" {
		t.Fatalf("expected only p to render, got %v", planIDs(plans))
	}
}
