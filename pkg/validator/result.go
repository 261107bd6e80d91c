package validator

// Result is the outcome of one validator on one field.
type Result struct {
	Name      string `json:"name"`
	Selector  string `json:"selector"`
	FieldID   string `json:"field_id"`
	Signature string `json:"signature,omitempty"`
	Valid     bool   `json:"valid"`
	Message   string `json:"message,omitempty"`

	// Value is the field value that was checked. It lets later validators
	// compare against earlier fields and is kept out of serialized reports.
	Value string `json:"-"`
}

// Results is an ordered validation report: spec order, then field order.
type Results []Result

// AllValid reports whether every result passed. An empty report is valid.
func (rs Results) AllValid() bool {
	for _, r := range rs {
		if !r.Valid {
			return false
		}
	}
	return true
}

// Invalid returns the failed results in order.
func (rs Results) Invalid() Results {
	var out Results
	for _, r := range rs {
		if !r.Valid {
			out = append(out, r)
		}
	}
	return out
}

// ForField returns every result recorded for the field id.
func (rs Results) ForField(id string) Results {
	var out Results
	for _, r := range rs {
		if r.FieldID == id {
			out = append(out, r)
		}
	}
	return out
}

// BySelector returns the results produced by specs with the given selector.
func (rs Results) BySelector(selector string) Results {
	var out Results
	for _, r := range rs {
		if r.Selector == selector {
			out = append(out, r)
		}
	}
	return out
}

// Last returns the most recent result for the field id.
func (rs Results) Last(id string) (Result, bool) {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i].FieldID == id {
			return rs[i], true
		}
	}
	return Result{}, false
}

// Fields returns the distinct field ids in report order.
func (rs Results) Fields() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, r := range rs {
		if !seen[r.FieldID] {
			ids = append(ids, r.FieldID)
			seen[r.FieldID] = true
		}
	}
	return ids
}

// Err returns the invalid results as ValidationErrors, or nil when all passed.
func (rs Results) Err() error {
	var errs ValidationErrors
	for _, r := range rs {
		if r.Valid {
			continue
		}
		errs.Add(ValidationError{
			Field:     r.FieldID,
			Selector:  r.Selector,
			Signature: r.Signature,
			Message:   r.Message,
		})
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
