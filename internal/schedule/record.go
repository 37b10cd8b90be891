package schedule

// FieldSource describes how a field value was derived during extraction.
// "label" and "position" assignments are the most trustworthy; the heuristic
// sources flag values downstream reviewers may want to double-check.
type FieldSource string

const (
	SourceContext       FieldSource = "context"        // inherited from the active date/specialty section
	SourceAnchor        FieldSource = "anchor"         // taken from the HH:MM time-marker line itself
	SourceLabel         FieldSource = "label"          // explicit "Paciente:" / "Convênio:" style label
	SourcePosition      FieldSource = "position"       // fixed-width block slot
	SourcePattern       FieldSource = "pattern"        // phone/record-number regex match
	SourcePhoneAdjacent FieldSource = "phone_adjacent" // text found next to a phone match
	SourceHeuristic     FieldSource = "heuristic"      // digit-free / short-line guess
	SourceNamePattern   FieldSource = "name_pattern"   // uppercase-name extraction fallback
)

// Record is one appointment extracted from a schedule text dump. All fields
// default to the empty string, never absent. Sources maps populated field
// names to how they were derived.
type Record struct {
	Date         string `json:"date"`
	Specialty    string `json:"specialty"`
	Time         string `json:"time"`
	Doctor       string `json:"doctor"`
	Patient      string `json:"patient"`
	PatientPhone string `json:"patient_phone"`
	Insurance    string `json:"insurance"`
	Event        string `json:"event"`
	RecordNumber string `json:"record"`

	Sources map[string]FieldSource `json:"sources,omitempty"`
}

// Viable reports whether the record meets the minimum-field invariant:
// a time anchor plus at least one of doctor/patient.
func (r *Record) Viable() bool {
	return r.Time != "" && (r.Doctor != "" || r.Patient != "")
}

func (r *Record) setSource(field string, src FieldSource) {
	if r.Sources == nil {
		r.Sources = make(map[string]FieldSource)
	}
	r.Sources[field] = src
}
