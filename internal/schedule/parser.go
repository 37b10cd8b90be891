// Package schedule extracts structured appointment records from the free-text
// dumps produced by OCR/pdf-to-text over clinic schedule reports. The input
// is a line-oriented stream with repeating page headers, date and specialty
// section markers, and appointment blocks anchored by HH:MM time markers;
// layout is unreliable, so fields are recovered by ordered heuristic rules
// rather than positions alone.
package schedule

import (
	"regexp"
	"strings"
)

// Strategy selects how the lines of one appointment block are gathered after
// a time marker is found.
type Strategy string

const (
	// StrategyFixed consumes exactly six lines per block, mapping them
	// positionally. Fast and precise on clean dumps, brittle otherwise.
	StrategyFixed Strategy = "fixed"
	// StrategyFlexible scans forward until the next block boundary
	// (time marker, date line, subtotal) up to a cap, skipping junk.
	StrategyFlexible Strategy = "flexible"
	// StrategyWindowed inspects a fixed lookahead window without consuming
	// it; the cursor advances one line at a time.
	StrategyWindowed Strategy = "windowed"
)

// RecordPattern selects the shape of medical record numbers in the source
// documents.
type RecordPattern string

const (
	// RecordTrailing matches 3+ digits at end of line (e.g. "12345").
	RecordTrailing RecordPattern = "trailing"
	// RecordDotted matches dotted numbers at start of line (e.g. "12.345").
	RecordDotted RecordPattern = "dotted"
)

// Options configures a Parser. Zero value is usable: flexible strategy,
// trailing record numbers.
type Options struct {
	Strategy      Strategy
	RecordPattern RecordPattern
}

// Parser turns schedule text dumps into appointment records. A Parser is
// immutable after New and safe for concurrent use.
type Parser struct {
	strategy      Strategy
	recordRe      *regexp.Regexp
	noisePrefixes []string
}

// New builds a Parser, filling defaults for unset options.
func New(opts Options) *Parser {
	p := &Parser{strategy: opts.Strategy, recordRe: recordTrailingRe}
	if p.strategy == "" {
		p.strategy = StrategyFlexible
	}
	if opts.RecordPattern == RecordDotted {
		p.recordRe = recordDottedRe
	}
	p.noisePrefixes = baseNoisePrefixes
	if p.strategy == StrategyFixed {
		// Column-header labels carry no value in positional blocks; for
		// the disambiguating strategies they are meaningful labels.
		p.noisePrefixes = append(append([]string{}, baseNoisePrefixes...), columnHeaderPrefixes...)
	}
	return p
}

// sectionState carries the date/specialty context that later records inherit
// until the next marker replaces it.
type sectionState struct {
	date      string
	specialty string
}

// Parse extracts every viable appointment record from text, in document
// order. It never fails: unrecognized content is skipped and partial blocks
// yield partial records or none at all.
func (p *Parser) Parse(text string) []Record {
	lines := splitLines(text)
	records := []Record{}
	var st sectionState

	i := 0
	for i < len(lines) {
		switch p.classify(lines, i) {
		case lineDate:
			st.date = dateRe.FindString(lines[i])
			if v := specialtyNearDate(lines, i); v != "" {
				st.specialty = v
			}
			i++
		case lineSpecialty:
			v, consumed := specialtyValue(lines, i)
			if v != "" {
				st.specialty = v
			}
			i += consumed
		case lineTime:
			rec, next := p.extractBlock(lines, i, st)
			if rec != nil {
				records = append(records, *rec)
			}
			i = next
		default:
			i++
		}
	}
	return records
}

// newRecord seeds a record with the inherited section context.
func newRecord(st sectionState) *Record {
	rec := &Record{Date: st.date, Specialty: st.specialty}
	if st.date != "" {
		rec.setSource("date", SourceContext)
	}
	if st.specialty != "" {
		rec.setSource("specialty", SourceContext)
	}
	return rec
}

// splitAnchor takes the time marker line apart: the first five characters
// are the HH:MM time, the remainder (if any) is almost always the doctor.
func (r *Record) splitAnchor(line string) {
	r.Time = line[:5]
	r.setSource("time", SourceAnchor)
	rest := strings.TrimSpace(strings.TrimLeft(line[5:], " -:"))
	if rest != "" {
		r.Doctor = rest
		r.setSource("doctor", SourceAnchor)
	}
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
