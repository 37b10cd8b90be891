package schedule

import "strings"

type lineKind int

const (
	lineInert lineKind = iota
	lineNoise
	lineDate
	lineSpecialty
	lineTime
)

// classify applies the ordered classification rules to lines[i]. Order
// matters: noise wins over everything, a date near a page header is noise,
// and only then do specialty and time markers fire.
func (p *Parser) classify(lines []string, i int) lineKind {
	line := lines[i]
	if p.isNoise(line) {
		return lineNoise
	}
	if dateRe.MatchString(line) {
		if isNearHeader(lines, i) {
			return lineNoise
		}
		return lineDate
	}
	if strings.Contains(line, specialtyKeyword) {
		return lineSpecialty
	}
	if timeAnchorRe.MatchString(line) {
		return lineTime
	}
	return lineInert
}

func (p *Parser) isNoise(line string) bool {
	for _, prefix := range p.noisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// isNearHeader reports whether any of the current line or the headerLookback
// lines before it contains a page-header indicator.
func isNearHeader(lines []string, i int) bool {
	for k := 0; k <= headerLookback; k++ {
		j := i - k
		if j < 0 {
			break
		}
		for _, ind := range headerIndicators {
			if strings.Contains(lines[j], ind) {
				return true
			}
		}
	}
	return false
}

// specialtyValue resolves the value of a specialty marker at lines[i] and
// returns it with the number of lines consumed. Same-line "Especialidade:
// Cardiologia" wins; otherwise the next line is adopted unless it fails the
// candidate checks, in which case the previous specialty stays in force.
func specialtyValue(lines []string, i int) (string, int) {
	line := lines[i]
	if idx := strings.Index(line, ":"); idx >= 0 {
		if v := strings.TrimSpace(line[idx+1:]); v != "" {
			return v, 1
		}
	}
	if i+1 >= len(lines) {
		return "", 1
	}
	next := lines[i+1]
	if !plausibleSpecialty(next) {
		return "", 1
	}
	return next, 2
}

// specialtyNearDate looks for the specialty that accompanies a date section
// marker: on the date line itself after "Especialidade", or within the next
// three lines (a labeled line or a short, digit-free candidate). Returns ""
// when nothing plausible is found so the previous specialty stays in force.
func specialtyNearDate(lines []string, i int) string {
	line := lines[i]
	if idx := strings.Index(line, specialtyKeyword); idx >= 0 {
		rest := line[idx+len(specialtyKeyword):]
		return strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	for j := i + 1; j < len(lines) && j <= i+3; j++ {
		l := lines[j]
		if strings.Contains(l, specialtyKeyword) {
			if idx := strings.Index(l, ":"); idx >= 0 {
				return strings.TrimSpace(l[idx+1:])
			}
			return l
		}
		if plausibleSpecialty(l) {
			return l
		}
	}
	return ""
}

func plausibleSpecialty(line string) bool {
	if line == "" || len(line) >= 60 {
		return false
	}
	if timeAnchorRe.MatchString(line) || phoneRe.MatchString(line) || digitRe.MatchString(line) {
		return false
	}
	if strings.Contains(strings.ToLower(line), "data") || strings.HasSuffix(line, ":") {
		return false
	}
	return true
}
