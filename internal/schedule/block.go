package schedule

import "strings"

// extractBlock gathers the block belonging to the time marker at lines[i]
// per the configured strategy and returns the extracted record (nil when not
// viable) plus the next cursor position.
func (p *Parser) extractBlock(lines []string, i int, st sectionState) (*Record, int) {
	switch p.strategy {
	case StrategyFixed:
		return p.extractFixed(lines, i, st)
	case StrategyWindowed:
		return p.extractWindowed(lines, i, st)
	default:
		return p.extractFlexible(lines, i, st)
	}
}

// extractFixed maps a six-line block positionally:
//
//	0: HH:MM [doctor]
//	1: patient
//	2: insurance
//	3: phone
//	4: event [doctor]
//	5: record number
//
// When the line at offset 5 is itself a time marker the block was truncated
// by the dump; the first five lines are kept, the record number stays empty,
// and the cursor lands on that marker so the next block is not lost.
func (p *Parser) extractFixed(lines []string, i int, st sectionState) (*Record, int) {
	if i+5 >= len(lines) {
		// Dangling marker near EOF; not enough lines for a block.
		return nil, i + 1
	}

	advance := 6
	block := lines[i : i+6]
	if timeAnchorRe.MatchString(lines[i+5]) {
		block = append(append([]string{}, lines[i:i+5]...), "")
		advance = 5
	}

	rec := newRecord(st)
	rec.splitAnchor(block[0])
	if block[1] != "" {
		rec.Patient = block[1]
		rec.setSource("patient", SourcePosition)
	}
	if block[2] != "" {
		rec.Insurance = block[2]
		rec.setSource("insurance", SourcePosition)
	}
	if phone := strings.Trim(block[3], " -"); phone != "" {
		rec.PatientPhone = phone
		rec.setSource("patient_phone", SourcePosition)
	}
	event, doctor := splitEventLine(block[4])
	if event != "" {
		rec.Event = event
		rec.setSource("event", SourcePosition)
	}
	if doctor != "" && rec.Doctor == "" {
		rec.Doctor = doctor
		rec.setSource("doctor", SourcePosition)
	}
	if block[5] != "" {
		rec.RecordNumber = block[5]
		rec.setSource("record", SourcePosition)
	}

	if !rec.Viable() {
		return nil, i + advance
	}
	return rec, i + advance
}

// extractFlexible collects lines after the marker until the next block
// boundary — another time marker, a subtotal line, or a date line — capped
// at maxBlockLines, skipping junk along the way.
func (p *Parser) extractFlexible(lines []string, i int, st sectionState) (*Record, int) {
	block := []string{lines[i]}
	j := i + 1
	for j < len(lines) && len(block)-1 < maxBlockLines {
		next := lines[j]
		if timeAnchorRe.MatchString(next) || strings.Contains(next, "Sub - Total") || dateRe.MatchString(next) {
			break
		}
		if p.isNoise(next) {
			j++
			continue
		}
		block = append(block, next)
		j++
	}
	return p.disambiguate(block, st), j
}

// extractWindowed inspects a fixed window after the marker without consuming
// it; the cursor advances a single line so interleaved content never shifts
// later blocks. The window still stops at the next time marker to keep one
// record per anchor.
func (p *Parser) extractWindowed(lines []string, i int, st sectionState) (*Record, int) {
	block := []string{lines[i]}
	for j := i + 1; j < len(lines) && j <= i+windowLines; j++ {
		next := lines[j]
		if timeAnchorRe.MatchString(next) {
			break
		}
		if p.isNoise(next) {
			continue
		}
		block = append(block, next)
	}
	return p.disambiguate(block, st), i + 1
}

// splitEventLine separates a combined "EVENTDoctor Name" line. Known event
// keywords are a closed set and are matched first by prefix, even with no
// separator before the name; only when none match does the line fall back to
// a whitespace split.
func splitEventLine(line string) (event, doctor string) {
	if line == "" {
		return "", ""
	}
	upper := strings.ToUpper(line)
	for _, et := range eventTypes {
		if strings.HasPrefix(upper, et) {
			return et, strings.TrimSpace(strings.TrimLeft(line[len(et):], " -:"))
		}
	}
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 2 {
		return parts[0], strings.TrimSpace(parts[1])
	}
	return line, ""
}
