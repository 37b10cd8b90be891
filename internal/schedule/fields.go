package schedule

import "strings"

// disambiguate assigns block lines to fields by running each unclaimed line
// through the ordered rules: explicit labels, phone shapes, record numbers,
// digit-free patient heuristic, short-line insurance fallback, residual
// event text. First claim wins; nothing is reassigned.
func (p *Parser) disambiguate(block []string, st sectionState) *Record {
	rec := newRecord(st)
	rec.splitAnchor(block[0])

	var event strings.Builder
	for _, raw := range block[1:] {
		line := strings.TrimSpace(raw)
		if line == "" || timeAnchorRe.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)

		// 1. Labeled lines.
		if strings.HasPrefix(lower, "paciente") {
			if v := labelValue(line); v != "" && rec.Patient == "" {
				rec.Patient = v
				rec.setSource("patient", SourceLabel)
			}
			continue
		}
		if containsInsuranceLabel(lower) {
			if rec.Insurance == "" {
				v := line
				if idx := strings.Index(line, ":"); idx >= 0 {
					v = strings.TrimSpace(line[idx+1:])
				}
				if v != "" {
					rec.Insurance = v
					rec.setSource("insurance", SourceLabel)
				}
			}
			continue
		}

		// 2. Phone shapes; adjacent digit-free text is a name candidate.
		if loc := phoneRe.FindStringIndex(line); loc != nil {
			if rec.PatientPhone == "" {
				rec.PatientPhone = line[loc[0]:loc[1]]
				rec.setSource("patient_phone", SourcePattern)
			}
			before := strings.TrimSpace(line[:loc[0]])
			after := strings.TrimSpace(strings.Trim(line[loc[1]:], " -"))
			if before != "" && !digitRe.MatchString(before) {
				switch {
				case rec.Patient == "":
					rec.Patient = before
					rec.setSource("patient", SourcePhoneAdjacent)
				case rec.Insurance == "":
					rec.Insurance = before
					rec.setSource("insurance", SourcePhoneAdjacent)
				}
			} else if before != "" && rec.Insurance == "" {
				rec.Insurance = before
				rec.setSource("insurance", SourcePhoneAdjacent)
			} else if after != "" && rec.Insurance == "" {
				rec.Insurance = after
				rec.setSource("insurance", SourcePhoneAdjacent)
			}
			continue
		}

		// 3. Record numbers, with any prefix text falling through to event.
		if num, prefix, ok := p.matchRecordNumber(line); ok {
			if rec.RecordNumber == "" {
				rec.RecordNumber = num
				rec.setSource("record", SourcePattern)
			}
			if prefix != "" {
				appendEvent(&event, prefix)
			}
			continue
		}

		// 4. Known event keywords are a closed set and claim the line before
		// any fallback can misfile it, even glued to a doctor name.
		if et, doc := splitKnownEvent(line); et != "" {
			if rec.Event == "" {
				rec.Event = et
				rec.setSource("event", SourcePattern)
			}
			if doc != "" && rec.Doctor == "" {
				rec.Doctor = doc
				rec.setSource("doctor", SourceNamePattern)
			}
			continue
		}

		// 5. Digit-free line with no patient yet: almost certainly the name.
		if rec.Patient == "" && !digitRe.MatchString(line) &&
			!strings.Contains(lower, "data") && !strings.HasSuffix(line, ":") {
			rec.Patient = line
			rec.setSource("patient", SourceHeuristic)
			continue
		}

		// 6. Short leftover after the patient is known: insurance name.
		if rec.Patient != "" && rec.Insurance == "" && len(line) < 80 {
			rec.Insurance = line
			rec.setSource("insurance", SourceHeuristic)
			continue
		}

		// 7. Residual text accumulates as the event description.
		appendEvent(&event, line)
	}

	p.resolveEventAndDoctor(rec, event.String(), block)

	if !rec.Viable() {
		return nil
	}
	return rec
}

// resolveEventAndDoctor untangles the combined event/doctor text and, when
// the doctor is still unknown, rescans the block for an uppercase name.
func (p *Parser) resolveEventAndDoctor(rec *Record, event string, block []string) {
	if event != "" {
		if et, doctor := splitKnownEvent(event); et != "" {
			event = et
			if doctor != "" && rec.Doctor == "" {
				rec.Doctor = doctor
				rec.setSource("doctor", SourceNamePattern)
			}
		} else if rec.Doctor == "" {
			if name := upperNameRe.FindString(event); name != "" {
				rec.Doctor = name
				rec.setSource("doctor", SourceNamePattern)
				event = strings.Trim(strings.ReplaceAll(event, name, ""), " -:,.")
			}
		}
		if event != "" && rec.Event == "" {
			rec.Event = event
			rec.setSource("event", SourceHeuristic)
		}
	}

	if rec.Doctor == "" {
		for _, raw := range block[1:] {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			name := upperNameRe.FindString(line)
			if name == "" || name == rec.Patient {
				continue
			}
			rec.Doctor = name
			rec.setSource("doctor", SourceNamePattern)
			// The name may have been absorbed into the patient field.
			if rec.Patient != "" && strings.Contains(rec.Patient, name) {
				rec.Patient = strings.Trim(strings.ReplaceAll(rec.Patient, name, ""), " -:,")
			}
			break
		}
	}
}

// splitKnownEvent splits "CONSULTARICARDO SUSSUMU NAKAYA" style text on a
// known event keyword prefix. Returns ("", "") when no keyword matches.
func splitKnownEvent(text string) (event, doctor string) {
	upper := strings.ToUpper(text)
	for _, et := range eventTypes {
		if strings.HasPrefix(upper, et) {
			return et, strings.TrimSpace(strings.TrimLeft(text[len(et):], " -:"))
		}
	}
	return "", ""
}

// matchRecordNumber extracts a record number per the configured pattern and
// any non-numeric prefix text preceding it on the line.
func (p *Parser) matchRecordNumber(line string) (num, prefix string, ok bool) {
	if p.recordRe == recordDottedRe {
		if m := recordDottedRe.FindString(line); m != "" {
			return strings.TrimSpace(line), "", true
		}
		return "", "", false
	}
	loc := recordTrailingRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return "", "", false
	}
	num = line[loc[2]:loc[3]]
	prefix = strings.TrimSpace(line[:loc[2]])
	// A bare long digit run is more likely a phone fragment than a record
	// number when it already failed the phone rule; still accept, the
	// trailing anchor is how the dumps print record columns.
	return num, prefix, true
}

func labelValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func containsInsuranceLabel(lower string) bool {
	for _, l := range insuranceLabels {
		if strings.Contains(lower, l) {
			return true
		}
	}
	return false
}

func appendEvent(b *strings.Builder, text string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(text)
}
