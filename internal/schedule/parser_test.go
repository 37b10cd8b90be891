package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanFixedDump = `01/01/2025
Especialidade: Cardiologia
08:00 Dr. Carlos Mendes
MARIA SILVA SANTOS
Unimed
(11) 99999-1234
CONSULTA
12345
`

func TestParseFixedCleanBlock(t *testing.T) {
	p := New(Options{Strategy: StrategyFixed})
	records := p.Parse(cleanFixedDump)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "01/01/2025", rec.Date)
	assert.Equal(t, "Cardiologia", rec.Specialty)
	assert.Equal(t, "08:00", rec.Time)
	assert.Equal(t, "Dr. Carlos Mendes", rec.Doctor)
	assert.Equal(t, "MARIA SILVA SANTOS", rec.Patient)
	assert.Equal(t, "Unimed", rec.Insurance)
	assert.Equal(t, "(11) 99999-1234", rec.PatientPhone)
	assert.Equal(t, "CONSULTA", rec.Event)
	assert.Equal(t, "12345", rec.RecordNumber)
	assert.Equal(t, SourceAnchor, rec.Sources["doctor"])
	assert.Equal(t, SourcePosition, rec.Sources["patient"])
}

func TestParseFixedTruncatedBlock(t *testing.T) {
	// The record-number line is missing and the next time marker appears
	// where it should be: the short block must still yield a record and the
	// following block must not be swallowed.
	text := `01/01/2025
Especialidade: Cardiologia
08:00
MARIA SILVA SANTOS
Unimed
(11) 99999-1234
CONSULTA
09:00
JOAO PEREIRA
Amil
(11) 98888-0000
RETORNO
54321
`
	p := New(Options{Strategy: StrategyFixed})
	records := p.Parse(text)

	require.Len(t, records, 2)
	assert.Equal(t, "08:00", records[0].Time)
	assert.Equal(t, "MARIA SILVA SANTOS", records[0].Patient)
	assert.Equal(t, "", records[0].RecordNumber)
	assert.Equal(t, "09:00", records[1].Time)
	assert.Equal(t, "JOAO PEREIRA", records[1].Patient)
	assert.Equal(t, "54321", records[1].RecordNumber)
}

func TestParseFixedDanglingMarkerAtEOF(t *testing.T) {
	text := `01/01/2025
Especialidade: Cardiologia
18:00
ZULMIRA COSTA
`
	p := New(Options{Strategy: StrategyFixed})
	assert.Empty(t, p.Parse(text))
}

func TestParseFlexibleGluedEventAndDoctor(t *testing.T) {
	// "CONSULTARICARDO SUSSUMU NAKAYA" must split on the known event
	// keyword, not be claimed by the name heuristic or insurance fallback.
	text := `15/03/2025
Especialidade: Ortopedia
14:00
FRANCISCA DAS CHAGAS SOUSA
85 98765-4321
CONSULTARICARDO SUSSUMU NAKAYA
125717
`
	p := New(Options{})
	records := p.Parse(text)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "15/03/2025", rec.Date)
	assert.Equal(t, "Ortopedia", rec.Specialty)
	assert.Equal(t, "14:00", rec.Time)
	assert.Equal(t, "RICARDO SUSSUMU NAKAYA", rec.Doctor)
	assert.Equal(t, "FRANCISCA DAS CHAGAS SOUSA", rec.Patient)
	assert.Equal(t, "85 98765-4321", rec.PatientPhone)
	assert.Equal(t, "CONSULTA", rec.Event)
	assert.Equal(t, "125717", rec.RecordNumber)
	assert.Equal(t, "", rec.Insurance)
}

func TestParseHeaderDateDoesNotClobberSection(t *testing.T) {
	text := `01/02/2025
Especialidade: Dermatologia
09:30
ANA PAULA BRAGA
(85) 3333-2222
CONSULTA
4567
COFRAT - Relatório
Página 3 de 10
02/02/2025 10:22
10:00
JOSE DA SILVA
(85) 94444-1111
RETORNO
7890
`
	p := New(Options{})
	records := p.Parse(text)

	require.Len(t, records, 2)
	// The date printed inside the page header is decoration; both records
	// stay in the 01/02 section.
	assert.Equal(t, "01/02/2025", records[0].Date)
	assert.Equal(t, "01/02/2025", records[1].Date)
	assert.Equal(t, "JOSE DA SILVA", records[1].Patient)
	assert.Equal(t, "RETORNO", records[1].Event)
}

func TestParseSectionContextInheritance(t *testing.T) {
	text := `01/01/2025
Especialidade: Cardiologia
08:00
MARIA DOS SANTOS
(11) 99999-1234
02/01/2025
Especialidade: Neurologia
09:00
JOAO BATISTA COSTA
(11) 98888-1234
`
	p := New(Options{})
	records := p.Parse(text)

	require.Len(t, records, 2)
	assert.Equal(t, "01/01/2025", records[0].Date)
	assert.Equal(t, "Cardiologia", records[0].Specialty)
	assert.Equal(t, "02/01/2025", records[1].Date)
	assert.Equal(t, "Neurologia", records[1].Specialty)
}

func TestParseWindowedLabeledBlock(t *testing.T) {
	text := `03/03/2025
Especialidade: Fisioterapia
07:00 DR PEDRO ALVES
PACIENTE: JOANA DARC
Convênio: Particular
(85) 98888-7777
321654
`
	p := New(Options{Strategy: StrategyWindowed})
	records := p.Parse(text)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "DR PEDRO ALVES", rec.Doctor)
	assert.Equal(t, "JOANA DARC", rec.Patient)
	assert.Equal(t, "Particular", rec.Insurance)
	assert.Equal(t, "(85) 98888-7777", rec.PatientPhone)
	assert.Equal(t, "321654", rec.RecordNumber)
	assert.Equal(t, SourceLabel, rec.Sources["patient"])
	assert.Equal(t, SourceLabel, rec.Sources["insurance"])
}

func TestParsePhoneAdjacentName(t *testing.T) {
	text := `12/06/2025
Especialidade: Geriatria
13:00
ROSA MARIA LIMA (85) 99999-0000
RETORNO DR ANTONIO NETO
`
	p := New(Options{})
	records := p.Parse(text)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "ROSA MARIA LIMA", rec.Patient)
	assert.Equal(t, "(85) 99999-0000", rec.PatientPhone)
	assert.Equal(t, "RETORNO", rec.Event)
	assert.Equal(t, "DR ANTONIO NETO", rec.Doctor)
	assert.Equal(t, SourcePhoneAdjacent, rec.Sources["patient"])
}

func TestParseInsuranceFallback(t *testing.T) {
	text := `20/07/2025
Especialidade: Oftalmologia
15:30
CARLOS EDUARDO NUNES
Bradesco Saude
(11) 97777-6666
CONSULTA
88123
`
	p := New(Options{})
	records := p.Parse(text)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "CARLOS EDUARDO NUNES", rec.Patient)
	assert.Equal(t, "Bradesco Saude", rec.Insurance)
	assert.Equal(t, SourceHeuristic, rec.Sources["insurance"])
}

func TestParseDottedRecordPattern(t *testing.T) {
	text := `10/04/2025
Especialidade: Pediatria
10:30
LUCAS GABRIEL MOTA
12.345
`
	p := New(Options{RecordPattern: RecordDotted})
	records := p.Parse(text)

	require.Len(t, records, 1)
	assert.Equal(t, "12.345", records[0].RecordNumber)
	assert.Equal(t, "LUCAS GABRIEL MOTA", records[0].Patient)
}

func TestParseNonViableBlockDropped(t *testing.T) {
	// A time marker with neither doctor nor patient recoverable yields no
	// record, but the document still parses.
	text := `05/05/2025
08:00
123
`
	p := New(Options{})
	assert.Empty(t, p.Parse(text))
}

func TestParseNeverFailsOnGarbage(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "completely unrelated text", "::::", "99:99"} {
		p := New(Options{})
		assert.NotNil(t, p.Parse(text))
	}
}

func TestParseIdempotent(t *testing.T) {
	p := New(Options{})
	first := p.Parse(cleanFixedDump)
	second := p.Parse(cleanFixedDump)
	assert.Equal(t, first, second)
}
