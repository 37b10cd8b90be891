package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEventLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		event  string
		doctor string
	}{
		{"bare keyword", "CONSULTA", "CONSULTA", ""},
		{"keyword with space", "RETORNO DR ANTONIO NETO", "RETORNO", "DR ANTONIO NETO"},
		{"keyword glued to name", "CONSULTARICARDO SUSSUMU NAKAYA", "CONSULTA", "RICARDO SUSSUMU NAKAYA"},
		{"keyword with separator", "CONSULTA - DRA LIVIA", "CONSULTA", "DRA LIVIA"},
		{"unknown event splits on space", "AVALIACAO DR HUGO", "AVALIACAO", "DR HUGO"},
		{"single unknown word", "AVALIACAO", "AVALIACAO", ""},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, doctor := splitEventLine(tt.line)
			assert.Equal(t, tt.event, event)
			assert.Equal(t, tt.doctor, doctor)
		})
	}
}

func TestSplitKnownEvent(t *testing.T) {
	event, doctor := splitKnownEvent("CONSULTARICARDO SUSSUMU NAKAYA")
	assert.Equal(t, "CONSULTA", event)
	assert.Equal(t, "RICARDO SUSSUMU NAKAYA", doctor)

	event, doctor = splitKnownEvent("EXAME DE VISTA")
	assert.Equal(t, "", event)
	assert.Equal(t, "", doctor)
}

func TestMatchRecordNumber(t *testing.T) {
	trailing := New(Options{})
	num, prefix, ok := trailing.matchRecordNumber("CONSULTA 125717")
	assert.True(t, ok)
	assert.Equal(t, "125717", num)
	assert.Equal(t, "CONSULTA", prefix)

	_, _, ok = trailing.matchRecordNumber("MARIA SILVA")
	assert.False(t, ok)

	dotted := New(Options{RecordPattern: RecordDotted})
	num, _, ok = dotted.matchRecordNumber("12.345")
	assert.True(t, ok)
	assert.Equal(t, "12.345", num)

	_, _, ok = dotted.matchRecordNumber("125717")
	assert.False(t, ok)
}

func TestPlausibleSpecialty(t *testing.T) {
	assert.True(t, plausibleSpecialty("Cardiologia"))
	assert.False(t, plausibleSpecialty("08:00"))
	assert.False(t, plausibleSpecialty("(11) 99999-1234"))
	assert.False(t, plausibleSpecialty("Data :"))
	assert.False(t, plausibleSpecialty("Consulta 123"))
	assert.False(t, plausibleSpecialty(""))
}

func TestIsNearHeader(t *testing.T) {
	lines := []string{
		"COFRAT - Relatório",
		"Página 1 de 3",
		"x",
		"02/02/2025",
		"y",
		"z",
		"w",
		"03/03/2025",
	}
	assert.True(t, isNearHeader(lines, 3))
	assert.False(t, isNearHeader(lines, 7))
}

func TestPhonePattern(t *testing.T) {
	for _, s := range []string{"(11) 99999-1234", "85 98765-4321", "11999991234", "(85)3333-2222"} {
		assert.True(t, phoneRe.MatchString(s), s)
	}
	for _, s := range []string{"123", "12.345", "MARIA SILVA"} {
		assert.False(t, phoneRe.MatchString(s), s)
	}
}
