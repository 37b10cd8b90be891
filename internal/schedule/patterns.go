package schedule

import "regexp"

var (
	// timeAnchorRe marks the start of an appointment block. The marker may
	// carry trailing text (usually the doctor's name) on the same line.
	timeAnchorRe = regexp.MustCompile(`^\d{2}:\d{2}`)

	dateRe = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

	// phoneRe matches Brazilian phone shapes: optional (DDD), 4-5 digit
	// prefix, optional hyphen, or a bare 10-11 digit run.
	phoneRe = regexp.MustCompile(`\(?\d{2}\)?\s*\d{4,5}-?\d{4}|\b\d{10,11}\b`)

	recordTrailingRe = regexp.MustCompile(`(\d{3,})\s*$`)
	recordDottedRe   = regexp.MustCompile(`^\d{2,3}\.\d{2,3}`)

	// upperNameRe finds 2-4 consecutive all-caps words (accented Portuguese
	// letters included), the shape patient and doctor names take in dumps.
	upperNameRe = regexp.MustCompile(`[A-ZÁÀÂÃÉÊÍÓÔÕÚÜÇ]{2,}(?:\s+[A-ZÁÀÂÃÉÊÍÓÔÕÚÜÇ]{2,}){1,3}`)

	digitRe = regexp.MustCompile(`\d`)
)

// headerIndicators flag page headers; dates found within headerLookback
// lines of one are decoration, not section markers.
var headerIndicators = []string{
	"Página",
	"Page",
	"SIMAH",
	"Agendamentos de Consultas",
	"COFRAT",
}

const headerLookback = 3

// baseNoisePrefixes are junk in every strategy. The fixed positional
// strategy additionally treats column-header labels as junk; the
// disambiguating strategies keep those visible as labels.
var baseNoisePrefixes = []string{
	"Página",
	"SIMAH",
	"Agendamentos de Consultas",
	"COFRAT",
	"Sub - Total",
}

var columnHeaderPrefixes = []string{
	"Médico",
	"Paciente",
	"Convênio",
	"Telefone do Paciente",
	"Evento",
	"Prontuário",
}

// eventTypes is the closed set of known appointment event keywords, matched
// before any name heuristic runs.
var eventTypes = []string{"CONSULTA", "RETORNO"}

// insuranceLabels are lowercase substrings that mark a line as an insurance
// label line.
var insuranceLabels = []string{"convênio", "convenio", "plano", "seguradora", "empresa"}

const specialtyKeyword = "Especialidade"

// maxBlockLines caps how far the flexible strategy scans past a time marker.
const maxBlockLines = 12

// windowLines is the fixed lookahead of the windowed strategy.
const windowLines = 9
