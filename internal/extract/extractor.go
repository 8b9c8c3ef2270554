package extract

// DefaultContextRadius bounds the field-extraction window around a firm
// mention. Fields are read from this local window rather than the whole post
// so two firms mentioned in one post do not contaminate each other.
const DefaultContextRadius = 100

// Fields holds everything the extractor pulled from one evidence window.
type Fields struct {
	ProgramType         string
	City                string
	IntakeYear          *int
	OpenDate            string
	CloseDate           string
	ProgramLengthMonths *int
	RotationsCount      *int
	SalaryAnnualAUD     *float64
}

// Extractor pulls structured fields from the context window around one firm
// mention. Safe for concurrent use; all tables are read-only.
type Extractor struct {
	cities *CityTable
	radius int
}

// NewExtractor builds an extractor. A non-positive radius falls back to
// DefaultContextRadius.
func NewExtractor(cities *CityTable, radius int) *Extractor {
	if radius <= 0 {
		radius = DefaultContextRadius
	}
	if cities == nil {
		cities = DefaultCityTable()
	}
	return &Extractor{cities: cities, radius: radius}
}

// Window returns the bounded context slice around a mention.
func (e *Extractor) Window(text string, mentionStart, mentionEnd int) string {
	start := mentionStart - e.radius
	if start < 0 {
		start = 0
	}
	end := mentionEnd + e.radius
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		return ""
	}
	return text[start:end]
}

// Extract resolves every field for one window. Absent fields come back as
// nil or empty; that is a normal outcome, never an error.
func (e *Extractor) Extract(window, threadTitle, postTimestamp string) Fields {
	openDate, closeDate := ApplicationDates(window)
	return Fields{
		ProgramType:         ClassifyProgram(window),
		City:                e.cities.Detect(window, threadTitle),
		IntakeYear:          IntakeYear(window, threadTitle, postTimestamp),
		OpenDate:            openDate,
		CloseDate:           closeDate,
		ProgramLengthMonths: ProgramLengthMonths(window),
		RotationsCount:      RotationsCount(window),
		SalaryAnnualAUD:     SalaryAnnualAUD(window),
	}
}
