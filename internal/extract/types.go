package extract

// Fragment is one positioned text run as emitted by a PDF text decoder.
// The text may still carry URI-style percent escapes.
type Fragment struct {
	Text string `json:"text"`
}

// Page groups the fragments of one PDF page in reading order.
type Page struct {
	Fragments []Fragment `json:"fragments"`
}

type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
}

type Project struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// ParsedResume is the terminal output of the extraction pipeline. Every
// slice field is always non-nil so consumers only ever branch on emptiness.
type ParsedResume struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Headline   string       `json:"headline"`
	Summary    string       `json:"summary"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`
	RawText    string       `json:"rawText"`
}

func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
	}
}
