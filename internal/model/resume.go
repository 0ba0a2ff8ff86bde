package model

const (
	ResumeStateActive     = "active"
	ResumeStateSuperseded = "superseded"
)

// Resume is one uploaded source document. Parsed holds the extraction
// result as JSON so the row stays readable without re-running the pipeline.
type Resume struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FileName string `json:"file_name"`
	FileKey  string `json:"file_key"`
	Parsed   string `json:"parsed"`
	State    string `json:"state"`
	Ctime    int64  `json:"ctime"`
	Mtime    int64  `json:"mtime"`
}
