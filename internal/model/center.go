package model

// SupportCenter is one record of the static support-center fixture. The
// fixture is embedded once into the vector store; it is never served
// directly.
type SupportCenter struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	NameKo         string   `json:"name_ko"`
	Type           string   `json:"type"` // community | counseling
	City           string   `json:"city"`
	District       string   `json:"district"`
	Services       []string `json:"services"`
	Languages      []string `json:"languages"`
	SessionType    []string `json:"session_type"` // online | offline
	Website        string   `json:"website"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Description    string   `json:"description"`
	EmbeddingText  string   `json:"embedding_text,omitempty"`
	TargetAudience []string `json:"target_audience,omitempty"`
}

// SupportResult is one ranked hit from the support search: the similarity
// score plus the stored payload fields.
type SupportResult struct {
	ID          string   `json:"id"`
	Score       float64  `json:"score"`
	CenterID    string   `json:"center_id"`
	Name        string   `json:"name"`
	NameKo      string   `json:"name_ko"`
	Type        string   `json:"type"`
	City        string   `json:"city"`
	District    string   `json:"district"`
	Services    []string `json:"services"`
	Languages   []string `json:"languages"`
	SessionType []string `json:"session_type"`
	Website     string   `json:"website"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
}
