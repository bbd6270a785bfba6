package model

// EBook is a downloadable title in the digital collection.
type EBook struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Format string `json:"format"` // PDF | DOC
	URL    string `json:"url"`
}

// StudyMaterial is a shared note set or past exam paper.
type StudyMaterial struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"` // notes | paper
	Subject    string `json:"subject"`
	UploadedBy string `json:"uploadedBy"`
	URL        string `json:"url"`
}

// ContactInfo holds the library's static contact card.
type ContactInfo struct {
	Librarian string            `json:"librarian"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email"`
	Address   string            `json:"address"`
	Hours     map[string]string `json:"hours"`
}
