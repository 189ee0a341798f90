package entity

// Genders a word may carry. The empty value means the word has no article.
var Genders = []string{"der", "die", "das"}

type Word struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Meaning     string `json:"meaning"`
	Gender      string `json:"gender,omitempty"`
	Description string `json:"description,omitempty"`
	SectionID   int    `json:"section_id"`
}
