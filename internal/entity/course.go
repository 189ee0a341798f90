package entity

type Course struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Language       string  `json:"language"`
	Level          string  `json:"level"`
	Teacher        string  `json:"teacher"`
	Month          string  `json:"month"`
	Year           string  `json:"year"`
	Code           string  `json:"code"`
	DateOfCreation string  `json:"date_of_creation"`
	OwnerID        *int    `json:"owner_id,omitempty"`
	Extra          *string `json:"extra,omitempty"`
}

type Section struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	CourseID int    `json:"course_id"`
}
