package entity

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleLearner = "learner"
)

type User struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PasswordHash   string  `json:"-"`
	Role           string  `json:"role"`
	StudyCourseID  *int    `json:"study_course_id,omitempty"`
	DateOfRegister string  `json:"date_of_register"`
	Extra          *string `json:"extra,omitempty"`
}
