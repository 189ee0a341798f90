package handler

import "deutschkurs/internal/entity"

// The stores a handler needs, implemented by the repository package.

type UserStore interface {
	GetByID(id int) (entity.User, error)
	GetByEmail(email string) (entity.User, error)
	Create(u entity.User) (int, error)
	CreateManager(u entity.User, courseID int) (int, error)
	SetStudyCourse(userID, courseID int) error
	Count() (int, error)
}

type CourseStore interface {
	GetByID(id int) (entity.Course, error)
	GetByCode(code string) (entity.Course, error)
	GetByName(name string) (entity.Course, error)
	GetByOwner(userID int) (entity.Course, error)
	All() ([]entity.Course, error)
	Create(c entity.Course) (int, error)
	Delete(id int) error
	CodeExists(code string) (bool, error)
	Count() (int, error)
}

type SectionStore interface {
	GetByID(id int) (entity.Section, error)
	ListByCourse(courseID int) ([]entity.Section, error)
	Create(s entity.Section) (int, error)
	Delete(id int) error
}

type WordStore interface {
	GetByID(id int) (entity.Word, error)
	ListBySection(sectionID int) ([]entity.Word, error)
	Create(w entity.Word) (int, error)
	Update(w entity.Word) error
	Delete(id int) error
	Search(query string) ([]entity.Word, error)
	Count() (int, error)
	CountBySection(sectionID int) (int, error)
}
