package repository

import (
	"database/sql"
	"errors"

	"deutschkurs/internal/entity"
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, name, language, level, teacher, month, year, code, date_of_creation, owner_id, extra`

func scanCourse(row *sql.Row) (entity.Course, error) {
	var c entity.Course
	err := row.Scan(&c.ID, &c.Name, &c.Language, &c.Level, &c.Teacher, &c.Month, &c.Year,
		&c.Code, &c.DateOfCreation, &c.OwnerID, &c.Extra)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

func (r *CourseRepository) GetByID(id int) (entity.Course, error) {
	return scanCourse(r.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

func (r *CourseRepository) GetByCode(code string) (entity.Course, error) {
	return scanCourse(r.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE code = $1`, code))
}

func (r *CourseRepository) GetByName(name string) (entity.Course, error) {
	return scanCourse(r.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE name = $1`, name))
}

func (r *CourseRepository) GetByOwner(userID int) (entity.Course, error) {
	return scanCourse(r.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE owner_id = $1`, userID))
}

func (r *CourseRepository) All() ([]entity.Course, error) {
	rows, err := r.db.Query(`SELECT ` + courseColumns + ` FROM courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []entity.Course
	for rows.Next() {
		var c entity.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Language, &c.Level, &c.Teacher, &c.Month, &c.Year,
			&c.Code, &c.DateOfCreation, &c.OwnerID, &c.Extra); err != nil {
			return courses, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) Create(c entity.Course) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO courses (name, language, level, teacher, month, year, code, date_of_creation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, c.Name, c.Language, c.Level, c.Teacher, c.Month, c.Year, c.Code, c.DateOfCreation).Scan(&id)
	return id, err
}

func (r *CourseRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	return err
}

func (r *CourseRepository) CodeExists(code string) (bool, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM courses WHERE code = $1`, code).Scan(&n)
	return n > 0, err
}

func (r *CourseRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&n)
	return n, err
}
