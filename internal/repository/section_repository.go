package repository

import (
	"database/sql"
	"errors"

	"deutschkurs/internal/entity"
)

type SectionRepository struct {
	db *sql.DB
}

func NewSectionRepository(db *sql.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) GetByID(id int) (entity.Section, error) {
	var s entity.Section
	err := r.db.QueryRow(`SELECT id, name, course_id FROM sections WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.CourseID)
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrNotFound
	}
	return s, err
}

// ListByCourse returns the course's sections newest first.
func (r *SectionRepository) ListByCourse(courseID int) ([]entity.Section, error) {
	rows, err := r.db.Query(`
		SELECT id, name, course_id FROM sections WHERE course_id = $1 ORDER BY id DESC
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []entity.Section
	for rows.Next() {
		var s entity.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.CourseID); err != nil {
			return sections, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *SectionRepository) Create(s entity.Section) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO sections (name, course_id) VALUES ($1, $2) RETURNING id
	`, s.Name, s.CourseID).Scan(&id)
	return id, err
}

// Delete removes the section's words first, then the section itself.
func (r *SectionRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM words WHERE section_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM sections WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}
