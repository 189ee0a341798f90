package repository

import (
	"database/sql"
	"errors"

	"deutschkurs/internal/entity"
)

type WordRepository struct {
	db *sql.DB
}

func NewWordRepository(db *sql.DB) *WordRepository {
	return &WordRepository{db: db}
}

const wordColumns = `id, name, meaning, gender, description, section_id`

func (r *WordRepository) GetByID(id int) (entity.Word, error) {
	var w entity.Word
	err := r.db.QueryRow(`SELECT `+wordColumns+` FROM words WHERE id = $1`, id).
		Scan(&w.ID, &w.Name, &w.Meaning, &w.Gender, &w.Description, &w.SectionID)
	if errors.Is(err, sql.ErrNoRows) {
		return w, ErrNotFound
	}
	return w, err
}

func (r *WordRepository) ListBySection(sectionID int) ([]entity.Word, error) {
	return r.queryWords(`SELECT `+wordColumns+` FROM words WHERE section_id = $1 ORDER BY id`, sectionID)
}

func (r *WordRepository) Create(w entity.Word) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO words (name, meaning, gender, description, section_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, w.Name, w.Meaning, w.Gender, w.Description, w.SectionID).Scan(&id)
	return id, err
}

func (r *WordRepository) Update(w entity.Word) error {
	_, err := r.db.Exec(`
		UPDATE words SET name = $1, meaning = $2, gender = $3, description = $4 WHERE id = $5
	`, w.Name, w.Meaning, w.Gender, w.Description, w.ID)
	return err
}

func (r *WordRepository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM words WHERE id = $1`, id)
	return err
}

// Search matches the query as a case-insensitive substring of the word's
// name or meaning, across every course, in natural order.
func (r *WordRepository) Search(query string) ([]entity.Word, error) {
	return r.queryWords(`
		SELECT `+wordColumns+` FROM words
		WHERE name ILIKE '%' || $1 || '%' OR meaning ILIKE '%' || $1 || '%'
		ORDER BY id
	`, query)
}

func (r *WordRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n)
	return n, err
}

func (r *WordRepository) CountBySection(sectionID int) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words WHERE section_id = $1`, sectionID).Scan(&n)
	return n, err
}

func (r *WordRepository) queryWords(query string, args ...any) ([]entity.Word, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []entity.Word
	for rows.Next() {
		var w entity.Word
		if err := rows.Scan(&w.ID, &w.Name, &w.Meaning, &w.Gender, &w.Description, &w.SectionID); err != nil {
			return words, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
