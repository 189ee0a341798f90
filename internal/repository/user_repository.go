package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"deutschkurs/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, study_course_id, date_of_register, extra`

func scanUser(row *sql.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.StudyCourseID, &u.DateOfRegister, &u.Extra)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrNotFound
	}
	return u, err
}

func (r *UserRepository) GetByID(id int) (entity.User, error) {
	return scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(email string) (entity.User, error) {
	return scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Create(u entity.User) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role, date_of_register)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Name, u.Email, u.PasswordHash, u.Role, u.DateOfRegister).Scan(&id)
	return id, err
}

// CreateManager inserts the user and claims the course in one transaction.
// The claim only succeeds while the course is still unowned; otherwise the
// whole registration rolls back and ErrCourseClaimed is returned.
func (r *UserRepository) CreateManager(u entity.User, courseID int) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`
		INSERT INTO users (name, email, password_hash, role, date_of_register)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Name, u.Email, u.PasswordHash, entity.RoleManager, u.DateOfRegister).Scan(&id)
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(`
		UPDATE courses SET owner_id = $1 WHERE id = $2 AND owner_id IS NULL
	`, id, courseID)
	if err != nil {
		return 0, err
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if claimed == 0 {
		return 0, ErrCourseClaimed
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) SetStudyCourse(userID, courseID int) error {
	_, err := r.db.Exec(`UPDATE users SET study_course_id = $1 WHERE id = $2`, courseID, userID)
	return err
}

func (r *UserRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// EnsureAdmin creates the site administrator account on first start.
// An existing admin row is left untouched.
func (r *UserRepository) EnsureAdmin(u entity.User) error {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = $1`, entity.RoleAdmin).Scan(&n); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err := r.db.Exec(`
		INSERT INTO users (name, email, password_hash, role, date_of_register)
		VALUES ($1, $2, $3, $4, $5)
	`, u.Name, u.Email, u.PasswordHash, entity.RoleAdmin, u.DateOfRegister)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
