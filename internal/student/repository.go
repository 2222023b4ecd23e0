package student

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Repository translates between Student records and rows of the
// students table. Every query is parameterized; storage errors come
// back as errors, never as panics.
type Repository interface {
	Create(ctx context.Context, student *Student) (*Student, error)
	GetAll(ctx context.Context) ([]Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id int) error
	FindByName(ctx context.Context, fragment string) ([]Student, error)
	FindByMajor(ctx context.Context, fragment string) ([]Student, error)
	FindByMinGPA(ctx context.Context, min float64) ([]Student, error)

	// InTx runs fn against a repository bound to a single transaction:
	// committed when fn returns nil, rolled back otherwise.
	InTx(ctx context.Context, fn func(Repository) error) error
}

type repository struct {
	db bun.IDB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, student *Student) (*Student, error) {
	_, err := r.db.NewInsert().Model(student).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Student, error) {
	var students []Student
	err := r.db.NewSelect().
		Model(&students).
		Order("id ASC").
		Scan(ctx)
	return students, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Student, error) {
	student := new(Student)
	err := r.db.NewSelect().Model(student).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

func (r *repository) Update(ctx context.Context, student *Student) error {
	result, err := r.db.NewUpdate().Model(student).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	return oneRowAffected(result)
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.NewDelete().
		Model((*Student)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	return oneRowAffected(result)
}

func (r *repository) FindByName(ctx context.Context, fragment string) ([]Student, error) {
	pattern := contains(fragment)
	var students []Student
	err := r.db.NewSelect().
		Model(&students).
		Where("first_name ILIKE ?", pattern).
		WhereOr("last_name ILIKE ?", pattern).
		Order("first_name ASC").
		Scan(ctx)
	return students, err
}

func (r *repository) FindByMajor(ctx context.Context, fragment string) ([]Student, error) {
	var students []Student
	err := r.db.NewSelect().
		Model(&students).
		Where("major ILIKE ?", contains(fragment)).
		Order("gpa DESC").
		Scan(ctx)
	return students, err
}

func (r *repository) FindByMinGPA(ctx context.Context, min float64) ([]Student, error) {
	var students []Student
	err := r.db.NewSelect().
		Model(&students).
		Where("gpa >= ?", min).
		Order("gpa DESC").
		Scan(ctx)
	return students, err
}

func (r *repository) InTx(ctx context.Context, fn func(Repository) error) error {
	db, ok := r.db.(*bun.DB)
	if !ok {
		// Already transaction-bound; nested transactions are not used.
		return fn(r)
	}
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(&repository{db: tx})
	})
}

func oneRowAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func contains(fragment string) string {
	return "%" + fragment + "%"
}
