package student

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Service enforces the business rules: field validation, case-insensitive
// email uniqueness, and existence checks, all before any write reaches
// the repository. Failures are *Error values; nothing here panics.
type Service interface {
	Create(ctx context.Context, student *Student) (*Student, error)
	GetAll(ctx context.Context) ([]Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, fragment string) ([]Student, error)
	ByMajor(ctx context.Context, fragment string) ([]Student, error)
	ByMinGPA(ctx context.Context, min float64) ([]Student, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) Create(ctx context.Context, student *Student) (*Student, error) {
	if err := validateFields(student); err != nil {
		return nil, err
	}

	taken, err := s.emailTaken(ctx, student.Email, 0)
	if err != nil {
		s.logger.ErrorContext(ctx, "email uniqueness check failed", "error", err)
		return nil, storageError("could not check email uniqueness", err)
	}
	if taken {
		return nil, duplicateError("email already exists in the database")
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		s.logger.ErrorContext(ctx, "create student failed", "error", err)
		return nil, storageError("failed to create student record", err)
	}
	s.logger.InfoContext(ctx, "student created", "id", created.ID, "email", created.Email)
	return created, nil
}

func (s *service) GetAll(ctx context.Context) ([]Student, error) {
	students, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, storageError("failed to list students", err)
	}
	return students, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return student, nil
}

func (s *service) Update(ctx context.Context, student *Student) error {
	// Existence check comes first so a bad ID reports "not found"
	// rather than a field error.
	if _, err := s.repo.GetByID(ctx, student.ID); err != nil {
		return s.lookupError(student.ID, err)
	}

	if err := validateFields(student); err != nil {
		return err
	}

	// The record's own row is exempt, so keeping the email unchanged
	// never self-conflicts.
	taken, err := s.emailTaken(ctx, student.Email, student.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "email uniqueness check failed", "error", err)
		return storageError("could not check email uniqueness", err)
	}
	if taken {
		return duplicateError("email already exists for another student")
	}

	if err := s.repo.Update(ctx, student); err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			return notFoundError(fmt.Sprintf("student with ID %d not found", student.ID))
		}
		s.logger.ErrorContext(ctx, "update student failed", "id", student.ID, "error", err)
		return storageError("failed to update student record", err)
	}
	s.logger.InfoContext(ctx, "student updated", "id", student.ID)
	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return s.lookupError(id, err)
	}

	err := s.repo.InTx(ctx, func(r Repository) error {
		return r.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			return notFoundError(fmt.Sprintf("student with ID %d not found", id))
		}
		s.logger.ErrorContext(ctx, "delete student failed", "id", id, "error", err)
		return storageError("failed to delete student record", err)
	}
	s.logger.InfoContext(ctx, "student deleted", "id", id)
	return nil
}

func (s *service) SearchByName(ctx context.Context, fragment string) ([]Student, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []Student{}, nil
	}
	students, err := s.repo.FindByName(ctx, fragment)
	if err != nil {
		return nil, storageError("failed to search students by name", err)
	}
	return students, nil
}

func (s *service) ByMajor(ctx context.Context, fragment string) ([]Student, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []Student{}, nil
	}
	students, err := s.repo.FindByMajor(ctx, fragment)
	if err != nil {
		return nil, storageError("failed to filter students by major", err)
	}
	return students, nil
}

func (s *service) ByMinGPA(ctx context.Context, min float64) ([]Student, error) {
	if !IsValidGPA(min) {
		return []Student{}, nil
	}
	students, err := s.repo.FindByMinGPA(ctx, min)
	if err != nil {
		return nil, storageError("failed to filter students by GPA", err)
	}
	return students, nil
}

// validateFields runs every field check in a fixed order and stops at
// the first failure.
func validateFields(student *Student) error {
	if !IsValidName(student.FirstName) {
		return validationError("invalid first name: must contain only letters and be at least 2 characters long")
	}
	if !IsValidName(student.LastName) {
		return validationError("invalid last name: must contain only letters and be at least 2 characters long")
	}
	if !IsValidEmail(student.Email) {
		return validationError("invalid email format")
	}
	if !IsValidPhone(student.Phone) {
		return validationError("invalid phone number format")
	}
	if !IsValidBirthDate(student.DateOfBirth) {
		return validationError("invalid date of birth: must be between 1900-01-01 and today")
	}
	if !IsValidMajor(student.Major) {
		return validationError("invalid major: must be between 2 and 50 characters long")
	}
	if !IsValidGPA(student.GPA) {
		return validationError("invalid GPA: must be between 0.0 and 4.0")
	}
	return nil
}

// emailTaken scans the full current record set rather than querying by
// email. Low volume makes this acceptable; the unique index on
// students.email backstops the unguarded check-then-write window.
func (s *service) emailTaken(ctx context.Context, email string, exceptID int) (bool, error) {
	students, err := s.repo.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range students {
		if students[i].ID != exceptID && strings.EqualFold(students[i].Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) lookupError(id int, err error) error {
	if errors.Is(err, ErrStudentNotFound) {
		return notFoundError(fmt.Sprintf("student with ID %d not found", id))
	}
	s.logger.Error("student lookup failed", "id", id, "error", err)
	return storageError("failed to load student record", err)
}
