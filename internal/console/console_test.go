package console_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/console"
	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/student"
)

// fakeService records calls and returns canned data so tests can walk
// the menu without a database.
type fakeService struct {
	created   []*student.Student
	deleted   []int
	students  map[int]*student.Student
	createErr error
}

func newFakeService() *fakeService {
	return &fakeService{students: map[int]*student.Student{}}
}

func (f *fakeService) Create(_ context.Context, s *student.Student) (*student.Student, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = len(f.created) + 1
	f.created = append(f.created, s)
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeService) GetAll(context.Context) ([]student.Student, error) {
	var out []student.Student
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeService) GetByID(_ context.Context, id int) (*student.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, &student.Error{Kind: student.KindNotFound, Message: "student not found"}
	}
	return s, nil
}

func (f *fakeService) Update(context.Context, *student.Student) error { return nil }

func (f *fakeService) Delete(_ context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	delete(f.students, id)
	return nil
}

func (f *fakeService) SearchByName(context.Context, string) ([]student.Student, error) {
	return nil, nil
}

func (f *fakeService) ByMajor(context.Context, string) ([]student.Student, error) {
	return nil, nil
}

func (f *fakeService) ByMinGPA(context.Context, float64) ([]student.Student, error) {
	return nil, nil
}

func run(t *testing.T, svc student.Service, input string) string {
	t.Helper()
	var out strings.Builder
	ui := console.New(strings.NewReader(input), &out, svc)
	require.NoError(t, ui.Run(context.Background()))
	return out.String()
}

func TestUI_AddStudent(t *testing.T) {
	svc := newFakeService()

	input := strings.Join([]string{
		"1",
		"Ada",
		"Lovelace",
		"ada@x.com",
		"1234567890",
		"1990-06-15",
		"Math",
		"4.0",
		"9",
	}, "\n") + "\n"

	out := run(t, svc, input)

	require.Len(t, svc.created, 1)
	created := svc.created[0]
	assert.Equal(t, "Ada", created.FirstName)
	assert.Equal(t, "ada@x.com", created.Email)
	assert.Equal(t, time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC), created.DateOfBirth)
	assert.Equal(t, 4.0, created.GPA)
	assert.Contains(t, out, "Student added successfully! Student ID: 1")
}

func TestUI_AddStudent_BadDateNeverReachesService(t *testing.T) {
	svc := newFakeService()

	input := strings.Join([]string{
		"1",
		"Ada", "Lovelace", "ada@x.com", "1234567890",
		"15/06/1990", // wrong format
		"Math", "4.0",
		"9",
	}, "\n") + "\n"

	out := run(t, svc, input)

	assert.Empty(t, svc.created)
	assert.Contains(t, out, "Invalid date")
}

func TestUI_DeleteRequiresConfirmation(t *testing.T) {
	svc := newFakeService()
	svc.students[1] = &student.Student{ID: 1, FirstName: "Ada", LastName: "Lovelace"}

	out := run(t, svc, "5\n1\nno\n9\n")
	assert.Empty(t, svc.deleted)
	assert.Contains(t, out, "Delete operation cancelled")

	out = run(t, svc, "5\n1\nyes\n9\n")
	assert.Equal(t, []int{1}, svc.deleted)
	assert.Contains(t, out, "Student deleted successfully!")
}

func TestUI_ViewByID_NotFound(t *testing.T) {
	svc := newFakeService()

	out := run(t, svc, "3\n42\n9\n")
	assert.Contains(t, out, "student not found")
}

func TestUI_InvalidMenuChoice(t *testing.T) {
	svc := newFakeService()

	out := run(t, svc, "banana\n9\n")
	assert.Contains(t, out, "Invalid choice")
}

func TestUI_ExitsOnClosedInput(t *testing.T) {
	svc := newFakeService()

	// No trailing "9": input simply ends.
	out := run(t, svc, "")
	assert.Contains(t, out, "MAIN MENU")
}
