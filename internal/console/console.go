// Package console implements the interactive menu loop. All free-text
// parsing happens here; the service only ever sees typed values.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/student"
)

type UI struct {
	in      *bufio.Scanner
	out     io.Writer
	service student.Service
}

func New(in io.Reader, out io.Writer, service student.Service) *UI {
	return &UI{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
	}
}

// Run drives the menu loop until the user exits or stdin closes.
func (u *UI) Run(ctx context.Context) error {
	u.printf("==============================================\n")
	u.printf("         STUDENT MANAGEMENT SYSTEM\n")
	u.printf("==============================================\n")

	for {
		u.printMenu()
		line, ok := u.prompt("Enter your choice (1-9): ")
		if !ok {
			return nil
		}

		choice, _ := student.ParseInt(line)
		switch choice {
		case 1:
			u.addStudent(ctx)
		case 2:
			u.viewAll(ctx)
		case 3:
			u.viewByID(ctx)
		case 4:
			u.updateStudent(ctx)
		case 5:
			u.deleteStudent(ctx)
		case 6:
			u.searchByName(ctx)
		case 7:
			u.filterByMajor(ctx)
		case 8:
			u.filterByGPA(ctx)
		case 9:
			u.printf("\nGoodbye!\n")
			return nil
		default:
			u.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (u *UI) printMenu() {
	u.printf("\n----------------------------------------------\n")
	u.printf("                  MAIN MENU\n")
	u.printf("----------------------------------------------\n")
	u.printf("1. Add New Student\n")
	u.printf("2. View All Students\n")
	u.printf("3. View Student by ID\n")
	u.printf("4. Update Student\n")
	u.printf("5. Delete Student\n")
	u.printf("6. Search Students by Name\n")
	u.printf("7. Filter Students by Major\n")
	u.printf("8. Filter Students by GPA\n")
	u.printf("9. Exit\n")
	u.printf("----------------------------------------------\n")
}

func (u *UI) addStudent(ctx context.Context) {
	u.header("ADD NEW STUDENT")

	firstName, ok := u.prompt("Enter First Name: ")
	if !ok {
		return
	}
	lastName, ok := u.prompt("Enter Last Name: ")
	if !ok {
		return
	}
	email, ok := u.prompt("Enter Email: ")
	if !ok {
		return
	}
	phone, ok := u.prompt("Enter Phone: ")
	if !ok {
		return
	}
	dobInput, ok := u.prompt("Enter Date of Birth (yyyy-mm-dd): ")
	if !ok {
		return
	}
	major, ok := u.prompt("Enter Major: ")
	if !ok {
		return
	}
	gpaInput, ok := u.prompt("Enter GPA (0.0-4.0): ")
	if !ok {
		return
	}

	dob, ok := student.ParseDate(dobInput)
	if !ok {
		u.printf("Invalid date. Use yyyy-mm-dd, between 1900-01-01 and today.\n")
		return
	}
	gpa, ok := student.ParseFloat(gpaInput)
	if !ok {
		u.printf("Invalid GPA. Please enter a valid number.\n")
		return
	}

	created, err := u.service.Create(ctx, &student.Student{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       phone,
		DateOfBirth: dob,
		Major:       major,
		GPA:         gpa,
	})
	if err != nil {
		u.printf("Failed to add student: %s\n", failMessage(err))
		return
	}
	u.printf("Student added successfully! Student ID: %d\n", created.ID)
}

func (u *UI) viewAll(ctx context.Context) {
	u.header("ALL STUDENTS")

	students, err := u.service.GetAll(ctx)
	if err != nil {
		u.printf("Failed to list students: %s\n", failMessage(err))
		return
	}
	if len(students) == 0 {
		u.printf("No students found in the database.\n")
		return
	}
	u.printTable(students)
}

func (u *UI) viewByID(ctx context.Context) {
	u.header("VIEW STUDENT BY ID")

	id, ok := u.promptID("Enter Student ID: ")
	if !ok {
		return
	}

	found, err := u.service.GetByID(ctx, id)
	if err != nil {
		u.printf("%s\n", failMessage(err))
		return
	}
	u.printDetails(found)
}

func (u *UI) updateStudent(ctx context.Context) {
	u.header("UPDATE STUDENT")

	id, ok := u.promptID("Enter Student ID to update: ")
	if !ok {
		return
	}

	existing, err := u.service.GetByID(ctx, id)
	if err != nil {
		u.printf("%s\n", failMessage(err))
		return
	}

	u.printf("\nCurrent student information:\n")
	u.printDetails(existing)
	u.printf("\nEnter new information (press Enter to keep current value):\n")

	firstName, ok := u.promptDefault(fmt.Sprintf("First Name [%s]: ", existing.FirstName), existing.FirstName)
	if !ok {
		return
	}
	lastName, ok := u.promptDefault(fmt.Sprintf("Last Name [%s]: ", existing.LastName), existing.LastName)
	if !ok {
		return
	}
	email, ok := u.promptDefault(fmt.Sprintf("Email [%s]: ", existing.Email), existing.Email)
	if !ok {
		return
	}
	phone, ok := u.promptDefault(fmt.Sprintf("Phone [%s]: ", existing.Phone), existing.Phone)
	if !ok {
		return
	}

	dob := existing.DateOfBirth
	dobInput, ok := u.prompt(fmt.Sprintf("Date of Birth [%s] (yyyy-mm-dd): ", dob.Format("2006-01-02")))
	if !ok {
		return
	}
	if dobInput != "" {
		parsed, valid := student.ParseDate(dobInput)
		if !valid {
			u.printf("Invalid date format. Update cancelled.\n")
			return
		}
		dob = parsed
	}

	major, ok := u.promptDefault(fmt.Sprintf("Major [%s]: ", existing.Major), existing.Major)
	if !ok {
		return
	}

	gpa := existing.GPA
	gpaInput, ok := u.prompt(fmt.Sprintf("GPA [%.2f]: ", gpa))
	if !ok {
		return
	}
	if gpaInput != "" {
		parsed, valid := student.ParseFloat(gpaInput)
		if !valid {
			u.printf("Invalid GPA format. Update cancelled.\n")
			return
		}
		gpa = parsed
	}

	err = u.service.Update(ctx, &student.Student{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       phone,
		DateOfBirth: dob,
		Major:       major,
		GPA:         gpa,
	})
	if err != nil {
		u.printf("Failed to update student: %s\n", failMessage(err))
		return
	}
	u.printf("Student updated successfully!\n")

	if updated, err := u.service.GetByID(ctx, id); err == nil {
		u.printf("\nUpdated student information:\n")
		u.printDetails(updated)
	}
}

func (u *UI) deleteStudent(ctx context.Context) {
	u.header("DELETE STUDENT")

	id, ok := u.promptID("Enter Student ID to delete: ")
	if !ok {
		return
	}

	found, err := u.service.GetByID(ctx, id)
	if err != nil {
		u.printf("%s\n", failMessage(err))
		return
	}

	u.printf("\nStudent to be deleted:\n")
	u.printDetails(found)

	confirm, ok := u.prompt("\nAre you sure you want to delete this student? (yes/no): ")
	if !ok {
		return
	}
	confirm = strings.ToLower(confirm)
	if confirm != "yes" && confirm != "y" {
		u.printf("Delete operation cancelled.\n")
		return
	}

	if err := u.service.Delete(ctx, id); err != nil {
		u.printf("Failed to delete student: %s\n", failMessage(err))
		return
	}
	u.printf("Student deleted successfully!\n")
}

func (u *UI) searchByName(ctx context.Context) {
	u.header("SEARCH STUDENTS BY NAME")

	name, ok := u.prompt("Enter name to search: ")
	if !ok {
		return
	}
	if name == "" {
		u.printf("Please enter a name to search.\n")
		return
	}

	students, err := u.service.SearchByName(ctx, name)
	if err != nil {
		u.printf("Search failed: %s\n", failMessage(err))
		return
	}
	if len(students) == 0 {
		u.printf("No students found with name containing %q\n", name)
		return
	}
	u.printf("\nFound %d student(s) with name containing %q:\n", len(students), name)
	u.printTable(students)
}

func (u *UI) filterByMajor(ctx context.Context) {
	u.header("FILTER STUDENTS BY MAJOR")

	major, ok := u.prompt("Enter major to filter: ")
	if !ok {
		return
	}
	if major == "" {
		u.printf("Please enter a major to filter.\n")
		return
	}

	students, err := u.service.ByMajor(ctx, major)
	if err != nil {
		u.printf("Filter failed: %s\n", failMessage(err))
		return
	}
	if len(students) == 0 {
		u.printf("No students found with major containing %q\n", major)
		return
	}
	u.printf("\nFound %d student(s) with major containing %q:\n", len(students), major)
	u.printTable(students)
}

func (u *UI) filterByGPA(ctx context.Context) {
	u.header("FILTER STUDENTS BY GPA")

	input, ok := u.prompt("Enter minimum GPA (0.0-4.0): ")
	if !ok {
		return
	}
	minGPA, valid := student.ParseFloat(input)
	if !valid || !student.IsValidGPA(minGPA) {
		u.printf("Invalid GPA. Please enter a value between 0.0 and 4.0.\n")
		return
	}

	students, err := u.service.ByMinGPA(ctx, minGPA)
	if err != nil {
		u.printf("Filter failed: %s\n", failMessage(err))
		return
	}
	if len(students) == 0 {
		u.printf("No students found with GPA >= %.2f\n", minGPA)
		return
	}
	u.printf("\nFound %d student(s) with GPA >= %.2f:\n", len(students), minGPA)
	u.printTable(students)
}

func (u *UI) printTable(students []student.Student) {
	u.printf("%-5s %-15s %-15s %-30s %-15s %-12s %-20s %-6s\n",
		"ID", "First Name", "Last Name", "Email", "Phone", "DOB", "Major", "GPA")
	u.printf("%s\n", strings.Repeat("-", 120))
	for i := range students {
		s := &students[i]
		u.printf("%-5d %-15s %-15s %-30s %-15s %-12s %-20s %.2f\n",
			s.ID,
			truncate(s.FirstName, 15),
			truncate(s.LastName, 15),
			truncate(s.Email, 30),
			truncate(s.Phone, 15),
			s.DateOfBirth.Format("2006-01-02"),
			truncate(s.Major, 20),
			s.GPA)
	}
	u.printf("%s\n", strings.Repeat("-", 120))
	u.printf("Total students: %d\n", len(students))
}

func (u *UI) printDetails(s *student.Student) {
	u.printf("  Student ID    : %d\n", s.ID)
	u.printf("  Name          : %s %s\n", s.FirstName, s.LastName)
	u.printf("  Email         : %s\n", s.Email)
	u.printf("  Phone         : %s\n", s.Phone)
	u.printf("  Date of Birth : %s\n", s.DateOfBirth.Format("2006-01-02"))
	u.printf("  Major         : %s\n", s.Major)
	u.printf("  GPA           : %.2f\n", s.GPA)
}

func (u *UI) header(title string) {
	u.printf("\n----------------------------------------------\n")
	u.printf("  %s\n", title)
	u.printf("----------------------------------------------\n")
}

// prompt reads one trimmed line. ok is false when stdin is closed.
func (u *UI) prompt(label string) (string, bool) {
	u.printf("%s", label)
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

func (u *UI) promptDefault(label, current string) (string, bool) {
	line, ok := u.prompt(label)
	if !ok {
		return "", false
	}
	if line == "" {
		return current, true
	}
	return line, true
}

func (u *UI) promptID(label string) (int, bool) {
	line, ok := u.prompt(label)
	if !ok {
		return 0, false
	}
	id, valid := student.ParseInt(line)
	if !valid {
		u.printf("Invalid Student ID format.\n")
		return 0, false
	}
	return id, true
}

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// failMessage extracts the user-facing message from a service error.
func failMessage(err error) string {
	var se *student.Error
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
