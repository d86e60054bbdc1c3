package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/views"
	"github.com/oguzk/unienroll/internal/bootstrap"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	todayFunc        = models.Today      // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	app *bootstrap.App
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL                      - log in; the password is prompted next")
	fmt.Println("  logout                                  - log out and drop all cached data")
	fmt.Println("  courses                                 - list all courses")
	fmt.Println("  course -id ID                           - show one course")
	fmt.Println("  mycourses                               - list own enrollments with GPA and success rate")
	fmt.Println("  enroll -course ID -semester N           - enroll in a course")
	fmt.Println("  students [-search WORD]                 - list students, optionally by name")
	fmt.Println("  lecturers                               - list lecturers")
	fmt.Println("  admins                                  - list admins")
	fmt.Println("  grade -enroll ID -grade GRADE           - assign a grade to an enrollment")
	fmt.Println("  status -enroll ID -status STATUS        - move an enrollment between states")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The account's email address. The password will be prompted next.")

	courseCmd := flag.NewFlagSet("course", flag.ExitOnError)
	courseID := courseCmd.Int64("id", 0, "The course id.")

	enrollCmd := flag.NewFlagSet("enroll", flag.ExitOnError)
	enrollCourse := enrollCmd.Int64("course", 0, "The course id to enroll in.")
	enrollSemester := enrollCmd.Int("semester", 0, "The semester number.")

	studentsCmd := flag.NewFlagSet("students", flag.ExitOnError)
	studentsSearch := studentsCmd.String("search", "", "Filter students by name.")

	gradeCmd := flag.NewFlagSet("grade", flag.ExitOnError)
	gradeEnroll := gradeCmd.Int64("enroll", 0, "The enrollment id.")
	gradeValue := gradeCmd.String("grade", "", "The grade to assign (A+, A, A-, ... F).")

	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)
	statusEnroll := statusCmd.Int64("enroll", 0, "The enrollment id.")
	statusValue := statusCmd.String("status", "", "The status to set (InProgress, Completed, Dropped).")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginEmail, string(pwd))
	case "logout":
		cli.app.Auth.Logout()
		fmt.Println("Logged out.")
		return nil
	case "courses":
		return cli.listCourses(ctx)
	case "course":
		if err := courseCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *courseID == 0 {
			courseCmd.Usage()
			return errHelp
		}
		return cli.showCourse(ctx, *courseID)
	case "mycourses":
		return cli.myCourses(ctx)
	case "enroll":
		if err := enrollCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *enrollCourse == 0 || *enrollSemester == 0 {
			enrollCmd.Usage()
			return errHelp
		}
		return cli.enroll(ctx, *enrollCourse, *enrollSemester)
	case "students":
		if err := studentsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listStudents(ctx, *studentsSearch)
	case "lecturers":
		return cli.listUsers(ctx, enums.RoleLecturer)
	case "admins":
		return cli.listUsers(ctx, enums.RoleAdmin)
	case "grade":
		if err := gradeCmd.Parse(args[2:]); err != nil {
			return err
		}
		grade, ok := enums.ParseGrade(*gradeValue)
		if *gradeEnroll == 0 || !ok {
			gradeCmd.Usage()
			return errHelp
		}
		return cli.changeGrade(ctx, *gradeEnroll, grade)
	case "status":
		if err := statusCmd.Parse(args[2:]); err != nil {
			return err
		}
		status := enums.EnrollmentStatus(*statusValue)
		if *statusEnroll == 0 || !status.Valid() {
			statusCmd.Usage()
			return errHelp
		}
		return cli.changeStatus(ctx, *statusEnroll, status)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, email, password string) error {
	user, err := cli.app.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func (cli *commandLine) listCourses(ctx context.Context) error {
	courses, err := cli.app.CourseService.FetchCourses(ctx)
	if err != nil {
		return err
	}
	today := todayFunc()
	for _, c := range courses {
		open := ""
		if views.RegistrationOpen(c, today) {
			open = " [registration open]"
		}
		fmt.Printf("%4d  %-40s %s%s\n", c.ID, c.Name, c.LecturerName, open)
	}
	return nil
}

func (cli *commandLine) showCourse(ctx context.Context, id int64) error {
	course, err := cli.app.CourseService.FetchCourse(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s (id %d)\n", course.Name, course.ID)
	fmt.Printf("  Lecturer:     %s\n", course.LecturerName)
	fmt.Printf("  Runs:         %s to %s\n", course.StartDate, course.EndDate)
	fmt.Printf("  Registration: %s to %s\n", course.RegistrationStart, course.RegistrationEnd)
	for _, name := range course.PrerequisiteNames {
		fmt.Printf("  Prerequisite: %s\n", name)
	}
	for _, lt := range course.LectureTimes {
		fmt.Printf("  Lecture:      %s %s\n", lt.Day, lt.Time)
	}
	return nil
}

func (cli *commandLine) myCourses(ctx context.Context) error {
	user := cli.app.Session.User()
	if user == nil {
		return errors.New("not logged in")
	}
	enrollments, err := cli.app.Enrollment.FetchStudentEnrollments(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, e := range enrollments {
		grade := "-"
		if e.Grade != nil {
			grade = e.Grade.Label()
		}
		fmt.Printf("%4d  %-40s sem %d  %-11s %s\n", e.ID, e.CourseName, e.Semester, e.Status.Label(), grade)
	}
	fmt.Printf("GPA: %.2f  Success rate: %d%%  Completed: %d/%d\n",
		views.GPA(enrollments), views.SuccessRate(enrollments),
		views.CompletedCount(enrollments), len(enrollments))
	return nil
}

func (cli *commandLine) enroll(ctx context.Context, courseID int64, semester int) error {
	user := cli.app.Session.User()
	if user == nil {
		return errors.New("not logged in")
	}
	req := dto.EnrollmentRequest{StudentID: user.ID, CourseID: courseID, Semester: semester}
	enrollment, err := cli.app.Enrollment.Enroll(ctx, req, false)
	if err != nil {
		return err
	}
	fmt.Printf("Enrolled in %s (enrollment %d)\n", enrollment.CourseName, enrollment.ID)
	return nil
}

func (cli *commandLine) listStudents(ctx context.Context, search string) error {
	if search != "" {
		students, err := cli.app.UserService.SearchUsers(ctx, enums.RoleStudent, search)
		if err != nil {
			return err
		}
		printUsers(students)
		return nil
	}
	return cli.listUsers(ctx, enums.RoleStudent)
}

func (cli *commandLine) listUsers(ctx context.Context, role enums.Role) error {
	users, err := cli.app.UserService.FetchUsers(ctx, role)
	if err != nil {
		return err
	}
	printUsers(users)
	return nil
}

func (cli *commandLine) changeGrade(ctx context.Context, enrollID int64, grade enums.Grade) error {
	req := dto.GradeChangeReq{EnrollID: enrollID, Grade: grade}
	if err := cli.app.Enrollment.ChangeGrade(ctx, req); err != nil {
		return err
	}
	fmt.Printf("Enrollment %d graded %s\n", enrollID, grade.Label())
	return nil
}

func (cli *commandLine) changeStatus(ctx context.Context, enrollID int64, status enums.EnrollmentStatus) error {
	req := dto.StatusChangeReq{EnrollID: enrollID, Status: status}
	if err := cli.app.Enrollment.ChangeStatus(ctx, req); err != nil {
		return err
	}
	fmt.Printf("Enrollment %d marked %s\n", enrollID, status.Label())
	return nil
}

func printUsers(users []models.User) {
	for _, u := range users {
		fmt.Printf("%4d  %-30s %s\n", u.ID, u.Name, u.Email)
	}
}
