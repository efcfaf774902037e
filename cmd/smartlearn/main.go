package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/visheshsahu1513/Smart-Learning/internal/app"
	"github.com/visheshsahu1513/Smart-Learning/internal/client"
	"github.com/visheshsahu1513/Smart-Learning/internal/config"
	"github.com/visheshsahu1513/Smart-Learning/internal/dispatch"
	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/logging"
	"github.com/visheshsahu1513/Smart-Learning/internal/tokenstore"
)

var readPasswordFunc = term.ReadPassword // mockable

func main() {
	ctx := context.Background()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	var tokens tokenstore.Store
	switch cfg.TokenStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		tokens = tokenstore.NewRedisStore(rdb)
	default:
		tokens = tokenstore.NewFileStore(cfg.TokenFile)
	}

	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	identity := client.NewIdentityClient(cfg.IdentityURL, cfg.IdentityAPIKey, hc)
	courses := client.NewCourseClient(cfg.CourseServiceURL, hc)
	assessments := client.NewAssessmentClient(cfg.AssessmentServiceURL, hc)

	d := dispatch.New(logger, cfg.CommandTimeout)
	a := app.New(logger, d, identity, courses, assessments, tokens)

	cli := &commandLine{app: a}
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
	a.Wait()
}

var errHelp = fmt.Errorf("help provided")

type commandLine struct {
	app *app.App
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage: smartlearn COMMAND [flags]")
	fmt.Println("Commands:")
	fmt.Println("  login -email EMAIL                      - sign in (password prompted)")
	fmt.Println("  signup -email EMAIL                     - create an account (password prompted)")
	fmt.Println("  reset-password -email EMAIL             - request a password reset email")
	fmt.Println("  logout                                  - clear the local session")
	fmt.Println("  whoami                                  - show the current profile")
	fmt.Println("  courses                                 - list courses")
	fmt.Println("  course -id ID                           - show one course's materials and students")
	fmt.Println("  create-course -title T [-description D] - create a course")
	fmt.Println("  update-course -id ID -title T [-description D]")
	fmt.Println("  delete-course -id ID")
	fmt.Println("  enroll -id ID                           - enroll in a course")
	fmt.Println("  upload-material -course ID -title T -file PATH")
	fmt.Println("  assign-instructor -course ID -instructor ID")
	fmt.Println("  assessments                             - list assessments")
	fmt.Println("  create-assessment -title T [-description D] -file PATH")
	fmt.Println("  submissions -assessment ID              - list submissions (instructor)")
	fmt.Println("  submit -assessment ID -file PATH        - submit an answer (student)")
	fmt.Println("  grade -assessment ID -submission ID -grade G")
	fmt.Println("  my-grades                               - show own grades (student)")
}

// bootstrap restores a persisted session before any authorized command.
func (cli *commandLine) bootstrap(ctx context.Context) error {
	return <-cli.app.Bootstrap(ctx)
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "signup":
		return cli.signup(ctx, args[2:])
	case "reset-password":
		return cli.resetPassword(ctx, args[2:])
	case "logout":
		cli.app.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		return cli.whoami(ctx)
	case "courses":
		return cli.courses(ctx)
	case "course":
		return cli.courseDetail(ctx, args[2:])
	case "create-course":
		return cli.createCourse(ctx, args[2:])
	case "update-course":
		return cli.updateCourse(ctx, args[2:])
	case "delete-course":
		return cli.deleteCourse(ctx, args[2:])
	case "enroll":
		return cli.enroll(ctx, args[2:])
	case "upload-material":
		return cli.uploadMaterial(ctx, args[2:])
	case "assign-instructor":
		return cli.assignInstructor(ctx, args[2:])
	case "assessments":
		return cli.assessments(ctx)
	case "create-assessment":
		return cli.createAssessment(ctx, args[2:])
	case "submissions":
		return cli.submissions(ctx, args[2:])
	case "submit":
		return cli.submit(ctx, args[2:])
	case "grade":
		return cli.grade(ctx, args[2:])
	case "my-grades":
		return cli.myGrades(ctx)
	default:
		cli.printUsage()
		return errHelp
	}
}

func promptPassword() (string, error) {
	fmt.Print("Enter password: ")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func (cli *commandLine) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if err := <-cli.app.Login(ctx, domain.Credentials{Email: *email, Password: password}); err != nil {
		return err
	}
	cli.app.Wait() // profile fetch
	s := cli.app.Session().Snapshot()
	if s.User != nil {
		fmt.Printf("logged in as %s (%s)\n", s.User.Email, s.Role)
	} else {
		fmt.Println("logged in")
	}
	return nil
}

func (cli *commandLine) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	password, err := promptPassword()
	if err != nil {
		return err
	}
	if err := <-cli.app.Signup(ctx, domain.Credentials{Email: *email, Password: password}); err != nil {
		return err
	}
	fmt.Println("account created, you can log in now")
	return nil
}

func (cli *commandLine) resetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := <-cli.app.ResetPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Println("reset email sent")
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	s := cli.app.Session().Snapshot()
	if !s.IsAuthenticated || s.User == nil {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s (%s), enrolled courses: %v\n", s.User.Email, s.Role, s.EnrolledIDs())
	return nil
}

func (cli *commandLine) courses(ctx context.Context) error {
	if err := <-cli.app.FetchCourses(ctx); err != nil {
		return err
	}
	for _, c := range cli.app.Courses().List().Items {
		fmt.Printf("%4d  %-30s %s\n", c.ID, c.Title, c.Description)
	}
	return nil
}

func (cli *commandLine) courseDetail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("course", flag.ExitOnError)
	id := fs.Int64("id", 0, "course id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	if err := <-cli.app.FetchCourseMaterials(ctx, *id); err != nil {
		return err
	}
	if err := <-cli.app.FetchEnrolledStudents(ctx, *id); err != nil {
		return err
	}
	detail, _ := cli.app.Courses().Detail(*id)
	fmt.Println("materials:")
	for _, m := range detail.Materials {
		fmt.Printf("  %4d  %-30s %s\n", m.ID, m.Title, m.DownloadURL)
	}
	fmt.Println("students:")
	for _, s := range detail.Students {
		fmt.Printf("  %4d  %s\n", s.ID, s.Email)
	}
	return nil
}

func (cli *commandLine) createCourse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-course", flag.ExitOnError)
	title := fs.String("title", "", "course title")
	description := fs.String("description", "", "course description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	in := domain.CreateCourseInput{Title: *title, Description: *description}
	if err := <-cli.app.CreateCourse(ctx, in); err != nil {
		return err
	}
	created := cli.app.Courses().List().Items[0]
	fmt.Printf("created course %d: %s\n", created.ID, created.Title)
	return nil
}

func (cli *commandLine) updateCourse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-course", flag.ExitOnError)
	id := fs.Int64("id", 0, "course id")
	title := fs.String("title", "", "course title")
	description := fs.String("description", "", "course description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	in := domain.UpdateCourseInput{CourseID: *id, Title: *title, Description: *description}
	if err := <-cli.app.UpdateCourse(ctx, in); err != nil {
		return err
	}
	fmt.Println("course updated")
	return nil
}

func (cli *commandLine) deleteCourse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-course", flag.ExitOnError)
	id := fs.Int64("id", 0, "course id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	if err := <-cli.app.DeleteCourse(ctx, *id); err != nil {
		return err
	}
	fmt.Println("course deleted")
	return nil
}

func (cli *commandLine) enroll(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("enroll", flag.ExitOnError)
	id := fs.Int64("id", 0, "course id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	if err := <-cli.app.EnrollInCourse(ctx, *id); err != nil {
		return err
	}
	fmt.Println("enrolled")
	return nil
}

func (cli *commandLine) uploadMaterial(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload-material", flag.ExitOnError)
	courseID := fs.Int64("course", 0, "course id")
	title := fs.String("title", "", "material title")
	path := fs.String("file", "", "file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	in := domain.UploadMaterialInput{
		CourseID: *courseID,
		Title:    *title,
		File:     domain.FileUpload{Name: f.Name(), Content: f},
	}
	if err := <-cli.app.UploadCourseMaterial(ctx, in); err != nil {
		return err
	}
	fmt.Println("material uploaded")
	return nil
}

func (cli *commandLine) assignInstructor(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assign-instructor", flag.ExitOnError)
	courseID := fs.Int64("course", 0, "course id")
	instructorID := fs.Int64("instructor", 0, "instructor user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	in := domain.AssignInstructorInput{CourseID: *courseID, InstructorID: *instructorID}
	if err := <-cli.app.AssignInstructor(ctx, in); err != nil {
		return err
	}
	fmt.Println("instructor assigned")
	return nil
}

func (cli *commandLine) assessments(ctx context.Context) error {
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	if err := <-cli.app.FetchAssessments(ctx); err != nil {
		return err
	}
	for _, a := range cli.app.Assessments().List().Items {
		fmt.Printf("%4d  %-30s %s\n", a.ID, a.Title, a.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (cli *commandLine) createAssessment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-assessment", flag.ExitOnError)
	title := fs.String("title", "", "assessment title")
	description := fs.String("description", "", "assessment description")
	path := fs.String("file", "", "question file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	in := domain.CreateAssessmentInput{
		Title:       *title,
		Description: *description,
		File:        domain.FileUpload{Name: f.Name(), Content: f},
	}
	if err := <-cli.app.CreateAssessment(ctx, in); err != nil {
		return err
	}
	fmt.Println("assessment created")
	return nil
}

func (cli *commandLine) submissions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submissions", flag.ExitOnError)
	assessmentID := fs.Int64("assessment", 0, "assessment id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	if err := <-cli.app.FetchSubmissions(ctx, *assessmentID); err != nil {
		return err
	}
	detail, _ := cli.app.Assessments().Detail(*assessmentID)
	for _, s := range detail.Submissions {
		grade := s.Grade
		if grade == "" {
			grade = "-"
		}
		fmt.Printf("%4d  %-30s grade: %s\n", s.ID, s.StudentEmail, grade)
	}
	return nil
}

func (cli *commandLine) submit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	assessmentID := fs.Int64("assessment", 0, "assessment id")
	path := fs.String("file", "", "answer file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()
	in := domain.SubmitAnswerInput{
		AssessmentID: *assessmentID,
		File:         domain.FileUpload{Name: f.Name(), Content: f},
	}
	if err := <-cli.app.SubmitAnswer(ctx, in); err != nil {
		return err
	}
	fmt.Println("answer submitted")
	return nil
}

func (cli *commandLine) grade(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("grade", flag.ExitOnError)
	assessmentID := fs.Int64("assessment", 0, "assessment id")
	submissionID := fs.Int64("submission", 0, "submission id")
	grade := fs.String("grade", "", "grade to record")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	in := domain.GradeInput{AssessmentID: *assessmentID, SubmissionID: *submissionID, Grade: *grade}
	if err := <-cli.app.GradeSubmission(ctx, in); err != nil {
		return err
	}
	fmt.Println("grade recorded")
	return nil
}

func (cli *commandLine) myGrades(ctx context.Context) error {
	if err := cli.bootstrap(ctx); err != nil {
		return err
	}
	if err := <-cli.app.FetchMyGrades(ctx); err != nil {
		return err
	}
	for _, s := range cli.app.Assessments().MyGrades().Items {
		grade := s.Grade
		if grade == "" {
			grade = "not graded yet"
		}
		fmt.Printf("assessment %d, submitted %s: %s\n", s.AssessmentID, s.SubmittedAt.Format("2006-01-02"), grade)
	}
	return nil
}
