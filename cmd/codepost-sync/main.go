package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"github.com/codepost-io/codepost-sync/internal/codepost"
	"github.com/codepost-io/codepost-sync/internal/config"
	"github.com/codepost-io/codepost-sync/internal/localfiles"
	"github.com/codepost-io/codepost-sync/internal/upload"
)

var (
	loadDotEnv = godotenv.Load
	loadConfig = config.Load
	readFiles  = localfiles.Read
)

type options struct {
	course       string
	period       string
	assignment   string
	assignmentID int
	students     string
	dir          string
	mode         string
}

func main() {
	var opts options
	flag.StringVar(&opts.course, "course", "", "course name (used with -period and -assignment)")
	flag.StringVar(&opts.period, "period", "", "course period")
	flag.StringVar(&opts.assignment, "assignment", "", "assignment name")
	flag.IntVar(&opts.assignmentID, "assignment-id", 0, "assignment id (alternative to -course/-period/-assignment)")
	flag.StringVar(&opts.students, "students", "", "comma-separated student emails")
	flag.StringVar(&opts.dir, "dir", ".", "directory containing the files to upload")
	flag.StringVar(&opts.mode, "mode", "cautious", "upload mode: cautious, extend, diffscan, overwrite or pregrade")
	flag.Parse()

	if err := run(opts); err != nil {
		if upload.IsPolicyViolation(err) {
			log.Fatalf("Upload refused: %v\nPick a more permissive -mode to allow this.", err)
		}
		log.Fatalf("Upload failed: %v", err)
	}
}

func run(opts options) error {
	// Load .env file (ignore error if file doesn't exist)
	_ = loadDotEnv()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	mode, err := upload.ModeByName(opts.mode)
	if err != nil {
		return err
	}

	students := splitStudents(opts.students)
	if len(students) == 0 {
		return fmt.Errorf("at least one student is required (-students)")
	}

	files, err := readFiles(opts.dir)
	if err != nil {
		return err
	}

	client := codepost.NewClient(cfg.BaseURL, cfg.APIKey, &http.Client{Timeout: cfg.HTTPTimeout})

	assignmentID := opts.assignmentID
	if assignmentID == 0 {
		if opts.course == "" || opts.assignment == "" {
			return fmt.Errorf("either -assignment-id or -course/-period/-assignment is required")
		}

		assignment, err := client.FindAssignment(opts.course, opts.period, opts.assignment)
		if err != nil {
			return err
		}
		assignmentID = assignment.ID
		log.Printf("Assignment %q resolved to id %d", opts.assignment, assignmentID)
	}

	log.Printf("Uploading %d file(s) for %v in %s mode", len(files), students, opts.mode)

	engine := upload.New(client)
	result, err := engine.Upload(upload.Request{
		AssignmentID: assignmentID,
		Students:     students,
		Files:        files,
		Mode:         mode,
	})
	if err != nil {
		return err
	}

	log.Printf("Done: %s (submission %d)", result.Outcome, result.Submission.ID)

	return nil
}

func splitStudents(s string) []string {
	var students []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			students = append(students, trimmed)
		}
	}

	return students
}
