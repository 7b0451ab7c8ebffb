package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/specs"
)

// Environment overrides.
const (
	EnvExam = "SOROBAN_EXAM"
	EnvDB   = "SOROBAN_DB"
)

// Settings are the resolved runtime settings. An empty DBPath means the
// store picks its default location.
type Settings struct {
	Exam         specs.ExamBody
	ReadingSpeed progress.ReadingSpeed
	DBPath       string
	LogFile      string
	LogLevel     string
}

// Resolve applies environment overrides over the file values and fills
// defaults. Flags are applied by the caller on top.
func Resolve(fc FileConfig) (Settings, error) {
	s := Settings{
		Exam:         specs.DefaultExamBody,
		ReadingSpeed: progress.ReadingNormal,
		LogFile:      DefaultLogPath(),
		LogLevel:     "info",
	}

	exam := deref(fc.Game.Exam)
	if v := os.Getenv(EnvExam); v != "" {
		exam = v
	}
	if exam != "" {
		b, ok := specs.ParseExamBody(exam)
		if !ok {
			return s, fmt.Errorf("unknown exam body %q (want one of %s)", exam, examNames())
		}
		s.Exam = b
	}

	if v := deref(fc.Game.ReadingSpeed); v != "" {
		r, ok := progress.ParseReadingSpeed(v)
		if !ok {
			return s, fmt.Errorf("unknown reading speed %q", v)
		}
		s.ReadingSpeed = r
	}

	s.DBPath = deref(fc.Storage.DB)
	if v := os.Getenv(EnvDB); v != "" {
		s.DBPath = v
	}

	if v := deref(fc.Log.File); v != "" {
		s.LogFile = v
	}
	if v := deref(fc.Log.Level); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	return s, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func examNames() string {
	var names []string
	for _, b := range specs.ExamBodies() {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}
