package progress

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/abhisek/soroban/internal/specs"
)

// ReadingSpeed controls how fast mitori terms are revealed.
type ReadingSpeed string

const (
	ReadingSlow   ReadingSpeed = "slow"
	ReadingNormal ReadingSpeed = "normal"
	ReadingFast   ReadingSpeed = "fast"
)

// ParseReadingSpeed maps a string to a reading speed.
func ParseReadingSpeed(s string) (ReadingSpeed, bool) {
	switch r := ReadingSpeed(strings.ToLower(strings.TrimSpace(s))); r {
	case ReadingSlow, ReadingNormal, ReadingFast:
		return r, true
	}
	return "", false
}

// Interval is the delay between two revealed terms.
func (r ReadingSpeed) Interval() time.Duration {
	switch r {
	case ReadingSlow:
		return 1500 * time.Millisecond
	case ReadingFast:
		return 600 * time.Millisecond
	default:
		return time.Second
	}
}

// PlayConfig is the stage the player picked to play next.
type PlayConfig struct {
	Grade        specs.Grade   `json:"grade" yaml:"grade"`
	Subject      specs.Subject `json:"subject" yaml:"subject"`
	Stage        int           `json:"stage" yaml:"stage"`
	ReadingSpeed ReadingSpeed  `json:"readingSpeed" yaml:"readingSpeed"`
}

// DefaultPlayConfig is the first stage of the start grade.
func DefaultPlayConfig(body specs.ExamBody) PlayConfig {
	return PlayConfig{
		Grade:        StartGrade(body),
		Subject:      specs.SubjectMitori,
		Stage:        MinStage,
		ReadingSpeed: ReadingNormal,
	}
}

// DecodePlayConfig reads a saved play selection, defaulting each invalid
// field. The grade and subject are not checked against unlocks; callers
// pass them through ClampSelection.
func DecodePlayConfig(data []byte, body specs.ExamBody) PlayConfig {
	cfg := DefaultPlayConfig(body)
	if !gjson.ValidBytes(data) {
		return cfg
	}
	doc := gjson.ParseBytes(data)

	if v, ok := intField(doc.Get("grade")); ok {
		if _, exists := specs.GetGradeSpec(resolveBody(body), specs.Grade(v)); exists {
			cfg.Grade = specs.Grade(v)
		}
	}
	if s := doc.Get("subject"); s.Type == gjson.String && subjectIndex(specs.Subject(s.Str)) >= 0 {
		cfg.Subject = specs.Subject(s.Str)
	}
	if v, ok := intField(doc.Get("stage")); ok {
		cfg.Stage = clampInt(v, MinStage, MaxStage)
	}
	if s := doc.Get("readingSpeed"); s.Type == gjson.String {
		if r, ok := ParseReadingSpeed(s.Str); ok {
			cfg.ReadingSpeed = r
		}
	}
	return cfg
}

// PracticeConfig is a free certification-practice selection, outside the
// register game's unlocks.
type PracticeConfig struct {
	ExamBody specs.ExamBody `json:"examBody" yaml:"examBody"`
	Grade    specs.Grade    `json:"grade" yaml:"grade"`
	Subject  specs.Subject  `json:"subject" yaml:"subject"`
}

// DecodePracticeConfig reads a saved practice selection. An unknown exam
// body falls back to body; a grade or subject the exam body does not
// define falls back to the start grade and its first subject.
func DecodePracticeConfig(data []byte, body specs.ExamBody) PracticeConfig {
	cfg := PracticeConfig{
		ExamBody: resolveBody(body),
		Subject:  specs.SubjectMul,
	}
	cfg.Grade = StartGrade(cfg.ExamBody)
	if !gjson.ValidBytes(data) {
		return cfg
	}
	doc := gjson.ParseBytes(data)

	if s := doc.Get("examBody"); s.Type == gjson.String {
		if b, ok := specs.ParseExamBody(s.Str); ok {
			cfg.ExamBody = b
			cfg.Grade = StartGrade(b)
		}
	}
	if v, ok := intField(doc.Get("grade")); ok {
		if _, exists := specs.GetGradeSpec(cfg.ExamBody, specs.Grade(v)); exists {
			cfg.Grade = specs.Grade(v)
		}
	}
	gs, _ := specs.GetGradeSpec(cfg.ExamBody, cfg.Grade)
	if s := doc.Get("subject"); s.Type == gjson.String {
		if subj, ok := specs.ParseSubject(s.Str); ok && gs.HasSubject(subj) {
			cfg.Subject = subj
		}
	}
	return cfg
}
