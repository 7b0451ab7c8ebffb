package badges

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/soroban/internal/specs"
)

// Family distinguishes the two mini-games that award badges.
type Family string

const (
	FamilySnack    Family = "snack"
	FamilyRegister Family = "register"
)

// SnackBadge is a badge from the snack mini-game.
type SnackBadge struct {
	Difficulty Difficulty
	Rank       Rank
}

// RegisterBadge is a badge from the register mini-game.
type RegisterBadge struct {
	Grade   specs.Grade
	Subject specs.Subject
	Rank    Rank
}

// Badge is either a snack or register badge. Key is the id without its
// rank, and groups badges for best-of reduction.
type Badge struct {
	Family Family
	Key    string
	Rank   Rank

	Snack    *SnackBadge
	Register *RegisterBadge
}

// ID encodes the badge back to its wire form.
func (b Badge) ID() string {
	switch {
	case b.Snack != nil:
		return BuildSnackBadgeID(b.Snack.Difficulty, b.Snack.Rank)
	case b.Register != nil:
		return BuildRegisterBadgeID(b.Register.Grade, b.Register.Subject, b.Register.Rank)
	}
	return ""
}

// DisplayName returns a human-readable label such as "6kyu Multiplication".
func (b Badge) DisplayName() string {
	switch {
	case b.Snack != nil:
		return "Snack " + b.Snack.Difficulty.DisplayName()
	case b.Register != nil:
		return fmt.Sprintf("%s %s", b.Register.Grade, b.Register.Subject.DisplayName())
	}
	return ""
}

// BuildSnackBadgeID encodes "snack:<difficulty>:rank:<R>".
func BuildSnackBadgeID(d Difficulty, r Rank) string {
	return "snack:" + string(d) + ":rank:" + string(r)
}

// BuildRegisterBadgeID encodes "register:g<grade>:<subject>:rank:<R>".
func BuildRegisterBadgeID(g specs.Grade, s specs.Subject, r Rank) string {
	return "register:g" + strconv.Itoa(int(g)) + ":" + string(s) + ":rank:" + string(r)
}

// ParseSnackBadgeID decodes a snack badge id. Unknown difficulties and
// ranks that do not earn badges are rejected.
func ParseSnackBadgeID(id string) (SnackBadge, bool) {
	parts := strings.Split(id, ":")
	if len(parts) != 4 || parts[0] != string(FamilySnack) || parts[2] != "rank" {
		return SnackBadge{}, false
	}
	d, ok := ParseDifficulty(parts[1])
	if !ok {
		return SnackBadge{}, false
	}
	r, ok := parseBadgeRank(parts[3])
	if !ok {
		return SnackBadge{}, false
	}
	return SnackBadge{Difficulty: d, Rank: r}, true
}

// ParseRegisterBadgeID decodes a register badge id. The grade must be a
// canonical integer in range and the subject one of the register subjects.
func ParseRegisterBadgeID(id string) (RegisterBadge, bool) {
	parts := strings.Split(id, ":")
	if len(parts) != 5 || parts[0] != string(FamilyRegister) || parts[3] != "rank" {
		return RegisterBadge{}, false
	}
	num, ok := strings.CutPrefix(parts[1], "g")
	if !ok {
		return RegisterBadge{}, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || strconv.Itoa(n) != num {
		return RegisterBadge{}, false
	}
	g := specs.Grade(n)
	if !g.Valid() {
		return RegisterBadge{}, false
	}
	s, ok := specs.ParseSubject(parts[2])
	if !ok || string(s) != parts[2] || registerSubjectOrder(s) < 0 {
		return RegisterBadge{}, false
	}
	r, ok := parseBadgeRank(parts[4])
	if !ok {
		return RegisterBadge{}, false
	}
	return RegisterBadge{Grade: g, Subject: s, Rank: r}, true
}

// Parse decodes any badge id.
func Parse(id string) (Badge, bool) {
	if sb, ok := ParseSnackBadgeID(id); ok {
		return Badge{
			Family: FamilySnack,
			Key:    "snack:" + string(sb.Difficulty),
			Rank:   sb.Rank,
			Snack:  &sb,
		}, true
	}
	if rb, ok := ParseRegisterBadgeID(id); ok {
		return Badge{
			Family:   FamilyRegister,
			Key:      fmt.Sprintf("register:g%d:%s", rb.Grade, rb.Subject),
			Rank:     rb.Rank,
			Register: &rb,
		}, true
	}
	return Badge{}, false
}

func parseBadgeRank(s string) (Rank, bool) {
	r, ok := ParseRank(s)
	if !ok || !r.Badgeable() {
		return "", false
	}
	return r, true
}

// registerSubjectOrder is the index of s in the register subject order,
// or -1 if the register game does not play it.
func registerSubjectOrder(s specs.Subject) int {
	switch s {
	case specs.SubjectMitori:
		return 0
	case specs.SubjectMul:
		return 1
	case specs.SubjectDiv:
		return 2
	}
	return -1
}
