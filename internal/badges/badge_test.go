package badges

import (
	"testing"

	"github.com/abhisek/soroban/internal/specs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var badgeRanks = []Rank{RankA, RankB, RankC}

func TestSnackBadge_RoundTrip(t *testing.T) {
	for _, d := range AllDifficulties() {
		for _, r := range badgeRanks {
			id := BuildSnackBadgeID(d, r)
			got, ok := ParseSnackBadgeID(id)
			require.True(t, ok, id)
			assert.Equal(t, SnackBadge{Difficulty: d, Rank: r}, got)

			b, ok := Parse(id)
			require.True(t, ok)
			assert.Equal(t, id, b.ID())
		}
	}
	assert.Equal(t, "snack:hard:rank:A", BuildSnackBadgeID(DifficultyHard, RankA))
}

func TestRegisterBadge_RoundTrip(t *testing.T) {
	for g := specs.MinGrade; g <= specs.MaxGrade; g++ {
		for _, s := range []specs.Subject{specs.SubjectMitori, specs.SubjectMul, specs.SubjectDiv} {
			for _, r := range badgeRanks {
				id := BuildRegisterBadgeID(g, s, r)
				got, ok := ParseRegisterBadgeID(id)
				require.True(t, ok, id)
				assert.Equal(t, RegisterBadge{Grade: g, Subject: s, Rank: r}, got)

				b, ok := Parse(id)
				require.True(t, ok)
				assert.Equal(t, id, b.ID())
				assert.Equal(t, FamilyRegister, b.Family)
			}
		}
	}
	assert.Equal(t, "register:g6:mul:rank:B", BuildRegisterBadgeID(6, specs.SubjectMul, RankB))
}

func TestParse_Garbage(t *testing.T) {
	bad := []string{
		"",
		"garbage",
		"snack",
		"snack:easy:rank",
		"snack:extreme:rank:A",
		"snack:easy:rank:D",
		"snack:easy:grade:A",
		"snack:easy:rank:A:extra",
		"register:g6:mul:rank",
		"register:6:mul:rank:A",
		"register:g06:mul:rank:A",
		"register:g0:mul:rank:A",
		"register:g11:mul:rank:A",
		"register:g-1:mul:rank:A",
		"register:g6:denpyo:rank:A",
		"register:g6:MUL:rank:A",
		"register:g6:mul:rank:F",
		"medal:g6:mul:rank:A",
	}
	for _, id := range bad {
		_, ok := Parse(id)
		assert.False(t, ok, "Parse(%q) should fail", id)
	}
}

func TestBadge_DisplayName(t *testing.T) {
	b, ok := Parse("register:g6:mul:rank:A")
	require.True(t, ok)
	assert.Equal(t, "6kyu Multiplication", b.DisplayName())

	b, ok = Parse("snack:normal:rank:C")
	require.True(t, ok)
	assert.Equal(t, "Snack Normal", b.DisplayName())
}
