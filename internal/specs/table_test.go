package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Table(t *testing.T) {
	require.NoError(t, Validate())
}

func TestGetGradeSpec_Grade6Multiplication(t *testing.T) {
	gs, ok := GetGradeSpec(ExamZenshuren, 6)
	require.True(t, ok)
	assert.Equal(t, MulSpec{DigitsSum: 5, Count: 20, Minutes: 10}, gs.Mul)
}

func TestGetGradeSpec_Unknown(t *testing.T) {
	_, ok := GetGradeSpec(ExamNissho, 9)
	assert.False(t, ok, "nissho has no 9kyu")

	_, ok = GetGradeSpec("abacus-league", 1)
	assert.False(t, ok)
}

func TestGetGradeSpec_DenpyoOnlyTopGrades(t *testing.T) {
	for _, body := range ExamBodies() {
		for _, g := range AvailableGrades(body) {
			gs, ok := GetGradeSpec(body, g)
			require.True(t, ok)
			if g <= 3 {
				assert.NotNil(t, gs.Denpyo, "%s %s should have denpyo", body, g)
				assert.True(t, gs.HasSubject(SubjectDenpyo))
			} else {
				assert.Nil(t, gs.Denpyo, "%s %s should not have denpyo", body, g)
				assert.False(t, gs.HasSubject(SubjectDenpyo))
				assert.Zero(t, gs.Minutes(SubjectDenpyo))
			}
		}
	}
}

func TestGetGradeSpec_ReturnsCopy(t *testing.T) {
	gs, _ := GetGradeSpec(ExamZenshuren, 1)
	gs.Denpyo.Count = 999
	again, _ := GetGradeSpec(ExamZenshuren, 1)
	assert.Equal(t, 15, again.Denpyo.Count)
}

func TestAvailableGrades_LadderOrder(t *testing.T) {
	assert.Equal(t, []Grade{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, AvailableGrades(ExamZenshuren))
	assert.Equal(t, []Grade{6, 5, 4, 3, 2, 1}, AvailableGrades(ExamNissho))
	assert.Nil(t, AvailableGrades("unknown"))
}

func TestMitoriSpec_NegativeFrom(t *testing.T) {
	assert.Equal(t, 4, MitoriSpec{Terms: 10}.NegativeFrom())
	assert.Equal(t, 2, MitoriSpec{Terms: 5}.NegativeFrom())
	assert.Equal(t, 6, MitoriSpec{Terms: 5, AllowNegativeFromTerm: 6}.NegativeFrom())
}

func TestParseSubjectAndExamBody(t *testing.T) {
	s, ok := ParseSubject(" MUL ")
	assert.True(t, ok)
	assert.Equal(t, SubjectMul, s)

	_, ok = ParseSubject("add")
	assert.False(t, ok)

	b, ok := ParseExamBody("Nissho")
	assert.True(t, ok)
	assert.Equal(t, ExamNissho, b)

	_, ok = ParseExamBody("")
	assert.False(t, ok)
}

func TestValidateSpecs_ReportsProblems(t *testing.T) {
	err := validateSpecs([]GradeSpec{
		{ExamBody: ExamZenshuren, Grade: 5, Mul: MulSpec{DigitsSum: 1, Count: 1}, Div: DivSpec{DigitsSum: 2, Count: 1},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 2, Count: 1, Terms: 1}},
		{ExamBody: ExamZenshuren, Grade: 5, Mul: MulSpec{DigitsSum: 2, Count: 1}, Div: DivSpec{DigitsSum: 2, Count: 1},
			Mitori: MitoriSpec{DigitsMin: 1, DigitsMax: 2, Count: 1, Terms: 3, Chars: 10}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mul digits sum 1")
	assert.Contains(t, err.Error(), "digit range [3,2]")
	assert.Contains(t, err.Error(), "duplicate grade")
	assert.Contains(t, err.Error(), "chars 10 outside [3,6]")
}
