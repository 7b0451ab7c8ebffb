package specs

func init() {
	t = buildTable(append(zenshurenSpecs(), nisshoSpecs()...))
}

// zenshurenSpecs is the 10kyu..1kyu rubric.
func zenshurenSpecs() []GradeSpec {
	return []GradeSpec{
		{
			ExamBody: ExamZenshuren, Grade: 10,
			Mul:    MulSpec{DigitsSum: 2, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 2, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 1, DigitsMax: 1, Count: 10, Minutes: 10, Terms: 5, AllowNegativeFromTerm: 6},
		},
		{
			ExamBody: ExamZenshuren, Grade: 9,
			Mul:    MulSpec{DigitsSum: 3, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 3, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 1, DigitsMax: 2, Count: 10, Minutes: 10, Terms: 5, AllowNegativeFromTerm: 6},
		},
		{
			ExamBody: ExamZenshuren, Grade: 8,
			Mul:    MulSpec{DigitsSum: 3, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 3, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 2, DigitsMax: 2, Count: 10, Minutes: 10, Terms: 5},
		},
		{
			ExamBody: ExamZenshuren, Grade: 7,
			Mul:    MulSpec{DigitsSum: 4, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 4, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 2, DigitsMax: 3, Count: 10, Minutes: 10, Terms: 6},
		},
		{
			ExamBody: ExamZenshuren, Grade: 6,
			Mul:    MulSpec{DigitsSum: 5, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 5, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 2, DigitsMax: 4, Count: 10, Minutes: 10, Terms: 7},
		},
		{
			ExamBody: ExamZenshuren, Grade: 5,
			Mul:    MulSpec{DigitsSum: 6, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 6, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 4, Count: 10, Minutes: 10, Terms: 7},
		},
		{
			ExamBody: ExamZenshuren, Grade: 4,
			Mul:    MulSpec{DigitsSum: 7, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 7, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 5, Count: 10, Minutes: 10, Terms: 8},
		},
		{
			ExamBody: ExamZenshuren, Grade: 3,
			Mul:    MulSpec{DigitsSum: 8, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 8, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 6, Count: 10, Minutes: 10, Terms: 10, Chars: 45},
			Denpyo: &DenpyoSpec{DigitsMin: 3, DigitsMax: 5, Count: 10, Minutes: 8, Terms: 5, Chars: 20},
		},
		{
			ExamBody: ExamZenshuren, Grade: 2,
			Mul:    MulSpec{DigitsSum: 9, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 9, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 4, DigitsMax: 8, Count: 10, Minutes: 10, Terms: 10, Chars: 60},
			Denpyo: &DenpyoSpec{DigitsMin: 4, DigitsMax: 7, Count: 10, Minutes: 10, Terms: 5, Chars: 28},
		},
		{
			ExamBody: ExamZenshuren, Grade: 1,
			Mul:    MulSpec{DigitsSum: 11, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 11, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 6, DigitsMax: 10, Count: 10, Minutes: 10, Terms: 10, Chars: 80},
			Denpyo: &DenpyoSpec{DigitsMin: 6, DigitsMax: 10, Count: 15, Minutes: 15, Terms: 10, Chars: 80},
		},
	}
}

// nisshoSpecs is the 6kyu..1kyu rubric.
func nisshoSpecs() []GradeSpec {
	return []GradeSpec{
		{
			ExamBody: ExamNissho, Grade: 6,
			Mul:    MulSpec{DigitsSum: 5, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 5, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 2, DigitsMax: 3, Count: 10, Minutes: 10, Terms: 7},
		},
		{
			ExamBody: ExamNissho, Grade: 5,
			Mul:    MulSpec{DigitsSum: 6, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 6, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 4, Count: 10, Minutes: 10, Terms: 8},
		},
		{
			ExamBody: ExamNissho, Grade: 4,
			Mul:    MulSpec{DigitsSum: 7, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 6, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 5, Count: 10, Minutes: 10, Terms: 8},
		},
		{
			ExamBody: ExamNissho, Grade: 3,
			Mul:    MulSpec{DigitsSum: 8, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 7, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 3, DigitsMax: 6, Count: 10, Minutes: 10, Terms: 10, Chars: 50},
			Denpyo: &DenpyoSpec{DigitsMin: 3, DigitsMax: 6, Count: 10, Minutes: 10, Terms: 5, Chars: 25},
		},
		{
			ExamBody: ExamNissho, Grade: 2,
			Mul:    MulSpec{DigitsSum: 10, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 9, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 4, DigitsMax: 8, Count: 10, Minutes: 10, Terms: 10, Chars: 70},
			Denpyo: &DenpyoSpec{DigitsMin: 4, DigitsMax: 8, Count: 10, Minutes: 10, Terms: 5, Chars: 35},
		},
		{
			ExamBody: ExamNissho, Grade: 1,
			Mul:    MulSpec{DigitsSum: 12, Count: 20, Minutes: 10},
			Div:    DivSpec{DigitsSum: 11, Count: 20, Minutes: 10},
			Mitori: MitoriSpec{DigitsMin: 6, DigitsMax: 10, Count: 10, Minutes: 10, Terms: 10, Chars: 80},
			Denpyo: &DenpyoSpec{DigitsMin: 6, DigitsMax: 10, Count: 15, Minutes: 15, Terms: 10, Chars: 80},
		},
	}
}
