package psychometric

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"questplus/internal/domain"
)

func column(values ...float64) *mat.Dense {
	return mat.NewDense(len(values), 1, values)
}

func TestWeibullAtThreshold(t *testing.T) {
	guess, lapse := 0.5, 0.01
	got, err := Weibull{}.Predict(column(-20), []float64{-20, 3.5, guess, lapse})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := guess + (1-guess-lapse)*(1-math.Exp(-1))
	if math.Abs(got.At(0, 1)-want) > 1e-12 {
		t.Errorf("p(correct) = %v, want %v", got.At(0, 1), want)
	}
}

func TestWeibullRowsSumToOne(t *testing.T) {
	stim := column(-40, -30, -20, -10, 0)
	got, err := Weibull{}.Predict(stim, []float64{-20, 3.5, 0.5, 0.02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := 0.0
	for i := 0; i < 5; i++ {
		row := mat.Row(nil, i, got)
		if math.Abs(row[0]+row[1]-1) > 1e-12 {
			t.Errorf("row %d sums to %v", i, row[0]+row[1])
		}
		if row[1] < prev {
			t.Errorf("p(correct) should increase with stimulus, row %d = %v < %v", i, row[1], prev)
		}
		prev = row[1]
	}
}

func TestWeibullInadmissibleParams(t *testing.T) {
	tests := []struct {
		name   string
		params []float64
	}{
		{"negative lapse", []float64{-20, 3.5, 0.5, -0.1}},
		{"guess above one", []float64{-20, 3.5, 1.5, 0}},
		{"guess plus lapse above one", []float64{-20, 3.5, 0.6, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Weibull{}.Predict(column(-20, -10), tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !math.IsNaN(got.At(0, 0)) || !math.IsNaN(got.At(1, 1)) {
				t.Error("expected NaN predictions for inadmissible params")
			}
		})
	}
}

func TestNormal(t *testing.T) {
	got, err := Normal{}.Predict(column(0, 1e6, -1e6), []float64{0, 1, 0.02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(got.At(0, 1)-0.5) > 1e-12 {
		t.Errorf("p(correct) at mean = %v, want 0.5", got.At(0, 1))
	}
	if math.Abs(got.At(1, 1)-0.98) > 1e-9 {
		t.Errorf("p(correct) far above mean = %v, want 0.98", got.At(1, 1))
	}
	if math.Abs(got.At(2, 1)-0.02) > 1e-9 {
		t.Errorf("p(correct) far below mean = %v, want 0.02", got.At(2, 1))
	}

	nan, err := Normal{}.Predict(column(0), []float64{0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(nan.At(0, 1)) {
		t.Error("expected NaN for zero standard deviation")
	}
}

func TestPredictArgumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		pf     domain.PsychometricFunc
		stim   mat.Matrix
		params []float64
	}{
		{"weibull wrong param count", Weibull{}, column(1), []float64{1, 2}},
		{"normal wrong param count", Normal{}, column(1), []float64{1, 2, 3, 4}},
		{"two column stimulus", Weibull{}, mat.NewDense(1, 2, []float64{1, 2}), []float64{-20, 3.5, 0.5, 0}},
		{"nil stimulus", Normal{}, nil, []float64{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.pf.Predict(tt.stim, tt.params)
			if !domain.IsKind(err, domain.KindInvalidArgument) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"weibull", "Weibull", " normal "} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
		}
	}

	if _, err := Lookup("logistic"); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Errorf("expected invalid argument for unknown model, got %v", err)
	}

	names := Names()
	if len(names) != 2 || names[0] != ModelNormal || names[1] != ModelWeibull {
		t.Errorf("Names() = %v", names)
	}
}

func TestPredictive(t *testing.T) {
	stimDomain := column(-30, -20, -10)
	got, err := Predictive(Weibull{}, stimDomain, []float64{-20, 3.5, 0.5, 0.02})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, c := got.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("expected 2x3 predictive matrix, got %dx%d", r, c)
	}
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, got)
		if math.Abs(col[0]+col[1]-1) > 1e-12 {
			t.Errorf("column %d sums to %v", j, col[0]+col[1])
		}
	}

	if _, err := Predictive(nil, stimDomain, nil); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Errorf("expected invalid argument for nil pf, got %v", err)
	}
	if _, err := Predictive(domain.PsychometricFuncOf(nil), stimDomain, nil); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Errorf("expected invalid argument for nil function adapter, got %v", err)
	}
}
