package psychometric

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"questplus/internal/domain"
)

// Model names accepted by Lookup
const (
	ModelWeibull = "weibull"
	ModelNormal  = "normal"
)

var models = map[string]domain.PsychometricFunc{
	ModelWeibull: Weibull{},
	ModelNormal:  Normal{},
}

// Lookup resolves a model by name, case-insensitively
func Lookup(name string) (domain.PsychometricFunc, error) {
	pf, ok := models[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, domain.Errorf("psychometric lookup", domain.KindInvalidArgument,
			"unknown model %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return pf, nil
}

// Names returns the registered model names in sorted order
func Names() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Weibull is the QUEST+ Weibull function with stimulus in dB.
// Params: [threshold (dB), slope, guess, lapse].
type Weibull struct{}

// Predict implements domain.PsychometricFunc
func (Weibull) Predict(stim mat.Matrix, params []float64) (*mat.Dense, error) {
	if err := checkArgs("weibull", stim, params, 4); err != nil {
		return nil, err
	}
	threshold, slope, guess, lapse := params[0], params[1], params[2], params[3]
	if !admissibleRate(guess) || !admissibleRate(lapse) || guess+lapse > 1 {
		return nanProportions(stim), nil
	}

	return twoAlternative(stim, func(x float64) float64 {
		return guess + (1-guess-lapse)*(1-math.Exp(-math.Pow(10, slope*(x-threshold)/20)))
	}), nil
}

// Normal is a cumulative normal with symmetric lapse.
// Params: [mean, standard deviation, lapse].
type Normal struct{}

// Predict implements domain.PsychometricFunc
func (Normal) Predict(stim mat.Matrix, params []float64) (*mat.Dense, error) {
	if err := checkArgs("normal", stim, params, 3); err != nil {
		return nil, err
	}
	mean, sd, lapse := params[0], params[1], params[2]
	if !(sd > 0) || !admissibleRate(lapse) || 2*lapse > 1 {
		return nanProportions(stim), nil
	}

	dist := distuv.Normal{Mu: mean, Sigma: sd}
	return twoAlternative(stim, func(x float64) float64 {
		return lapse + (1-2*lapse)*dist.CDF(x)
	}), nil
}

func admissibleRate(v float64) bool {
	return v >= 0 && v <= 1
}

func checkArgs(op string, stim mat.Matrix, params []float64, nParams int) error {
	if stim == nil {
		return domain.Errorf(op, domain.KindInvalidArgument, "stimulus must not be nil")
	}
	if d, ok := stim.(*mat.Dense); ok && d == nil {
		return domain.Errorf(op, domain.KindInvalidArgument, "stimulus must not be nil")
	}
	if r, c := stim.Dims(); r == 0 || c != 1 {
		return domain.Errorf(op, domain.KindInvalidArgument,
			"stimulus must be a non-empty single column, got %dx%d", r, c)
	}
	if len(params) != nParams {
		return domain.Errorf(op, domain.KindInvalidArgument,
			"want %d params, got %d", nParams, len(params))
	}
	return nil
}

// twoAlternative builds [1-p, p] rows from the correct-response probability
func twoAlternative(stim mat.Matrix, correct func(x float64) float64) *mat.Dense {
	r, _ := stim.Dims()
	out := mat.NewDense(r, 2, nil)
	for i := 0; i < r; i++ {
		p := correct(stim.At(i, 0))
		out.Set(i, 0, 1-p)
		out.Set(i, 1, p)
	}
	return out
}

func nanProportions(stim mat.Matrix) *mat.Dense {
	r, _ := stim.Dims()
	out := mat.NewDense(r, 2, nil)
	out.Apply(func(_, _ int, _ float64) float64 { return math.NaN() }, out)
	return out
}
