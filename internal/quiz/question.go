package quiz

// Kind identifies a question variant.
type Kind string

const (
	KindFreeText  Kind = "free-text"
	KindMCQ       Kind = "mcq"
	KindSlider    Kind = "slider"
	KindTrueFalse Kind = "true-false"
)

// Question is the closed set of question variants. The sealed method keeps
// the set closed so the evaluation dispatcher can switch exhaustively.
type Question interface {
	// Kind returns the question variant tag.
	Kind() Kind

	// Prompt returns the text shown to the quiz taker.
	Prompt() string

	// Weight returns the relative importance of this question in the
	// overall quiz score. Always positive; defaults to 1.
	Weight() float64

	sealed()
}

// Base holds the fields shared by every question variant.
type Base struct {
	Text string
	Wt   float64
}

func (b Base) Prompt() string  { return b.Text }
func (b Base) Weight() float64 { return b.Wt }
func (Base) sealed()           {}

// FreeTextQuestion is graded by an external judge against a reference answer.
type FreeTextQuestion struct {
	Base

	// Answer is the reference answer the judge grades against.
	Answer string

	// Context is optional extra grading guidance. Never shown to the user.
	Context string
}

func (FreeTextQuestion) Kind() Kind { return KindFreeText }

// MCQQuestion offers a fixed option list with one or more correct options.
type MCQQuestion struct {
	Base

	// Options is the ordered list of choices. At least 2, all unique.
	Options []string

	// Answer is the set of correct options, kept in Options order.
	Answer []string

	// Multiple distinguishes multi-select (proportional credit) from
	// single-select (binary).
	Multiple bool
}

func (MCQQuestion) Kind() Kind { return KindMCQ }

// SliderQuestion asks for a numeric value on a [Min, Max] range.
type SliderQuestion struct {
	Base

	Answer float64
	Min    float64
	Max    float64

	// Step is display granularity only. It never affects scoring.
	Step float64

	// Tolerance, when set, is the absolute window around Answer that still
	// earns full credit. Nil means exact match required.
	Tolerance *float64
}

func (SliderQuestion) Kind() Kind { return KindSlider }

// TrueFalseQuestion is a boolean statement check.
type TrueFalseQuestion struct {
	Base

	Answer bool
}

func (TrueFalseQuestion) Kind() Kind { return KindTrueFalse }
