package edit

// Kind names an edit operation kind.
type Kind string

const (
	KindSkip        Kind = "skip"
	KindSubstitute  Kind = "substitute"
	KindDeleteOne   Kind = "delete_one"
	KindDeleteRange Kind = "delete_range"
	KindInsert      Kind = "insert"
	KindMaskOne     Kind = "mask_one"
	KindMaskRange   Kind = "mask_range"
)

// MaskBase is written over masked positions.
const MaskBase = 'N'

// Op is one parsed instruction. Each kind is its own type, so a field that
// does not apply to a kind does not exist on it. All positions are 0-based.
type Op interface {
	Kind() Kind
	// Token is the raw instruction text, kept for diagnostics.
	Token() string
	// span is the closed interval of positions the op depends on.
	// ok is false for ops without a position.
	span() (lo, hi int, ok bool)
}

// Skip is the NoDifference marker.
type Skip struct{ Raw string }

// Substitute replaces (or, in splice mode, precedes) the base at Pos.
type Substitute struct {
	Raw      string
	Pos      int
	Expected byte
	New      string
}

type DeleteOne struct {
	Raw string
	Pos int
}

// DeleteRange removes the half-open range [From, To).
type DeleteRange struct {
	Raw      string
	From, To int
}

// Insert adds Bases immediately after Pos.
type Insert struct {
	Raw   string
	Pos   int
	Bases string
}

type MaskOne struct {
	Raw string
	Pos int
}

// MaskRange overwrites the closed range [From, To] with N.
type MaskRange struct {
	Raw      string
	From, To int
}

func (o Skip) Kind() Kind        { return KindSkip }
func (o Substitute) Kind() Kind  { return KindSubstitute }
func (o DeleteOne) Kind() Kind   { return KindDeleteOne }
func (o DeleteRange) Kind() Kind { return KindDeleteRange }
func (o Insert) Kind() Kind      { return KindInsert }
func (o MaskOne) Kind() Kind     { return KindMaskOne }
func (o MaskRange) Kind() Kind   { return KindMaskRange }

func (o Skip) Token() string        { return o.Raw }
func (o Substitute) Token() string  { return o.Raw }
func (o DeleteOne) Token() string   { return o.Raw }
func (o DeleteRange) Token() string { return o.Raw }
func (o Insert) Token() string      { return o.Raw }
func (o MaskOne) Token() string     { return o.Raw }
func (o MaskRange) Token() string   { return o.Raw }

func (o Skip) span() (int, int, bool)       { return 0, 0, false }
func (o Substitute) span() (int, int, bool) { return o.Pos, o.Pos, true }
func (o DeleteOne) span() (int, int, bool)  { return o.Pos, o.Pos, true }
func (o Insert) span() (int, int, bool)     { return o.Pos, o.Pos, true }
func (o MaskOne) span() (int, int, bool)    { return o.Pos, o.Pos, true }

func (o DeleteRange) span() (int, int, bool) {
	return o.From, max(o.From, o.To-1), true
}

func (o MaskRange) span() (int, int, bool) {
	return o.From, max(o.From, o.To), true
}

// Anchor returns the position an op is ordered by. ok is false for Skip.
func Anchor(op Op) (pos int, ok bool) {
	lo, _, ok := op.span()
	return lo, ok
}
