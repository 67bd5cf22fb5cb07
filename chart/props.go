package chart

// Prop names one animatable numeric field of a Surface.
type Prop uint8

const (
	PropLeft Prop = iota
	PropRight
	PropMin
	PropMax
	PropOffset
	PropOpacity
	numProps
)

var propNames = [numProps]string{"left", "right", "min", "max", "offset", "opacity"}

func (p Prop) String() string {
	if p >= numProps {
		return "unknown"
	}
	return propNames[p]
}

// Target is the value a property animates towards.
type Target struct {
	Prop  Prop
	Value float64
}

type props [numProps]float64

type propMask uint8

func (m propMask) has(p Prop) bool { return m&(1<<p) != 0 }
