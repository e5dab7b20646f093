// internal/event/types.go
package event

const (
	BallBounced EventType = "BallBounced" // ball reflected off solid ring material
	GateCleared EventType = "GateCleared" // ball escaped through a gate's gap
	RunEnded    EventType = "RunEnded"    // fail policy triggered game over
	RunReset    EventType = "RunReset"    // ball and gates rebuilt from config
)

// BouncePayload accompanies BallBounced.
type BouncePayload struct {
	X, Y      float64 // contact point
	GateIndex int
}

// ClearPayload accompanies GateCleared.
type ClearPayload struct {
	Radius    float64 // retired gate's center radius
	GateIndex int
	Cleared   int // progression counter after the clear
}
