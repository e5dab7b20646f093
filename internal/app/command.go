// internal/app/command.go
package app

// CommandType enumerates the discrete inputs the simulation accepts.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdPause
	CmdResume
	CmdReset
	CmdNudge
)

// Command is one input delivered to the simulation at a tick boundary.
// Axis is only meaningful for CmdNudge and is clamped to [-1, 1].
type Command struct {
	Type CommandType
	Axis float64
}
