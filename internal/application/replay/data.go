package replay

import "github.com/younwookim/vaultcore/internal/application/input"

// Version is written into every recording
const Version = "1.0"

// FrameInput records movement intent for a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	MX float64 `json:"mx,omitempty"` // MoveX
	MZ float64 `json:"mz,omitempty"` // MoveZ
	JP bool    `json:"jp,omitempty"` // JumpPressed
	JH bool    `json:"jh,omitempty"` // JetpackHeld
	MP bool    `json:"mp,omitempty"` // MantlePressed
	PU bool    `json:"pu,omitempty"` // PullUpPressed
	DR bool    `json:"dr,omitempty"` // DropPressed
	CN bool    `json:"cn,omitempty"` // CancelPressed
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Arena     string       `json:"arena"`
	StartTime string       `json:"startTime"`
	DT        float64      `json:"dt"` // Fixed tick length in seconds
	Frames    []FrameInput `json:"frames"`
}

func toFrame(f int, in input.State) FrameInput {
	return FrameInput{
		F:  f,
		MX: in.MoveX,
		MZ: in.MoveZ,
		JP: in.JumpPressed,
		JH: in.JetpackHeld,
		MP: in.MantlePressed,
		PU: in.PullUpPressed,
		DR: in.DropPressed,
		CN: in.CancelPressed,
	}
}

// State converts the frame back into intent
func (fi FrameInput) State() input.State {
	return input.State{
		MoveX:         fi.MX,
		MoveZ:         fi.MZ,
		JumpPressed:   fi.JP,
		JetpackHeld:   fi.JH,
		MantlePressed: fi.MP,
		PullUpPressed: fi.PU,
		DropPressed:   fi.DR,
		CancelPressed: fi.CN,
	}
}
