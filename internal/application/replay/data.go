package replay

import "github.com/younwookim/portfoliotown/internal/application/system"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int `json:"f"` // Frame number
	system.InputState
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Start     string       `json:"start"`               // First scene
	Character string       `json:"character,omitempty"` // Preselected character, empty when chosen in-game
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
