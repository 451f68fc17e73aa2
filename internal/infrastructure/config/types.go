package config

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Display    ScreenConfig     `json:"display"`
	Transition TransitionConfig `json:"transition"`
	Movement   MovementConfig   `json:"movement"`
	Audio      AudioConfig      `json:"audio"`
	Dialogue   DialogueConfig   `json:"dialogue"`
}

type ScreenConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// TransitionConfig configures scene fades (milliseconds)
type TransitionConfig struct {
	FadeOutMs int `json:"fadeOutMs"`
	FadeInMs  int `json:"fadeInMs"`
}

type MovementConfig struct {
	Speed        float64 `json:"speed"`        // Pixels per second
	AvatarRadius float64 `json:"avatarRadius"` // Collision circle radius
	AvatarSize   float64 `json:"avatarSize"`   // Drawn size
}

type AudioConfig struct {
	Enabled        bool    `json:"enabled"`
	SampleRate     int     `json:"sampleRate"`
	FootstepVolume float64 `json:"footstepVolume"`
}

type DialogueConfig struct {
	FontSize float64 `json:"fontSize"`
	BoxHeight int    `json:"boxHeight"`
}

// FrameDT returns the fixed tick duration in seconds
func (c *DisplayConfig) FrameDT() float64 {
	if c.Display.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Display.Framerate)
}
