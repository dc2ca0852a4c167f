package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform uses the screen size for layout and the seed for deterministic
// spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}
