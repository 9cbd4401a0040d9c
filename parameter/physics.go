package parameter

// Simulation timestep and world sizing
const (
	// DT is the fixed integration timestep in milliseconds, one call per frame
	DT = 16.0

	// MinDimension is the world size along the shorter screen axis
	// The longer axis is proportional, so world units stay square
	MinDimension = 10.0
)

// Gravity
const (
	// MaxGravity is the gravity magnitude at full dial deflection (world units per ms², scaled by mass)
	MaxGravity = 0.01

	// GravityMinFraction is the lowest magnitude the dial reaches, as a fraction of MaxGravity
	GravityMinFraction = 0.3

	// GravityRotateStep is the dial rotation per arrow key press in radians
	GravityRotateStep = 0.2617993877991494 // π/12

	// GravityMagnitudeStep is the dial magnitude change per arrow key press (fraction of MaxGravity)
	GravityMagnitudeStep = 0.1
)

// Default force direction for points with a constant self-force (pupils sink "down")
const (
	DefaultForceDirectionX = 0.0
	DefaultForceDirectionY = 1.0
)
