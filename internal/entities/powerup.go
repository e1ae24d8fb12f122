package entities

// PowerUpKind enumerates every timed modifier the player can carry. Effects
// are polled each tick by whichever subsystem cares; there is no scheduler.
type PowerUpKind int

const (
	PowerCandyMagnet PowerUpKind = iota
	PowerGhostRepel
	PowerExtraHeart
	PowerSpeedBoost
	PowerZombiePower
	PowerInvisibility
	PowerTimeSlow
	PowerDoublePoints
	PowerShield
)

// Default durations in ticks at 60 updates per second.
const (
	CandyMagnetDuration  = 600
	GhostRepelDuration   = 900
	SpeedBoostDuration   = 450
	ZombiePowerDuration  = 900
	InvisibilityDuration = 720
	TimeSlowDuration     = 480
	DoublePointsDuration = 600
	ShieldDuration       = 900
)

// PowerUp is an active effect counting down on the player.
type PowerUp struct {
	Kind     PowerUpKind
	Duration int
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerCandyMagnet:
		return "candy magnet"
	case PowerGhostRepel:
		return "ghost repel"
	case PowerExtraHeart:
		return "extra heart"
	case PowerSpeedBoost:
		return "speed boost"
	case PowerZombiePower:
		return "zombie power"
	case PowerInvisibility:
		return "invisibility"
	case PowerTimeSlow:
		return "time slow"
	case PowerDoublePoints:
		return "double points"
	case PowerShield:
		return "shield"
	default:
		return "unknown"
	}
}
