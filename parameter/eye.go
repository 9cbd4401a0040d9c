package parameter

// Sclera: the white of an eye, a collidable body member
const (
	ScleraRadius    = 0.246
	ScleraMass      = 0.01
	ScleraDampening = 0.03
)

// Pupil: non-interactive point chained to its sclera
const (
	PupilRadius       = 0.1
	PupilMass         = 0.005
	PupilDefaultForce = 0.003
	PupilDampening    = 0.00001

	// PupilInset keeps the pupil disc fully inside the sclera outline
	PupilInset = 0.03

	// PupilMaxOffset is the Fixed constraint length between sclera and pupil centres
	PupilMaxOffset = ScleraRadius - PupilRadius - PupilInset
)

// Eye placement
const (
	// EyeSpawnBuffer is the fraction of the centred square left empty on each side
	EyeSpawnBuffer = 0.3
)
