package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitchCos bounds how close the look direction may get to straight up or down.
const maxPitchCos = 0.99

// firstPerson is the per-kind state of a KindFirstPerson camera.
type firstPerson struct {
	dir        mgl32.Vec3
	initialDir mgl32.Vec3

	// last pointer position seen by click or move
	lastX, lastY float32

	sensitivity float32 // radians per pixel
}

func newFirstPerson(dir mgl32.Vec3, sensitivity float32) firstPerson {
	dir = common.SafeNormalize(dir, mgl32.Vec3{0, 0, -1})
	return firstPerson{
		dir:         dir,
		initialDir:  dir,
		sensitivity: sensitivity,
	}
}

func (fp *firstPerson) click(x, y float32) {
	fp.lastX = x
	fp.lastY = y
}

// look yaws the direction around world up and pitches it around the camera's right axis.
// Dragging right turns right; dragging up (y grows upward) looks up.
func (fp *firstPerson) look(x, y float32) {
	dx := x - fp.lastX
	dy := y - fp.lastY
	if dx == 0 && dy == 0 {
		return
	}
	fp.lastX = x
	fp.lastY = y

	yaw := mgl32.QuatRotate(-dx*fp.sensitivity, common.WorldUp)
	dir := yaw.Rotate(fp.dir)

	right := dir.Cross(common.WorldUp)
	if right.Len() > common.Epsilon {
		pitch := mgl32.QuatRotate(dy*fp.sensitivity, right.Normalize())
		pitched := pitch.Rotate(dir)
		if math.Abs(float64(pitched.Dot(common.WorldUp))) < maxPitchCos {
			dir = pitched
		}
	}
	fp.dir = common.SafeNormalize(dir, fp.dir)
}

func (fp *firstPerson) reset() {
	fp.dir = fp.initialDir
}
