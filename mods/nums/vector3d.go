package nums

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Vector3D is a point (or vector) with three ordinates.
// For geographic coordinates X is the longitude, Y the latitude and Z the height.
type Vector3D struct {
	X float64
	Y float64
	Z float64
}

func NewVector3D(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

func NewVector2D(x, y float64) Vector3D {
	return Vector3D{X: x, Y: y}
}

// Ordinate returns the ordinate by index: 0=X, 1=Y, 2=Z.
func (v Vector3D) Ordinate(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("invalid ordinate index %d", i))
	}
}

// SetOrdinate returns a copy of v with the i-th ordinate replaced.
func (v Vector3D) SetOrdinate(i int, value float64) Vector3D {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("invalid ordinate index %d", i))
	}
	return v
}

func (v Vector3D) Array() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// EqualsTol reports whether every ordinate of v equals the one of o within tol.
func (v Vector3D) EqualsTol(tol float64, o Vector3D) bool {
	return EqualsTol(v.X, tol, o.X) && EqualsTol(v.Y, tol, o.Y) && EqualsTol(v.Z, tol, o.Z)
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

func (v Vector3D) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	for i, f := range v.Array() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts [x,y] or [x,y,z].
func (v *Vector3D) UnmarshalJSON(b []byte) error {
	val := []float64{}
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}
	switch len(val) {
	case 2:
		*v = NewVector2D(val[0], val[1])
	case 3:
		*v = NewVector3D(val[0], val[1], val[2])
	default:
		return fmt.Errorf("invalid vector dimension %d", len(val))
	}
	return nil
}
