package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := New(3, 4)
	x, y := p.Coordinates()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestPoint_Add_Sub(t *testing.T) {
	a := New(1, 2)
	b := New(3, -1)
	assert.Equal(t, New(4, 1), a.Add(b))
	assert.Equal(t, New(-2, 3), a.Sub(b))
}

func TestPoint_Negate(t *testing.T) {
	assert.Equal(t, New(-3, 4), New(3, -4).Negate())
}

func TestPoint_Translate(t *testing.T) {
	assert.Equal(t, New(5, 5), New(2, 3).Translate(New(3, 2)))
}

func TestPoint_CrossProduct(t *testing.T) {
	assert.Equal(t, 1.0, New(1, 0).CrossProduct(New(0, 1)))
	assert.Equal(t, -1.0, New(0, 1).CrossProduct(New(1, 0)))
	assert.Equal(t, 0.0, New(1, 1).CrossProduct(New(2, 2)))
}

func TestPoint_DotProduct(t *testing.T) {
	assert.Equal(t, 11.0, New(1, 2).DotProduct(New(3, 4)))
}

func TestPoint_Distance(t *testing.T) {
	p, q := New(0, 0), New(3, 4)
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestPoint_Eq_Bitwise(t *testing.T) {
	assert.True(t, New(1, 2).Eq(New(1, 2)))
	assert.False(t, New(1, 2).Eq(New(1, 2.0000001)))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1,2)", New(1, 2).String())
}

func TestPoint_JSON_RoundTrip(t *testing.T) {
	p := New(1.5, -2.5)
	data, err := p.MarshalJSON()
	assert.NoError(t, err)

	var q Point
	assert.NoError(t, q.UnmarshalJSON(data))
	assert.Equal(t, p, q)
}

func TestSignedArea(t *testing.T) {
	// matches the reference fixtures from the original boolean-ops source:
	// signed_area((0,0),(0,1),(1,1)) == -1, signed_area((0,1),(0,0),(1,0)) == 1.
	assert.Equal(t, -1.0, SignedArea(New(0, 0), New(0, 1), New(1, 1)))
	assert.Equal(t, 1.0, SignedArea(New(0, 1), New(0, 0), New(1, 0)))
	assert.Equal(t, 0.0, SignedArea(New(0, 0), New(1, 1), New(2, 2)))
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, Counterclockwise, Orientation(New(0, 0), New(1, 0), New(1, 1), 1e-9))
	assert.Equal(t, Clockwise, Orientation(New(0, 0), New(0, 1), New(1, 1), 1e-9))
	assert.Equal(t, Collinear, Orientation(New(0, 0), New(1, 1), New(2, 2), 1e-9))
}

func TestOrientationType_String_Panics(t *testing.T) {
	assert.Panics(t, func() { _ = OrientationType(99).String() })
}
