package polyclip

import (
	"testing"

	"github.com/cartforge/polyclip/point"
	"github.com/cartforge/polyclip/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) polygon.Ring {
	return polygon.NewRing(
		point.New(x0, y0), point.New(x1, y0), point.New(x1, y1), point.New(x0, y1),
	)
}

func TestRun_Union(t *testing.T) {
	subject := polygon.MultiPolygon{polygon.New(square(0, 0, 1, 1))}
	clipping := polygon.MultiPolygon{polygon.New(square(1, 0, 2, 1))}

	result, err := Run(subject, clipping, Union)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestRun_EmptyClippingIsDifferenceIdentity(t *testing.T) {
	subject := polygon.MultiPolygon{polygon.New(square(0, 0, 1, 1))}

	result, err := Run(subject, nil, Difference)
	require.NoError(t, err)
	assert.Equal(t, subject, result)
}

func TestRun_UnsupportedOperation(t *testing.T) {
	subject := polygon.MultiPolygon{polygon.New(square(0, 0, 1, 1))}
	_, err := Run(subject, subject, Operation(99))
	assert.Error(t, err)
}
