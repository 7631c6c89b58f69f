package geo

import (
	"testing"

	"cycleparking/internal/models"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestPosition(t *testing.T) {
	cases := []struct {
		name    string
		element models.Element
		want    orb.Point
	}{
		{
			name:    "center",
			element: models.Element{Type: models.ElementTypeWay, ID: 1, Center: &models.Coordinates{Lon: 1, Lat: 2}},
			want:    orb.Point{1, 2},
		},
		{
			name:    "direct",
			element: models.Element{Type: models.ElementTypeNode, ID: 2, Lon: ptr(3), Lat: ptr(4)},
			want:    orb.Point{3, 4},
		},
		{
			name: "center preferred over direct",
			element: models.Element{
				Type: models.ElementTypeWay, ID: 3,
				Lon: ptr(9), Lat: ptr(9),
				Center: &models.Coordinates{Lon: 5, Lat: 6},
			},
			want: orb.Point{5, 6},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Position(tc.element)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Lon(), got[0])
			assert.Equal(t, tc.want.Lat(), got[1])
		})
	}
}

func TestPosition_Missing(t *testing.T) {
	cases := []struct {
		name    string
		element models.Element
	}{
		{name: "nothing", element: models.Element{Type: models.ElementTypeRelation, ID: 9}},
		{name: "only lat", element: models.Element{Type: models.ElementTypeNode, ID: 10, Lat: ptr(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Position(tc.element)
			assert.ErrorIs(t, err, ErrNoPosition)
		})
	}
}
