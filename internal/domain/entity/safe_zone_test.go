package entity

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSafeZone_Validate(t *testing.T) {
	valid := SafeZone{Name: "Campus", CenterLat: 14.5995, CenterLng: 120.9842, RadiusMeters: 200, IsActive: true}

	tests := []struct {
		name   string
		mutate func(z *SafeZone)
	}{
		{name: "zero radius", mutate: func(z *SafeZone) { z.RadiusMeters = 0 }},
		{name: "negative radius", mutate: func(z *SafeZone) { z.RadiusMeters = -1 }},
		{name: "NaN radius", mutate: func(z *SafeZone) { z.RadiusMeters = math.NaN() }},
		{name: "infinite radius", mutate: func(z *SafeZone) { z.RadiusMeters = math.Inf(1) }},
		{name: "latitude out of range", mutate: func(z *SafeZone) { z.CenterLat = 91 }},
		{name: "NaN longitude", mutate: func(z *SafeZone) { z.CenterLng = math.NaN() }},
	}

	assert.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := valid
			tt.mutate(&zone)

			err := zone.Validate()
			assert.True(t, errors.Is(err, ErrInvalidSafeZone), "got %v", err)
		})
	}
}
