package scoring

import (
	"github.com/carelens/carematch/internal/domain"
	"github.com/carelens/carematch/internal/domain/category"
	"github.com/carelens/carematch/internal/domain/geo"
	"github.com/carelens/carematch/internal/extract"
	"github.com/carelens/carematch/internal/normalize"
)

// LocationFit scores geographic proximity to the preferred location, falling
// back to a city comparison when coordinates are missing on either side.
type LocationFit struct{}

const (
	locationFitMax  = 10
	defaultRadiusKm = 20.0
)

func (LocationFit) Name() category.Name { return category.LocationFit }
func (LocationFit) MaxPoints() float64  { return locationFitMax }

func (LocationFit) Calculate(entity *domain.FusedEntity, profile *domain.RequestProfile, _ map[string]any) float64 {
	loc := profile.Location

	if loc.Latitude != nil && loc.Longitude != nil &&
		entity.Latitude != nil && entity.Longitude != nil &&
		geo.ValidateCoordinates(*entity.Latitude, *entity.Longitude) {
		radius := loc.MaxDistanceKm
		if radius <= 0 {
			radius = defaultRadiusKm
		}
		d := geo.HaversineKm(*loc.Latitude, *loc.Longitude, *entity.Latitude, *entity.Longitude)
		var points float64
		switch {
		case d <= radius/2:
			points = 10
		case d <= radius:
			points = 6
		case d <= 2*radius:
			points = 2
		default:
			points = 0
		}
		return extract.Clamp(points/locationFitMax, 0, 1)
	}

	if loc.City != "" && normalize.Text(loc.City) == normalize.Text(entity.City) {
		return 0.7
	}
	return 0
}
