package activity

// Profile describes the ideal weather conditions for one activity
type Profile struct {
	Name           string
	IdealTempMin   float64
	IdealTempMax   float64
	RainTolerance  float64
	WindPreference float64
}

// DefaultProfiles is the static activity table. Order matters only for
// tie-breaking: ranking is stable, so equal scores keep this order.
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "skiing", IdealTempMin: -10, IdealTempMax: 2, RainTolerance: 0.1, WindPreference: 0.2},
		{Name: "surfing", IdealTempMin: 18, IdealTempMax: 28, RainTolerance: 0.7, WindPreference: 0.8},
		{Name: "indoor_sightseeing", IdealTempMin: 10, IdealTempMax: 30, RainTolerance: 1.0, WindPreference: 0.5},
		{Name: "outdoor_sightseeing", IdealTempMin: 15, IdealTempMax: 25, RainTolerance: 0.1, WindPreference: 0.3},
	}
}
