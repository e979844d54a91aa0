package core

import "time"

// DefaultCity is the fallback for profiles with no city or an unknown one.
const DefaultCity = "Delhi"

// streetFoodPrices holds the average street-food meal cost per city, in
// paise. Loaded once; treat as read-only.
var streetFoodPrices = map[string]Money{
	"Delhi":     {Paise: 6000},
	"Mumbai":    {Paise: 8000},
	"Bangalore": {Paise: 7000},
	"Chennai":   {Paise: 5500},
	"Kolkata":   {Paise: 5000},
	"Hyderabad": {Paise: 6500},
	"Pune":      {Paise: 6500},
	"Jaipur":    {Paise: 5500},
	"Ahmedabad": {Paise: 5000},
}

var defaultStreetFoodPrice = Money{Paise: 6000}

// StreetFoodPrice returns the meal cost for a city, falling back to the
// default price for unknown cities. Never errors.
func StreetFoodPrice(city string) Money {
	if p, ok := streetFoodPrices[city]; ok {
		return p
	}
	return defaultStreetFoodPrice
}

// Cities returns the set of cities with a known street-food price.
func Cities() []string {
	out := make([]string, 0, len(streetFoodPrices))
	for c := range streetFoodPrices {
		out = append(out, c)
	}
	return out
}

// FestiveInfo describes a festival spending season and its suggested
// budget buffer.
type FestiveInfo struct {
	IsFestive     bool
	Festival      string
	BufferPercent int
}

// FestiveSeason returns the festival buffer for the month containing t.
// Oct/Nov is Diwali season, March is Holi, Aug/Sep covers Ganesh
// Chaturthi and Onam.
func FestiveSeason(t time.Time) FestiveInfo {
	switch t.Month() {
	case time.October, time.November:
		return FestiveInfo{IsFestive: true, Festival: "Diwali", BufferPercent: 30}
	case time.March:
		return FestiveInfo{IsFestive: true, Festival: "Holi", BufferPercent: 30}
	case time.August, time.September:
		return FestiveInfo{IsFestive: true, Festival: "Ganesh Chaturthi", BufferPercent: 20}
	}
	return FestiveInfo{}
}
