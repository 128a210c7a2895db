package classifier

import (
	"math"
	"slices"
)

// Rating is a display label plus its lowercase class slug
type Rating struct {
	Label string `json:"rating"`
	Class string `json:"ratingClass"`
}

var (
	Excellent = Rating{Label: "Excellent", Class: "excellent"}
	Good      = Rating{Label: "Good", Class: "good"}
	Fair      = Rating{Label: "Fair", Class: "fair"}
	NeedsWork = Rating{Label: "Needs Work", Class: "poor"}
)

// Band maps every score at or above Min to a rating
type Band struct {
	Min    int
	Rating Rating
}

// bands is ordered high to low; the first band whose Min is met wins.
var bands = []Band{
	{Min: 80, Rating: Excellent},
	{Min: 60, Rating: Good},
	{Min: 40, Rating: Fair},
	{Min: math.MinInt, Rating: NeedsWork},
}

// Classify maps a score to its rating band
func Classify(score int) Rating {
	for _, b := range bands {
		if score >= b.Min {
			return b.Rating
		}
	}
	return NeedsWork
}

// Bands returns the rating bands, highest first
func Bands() []Band {
	return slices.Clone(bands)
}
