package spatial

import (
	"fmt"
	"math"
)

// ToDMS formats a coordinate pair as degrees-minutes-seconds, e.g.
// `5°18'42.1"N 2°00'15.8"W`. Display only.
func ToDMS(lat, lng float64) string {
	return fmt.Sprintf("%s %s", dmsComponent(lat, "N", "S"), dmsComponent(lng, "E", "W"))
}

func dmsComponent(value float64, positive, negative string) string {
	hemisphere := positive
	if value < 0 {
		hemisphere = negative
	}

	abs := math.Abs(value)
	degrees := math.Floor(abs)
	minutesFull := (abs - degrees) * 60
	minutes := math.Floor(minutesFull)
	seconds := (minutesFull - minutes) * 60

	return fmt.Sprintf("%d°%02d'%04.1f\"%s", int(degrees), int(minutes), seconds, hemisphere)
}

// ToUTM formats a coordinate pair as a UTM-style grid reference. This is a
// simplified planar approximation, not a rigorous transverse Mercator
// projection; it is suitable for display in reports, not for surveying.
func ToUTM(lat, lng float64) string {
	zone := int(math.Floor((lng+180)/6)) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}

	band := "N"
	if lat < 0 {
		band = "S"
	}

	centralMeridian := float64(zone-1)*6 - 180 + 3
	easting := 500000 + (lng-centralMeridian)*KmPerDegree*1000*math.Cos(lat*math.Pi/180)
	northing := lat * KmPerDegree * 1000
	if lat < 0 {
		northing += 10000000
	}

	return fmt.Sprintf("%d%s %.0fE %.0fN", zone, band, easting, northing)
}
