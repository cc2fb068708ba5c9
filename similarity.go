package main

import (
	"math"
	"strings"
)

// calculateListSimilarity returns the Jaccard similarity of two string lists
// (case-insensitive, 0-1). Empty input on either side means no signal.
func calculateListSimilarity(list1, list2 []string) float64 {
	if len(list1) == 0 || len(list2) == 0 {
		return 0.0
	}

	set1 := make(map[string]struct{}, len(list1))
	for _, item := range list1 {
		set1[strings.ToLower(item)] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(list2))
	for _, item := range list2 {
		set2[strings.ToLower(item)] = struct{}{}
	}

	intersection := 0
	for item := range set1 {
		if _, ok := set2[item]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// calculateTextSimilarity returns word-set Jaccard overlap of two free-text
// fields (case-insensitive, whitespace tokenized, 0-1).
func calculateTextSimilarity(text1, text2 string) float64 {
	if text1 == "" || text2 == "" {
		return 0.0
	}
	return calculateListSimilarity(
		strings.Fields(strings.ToLower(text1)),
		strings.Fields(strings.ToLower(text2)),
	)
}

// haversine returns the great-circle distance between two points in km.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth radius in km
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1 = lat1 * (math.Pi / 180)
	lat2 = lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
