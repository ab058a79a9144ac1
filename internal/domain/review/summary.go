package review

import "math"

type Summary struct {
	ServiceID uint    `json:"service_id"`
	Count     int64   `json:"count"`
	Average   float64 `json:"average"`
}

// NewSummary rounds the average to one decimal place.
func NewSummary(serviceID uint, count int64, sum int64) Summary {
	s := Summary{ServiceID: serviceID, Count: count}
	if count > 0 {
		s.Average = math.Round(float64(sum)/float64(count)*10) / 10
	}
	return s
}
