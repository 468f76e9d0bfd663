package booking

import (
	"encoding/json"
	"math"
	"strings"
)

// ServiceLine is one entry of a booking's services list.
type ServiceLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func ParseServices(raw string) ([]ServiceLine, error) {
	var lines []ServiceLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, ErrInvalidServices
	}
	return lines, nil
}

// EncodeServices validates lines and renders the stored JSON text.
func EncodeServices(lines []ServiceLine) (string, error) {
	if len(lines) == 0 {
		return "", ErrInvalidServices
	}
	for _, l := range lines {
		if strings.TrimSpace(l.Name) == "" || l.Price < 0 {
			return "", ErrInvalidServices
		}
	}

	b, err := json.Marshal(lines)
	if err != nil {
		return "", ErrInvalidServices
	}
	return string(b), nil
}

// TotalOf sums line prices rounded to cents.
func TotalOf(lines []ServiceLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price
	}
	return math.Round(total*100) / 100
}
