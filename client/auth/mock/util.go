package mock

import "strconv"

// page mirrors the backend list pagination envelope
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func paginate[T any](items []T) *page[T] {
	if items == nil {
		items = []T{}
	}
	return &page[T]{Count: len(items), Results: items}
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
