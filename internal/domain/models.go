// Package domain provides core domain models and types shared across modules.
package domain

import "errors"

// Exchange identifies the listing venue of a company
type Exchange string

const (
	ExchangeNSE Exchange = "NSE"
	ExchangeBSE Exchange = "BSE"
)

// Company is a listed company in the research universe
type Company struct {
	Name     string   `json:"name" msgpack:"name"`
	Symbol   string   `json:"symbol" msgpack:"symbol"`
	Exchange Exchange `json:"exchange" msgpack:"exchange"`
	Sector   string   `json:"sector" msgpack:"sector"`
}

// ShortName returns the first two words of the company name, as shown on cards.
func (c Company) ShortName() string {
	words := 0
	for i, r := range c.Name {
		if r == ' ' {
			words++
			if words == 2 {
				return c.Name[:i]
			}
		}
	}
	return c.Name
}

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")
