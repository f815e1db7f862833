package models

import (
	"fmt"

	"frontend/internal/domain"
)

// Station is a rail station as listed by GET /stations/.
type Station struct {
	ID   domain.ID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

// Label renders "Name (CODE)" the way station pickers show it.
func (s Station) Label() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Code)
}

// StationIndex resolves station ids to display labels.
type StationIndex map[domain.ID]Station

func IndexStations(stations []Station) StationIndex {
	idx := make(StationIndex, len(stations))
	for _, s := range stations {
		idx[s.ID] = s
	}
	return idx
}

// Name returns the station label, or "ID n" for stations the index does not know.
func (idx StationIndex) Name(id domain.ID) string {
	if s, ok := idx[id]; ok {
		return s.Label()
	}
	return fmt.Sprintf("ID %d", id)
}
