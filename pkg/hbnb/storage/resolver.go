package storage

import (
	"sort"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
)

// Relationship resolution. Entities never hold pointers to their parents or
// children; derived collections are computed here by scanning the facade and
// filtering on the owning id. Results are ordered by id so callers see a
// stable listing regardless of backend.

func CitiesOfState(s Storage, stateID string) []*model.City {
	cities := []*model.City{}
	for _, m := range s.All("City") {
		if city, ok := m.(*model.City); ok && city.StateID == stateID {
			cities = append(cities, city)
		}
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].ID < cities[j].ID })
	return cities
}

func PlacesOfCity(s Storage, cityID string) []*model.Place {
	places := []*model.Place{}
	for _, m := range s.All("Place") {
		if place, ok := m.(*model.Place); ok && place.CityID == cityID {
			places = append(places, place)
		}
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	return places
}

func PlacesOfUser(s Storage, userID string) []*model.Place {
	places := []*model.Place{}
	for _, m := range s.All("Place") {
		if place, ok := m.(*model.Place); ok && place.UserID == userID {
			places = append(places, place)
		}
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID < places[j].ID })
	return places
}

func ReviewsOfPlace(s Storage, placeID string) []*model.Review {
	reviews := []*model.Review{}
	for _, m := range s.All("Review") {
		if review, ok := m.(*model.Review); ok && review.PlaceID == placeID {
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews
}

func ReviewsOfUser(s Storage, userID string) []*model.Review {
	reviews := []*model.Review{}
	for _, m := range s.All("Review") {
		if review, ok := m.(*model.Review); ok && review.UserID == userID {
			reviews = append(reviews, review)
		}
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID < reviews[j].ID })
	return reviews
}

// AmenitiesOfPlace resolves the place's linked amenity ids to live
// amenities. Dangling ids (possible in the file backend) are skipped.
func AmenitiesOfPlace(s Storage, place *model.Place) []*model.Amenity {
	amenities := []*model.Amenity{}
	for _, id := range place.AmenityIDs {
		if m := s.Get("Amenity", id); m != nil {
			amenities = append(amenities, m.(*model.Amenity))
		}
	}
	sort.Slice(amenities, func(i, j int) bool { return amenities[i].ID < amenities[j].ID })
	return amenities
}

// dependentsOf collects every live object that must go away with m:
// State -> City -> Place -> Review, plus a user's places and reviews. The
// result never contains m itself and never contains duplicates.
func dependentsOf(s Storage, m model.Model) []model.Model {
	seen := map[string]bool{}
	var deps []model.Model

	var collect func(m model.Model)
	collect = func(m model.Model) {
		var children []model.Model

		switch owner := m.(type) {
		case *model.State:
			for _, city := range CitiesOfState(s, owner.ID) {
				children = append(children, city)
			}
		case *model.City:
			for _, place := range PlacesOfCity(s, owner.ID) {
				children = append(children, place)
			}
		case *model.User:
			for _, place := range PlacesOfUser(s, owner.ID) {
				children = append(children, place)
			}
			for _, review := range ReviewsOfUser(s, owner.ID) {
				children = append(children, review)
			}
		case *model.Place:
			for _, review := range ReviewsOfPlace(s, owner.ID) {
				children = append(children, review)
			}
		}

		for _, child := range children {
			key := ObjKey(child.TypeName(), child.GetID())
			if seen[key] {
				continue
			}
			seen[key] = true
			deps = append(deps, child)
			collect(child)
		}
	}

	collect(m)
	return deps
}
