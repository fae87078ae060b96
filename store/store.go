// Package store backs the service collaborator interfaces with MongoDB
// collections.
package store

import "go.mongodb.org/mongo-driver/mongo"

// Stores bundles the mongo-backed implementations for wiring in main.
type Stores struct {
	Products *ProductStore
	Orders   *OrderStore
	Carts    *CartStore
	Reviews  *ReviewStore
}

func New(db *mongo.Database) *Stores {
	return &Stores{
		Products: &ProductStore{col: db.Collection("products")},
		Orders:   &OrderStore{col: db.Collection("orders")},
		Carts:    &CartStore{col: db.Collection("carts")},
		Reviews:  &ReviewStore{col: db.Collection("reviews")},
	}
}
