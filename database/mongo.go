package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	if uri == "" || dbName == "" {
		log.Fatal("MONGO_URI or DB_NAME not set in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("Connected to MongoDB")
}

var UserCollection *mongo.Collection
var ProductCollection *mongo.Collection
var CategoryCollection *mongo.Collection
var OrderCollection *mongo.Collection
var CartCollection *mongo.Collection
var ReviewCollection *mongo.Collection
var PrescriptionCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	ProductCollection = DB.Collection("products")
	CategoryCollection = DB.Collection("categories")
	OrderCollection = DB.Collection("orders")
	CartCollection = DB.Collection("carts")
	ReviewCollection = DB.Collection("reviews")
	PrescriptionCollection = DB.Collection("prescriptions")
}

// EnsureIndexes creates the uniqueness and search indexes the domain relies on:
// one review per (user, product), one cart per user, globally unique order
// numbers and SKUs.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := []struct {
		col    *mongo.Collection
		models []mongo.IndexModel
	}{
		{UserCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		}},
		{ProductCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "sku", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "brand", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}, {Key: "brand", Value: "text"}}},
		}},
		{OrderCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "orderNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "paymentIntentId", Value: 1}}},
		}},
		{CartCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: unique},
		}},
		{ReviewCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "product", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "product", Value: 1}, {Key: "rating", Value: 1}}},
		}},
		{PrescriptionCollection, []mongo.IndexModel{
			{Keys: bson.D{{Key: "user", Value: 1}}},
		}},
	}

	for _, ix := range indexes {
		if _, err := ix.col.Indexes().CreateMany(ctx, ix.models); err != nil {
			log.Fatalf("Failed to create indexes for %s: %v", ix.col.Name(), err)
		}
	}
}
