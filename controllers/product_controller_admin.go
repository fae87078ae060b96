package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vinca/database"
	"vinca/models"
)

func CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product.ID = primitive.NewObjectID()
	product.Ratings = models.Rating{}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.ProductCollection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "SKU already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

func UpdateProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var body struct {
		Name          *string   `json:"name"`
		Description   *string   `json:"description"`
		Brand         *string   `json:"brand"`
		Price         *float64  `json:"price"`
		DiscountPrice *float64  `json:"discountPrice"`
		Images        *[]string `json:"images"`
		StockQuantity *int      `json:"stockQuantity"`
		FrameType     *string   `json:"frameType"`
		FrameMaterial *string   `json:"frameMaterial"`
		LensType      *string   `json:"lensType"`
		Gender        *string   `json:"gender"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// ratings are deliberately not settable here; the rating aggregator is
	// the only writer
	update := bson.M{}
	if body.Name != nil {
		update["name"] = *body.Name
	}
	if body.Description != nil {
		update["description"] = *body.Description
	}
	if body.Brand != nil {
		update["brand"] = *body.Brand
	}
	if body.Price != nil {
		update["price"] = *body.Price
	}
	if body.DiscountPrice != nil {
		update["discountPrice"] = *body.DiscountPrice
	}
	if body.Images != nil {
		update["images"] = *body.Images
	}
	if body.StockQuantity != nil {
		if *body.StockQuantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stockQuantity cannot be negative"})
			return
		}
		update["stockQuantity"] = *body.StockQuantity
	}
	if body.FrameType != nil {
		update["frameType"] = *body.FrameType
	}
	if body.FrameMaterial != nil {
		update["frameMaterial"] = *body.FrameMaterial
	}
	if body.LensType != nil {
		update["lensType"] = *body.LensType
	}
	if body.Gender != nil {
		update["gender"] = *body.Gender
	}
	update["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Product
	err = database.ProductCollection.FindOneAndUpdate(ctx, bson.M{"_id": productID}, bson.M{"$set": update}, opts).Decode(&updated)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "data": updated})
}

func DeleteProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.ProductCollection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": productID.Hex()})
}
