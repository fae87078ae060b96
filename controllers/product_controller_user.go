package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vinca/database"
	"vinca/models"
	"vinca/store"
)

// productFilterFromQuery maps the optional request parameters onto the
// explicit filter struct. No ad-hoc filter construction happens outside it.
func productFilterFromQuery(c *gin.Context) (store.ProductFilter, error) {
	var f store.ProductFilter

	if slug := c.Query("category"); slug != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var category models.Category
		if err := database.CategoryCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&category); err == nil {
			f.Category = &category.ID
		}
	}

	f.Brand = c.Query("brand")
	f.FrameType = c.Query("frameType")
	f.LensType = c.Query("lensType")
	f.Gender = c.Query("gender")
	f.Search = c.Query("search")

	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		f.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		f.MaxPrice = &price
	}
	if v := c.Query("inStock"); v != "" {
		inStock := v == "true"
		f.InStock = &inStock
	}

	return f, nil
}

func GetProducts(c *gin.Context) {
	filter, err := productFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := filter.Query()
	opts := options.Find().
		SetSort(store.Sort(c.DefaultQuery("sort", "createdAt"), c.DefaultQuery("order", "desc"))).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.ProductCollection.Find(ctx, query, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	var products []models.Product = []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode products"})
		return
	}

	total, err := database.ProductCollection.CountDocuments(ctx, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
		return
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"page":     page,
		"pages":    pages,
		"total":    total,
	})
}

func GetProduct(c *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": product})
}
