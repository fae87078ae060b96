package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vinca/database"
	"vinca/models"
)

// loadOrCreateCart fetches the caller's cart, creating an empty one on first
// access.
func loadOrCreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := database.CartCollection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	cart = models.Cart{
		ID:        primitive.NewObjectID(),
		User:      userID,
		Items:     []models.CartItem{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := database.CartCollection.InsertOne(ctx, cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func saveCart(ctx context.Context, cart *models.Cart) error {
	cart.Recalculate()
	cart.UpdatedAt = time.Now()
	_, err := database.CartCollection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	return err
}

func GetCart(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := loadOrCreateCart(ctx, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": cart})
}

func AddToCart(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	var body struct {
		ProductID    string                `json:"productId" binding:"required"`
		Quantity     int                   `json:"quantity" binding:"required,min=1"`
		Prescription string                `json:"prescription"`
		LensOptions  *models.LensSelection `json:"lensOptions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !product.InStock() || product.StockQuantity < body.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product out of stock"})
		return
	}

	var prescription *primitive.ObjectID
	if body.Prescription != "" {
		rxID, err := primitive.ObjectIDFromHex(body.Prescription)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prescription ID"})
			return
		}
		prescription = &rxID
	}

	cart, err := loadOrCreateCart(ctx, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	// merge with an existing line for the same product, refreshing the price
	// snapshot
	merged := false
	for i := range cart.Items {
		if cart.Items[i].Product == productID {
			cart.Items[i].Quantity += body.Quantity
			cart.Items[i].Price = product.SellingPrice()
			if prescription != nil {
				cart.Items[i].Prescription = prescription
			}
			if body.LensOptions != nil {
				cart.Items[i].LensOptions = body.LensOptions
			}
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			Product:      productID,
			Quantity:     body.Quantity,
			Price:        product.SellingPrice(),
			Prescription: prescription,
			LensOptions:  body.LensOptions,
		})
	}

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "data": cart})
}

func UpdateCartItem(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	var body struct {
		Quantity    int                   `json:"quantity" binding:"min=0"`
		LensOptions *models.LensSelection `json:"lensOptions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := loadOrCreateCart(ctx, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].Product == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}

	if body.Quantity == 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		var product models.Product
		if err := database.ProductCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.StockQuantity < body.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			return
		}
		cart.Items[idx].Quantity = body.Quantity
		if body.LensOptions != nil {
			cart.Items[idx].LensOptions = body.LensOptions
		}
	}

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "data": cart})
}

func RemoveFromCart(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid productId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := loadOrCreateCart(ctx, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	kept := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.Product == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in cart"})
		return
	}
	cart.Items = kept

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "data": cart})
}

func ClearCart(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := loadOrCreateCart(ctx, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	cart.Items = []models.CartItem{}
	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "data": cart})
}
