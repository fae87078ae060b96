package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFilter enumerates every optional catalog predicate. Query maps it to
// one mongo filter; request parsing never builds filters ad hoc.
type ProductFilter struct {
	Category  *primitive.ObjectID
	Brand     string
	FrameType string
	LensType  string
	Gender    string
	MinPrice  *float64
	MaxPrice  *float64
	InStock   *bool
	Search    string
}

func (f ProductFilter) Query() bson.M {
	query := bson.M{}

	if f.Category != nil {
		query["category"] = *f.Category
	}
	if f.Brand != "" {
		query["brand"] = primitive.Regex{Pattern: f.Brand, Options: "i"}
	}
	if f.FrameType != "" {
		query["frameType"] = f.FrameType
	}
	if f.LensType != "" {
		query["lensType"] = f.LensType
	}
	if f.Gender != "" {
		query["gender"] = f.Gender
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	// inStock is derived from stockQuantity at query time; there is no stored
	// inStock field to drift out of sync.
	if f.InStock != nil {
		if *f.InStock {
			query["stockQuantity"] = bson.M{"$gt": 0}
		} else {
			query["stockQuantity"] = 0
		}
	}

	if f.Search != "" {
		query["$text"] = bson.M{"$search": f.Search}
	}

	return query
}

// Sort maps a sort field and direction to a mongo sort document. Unknown
// fields fall back to newest-first.
func Sort(field, order string) bson.D {
	switch field {
	case "price", "name", "createdAt", "ratings.average":
	default:
		field = "createdAt"
	}
	dir := -1
	if order == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}
