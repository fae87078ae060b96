package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EyeValues holds the optical measurements for a single eye.
type EyeValues struct {
	Sphere   float64 `bson:"sphere" json:"sphere"`
	Cylinder float64 `bson:"cylinder,omitempty" json:"cylinder,omitempty"`
	Axis     int     `bson:"axis,omitempty" json:"axis,omitempty"`
}

type Prescription struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Label         string             `bson:"label" json:"label" binding:"required"`
	RightEye      EyeValues          `bson:"rightEye" json:"rightEye"`
	LeftEye       EyeValues          `bson:"leftEye" json:"leftEye"`
	PupilDistance float64            `bson:"pupilDistance,omitempty" json:"pupilDistance,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
