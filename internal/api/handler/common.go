package handler

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID pulls the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

func pathObjectID(c *gin.Context, param string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(param))
}
