package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okarhu/cat-api/internal/models"
)

func TestCatSetDocument(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		assert.Empty(t, catSetDocument(models.CatUpdate{}))
	})

	t.Run("set fields only", func(t *testing.T) {
		name := "Siiri"
		weight := 3.4
		birthdate := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
		set := catSetDocument(models.CatUpdate{
			CatName:   &name,
			Weight:    &weight,
			Birthdate: &birthdate,
		})
		assert.Equal(t, bson.M{
			"cat_name":  "Siiri",
			"weight":    3.4,
			"birthdate": birthdate,
		}, set)
	})

	t.Run("owner reassignment", func(t *testing.T) {
		owner := primitive.NewObjectID()
		set := catSetDocument(models.CatUpdate{Owner: &owner})
		assert.Equal(t, bson.M{"owner": owner}, set)
	})

	t.Run("location", func(t *testing.T) {
		point := models.NewPoint(24.94, 60.17)
		set := catSetDocument(models.CatUpdate{Location: &point})
		assert.Equal(t, bson.M{"location": point}, set)
	})
}

func TestUserSetDocument(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		assert.Empty(t, userSetDocument(models.UserUpdate{}))
	})

	t.Run("set fields only", func(t *testing.T) {
		name := "uusi"
		set := userSetDocument(models.UserUpdate{UserName: &name})
		assert.Equal(t, bson.M{"user_name": "uusi"}, set)
	})
}
