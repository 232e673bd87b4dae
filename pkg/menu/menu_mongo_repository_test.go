package menu

import (
	"context"
	"testing"
	"time"

	"restaurant-directory/domain"
	"restaurant-directory/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const menusNamespace = "test.restaurantmenus"

func mongoMenu() *entities.RestaurantMenu {
	return &entities.RestaurantMenu{
		RestaurantID:   "r-1",
		RestaurantName: "Tiffin Box",
		Items:          []entities.MenuItem{{ID: 1, Name: "Idli", Price: 40, Available: true}},
		LastUpdated:    time.Now(),
	}
}

func TestMenuMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("missing menu is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, menusNamespace, mtest.FirstBatch))

		_, err := NewMenuMongoRepository(mt.DB).GetMenuByRestaurantID(ctx, "r-1")
		require.ErrorIs(mt, err, domain.ErrMenuNotFound)
	})

	mt.Run("upsert writes menu then flags restaurant", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 0},
				bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "m-1"}}}},
			),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
			mtest.CreateCursorResponse(0, menusNamespace, mtest.FirstBatch, bson.D{
				{Key: "restaurantId", Value: "r-1"},
				{Key: "restaurantName", Value: "Tiffin Box"},
				{Key: "items", Value: bson.A{bson.D{
					{Key: "id", Value: 1},
					{Key: "name", Value: "Idli"},
					{Key: "price", Value: 40.0},
					{Key: "available", Value: true},
				}}},
			}),
		)

		saved, err := NewMenuMongoRepository(mt.DB).UpsertMenu(ctx, mongoMenu())
		require.NoError(mt, err)
		require.Len(mt, saved.Items, 1)
		assert.Equal(mt, "Idli", saved.Items[0].Name)
		assert.Equal(mt, 40.0, saved.Items[0].Price)

		menuWrite := mt.GetStartedEvent()
		assert.Equal(mt, entities.RestaurantMenuCollection, menuWrite.Command.Lookup("update").StringValue())
		assert.True(mt, menuWrite.Command.Lookup("updates", "0", "upsert").Boolean())
		_, err = menuWrite.Command.LookupErr("updates", "0", "u", "$setOnInsert", "createdAt")
		assert.NoError(mt, err)
		_, err = menuWrite.Command.LookupErr("updates", "0", "u", "$set", "createdAt")
		assert.Error(mt, err)

		flagWrite := mt.GetStartedEvent()
		assert.Equal(mt, entities.RestaurantCollection, flagWrite.Command.Lookup("update").StringValue())
		assert.True(mt, flagWrite.Command.Lookup("updates", "0", "u", "$set", "menuUploaded").Boolean())
	})

	mt.Run("menu is written before a missing restaurant is detected", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 0},
				bson.E{Key: "nModified", Value: 0},
			),
		)

		_, err := NewMenuMongoRepository(mt.DB).UpsertMenu(ctx, mongoMenu())
		require.ErrorIs(mt, err, domain.ErrRestaurantNotFound)

		assert.Equal(mt, entities.RestaurantMenuCollection, mt.GetStartedEvent().Command.Lookup("update").StringValue())
		assert.Equal(mt, entities.RestaurantCollection, mt.GetStartedEvent().Command.Lookup("update").StringValue())
	})
}
