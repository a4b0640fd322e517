package implementation

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-recipe-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstOrCreateIngredientUpsert(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	repo := NewRecipeRepository(gormDB)
	ctx := context.Background()

	// Unique per run so reruns don't collide with earlier rows.
	nameA := "it-ingredient-a-" + uuid.New().String()
	nameB := "it-ingredient-b-" + uuid.New().String()

	// The inserted row must carry the queried name, never an empty one.
	ingA, err := repo.FirstOrCreateIngredient(ctx, nameA)
	require.NoError(t, err)
	require.NotNil(t, ingA)
	assert.Equal(t, nameA, ingA.Name)
	assert.NotEqual(t, uuid.Nil, ingA.Id)

	// Round-trip through the stored row, not the receiver.
	var storedName string
	err = gormDB.Raw("SELECT name FROM ingredients WHERE id = ?", ingA.Id).Scan(&storedName).Error
	require.NoError(t, err)
	assert.Equal(t, nameA, storedName)

	// Second call with the same name resolves, not inserts.
	again, err := repo.FirstOrCreateIngredient(ctx, nameA)
	require.NoError(t, err)
	assert.Equal(t, ingA.Id, again.Id)

	// A second distinct name must insert cleanly; a name leak into the
	// created row would trip the unique index here instead.
	ingB, err := repo.FirstOrCreateIngredient(ctx, nameB)
	require.NoError(t, err)
	assert.Equal(t, nameB, ingB.Name)
	assert.NotEqual(t, ingA.Id, ingB.Id)

	// Cleanup
	gormDB.Exec("DELETE FROM ingredients WHERE id IN ?", []uuid.UUID{ingA.Id, ingB.Id})
}
