package migrate

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drgilson/gascrm-backend/pkg/config"
	"github.com/drgilson/gascrm-backend/pkg/db"
	"github.com/drgilson/gascrm-backend/pkg/db/models"
	"github.com/drgilson/gascrm-backend/pkg/logger"
)

func newSQLiteClient(t *testing.T) *db.Client {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestUpIsIdempotentAndCreatesTables(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, client))
	require.NoError(t, Up(ctx, client))

	tables, err := Tables(ctx, client)
	require.NoError(t, err)

	expected := []string{"users", "customers", "messages", "campaigns"}
	for _, name := range expected {
		require.Contains(t, tables, name)
	}
}

func TestCampaignTableMatchesModel(t *testing.T) {
	client := newSQLiteClient(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, client))

	conn := client.DB().WithContext(ctx)
	require.NoError(t, conn.Create(&models.Campaign{Name: "Recompra", Template: "Olá [NOME]"}).Error)

	var got models.Campaign
	require.NoError(t, conn.First(&got, "name = ?", "Recompra").Error)
	require.True(t, got.IsActive)
	require.False(t, got.CreatedAt.IsZero())
}

func TestDialectForRejectsUnknownDriver(t *testing.T) {
	_, _, err := dialectFor("oracle")
	require.Error(t, err)
}
