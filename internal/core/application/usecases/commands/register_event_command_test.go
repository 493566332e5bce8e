package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterEventCommand(t *testing.T) {
	date := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should expose all fields through getters", func(t *testing.T) {
		user := "operator"
		cmd := commands.NewRegisterEventCommand(1, "evt-001", event.TypePaymentReceived, date, &user)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, 1, cmd.OrderID())
		assert.Equal(t, "evt-001", cmd.EventID())
		assert.Equal(t, event.TypePaymentReceived, cmd.EventType())
		assert.Equal(t, date, cmd.Date())
		require.NotNil(t, cmd.User())
		assert.Equal(t, "operator", *cmd.User())
	})

	t.Run("should allow absent user", func(t *testing.T) {
		cmd := commands.NewRegisterEventCommand(1, "evt-001", event.TypeCanceled, date, nil)

		require.NoError(t, cmd.Validate())
		assert.Nil(t, cmd.User())
	})
}

func TestRegisterEventCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.RegisterEventCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrRegisterEventCommandIsNotConstructed, err)
	})
}
